package model

import "time"

// Status is the lifecycle state of a task.
type Status string

// Task status constants.
const (
	StatusTodo Status = "todo"
	StatusDone Status = "done"
)

// Task is a card in a member's swimlane.
type Task struct {
	// ID is the unique identifier for this task.
	ID string `json:"id"`

	// MemberID is the owning member (swimlane).
	MemberID string `json:"memberId"`

	Title       string `json:"title"`
	Description string `json:"description"`

	// TagIDs may contain IDs of tags that have since been deleted.
	TagIDs []string `json:"tagIds"`

	// CreatedAt is milliseconds since the Unix epoch.
	CreatedAt int64 `json:"createdAt"`

	Status Status `json:"status"`

	// CompletedAt is milliseconds since the Unix epoch, set only while
	// Status is StatusDone.
	CompletedAt *int64 `json:"completedAt"`
}

// IsDone reports whether the task is completed.
func (t Task) IsDone() bool { return t.Status == StatusDone }

// Created returns CreatedAt as a time.Time.
func (t Task) Created() time.Time { return time.UnixMilli(t.CreatedAt) }

// Completed returns CompletedAt as a time.Time, or nil.
func (t Task) Completed() *time.Time {
	if t.CompletedAt == nil {
		return nil
	}
	c := time.UnixMilli(*t.CompletedAt)
	return &c
}

// HasTag reports whether id is among the task's tag IDs.
func (t Task) HasTag(id string) bool {
	for _, tagID := range t.TagIDs {
		if tagID == id {
			return true
		}
	}
	return false
}

// Coherent reports whether CompletedAt is set exactly when the task is done.
func (t Task) Coherent() bool {
	return (t.Status == StatusDone) == (t.CompletedAt != nil)
}

// TaskPatch holds the mutable task fields. Nil fields are left as is.
//
// CompletedAt is a double pointer so a patch can distinguish "leave alone"
// (nil) from "clear" (pointer to nil).
type TaskPatch struct {
	MemberID    *string
	Title       *string
	Description *string
	TagIDs      *[]string
	Status      *Status
	CompletedAt **int64
}

// Apply returns a copy of t with the non-nil patch fields merged in.
// Slices and pointers are copied so the result shares no storage with the patch.
func (p TaskPatch) Apply(t Task) Task {
	if p.MemberID != nil {
		t.MemberID = *p.MemberID
	}
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.TagIDs != nil {
		t.TagIDs = append([]string{}, (*p.TagIDs)...)
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.CompletedAt != nil {
		if *p.CompletedAt == nil {
			t.CompletedAt = nil
		} else {
			ms := **p.CompletedAt
			t.CompletedAt = &ms
		}
	}
	return t
}
