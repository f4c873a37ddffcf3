package board

import (
	"errors"
	"fmt"

	"github.com/nhle/teamboard/internal/model"
)

var (
	// ErrUnknownMember is returned when a task would reference a member
	// that is not on the board.
	ErrUnknownMember = errors.New("unknown member")

	// ErrStatusMismatch is returned when an update would leave a task
	// done without a completion time, or todo with one.
	ErrStatusMismatch = errors.New("status and completion time disagree")
)

// AddTask appends a todo task for memberID. tagIDs is copied and may name
// tags that do not exist.
func (b *Board) AddTask(memberID, title, description string, tagIDs []string) (model.Task, error) {
	var (
		t   model.Task
		err error
	)
	b.update("add_task", func(s model.Snapshot) (model.Snapshot, bool) {
		if indexOf(s.Members, memberKey, memberID) < 0 {
			err = fmt.Errorf("adding task for member %s: %w", memberID, ErrUnknownMember)
			return s, false
		}
		t = model.Task{
			ID:          b.newID(),
			MemberID:    memberID,
			Title:       title,
			Description: description,
			TagIDs:      append([]string{}, tagIDs...),
			CreatedAt:   b.nowMillis(),
			Status:      model.StatusTodo,
		}
		s.Tasks = append(append(make([]model.Task, 0, len(s.Tasks)+1), s.Tasks...), t)
		return s, true
	})
	return t, err
}

// UpdateTask merges patch into the task with id. It reports false, with a
// nil error, when no such task exists. A patch that moves the task to an
// unknown member or breaks the status/completion pairing is rejected and
// the board is left unchanged.
func (b *Board) UpdateTask(id string, patch model.TaskPatch) (bool, error) {
	var err error
	ok := b.update("update_task", func(s model.Snapshot) (model.Snapshot, bool) {
		idx := indexOf(s.Tasks, taskKey, id)
		if idx < 0 {
			return s, false
		}

		next := patch.Apply(s.Tasks[idx])
		if next.MemberID != s.Tasks[idx].MemberID && indexOf(s.Members, memberKey, next.MemberID) < 0 {
			err = fmt.Errorf("moving task %s to member %s: %w", id, next.MemberID, ErrUnknownMember)
			return s, false
		}
		if !next.Coherent() {
			err = fmt.Errorf("updating task %s: %w", id, ErrStatusMismatch)
			return s, false
		}

		tasks := append([]model.Task{}, s.Tasks...)
		tasks[idx] = next
		s.Tasks = tasks
		return s, true
	})
	return ok, err
}

// DeleteTask removes the task with id.
func (b *Board) DeleteTask(id string) bool {
	return b.update("delete_task", func(s model.Snapshot) (model.Snapshot, bool) {
		idx := indexOf(s.Tasks, taskKey, id)
		if idx < 0 {
			return s, false
		}
		tasks := make([]model.Task, 0, len(s.Tasks)-1)
		tasks = append(tasks, s.Tasks[:idx]...)
		tasks = append(tasks, s.Tasks[idx+1:]...)
		s.Tasks = tasks
		return s, true
	})
}

// MarkTaskDone sets the task to done and stamps the completion time.
func (b *Board) MarkTaskDone(id string) bool {
	done := model.StatusDone
	now := b.nowMillis()
	completed := &now
	ok, _ := b.UpdateTask(id, model.TaskPatch{Status: &done, CompletedAt: &completed})
	return ok
}

// MarkTaskTodo sets the task back to todo and clears the completion time.
func (b *Board) MarkTaskTodo(id string) bool {
	todo := model.StatusTodo
	var cleared *int64
	ok, _ := b.UpdateTask(id, model.TaskPatch{Status: &todo, CompletedAt: &cleared})
	return ok
}

// ToggleTask flips the task between todo and done.
func (b *Board) ToggleTask(id string) bool {
	t, ok := b.Task(id)
	if !ok {
		return false
	}
	if t.IsDone() {
		return b.MarkTaskTodo(id)
	}
	return b.MarkTaskDone(id)
}

// MoveTaskInSwimlane places task fromID immediately before task toID within
// the tasks that share fromID's member and status, or last in that group
// when toID is empty. toID outside the group, fromID == toID, unknown IDs
// and moves that change nothing are ignored.
func (b *Board) MoveTaskInSwimlane(fromID, toID string) bool {
	return b.update("move_task", func(s model.Snapshot) (model.Snapshot, bool) {
		tasks, ok := reorderPartition(s.Tasks, fromID, toID)
		if !ok {
			return s, false
		}
		s.Tasks = tasks
		return s, true
	})
}
