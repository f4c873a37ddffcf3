package board

import "github.com/nhle/teamboard/internal/model"

// Lane is one member's swimlane as rendered: open cards then finished ones,
// each in board order.
type Lane struct {
	Member model.Member
	Todo   []model.Task
	Done   []model.Task
}

// TasksForMember returns the tasks assigned to memberID, in board order.
func TasksForMember(tasks []model.Task, memberID string) []model.Task {
	var out []model.Task
	for _, t := range tasks {
		if t.MemberID == memberID {
			out = append(out, t)
		}
	}
	return out
}

// FilterByTags returns the tasks carrying at least one of the selected tag
// IDs. An empty selection returns tasks unfiltered.
func FilterByTags(tasks []model.Task, selection []string) []model.Task {
	if len(selection) == 0 {
		return tasks
	}
	want := make(map[string]struct{}, len(selection))
	for _, id := range selection {
		want[id] = struct{}{}
	}

	var out []model.Task
	for _, t := range tasks {
		for _, id := range t.TagIDs {
			if _, ok := want[id]; ok {
				out = append(out, t)
				break
			}
		}
	}
	return out
}

// ResolveTags maps ids to tags in id order. IDs of deleted tags are skipped.
func ResolveTags(tags []model.Tag, ids []string) []model.Tag {
	byID := make(map[string]model.Tag, len(tags))
	for _, t := range tags {
		byID[t.ID] = t
	}

	out := make([]model.Tag, 0, len(ids))
	for _, id := range ids {
		if t, ok := byID[id]; ok {
			out = append(out, t)
		}
	}
	return out
}

// Partition returns the tasks of memberID with the given status, in the
// order MoveTaskInSwimlane maintains.
func Partition(tasks []model.Task, memberID string, status model.Status) []model.Task {
	var out []model.Task
	for _, t := range tasks {
		if t.MemberID == memberID && t.Status == status {
			out = append(out, t)
		}
	}
	return out
}

// Swimlanes groups the snapshot into lanes in member order, applying the
// tag selection to every lane.
func Swimlanes(s model.Snapshot, selection []string) []Lane {
	lanes := make([]Lane, 0, len(s.Members))
	for _, m := range s.Members {
		tasks := FilterByTags(TasksForMember(s.Tasks, m.ID), selection)
		lanes = append(lanes, Lane{
			Member: m,
			Todo:   Partition(tasks, m.ID, model.StatusTodo),
			Done:   Partition(tasks, m.ID, model.StatusDone),
		})
	}
	return lanes
}

// Member returns the member with id.
func (b *Board) Member(id string) (model.Member, bool) {
	s := b.Snapshot()
	if i := indexOf(s.Members, memberKey, id); i >= 0 {
		return s.Members[i], true
	}
	return model.Member{}, false
}

// Tag returns the tag with id.
func (b *Board) Tag(id string) (model.Tag, bool) {
	s := b.Snapshot()
	if i := indexOf(s.Tags, tagKey, id); i >= 0 {
		return s.Tags[i], true
	}
	return model.Tag{}, false
}

// Task returns the task with id.
func (b *Board) Task(id string) (model.Task, bool) {
	s := b.Snapshot()
	if i := indexOf(s.Tasks, taskKey, id); i >= 0 {
		return s.Tasks[i], true
	}
	return model.Task{}, false
}
