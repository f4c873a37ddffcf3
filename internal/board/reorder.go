package board

import "github.com/nhle/teamboard/internal/model"

// relocate moves the item identified by from so that it sits immediately
// before the item identified by to, or at the end when to is empty. The
// target position is taken after from has been removed. It reports false,
// and returns items unchanged, when from or to is missing, from equals to,
// or the order would not change.
func relocate[T any](items []T, id func(T) string, from, to string) ([]T, bool) {
	if from == to {
		return items, false
	}

	fromIdx := indexOf(items, id, from)
	if fromIdx < 0 {
		return items, false
	}

	rest := make([]T, 0, len(items))
	rest = append(rest, items[:fromIdx]...)
	rest = append(rest, items[fromIdx+1:]...)

	toIdx := len(rest)
	if to != "" {
		toIdx = indexOf(rest, id, to)
		if toIdx < 0 {
			return items, false
		}
	}
	if toIdx == fromIdx {
		return items, false
	}

	out := make([]T, 0, len(items))
	out = append(out, rest[:toIdx]...)
	out = append(out, items[fromIdx])
	out = append(out, rest[toIdx:]...)
	return out, true
}

func indexOf[T any](items []T, id func(T) string, want string) int {
	for i, it := range items {
		if id(it) == want {
			return i
		}
	}
	return -1
}

func memberKey(m model.Member) string { return m.ID }
func tagKey(t model.Tag) string       { return t.ID }
func taskKey(t model.Task) string     { return t.ID }

// samePartition reports whether t shares member and status with ref.
func samePartition(t, ref model.Task) bool {
	return t.MemberID == ref.MemberID && t.Status == ref.Status
}

// reorderPartition moves from before to inside the (member, status)
// partition of from. Tasks outside the partition keep their exact slots:
// the reordered partition is written back into the slots the partition
// occupied before the move.
func reorderPartition(tasks []model.Task, from, to string) ([]model.Task, bool) {
	idx := indexOf(tasks, taskKey, from)
	if idx < 0 {
		return tasks, false
	}
	ref := tasks[idx]

	var part []model.Task
	for _, t := range tasks {
		if samePartition(t, ref) {
			part = append(part, t)
		}
	}

	moved, ok := relocate(part, taskKey, from, to)
	if !ok {
		return tasks, false
	}

	out := make([]model.Task, len(tasks))
	cursor := 0
	for i, t := range tasks {
		if samePartition(t, ref) {
			out[i] = moved[cursor]
			cursor++
			continue
		}
		out[i] = t
	}
	return out, true
}
