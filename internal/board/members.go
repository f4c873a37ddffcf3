package board

import "github.com/nhle/teamboard/internal/model"

// AddMember appends a member with a fresh ID. The name is stored verbatim.
func (b *Board) AddMember(name string) model.Member {
	var m model.Member
	b.update("add_member", func(s model.Snapshot) (model.Snapshot, bool) {
		m = model.Member{ID: b.newID(), Name: name}
		s.Members = append(append(make([]model.Member, 0, len(s.Members)+1), s.Members...), m)
		return s, true
	})
	return m
}

// UpdateMember merges patch into the member with id. It reports false when
// no such member exists.
func (b *Board) UpdateMember(id string, patch model.MemberPatch) bool {
	return b.update("update_member", func(s model.Snapshot) (model.Snapshot, bool) {
		idx := indexOf(s.Members, memberKey, id)
		if idx < 0 {
			return s, false
		}
		members := append([]model.Member{}, s.Members...)
		members[idx] = patch.Apply(members[idx])
		s.Members = members
		return s, true
	})
}

// DeleteMember removes the member with id together with every task
// assigned to it. It reports false when no such member exists.
func (b *Board) DeleteMember(id string) bool {
	return b.update("delete_member", func(s model.Snapshot) (model.Snapshot, bool) {
		if indexOf(s.Members, memberKey, id) < 0 {
			return s, false
		}

		members := make([]model.Member, 0, len(s.Members)-1)
		for _, m := range s.Members {
			if m.ID != id {
				members = append(members, m)
			}
		}
		tasks := make([]model.Task, 0, len(s.Tasks))
		for _, t := range s.Tasks {
			if t.MemberID != id {
				tasks = append(tasks, t)
			}
		}

		s.Members = members
		s.Tasks = tasks
		return s, true
	})
}

// MoveSwimlane places member fromID immediately before member toID, or
// last when toID is empty. Moves onto itself, moves of unknown members and
// moves that leave the order unchanged are ignored.
func (b *Board) MoveSwimlane(fromID, toID string) bool {
	return b.update("move_swimlane", func(s model.Snapshot) (model.Snapshot, bool) {
		members, ok := relocate(s.Members, memberKey, fromID, toID)
		if !ok {
			return s, false
		}
		s.Members = members
		return s, true
	})
}
