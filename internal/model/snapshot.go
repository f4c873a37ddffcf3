package model

// Snapshot is a point-in-time copy of the whole board. It is also the
// persisted and exported document shape.
//
// Holders of a Snapshot must treat its slices as read-only; the board
// replaces them wholesale on every change.
type Snapshot struct {
	Members []Member `json:"members"`
	Tags    []Tag    `json:"tags"`
	Tasks   []Task   `json:"tasks"`
}

// Clone returns a deep copy of s.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Members: append([]Member{}, s.Members...),
		Tags:    append([]Tag{}, s.Tags...),
		Tasks:   make([]Task, len(s.Tasks)),
	}
	for i, t := range s.Tasks {
		t.TagIDs = append([]string{}, t.TagIDs...)
		if t.CompletedAt != nil {
			ms := *t.CompletedAt
			t.CompletedAt = &ms
		}
		out.Tasks[i] = t
	}
	return out
}
