package model

// Member owns one swimlane on the board. The order of members in a
// Snapshot is the left-to-right order of their swimlanes.
type Member struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// MemberPatch holds the mutable member fields. Nil fields are left as is.
type MemberPatch struct {
	Name *string
}

// Apply returns a copy of m with the non-nil patch fields merged in.
func (p MemberPatch) Apply(m Member) Member {
	if p.Name != nil {
		m.Name = *p.Name
	}
	return m
}
