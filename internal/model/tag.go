package model

// Tag is a global label that tasks reference by ID.
type Tag struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// TagPatch holds the mutable tag fields. Nil fields are left as is.
type TagPatch struct {
	Name  *string
	Color *string
}

// Apply returns a copy of t with the non-nil patch fields merged in.
func (p TagPatch) Apply(t Tag) Tag {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Color != nil {
		t.Color = *p.Color
	}
	return t
}
