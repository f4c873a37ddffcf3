package board

import "github.com/nhle/teamboard/internal/model"

// AddTag appends a tag with a fresh ID. Names and colors need not be unique.
func (b *Board) AddTag(name, color string) model.Tag {
	var t model.Tag
	b.update("add_tag", func(s model.Snapshot) (model.Snapshot, bool) {
		t = model.Tag{ID: b.newID(), Name: name, Color: color}
		s.Tags = append(append(make([]model.Tag, 0, len(s.Tags)+1), s.Tags...), t)
		return s, true
	})
	return t
}

// UpdateTag merges patch into the tag with id.
func (b *Board) UpdateTag(id string, patch model.TagPatch) bool {
	return b.update("update_tag", func(s model.Snapshot) (model.Snapshot, bool) {
		idx := indexOf(s.Tags, tagKey, id)
		if idx < 0 {
			return s, false
		}
		tags := append([]model.Tag{}, s.Tags...)
		tags[idx] = patch.Apply(tags[idx])
		s.Tags = tags
		return s, true
	})
}

// DeleteTag removes the tag with id. Tasks keep the ID in their TagIDs;
// ResolveTags skips it from then on.
func (b *Board) DeleteTag(id string) bool {
	return b.update("delete_tag", func(s model.Snapshot) (model.Snapshot, bool) {
		idx := indexOf(s.Tags, tagKey, id)
		if idx < 0 {
			return s, false
		}
		tags := make([]model.Tag, 0, len(s.Tags)-1)
		tags = append(tags, s.Tags[:idx]...)
		tags = append(tags, s.Tags[idx+1:]...)
		s.Tags = tags
		return s, true
	})
}
