package tagmgr

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/teamboard/internal/board"
	"github.com/nhle/teamboard/internal/keys"
)

func press(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newBoard(t *testing.T) *board.Board {
	t.Helper()
	return board.New(context.Background(), nil, board.Options{SeedMembers: []string{"Alice"}})
}

func TestCreateTag(t *testing.T) {
	b := newBoard(t)
	m := New(b, keys.DefaultKeyMap(), 80, 24)
	m.Open(b.Snapshot())

	m, cmd := m.Update(press("n"))
	require.NotNil(t, cmd)
	assert.Equal(t, modeForm, m.mode)

	m.fb.name = "bug"
	m.fb.color = " #ff0000 "
	m, _ = m.Update(m.saveTag()())

	assert.Equal(t, modeList, m.mode)
	require.Len(t, m.tags, 1)
	assert.Equal(t, "bug", m.tags[0].Name)
	assert.Equal(t, "#ff0000", m.tags[0].Color)
	assert.Equal(t, `Tag "bug" saved`, m.statusMsg)
}

func TestEditTag(t *testing.T) {
	b := newBoard(t)
	tag := b.AddTag("bug", "#ff0000")
	m := New(b, keys.DefaultKeyMap(), 80, 24)
	m.Open(b.Snapshot())

	m, _ = m.Update(press("e"))
	assert.Equal(t, tag.ID, m.editingID)
	assert.Equal(t, "bug", m.fb.name)

	m.fb.name = "defect"
	m, _ = m.Update(m.saveTag()())

	got, ok := b.Tag(tag.ID)
	require.True(t, ok)
	assert.Equal(t, "defect", got.Name)
	assert.Equal(t, "#ff0000", got.Color)
}

func TestDeleteTagShowsUsage(t *testing.T) {
	b := newBoard(t)
	tag := b.AddTag("bug", "#ff0000")
	member := b.Snapshot().Members[0]
	_, err := b.AddTask(member.ID, "a", "", []string{tag.ID})
	require.NoError(t, err)

	m := New(b, keys.DefaultKeyMap(), 80, 24)
	m.Open(b.Snapshot())
	assert.Equal(t, 1, m.usage[tag.ID])
	assert.Contains(t, m.View(), "bug  (1)")

	m, _ = m.Update(press("d"))
	assert.Equal(t, modeConfirmDelete, m.mode)

	m, _ = m.Update(m.deleteTag(m.tags[m.selectedIdx])())
	assert.Empty(t, m.tags)
	assert.Equal(t, 0, m.selectedIdx)
	assert.Equal(t, `Tag "bug" deleted`, m.statusMsg)
}

func TestListNavigationWraps(t *testing.T) {
	b := newBoard(t)
	b.AddTag("one", "#111111")
	b.AddTag("two", "#222222")
	m := New(b, keys.DefaultKeyMap(), 80, 24)
	m.Open(b.Snapshot())

	m, _ = m.Update(press("k"))
	assert.Equal(t, 1, m.selectedIdx)
	m, _ = m.Update(press("j"))
	assert.Equal(t, 0, m.selectedIdx)
}

func TestEmptyListIgnoresEditAndDelete(t *testing.T) {
	b := newBoard(t)
	m := New(b, keys.DefaultKeyMap(), 80, 24)
	m.Open(b.Snapshot())

	m, cmd := m.Update(press("e"))
	assert.Nil(t, cmd)
	m, cmd = m.Update(press("d"))
	assert.Nil(t, cmd)
	assert.Equal(t, modeList, m.mode)
	assert.Contains(t, m.View(), "No tags yet")
}

func TestEscCloses(t *testing.T) {
	b := newBoard(t)
	m := New(b, keys.DefaultKeyMap(), 80, 24)
	m.Open(b.Snapshot())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, CloseMsg{}, cmd())
}
