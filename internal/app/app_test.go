package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appsync "github.com/nhle/teamboard/internal/sync"
	"github.com/nhle/teamboard/internal/ui"
	"github.com/nhle/teamboard/internal/ui/command"
	"github.com/nhle/teamboard/internal/ui/memberform"
	"github.com/nhle/teamboard/internal/ui/taskform"
	"github.com/nhle/teamboard/tests/testutil"
)

func press(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func TestViewBeforeAndAfterResize(t *testing.T) {
	m := New(testutil.NewTestBoard(t, "Alice"), Options{})
	assert.Equal(t, "Loading...", m.View())

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 30})
	out := m.View()
	assert.Contains(t, out, "Team Board")
	assert.Contains(t, out, "Alice")
}

func TestChangeMsgRefreshesBoardView(t *testing.T) {
	b := testutil.NewTestBoard(t, "Alice")
	m := New(b, Options{})

	b.AddMember("Bob")
	m, cmd := update(t, m, appsync.ChangeMsg{Snapshot: b.Snapshot()})
	assert.NotNil(t, cmd, "keeps waiting for changes")

	m, _ = update(t, m, press("l"))
	member, ok := m.boardView.SelectedMember()
	require.True(t, ok)
	assert.Equal(t, "Bob", member.Name)
}

func TestNewTaskNeedsAMember(t *testing.T) {
	m := New(testutil.NewTestBoard(t), Options{})

	m, _ = update(t, m, press("n"))
	assert.Equal(t, ViewBoard, m.currentView)
	assert.Equal(t, "Add a member first (m)", m.status)
}

func TestNewTaskOpensForm(t *testing.T) {
	m := New(testutil.NewTestBoard(t, "Alice"), Options{})

	m, _ = update(t, m, press("n"))
	assert.Equal(t, ViewTaskForm, m.currentView)

	m, _ = update(t, m, taskform.CancelMsg{})
	assert.Equal(t, ViewBoard, m.currentView)
}

func TestSubmittedTaskIsAdded(t *testing.T) {
	b := testutil.NewTestBoard(t, "Alice")
	alice := b.Snapshot().Members[0]
	m := New(b, Options{})
	m.currentView = ViewTaskForm

	m, cmd := update(t, m, taskform.SubmitMsg{MemberID: alice.ID, Title: "Plan sprint", TagIDs: []string{}})
	assert.Equal(t, ViewBoard, m.currentView)
	require.NotNil(t, cmd)
	assert.Equal(t, ui.StatusMsg(`Added "Plan sprint"`), cmd())

	tasks := b.Snapshot().Tasks
	require.Len(t, tasks, 1)
	assert.Equal(t, alice.ID, tasks[0].MemberID)

	_, cmd = update(t, m, taskform.SubmitMsg{MemberID: "ghost", Title: "Lost"})
	assert.True(t, strings.HasPrefix(string(cmd().(ui.StatusMsg)), "Error: "))
	assert.Len(t, b.Snapshot().Tasks, 1)
}

func TestSubmittedEditUpdatesTask(t *testing.T) {
	b := testutil.NewTestBoard(t, "Alice", "Bob")
	s := b.Snapshot()
	task, err := b.AddTask(s.Members[0].ID, "Draft", "", nil)
	require.NoError(t, err)
	m := New(b, Options{})

	_, cmd := update(t, m, taskform.SubmitMsg{
		TaskID:   task.ID,
		MemberID: s.Members[1].ID,
		Title:    "Final",
		TagIDs:   []string{},
	})
	assert.Equal(t, ui.StatusMsg(`Saved "Final"`), cmd())

	got, ok := b.Task(task.ID)
	require.True(t, ok)
	assert.Equal(t, "Final", got.Title)
	assert.Equal(t, s.Members[1].ID, got.MemberID)
}

func TestMemberFormMessages(t *testing.T) {
	b := testutil.NewTestBoard(t, "Alice")
	alice := b.Snapshot().Members[0]
	_, err := b.AddTask(alice.ID, "a", "", nil)
	require.NoError(t, err)
	m := New(b, Options{})

	_, cmd := update(t, m, memberform.SubmitMsg{Name: "Bob"})
	assert.Equal(t, ui.StatusMsg("Added Bob"), cmd())

	_, cmd = update(t, m, memberform.SubmitMsg{MemberID: alice.ID, Name: "Alicia"})
	assert.Equal(t, ui.StatusMsg("Renamed to Alicia"), cmd())

	_, cmd = update(t, m, memberform.DeleteMsg{MemberID: alice.ID})
	assert.Equal(t, ui.StatusMsg("Removed Alicia"), cmd())

	s := b.Snapshot()
	require.Len(t, s.Members, 1)
	assert.Equal(t, "Bob", s.Members[0].Name)
	assert.Empty(t, s.Tasks)

	_, cmd = update(t, m, memberform.DeleteMsg{MemberID: alice.ID})
	assert.Nil(t, cmd())
}

func TestExportThenImportRestoresBoard(t *testing.T) {
	b := testutil.NewTestBoard(t, "Alice")
	b.AddTag("bug", "#ff0000")
	path := filepath.Join(t.TempDir(), "board.json")
	m := New(b, Options{})
	saved := b.Snapshot()

	_, cmd := update(t, m, command.CommandMsg("export "+path))
	require.NotNil(t, cmd)
	assert.Equal(t, ui.StatusMsg("Exported to "+path), cmd())

	b.AddMember("Bob")
	require.Len(t, b.Snapshot().Members, 2)

	_, cmd = update(t, m, command.CommandMsg("import "+path))
	msg := cmd().(ui.StatusMsg)
	assert.Contains(t, string(msg), "Imported 1 members, 1 tags, 0 tasks")
	assert.Equal(t, saved, b.Snapshot())
}

func TestImportMalformedFileLeavesBoard(t *testing.T) {
	b := testutil.NewTestBoard(t, "Alice")
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"members": []}`), 0o644))
	m := New(b, Options{})
	before := b.Snapshot()

	_, cmd := update(t, m, command.CommandMsg("import "+path))
	msg := cmd().(ui.StatusMsg)
	assert.True(t, strings.HasPrefix(string(msg), "Import failed: "))
	assert.Equal(t, before, b.Snapshot())
}

func TestDefaultExportPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "default.json")
	m := New(testutil.NewTestBoard(t, "Alice"), Options{ExportPath: path})

	_, cmd := update(t, m, command.CommandMsg("export"))
	assert.Equal(t, ui.StatusMsg("Exported to "+path), cmd())
	assert.FileExists(t, path)
}

func TestUnknownCommandReportsError(t *testing.T) {
	m := New(testutil.NewTestBoard(t), Options{})
	m.open(ViewCommand)

	m, cmd := update(t, m, command.CommandMsg("sync"))
	assert.Nil(t, cmd)
	assert.Equal(t, ViewBoard, m.currentView)
	assert.Equal(t, "unknown command: sync", m.status)
	assert.Equal(t, "unknown command: sync", m.keyHints())
}

func TestCommandsOpenViews(t *testing.T) {
	m := New(testutil.NewTestBoard(t), Options{})

	next, _ := update(t, m, command.CommandMsg("tags"))
	assert.Equal(t, ViewTags, next.currentView)

	next, _ = update(t, m, command.CommandMsg("member"))
	assert.Equal(t, ViewMemberForm, next.currentView)

	next, _ = update(t, m, command.CommandMsg("help"))
	assert.Equal(t, ViewHelp, next.currentView)

	_, cmd := update(t, m, command.CommandMsg("quit"))
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestHelpToggle(t *testing.T) {
	m := New(testutil.NewTestBoard(t), Options{})

	m, _ = update(t, m, press("?"))
	assert.Equal(t, ViewHelp, m.currentView)

	m, _ = update(t, m, press("?"))
	assert.Equal(t, ViewBoard, m.currentView)
}

func TestCommandPaletteOpensAndCancels(t *testing.T) {
	m := New(testutil.NewTestBoard(t), Options{})

	m, _ = update(t, m, press(":"))
	assert.Equal(t, ViewCommand, m.currentView)

	m, _ = update(t, m, command.CancelMsg{})
	assert.Equal(t, ViewBoard, m.currentView)
}

func TestQuitKey(t *testing.T) {
	m := New(testutil.NewTestBoard(t), Options{})

	_, cmd := update(t, m, press("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}
