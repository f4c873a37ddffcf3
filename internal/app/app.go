// Package app is the root Bubble Tea model: it routes keys and messages
// between the board view, the forms and the overlays, and keeps every view
// in step with the board.
package app

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/teamboard/internal/board"
	"github.com/nhle/teamboard/internal/keys"
	appsync "github.com/nhle/teamboard/internal/sync"
	"github.com/nhle/teamboard/internal/transfer"
	"github.com/nhle/teamboard/internal/ui"
	"github.com/nhle/teamboard/internal/ui/boardview"
	"github.com/nhle/teamboard/internal/ui/command"
	helpview "github.com/nhle/teamboard/internal/ui/help"
	"github.com/nhle/teamboard/internal/ui/memberform"
	"github.com/nhle/teamboard/internal/ui/tagmgr"
	"github.com/nhle/teamboard/internal/ui/taskform"
)

// ViewState represents the current active view in the application.
type ViewState int

const (
	ViewBoard ViewState = iota
	ViewHelp
	ViewCommand
	ViewTaskForm
	ViewMemberForm
	ViewTags
)

// Options configures the root model.
type Options struct {
	// TickInterval is how often open task timers refresh.
	TickInterval time.Duration

	// ExportPath is used by export and import when no path is given.
	ExportPath string
}

// Model is the root Bubble Tea model that manages view routing and
// layout on top of a board.
type Model struct {
	currentView  ViewState
	previousView ViewState
	layout       ui.Layout
	board        *board.Board
	keys         *keys.KeyMap
	exportPath   string
	boardView    boardview.Model
	taskForm     taskform.Model
	memberForm   memberform.Model
	tagView      tagmgr.Model
	helpView     helpview.Model
	commandView  command.Model
	watcher      *appsync.Watcher
	ready        bool
	status       string
}

// New creates the root application model for b.
func New(b *board.Board, opts Options) Model {
	k := keys.DefaultKeyMap()
	if opts.ExportPath == "" {
		opts.ExportPath = transfer.DefaultFileName
	}

	return Model{
		currentView: ViewBoard,
		board:       b,
		keys:        k,
		exportPath:  opts.ExportPath,
		boardView:   boardview.New(b, k, opts.TickInterval, 80, 24),
		taskForm:    taskform.New(80, 24),
		memberForm:  memberform.New(80, 24),
		tagView:     tagmgr.New(b, k, 80, 24),
		helpView:    helpview.New(k, 80, 24),
		commandView: command.New(80, 24),
		watcher:     appsync.New(b),
	}
}

// Init starts the card timers and the board change watcher.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.boardView.Init(),
		m.watcher.Start(),
	)
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		contentWidth := m.layout.ContentWidth()
		contentHeight := m.layout.ContentHeight()
		m.boardView.SetSize(contentWidth, contentHeight)
		m.taskForm.SetSize(contentWidth, contentHeight)
		m.memberForm.SetSize(contentWidth, contentHeight)
		m.tagView.SetSize(contentWidth, contentHeight)
		m.helpView.SetSize(contentWidth, contentHeight)
		m.commandView.SetSize(contentWidth, contentHeight)
		// Forward to active view so huh forms can calculate their layout.
		return m.updateActiveView(msg)

	case appsync.ChangeMsg:
		m.boardView.Refresh(msg.Snapshot)
		m.tagView.Refresh(msg.Snapshot)
		return m, m.watcher.WaitForNextChange()

	case boardview.TickMsg:
		// The ticker keeps running while other views are open.
		var cmd tea.Cmd
		m.boardView, cmd = m.boardView.Update(msg)
		return m, cmd

	case ui.StatusMsg:
		m.status = string(msg)
		return m, nil

	case taskform.SubmitMsg:
		m.currentView = ViewBoard
		return m, m.saveTask(msg)

	case taskform.CancelMsg:
		m.currentView = ViewBoard
		return m, nil

	case memberform.SubmitMsg:
		m.currentView = ViewBoard
		return m, m.saveMember(msg)

	case memberform.DeleteMsg:
		m.currentView = ViewBoard
		return m, m.deleteMember(msg.MemberID)

	case memberform.CancelMsg:
		m.currentView = ViewBoard
		return m, nil

	case tagmgr.CloseMsg:
		m.currentView = ViewBoard
		return m, nil

	case command.CommandMsg:
		m.currentView = m.previousView
		return m, m.executeCommand(string(msg))

	case command.CancelMsg:
		m.currentView = m.previousView
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.watcher.Stop()
			return m, tea.Quit
		}

		switch m.currentView {
		case ViewBoard:
			if handled, cmd := m.handleBoardKey(msg); handled {
				return m, cmd
			}
		case ViewHelp:
			if key.Matches(msg, m.keys.Help, m.keys.Back, m.keys.Quit) {
				m.currentView = m.previousView
				return m, nil
			}
		}
	}

	// Delegate to active sub-view
	return m.updateActiveView(msg)
}

// handleBoardKey handles the keys that open other views from the board.
// Everything else falls through to the board view.
func (m *Model) handleBoardKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.watcher.Stop()
		return true, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.open(ViewHelp)
		return true, nil

	case key.Matches(msg, m.keys.Command):
		m.open(ViewCommand)
		return true, m.commandView.Focus()

	case key.Matches(msg, m.keys.Tags):
		return true, m.openTags()

	case key.Matches(msg, m.keys.NewTask):
		member, ok := m.boardView.SelectedMember()
		if !ok {
			m.status = "Add a member first (m)"
			return true, nil
		}
		m.open(ViewTaskForm)
		return true, m.taskForm.StartCreate(member.ID, m.board.Snapshot())

	case key.Matches(msg, m.keys.EditTask):
		task, ok := m.boardView.SelectedTask()
		if !ok {
			return true, nil
		}
		m.open(ViewTaskForm)
		return true, m.taskForm.StartEdit(task, m.board.Snapshot())

	case key.Matches(msg, m.keys.NewMember):
		m.open(ViewMemberForm)
		return true, m.memberForm.StartCreate()

	case key.Matches(msg, m.keys.RenameMember):
		member, ok := m.boardView.SelectedMember()
		if !ok {
			return true, nil
		}
		m.open(ViewMemberForm)
		return true, m.memberForm.StartRename(member)

	case key.Matches(msg, m.keys.DeleteMember):
		member, ok := m.boardView.SelectedMember()
		if !ok {
			return true, nil
		}
		n := len(board.TasksForMember(m.board.Snapshot().Tasks, member.ID))
		m.open(ViewMemberForm)
		return true, m.memberForm.StartDelete(member, n)
	}
	return false, nil
}

func (m *Model) open(v ViewState) {
	m.previousView = m.currentView
	m.currentView = v
}

func (m *Model) openTags() tea.Cmd {
	m.tagView.Open(m.board.Snapshot())
	m.open(ViewTags)
	return nil
}

// updateActiveView dispatches the message to the currently active view.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.currentView {
	case ViewBoard:
		m.boardView, cmd = m.boardView.Update(msg)
	case ViewHelp:
		m.helpView, cmd = m.helpView.Update(msg)
	case ViewCommand:
		m.commandView, cmd = m.commandView.Update(msg)
	case ViewTaskForm:
		m.taskForm, cmd = m.taskForm.Update(msg)
	case ViewMemberForm:
		m.memberForm, cmd = m.memberForm.Update(msg)
	case ViewTags:
		m.tagView, cmd = m.tagView.Update(msg)
	}

	return m, cmd
}

// View renders the full terminal UI using the layout manager.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := m.layout.RenderHeader("Team Board", m.boardView.FilterSummary())
	content := m.renderContent()
	statusBar := m.layout.RenderStatusBar(m.keyHints())

	return m.layout.RenderWithFrame(header, content, statusBar)
}

// renderContent returns the rendered string for the current active view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewBoard:
		return m.boardView.View()
	case ViewHelp:
		return m.helpView.View()
	case ViewCommand:
		return m.commandView.View()
	case ViewTaskForm:
		return m.taskForm.View()
	case ViewMemberForm:
		return m.memberForm.View()
	case ViewTags:
		return m.tagView.View()
	default:
		return ""
	}
}

// keyHints returns keyboard shortcut hints for the status bar.
func (m Model) keyHints() string {
	switch m.currentView {
	case ViewHelp:
		return "? close help | esc back"
	case ViewCommand:
		return "enter execute | esc back"
	case ViewTaskForm, ViewMemberForm:
		return "enter submit | esc cancel"
	case ViewTags:
		return "n new | e edit | d delete | esc back"
	default:
		if m.status != "" {
			return m.status
		}
		if m.boardView.FilterSummary() != "" {
			return m.boardView.FilterSummary() + " | 0 clear"
		}
		return "q quit | ? help | n new | x done | H/L J/K move | 1-9 filter | : command"
	}
}
