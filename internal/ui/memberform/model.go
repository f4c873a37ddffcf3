package memberform

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/teamboard/internal/model"
	"github.com/nhle/teamboard/internal/theme"
)

// SubmitMsg is dispatched with the entered name. MemberID is empty when a
// member is being added.
type SubmitMsg struct {
	MemberID string
	Name     string
}

// DeleteMsg is dispatched when removing a member has been confirmed.
type DeleteMsg struct {
	MemberID string
}

// CancelMsg is dispatched when the user backs out of the form.
type CancelMsg struct{}

type mode int

const (
	modeCreate mode = iota
	modeRename
	modeConfirmDelete
)

type formBindings struct {
	name    string
	confirm bool
}

// Model is the member add/rename/delete form.
type Model struct {
	mode   mode
	form   *huh.Form
	fb     *formBindings
	member model.Member
	width  int
	height int
}

// New creates a member form model.
func New(width, height int) Model {
	return Model{
		fb:     &formBindings{},
		width:  width,
		height: height,
	}
}

// StartCreate prepares the form for a new member.
func (m *Model) StartCreate() tea.Cmd {
	m.mode = modeCreate
	m.member = model.Member{}
	m.fb.name = ""
	m.form = m.buildNameForm()
	return m.form.Init()
}

// StartRename prepares the form to rename member.
func (m *Model) StartRename(member model.Member) tea.Cmd {
	m.mode = modeRename
	m.member = member
	m.fb.name = member.Name
	m.form = m.buildNameForm()
	return m.form.Init()
}

// StartDelete asks for confirmation before member and its taskCount tasks
// are removed.
func (m *Model) StartDelete(member model.Member, taskCount int) tea.Cmd {
	m.mode = modeConfirmDelete
	m.member = member
	m.fb.confirm = false
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Remove %s?", member.Name)).
				Description(fmt.Sprintf("Their %d task(s) will be deleted too.", taskCount)).
				Affirmative("Yes, remove").
				Negative("Cancel").
				Value(&m.fb.confirm),
		),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
	return m.form.Init()
}

// Update handles messages for the member form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		return m, m.result()
	case huh.StateAborted:
		return m, func() tea.Msg { return CancelMsg{} }
	}
	return m, cmd
}

func (m Model) result() tea.Cmd {
	switch m.mode {
	case modeConfirmDelete:
		if !m.fb.confirm {
			return func() tea.Msg { return CancelMsg{} }
		}
		id := m.member.ID
		return func() tea.Msg { return DeleteMsg{MemberID: id} }
	default:
		out := SubmitMsg{MemberID: m.member.ID, Name: m.fb.name}
		return func() tea.Msg { return out }
	}
}

// View renders the form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	var title string
	switch m.mode {
	case modeCreate:
		title = "New Member"
	case modeRename:
		title = "Rename Member"
	default:
		title = "Remove Member"
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(titleStyle.Render(title) + "\n" + m.form.View())
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) buildNameForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Placeholder("Team member name").
				Value(&m.fb.name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
		),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

func (m Model) formWidth() int {
	w := m.width - 4
	if w < 30 {
		w = 30
	}
	if w > 60 {
		w = 60
	}
	return w
}

func (m Model) formHeight() int {
	h := m.height - 4
	if h < 6 {
		h = 6
	}
	return h
}
