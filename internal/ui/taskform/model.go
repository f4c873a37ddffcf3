package taskform

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/teamboard/internal/model"
	"github.com/nhle/teamboard/internal/theme"
)

// SubmitMsg is dispatched when the form is completed. TaskID is empty for
// a new task.
type SubmitMsg struct {
	TaskID      string
	MemberID    string
	Title       string
	Description string
	TagIDs      []string
}

// CancelMsg is dispatched when the user cancels the form.
type CancelMsg struct{}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	title       string
	description string
	memberID    string
	tagIDs      []string
}

// Model is the Bubble Tea model for the task create/edit form.
type Model struct {
	form     *huh.Form
	fb       *formBindings
	editMode bool
	editID   string
	members  []model.Member
	tags     []model.Tag
	width    int
	height   int
}

// New creates a new task form model.
func New(width, height int) Model {
	return Model{
		fb:     &formBindings{},
		width:  width,
		height: height,
	}
}

// StartCreate initializes the form for a new task in memberID's lane.
func (m *Model) StartCreate(memberID string, snap model.Snapshot) tea.Cmd {
	m.editMode = false
	m.editID = ""
	m.members = snap.Members
	m.tags = snap.Tags
	m.fb.title = ""
	m.fb.description = ""
	m.fb.memberID = memberID
	m.fb.tagIDs = nil
	m.form = m.buildForm()
	return m.form.Init()
}

// StartEdit initializes the form for editing task.
func (m *Model) StartEdit(task model.Task, snap model.Snapshot) tea.Cmd {
	m.editMode = true
	m.editID = task.ID
	m.members = snap.Members
	m.tags = snap.Tags
	m.fb.title = task.Title
	m.fb.description = task.Description
	m.fb.memberID = task.MemberID
	m.fb.tagIDs = append([]string(nil), task.TagIDs...)
	m.form = m.buildForm()
	return m.form.Init()
}

// Editing reports whether the form edits an existing task.
func (m Model) Editing() bool {
	return m.editMode
}

// Update handles messages for the task form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		return m, m.handleSubmit()
	}
	if m.form.State == huh.StateAborted {
		return m, func() tea.Msg { return CancelMsg{} }
	}

	return m, cmd
}

// View renders the task form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	titleText := "New Task"
	if m.editMode {
		titleText = "Edit Task"
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	content := titleStyle.Render(titleText) + "\n" + m.form.View()

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(content)
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) buildForm() *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Title("Title").
			Placeholder("What needs to be done?").
			Value(&m.fb.title).
			Validate(validateRequired("Title")),
		huh.NewText().
			Title("Description").
			Placeholder("Optional details...").
			Value(&m.fb.description),
		m.memberField(),
	}
	if tagField := m.tagField(); tagField != nil {
		fields = append(fields, tagField)
	}

	return huh.NewForm(
		huh.NewGroup(fields...),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

func (m *Model) memberField() huh.Field {
	opts := make([]huh.Option[string], len(m.members))
	for i, mem := range m.members {
		opts[i] = huh.NewOption(mem.Name, mem.ID)
	}
	return huh.NewSelect[string]().
		Title("Member").
		Options(opts...).
		Value(&m.fb.memberID)
}

func (m *Model) tagField() huh.Field {
	if len(m.tags) == 0 {
		return nil
	}
	opts := make([]huh.Option[string], len(m.tags))
	for i, t := range m.tags {
		opts[i] = huh.NewOption(t.Name, t.ID)
	}
	return huh.NewMultiSelect[string]().
		Title("Tags").
		Options(opts...).
		Value(&m.fb.tagIDs)
}

func (m Model) handleSubmit() tea.Cmd {
	out := SubmitMsg{
		MemberID:    m.fb.memberID,
		Title:       m.fb.title,
		Description: m.fb.description,
		TagIDs:      append([]string{}, m.fb.tagIDs...),
	}
	if m.editMode {
		out.TaskID = m.editID
	}
	return func() tea.Msg { return out }
}

func (m Model) formWidth() int {
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	if w > 100 {
		w = 100
	}
	return w
}

func (m Model) formHeight() int {
	h := m.height - 4
	if h < 10 {
		h = 10
	}
	return h
}

func validateRequired(fieldName string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", fieldName)
		}
		return nil
	}
}
