package tagmgr

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/teamboard/internal/board"
	"github.com/nhle/teamboard/internal/keys"
	"github.com/nhle/teamboard/internal/model"
	"github.com/nhle/teamboard/internal/theme"
)

// CloseMsg signals the parent to close the tag view.
type CloseMsg struct{}

type tagMode int

const (
	modeList tagMode = iota
	modeForm
	modeConfirmDelete
)

type formBindings struct {
	name    string
	color   string
	confirm bool
}

type tagSavedMsg struct{ name string }
type tagDeletedMsg struct{ name string }

// Model is the Bubble Tea model for tag management.
type Model struct {
	mode        tagMode
	board       *board.Board
	keys        *keys.KeyMap
	tags        []model.Tag
	usage       map[string]int
	selectedIdx int
	editingID   string
	isNew       bool
	form        *huh.Form
	confirmForm *huh.Form
	fb          *formBindings
	statusMsg   string
	width       int
	height      int
}

// New creates a new tag manager model.
func New(b *board.Board, k *keys.KeyMap, width, height int) Model {
	return Model{
		mode:  modeList,
		board: b,
		keys:  k,
		fb:    &formBindings{},
		width: width, height: height,
	}
}

// Open resets the view to the tag list drawn from snap.
func (m *Model) Open(snap model.Snapshot) {
	m.mode = modeList
	m.statusMsg = ""
	m.Refresh(snap)
}

// Refresh redraws the list from snap, counting the tasks that use each tag.
func (m *Model) Refresh(snap model.Snapshot) {
	m.tags = snap.Tags
	m.usage = make(map[string]int, len(snap.Tags))
	for _, t := range snap.Tasks {
		for _, id := range t.TagIDs {
			m.usage[id]++
		}
	}
	if m.selectedIdx >= len(m.tags) {
		m.selectedIdx = len(m.tags) - 1
	}
	if m.selectedIdx < 0 {
		m.selectedIdx = 0
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tagSavedMsg:
		m.statusMsg = fmt.Sprintf("Tag %q saved", msg.name)
		m.mode = modeList
		m.Refresh(m.board.Snapshot())
		return m, nil

	case tagDeletedMsg:
		m.statusMsg = fmt.Sprintf("Tag %q deleted", msg.name)
		m.mode = modeList
		m.Refresh(m.board.Snapshot())
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateActiveForm(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch m.mode {
	case modeList:
		return m.handleListKey(msg)
	case modeForm:
		return m.updateForm(msg)
	case modeConfirmDelete:
		return m.updateConfirm(msg)
	}
	return m, nil
}

func (m Model) handleListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		return m, func() tea.Msg { return CloseMsg{} }

	case key.Matches(msg, m.keys.Down):
		if len(m.tags) > 0 {
			m.selectedIdx = (m.selectedIdx + 1) % len(m.tags)
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if len(m.tags) > 0 {
			m.selectedIdx--
			if m.selectedIdx < 0 {
				m.selectedIdx = len(m.tags) - 1
			}
		}
		return m, nil

	case msg.String() == "n":
		m.isNew = true
		m.editingID = ""
		m.fb.name = ""
		m.fb.color = theme.DefaultTagColor
		m.form = m.buildForm()
		m.mode = modeForm
		return m, m.form.Init()

	case msg.String() == "e":
		if len(m.tags) == 0 {
			return m, nil
		}
		t := m.tags[m.selectedIdx]
		m.isNew = false
		m.editingID = t.ID
		m.fb.name = t.Name
		m.fb.color = t.Color
		m.form = m.buildForm()
		m.mode = modeForm
		return m, m.form.Init()

	case msg.String() == "d":
		if len(m.tags) == 0 {
			return m, nil
		}
		m.fb.confirm = false
		m.confirmForm = m.buildConfirmForm()
		m.mode = modeConfirmDelete
		return m, m.confirmForm.Init()
	}
	return m, nil
}

func (m Model) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Placeholder("Tag name").
				Value(&m.fb.name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Color").
				Placeholder(theme.DefaultTagColor).
				Value(&m.fb.color),
		),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

func (m Model) buildConfirmForm() *huh.Form {
	t := m.tags[m.selectedIdx]
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete tag %q?", t.Name)).
				Description(fmt.Sprintf("%d task(s) keep a reference to it until edited.", m.usage[t.ID])).
				Affirmative("Yes, delete").
				Negative("Cancel").
				Value(&m.fb.confirm),
		),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

func (m Model) updateForm(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}
	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}
	if m.form.State == huh.StateCompleted {
		return m, m.saveTag()
	}
	if m.form.State == huh.StateAborted {
		m.mode = modeList
		return m, nil
	}
	return m, cmd
}

func (m Model) updateConfirm(msg tea.Msg) (Model, tea.Cmd) {
	if m.confirmForm == nil {
		return m, nil
	}
	mdl, cmd := m.confirmForm.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.confirmForm = f
	}
	if m.confirmForm.State == huh.StateCompleted {
		if m.fb.confirm {
			return m, m.deleteTag(m.tags[m.selectedIdx])
		}
		m.mode = modeList
		return m, nil
	}
	if m.confirmForm.State == huh.StateAborted {
		m.mode = modeList
		return m, nil
	}
	return m, cmd
}

func (m Model) updateActiveForm(msg tea.Msg) (Model, tea.Cmd) {
	switch m.mode {
	case modeForm:
		return m.updateForm(msg)
	case modeConfirmDelete:
		return m.updateConfirm(msg)
	}
	return m, nil
}

// View renders the tag manager.
func (m Model) View() string {
	switch m.mode {
	case modeForm:
		return m.viewForm(m.form)
	case modeConfirmDelete:
		return m.viewForm(m.confirmForm)
	default:
		return m.viewList()
	}
}

func (m Model) viewList() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorWhite).MarginBottom(1)
	b.WriteString(titleStyle.Render("Tags"))
	b.WriteString("\n\n")

	if len(m.tags) == 0 {
		emptyStyle := lipgloss.NewStyle().Foreground(theme.ColorGray).Italic(true)
		b.WriteString(emptyStyle.Render("No tags yet. Press 'n' to create one."))
	} else {
		for i, t := range m.tags {
			chip := theme.TagStyle(t.Color).Render("●")
			label := fmt.Sprintf("%d  %s %s  (%d)", i+1, chip, t.Name, m.usage[t.ID])

			if i == m.selectedIdx {
				b.WriteString(theme.SelectedCardStyle.Render(label))
			} else {
				b.WriteString(theme.CardStyle.Render(label))
			}
			b.WriteString("\n")
		}
	}

	if m.statusMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.NoticeStyle.Render(m.statusMsg))
	}

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.ColorGray).Render(
		"n new | e edit | d delete | esc back",
	))

	return lipgloss.NewStyle().Padding(1, 2).Width(m.width).Height(m.height).Render(b.String())
}

func (m Model) viewForm(f *huh.Form) string {
	if f == nil {
		return ""
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(f.View())
}

// SetSize updates dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
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

func (m Model) saveTag() tea.Cmd {
	b := m.board
	name := m.fb.name
	color := strings.TrimSpace(m.fb.color)
	editID := m.editingID
	isNew := m.isNew
	return func() tea.Msg {
		if isNew {
			b.AddTag(name, color)
			return tagSavedMsg{name: name}
		}
		b.UpdateTag(editID, model.TagPatch{Name: &name, Color: &color})
		return tagSavedMsg{name: name}
	}
}

func (m Model) deleteTag(t model.Tag) tea.Cmd {
	b := m.board
	return func() tea.Msg {
		b.DeleteTag(t.ID)
		return tagDeletedMsg{name: t.Name}
	}
}
