package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/teamboard/internal/theme"
)

// Command names understood by the palette.
const (
	Export = "export"
	Import = "import"
	Tags   = "tags"
	Member = "member"
	Clear  = "clear"
	Help   = "help"
	Quit   = "quit"
)

// ErrUnknownCommand is returned by Parse for names it does not know.
var ErrUnknownCommand = errors.New("unknown command")

// Usage lists every command with a short description, in display order.
var Usage = [][2]string{
	{"export [path]", "write the board to a JSON file"},
	{"import [path]", "replace the board with a JSON file"},
	{"tags", "manage tags"},
	{"member", "add a team member"},
	{"clear", "clear the tag filter"},
	{"help", "show key bindings"},
	{"quit", "exit"},
}

// Command is a parsed palette entry.
type Command struct {
	Name string
	Arg  string
}

// Parse splits line into a command name and its optional argument. Only
// export and import take an argument, which is the rest of the line.
func Parse(line string) (Command, error) {
	line = strings.TrimSpace(line)
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("%w: empty input", ErrUnknownCommand)
	}

	name := strings.ToLower(fields[0])
	arg := strings.TrimSpace(line[len(fields[0]):])

	switch name {
	case Export, Import:
		return Command{Name: name, Arg: arg}, nil
	case "q":
		name = Quit
	case Tags, Member, Clear, Help, Quit:
	default:
		return Command{}, fmt.Errorf("%w: %s", ErrUnknownCommand, fields[0])
	}
	if arg != "" {
		return Command{}, fmt.Errorf("%s takes no argument", name)
	}
	return Command{Name: name}, nil
}

// CommandMsg is emitted when the user executes a command.
type CommandMsg string

// CancelMsg is emitted when the user dismisses the palette.
type CancelMsg struct{}

// Model is the command palette view.
type Model struct {
	input  textinput.Model
	width  int
	height int
}

// New creates a new command palette model.
func New(width, height int) Model {
	ti := textinput.New()
	ti.Placeholder = "export, import, tags, member, clear, quit..."
	ti.Prompt = ": "
	ti.Focus()
	ti.Width = width - 6

	return Model{
		input:  ti,
		width:  width,
		height: height,
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the command palette.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			cmd := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if cmd != "" {
				return m, func() tea.Msg {
					return CommandMsg(cmd)
				}
			}
			return m, nil
		case "esc":
			m.input.Reset()
			return m, func() tea.Msg { return CancelMsg{} }
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the command palette.
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	title := titleStyle.Render("Command Palette")
	input := m.input.View()

	content := lipgloss.JoinVertical(lipgloss.Left, title, input)

	return theme.PanelStyle.
		Width(m.width - 4).
		Render(content)
}

// SetSize updates the command palette dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = width - 6
}

// Focus gives keyboard focus to the text input.
func (m *Model) Focus() tea.Cmd {
	return m.input.Focus()
}
