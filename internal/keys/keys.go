package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the global keybindings for the application.
type KeyMap struct {
	// Navigation
	Left  key.Binding
	Right key.Binding
	Down  key.Binding
	Up    key.Binding

	// Reordering
	LaneLeft  key.Binding
	LaneRight key.Binding
	CardDown  key.Binding
	CardUp    key.Binding

	// Cards
	NewTask    key.Binding
	EditTask   key.Binding
	DeleteTask key.Binding
	ToggleDone key.Binding

	// Members
	NewMember    key.Binding
	RenameMember key.Binding
	DeleteMember key.Binding

	// Tags
	Tags        key.Binding
	FilterTag   key.Binding
	ClearFilter key.Binding

	// Back / Quit
	Back key.Binding
	Quit key.Binding

	// Command palette
	Command key.Binding

	// Help toggle
	Help key.Binding
}

// DefaultKeyMap returns the default set of keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "prev lane"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "next lane"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		LaneLeft: key.NewBinding(
			key.WithKeys("H", "shift+left"),
			key.WithHelp("H", "move lane left"),
		),
		LaneRight: key.NewBinding(
			key.WithKeys("L", "shift+right"),
			key.WithHelp("L", "move lane right"),
		),
		CardDown: key.NewBinding(
			key.WithKeys("J", "shift+down"),
			key.WithHelp("J", "move card down"),
		),
		CardUp: key.NewBinding(
			key.WithKeys("K", "shift+up"),
			key.WithHelp("K", "move card up"),
		),
		NewTask: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new task"),
		),
		EditTask: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e", "edit task"),
		),
		DeleteTask: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete task"),
		),
		ToggleDone: key.NewBinding(
			key.WithKeys("x", " ", "space"),
			key.WithHelp("x", "toggle done"),
		),
		NewMember: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "new member"),
		),
		RenameMember: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rename member"),
		),
		DeleteMember: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "delete member"),
		),
		Tags: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "manage tags"),
		),
		FilterTag: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "toggle tag filter"),
		),
		ClearFilter: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "clear filter"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Command: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "command palette"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}

// ShortHelp returns the most essential keybindings for the compact help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Left, k.Right, k.Up, k.Down,
		k.NewTask, k.ToggleDone, k.Quit, k.Help,
	}
}

// FullHelp returns all keybindings grouped by category for the expanded
// help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down, k.Back, k.Quit},
		{k.LaneLeft, k.LaneRight, k.CardUp, k.CardDown},
		{k.NewTask, k.EditTask, k.DeleteTask, k.ToggleDone},
		{k.NewMember, k.RenameMember, k.DeleteMember},
		{k.Tags, k.FilterTag, k.ClearFilter, k.Command, k.Help},
	}
}
