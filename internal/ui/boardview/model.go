package boardview

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/teamboard/internal/board"
	"github.com/nhle/teamboard/internal/keys"
	"github.com/nhle/teamboard/internal/model"
	"github.com/nhle/teamboard/internal/theme"
	"github.com/nhle/teamboard/internal/ui"
)

// TickMsg refreshes the elapsed time shown on cards.
type TickMsg time.Time

// Model is the swimlane board view. The cursor follows a member and a task
// by ID, so it stays on the same card when the board is reordered.
type Model struct {
	board  *board.Board
	keys   *keys.KeyMap
	snap   model.Snapshot
	lanes  []board.Lane
	filter []string

	laneIdx int
	cardIdx int
	laneID  string
	cardID  string

	now    time.Time
	tick   time.Duration
	width  int
	height int
}

// New creates a board view drawing b.
func New(b *board.Board, k *keys.KeyMap, tick time.Duration, width, height int) Model {
	if tick <= 0 {
		tick = time.Second
	}
	m := Model{
		board:  b,
		keys:   k,
		now:    time.Now(),
		tick:   tick,
		width:  width,
		height: height,
	}
	m.Refresh(b.Snapshot())
	return m
}

// Init starts the elapsed-time ticker.
func (m Model) Init() tea.Cmd {
	return m.scheduleTick()
}

func (m Model) scheduleTick() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Refresh replaces the snapshot being drawn. Filter entries for deleted
// tags are dropped.
func (m *Model) Refresh(snap model.Snapshot) {
	m.snap = snap
	m.filter = pruneFilter(m.filter, snap.Tags)
	m.lanes = board.Swimlanes(snap, m.filter)
	m.restoreCursor()
}

// Update handles messages for the board view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		m.now = time.Time(msg)
		return m, m.scheduleTick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		m.focusLane(m.laneIdx - 1)
	case key.Matches(msg, m.keys.Right):
		m.focusLane(m.laneIdx + 1)
	case key.Matches(msg, m.keys.Down):
		m.focusCard(m.cardIdx + 1)
	case key.Matches(msg, m.keys.Up):
		m.focusCard(m.cardIdx - 1)

	case key.Matches(msg, m.keys.LaneLeft):
		return m, m.moveLane(-1)
	case key.Matches(msg, m.keys.LaneRight):
		return m, m.moveLane(1)
	case key.Matches(msg, m.keys.CardUp):
		return m, m.moveCard(-1)
	case key.Matches(msg, m.keys.CardDown):
		return m, m.moveCard(1)

	case key.Matches(msg, m.keys.ToggleDone):
		return m, m.toggleSelected()
	case key.Matches(msg, m.keys.DeleteTask):
		return m, m.deleteSelected()

	case key.Matches(msg, m.keys.FilterTag):
		m.toggleFilter(int(msg.String()[0] - '1'))
	case key.Matches(msg, m.keys.ClearFilter):
		m.filter = nil
		m.Refresh(m.snap)
	}
	return m, nil
}

// SelectedMember returns the member whose lane holds the cursor.
func (m Model) SelectedMember() (model.Member, bool) {
	if m.laneIdx >= len(m.lanes) {
		return model.Member{}, false
	}
	return m.lanes[m.laneIdx].Member, true
}

// SelectedTask returns the card under the cursor.
func (m Model) SelectedTask() (model.Task, bool) {
	if len(m.lanes) == 0 {
		return model.Task{}, false
	}
	cards := m.cards()
	if m.cardIdx >= len(cards) {
		return model.Task{}, false
	}
	return cards[m.cardIdx], true
}

// Filter returns the selected tag IDs.
func (m Model) Filter() []string {
	return m.filter
}

// FilterSummary describes the active tag filter, or "" when none is set.
func (m Model) FilterSummary() string {
	if len(m.filter) == 0 {
		return ""
	}
	tags := board.ResolveTags(m.snap.Tags, m.filter)
	names := make([]string, len(tags))
	for i, t := range tags {
		names[i] = t.Name
	}
	return "filter: " + strings.Join(names, ", ")
}

// ClearFilter removes every tag from the filter.
func (m *Model) ClearFilter() {
	m.filter = nil
	m.Refresh(m.snap)
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) toggleFilter(n int) {
	if n < 0 || n >= len(m.snap.Tags) {
		return
	}
	id := m.snap.Tags[n].ID
	for i, f := range m.filter {
		if f == id {
			m.filter = append(m.filter[:i:i], m.filter[i+1:]...)
			m.Refresh(m.snap)
			return
		}
	}
	m.filter = append(m.filter, id)
	m.Refresh(m.snap)
}

func (m Model) cards() []model.Task {
	lane := m.lanes[m.laneIdx]
	out := make([]model.Task, 0, len(lane.Todo)+len(lane.Done))
	out = append(out, lane.Todo...)
	return append(out, lane.Done...)
}

func (m *Model) focusLane(i int) {
	if len(m.lanes) == 0 {
		return
	}
	m.laneIdx = clamp(i, 0, len(m.lanes)-1)
	m.cardIdx = clamp(m.cardIdx, 0, len(m.cards())-1)
	m.syncIDs()
}

func (m *Model) focusCard(i int) {
	if len(m.lanes) == 0 {
		return
	}
	m.cardIdx = clamp(i, 0, len(m.cards())-1)
	m.syncIDs()
}

func (m *Model) restoreCursor() {
	if len(m.lanes) == 0 {
		m.laneIdx, m.cardIdx = 0, 0
		m.laneID, m.cardID = "", ""
		return
	}

	m.laneIdx = clamp(m.laneIdx, 0, len(m.lanes)-1)
	for i, l := range m.lanes {
		if l.Member.ID == m.laneID {
			m.laneIdx = i
			break
		}
	}

	cards := m.cards()
	m.cardIdx = clamp(m.cardIdx, 0, len(cards)-1)
	for i, c := range cards {
		if c.ID == m.cardID {
			m.cardIdx = i
			break
		}
	}
	m.syncIDs()
}

func (m *Model) syncIDs() {
	m.laneID = m.lanes[m.laneIdx].Member.ID
	m.cardID = ""
	if cards := m.cards(); m.cardIdx < len(cards) {
		m.cardID = cards[m.cardIdx].ID
	}
}

func (m Model) moveLane(delta int) tea.Cmd {
	member, ok := m.SelectedMember()
	if !ok {
		return nil
	}
	ids := make([]string, len(m.snap.Members))
	for i, mem := range m.snap.Members {
		ids[i] = mem.ID
	}
	to, ok := moveTarget(ids, indexOf(ids, member.ID), delta)
	if !ok {
		return nil
	}

	b := m.board
	return func() tea.Msg {
		b.MoveSwimlane(member.ID, to)
		return nil
	}
}

// moveCard shifts the selected card within its member and status. The
// neighbours are taken from the unfiltered partition.
func (m Model) moveCard(delta int) tea.Cmd {
	task, ok := m.SelectedTask()
	if !ok {
		return nil
	}
	part := board.Partition(m.snap.Tasks, task.MemberID, task.Status)
	ids := make([]string, len(part))
	for i, t := range part {
		ids[i] = t.ID
	}
	to, ok := moveTarget(ids, indexOf(ids, task.ID), delta)
	if !ok {
		return nil
	}

	b := m.board
	return func() tea.Msg {
		b.MoveTaskInSwimlane(task.ID, to)
		return nil
	}
}

func (m Model) toggleSelected() tea.Cmd {
	task, ok := m.SelectedTask()
	if !ok {
		return nil
	}
	b := m.board
	return func() tea.Msg {
		b.ToggleTask(task.ID)
		return nil
	}
}

func (m Model) deleteSelected() tea.Cmd {
	task, ok := m.SelectedTask()
	if !ok {
		return nil
	}
	b := m.board
	return func() tea.Msg {
		if !b.DeleteTask(task.ID) {
			return nil
		}
		return ui.StatusMsg(fmt.Sprintf("Deleted %q", task.Title))
	}
}

// moveTarget returns the ID the item at i must be placed before to shift it
// by delta (-1 or +1). An empty ID means the end of the list.
func moveTarget(ids []string, i, delta int) (string, bool) {
	if i < 0 || i >= len(ids) {
		return "", false
	}
	switch {
	case delta < 0:
		if i == 0 {
			return "", false
		}
		return ids[i-1], true
	case delta > 0:
		if i == len(ids)-1 {
			return "", false
		}
		if i+2 == len(ids) {
			return "", true
		}
		return ids[i+2], true
	}
	return "", false
}

func pruneFilter(filter []string, tags []model.Tag) []string {
	if len(filter) == 0 {
		return filter
	}
	out := make([]string, 0, len(filter))
	for _, id := range filter {
		for _, t := range tags {
			if t.ID == id {
				out = append(out, id)
				break
			}
		}
	}
	return out
}

func indexOf(ids []string, want string) int {
	for i, id := range ids {
		if id == want {
			return i
		}
	}
	return -1
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// View renders the visible swimlanes side by side.
func (m Model) View() string {
	if len(m.lanes) == 0 {
		return lipgloss.NewStyle().Padding(1, 2).Render(
			theme.HelpStyle.Render("No members yet. Press 'm' to add one."),
		)
	}

	visible, laneWidth := ui.LaneColumns(m.width, len(m.lanes))
	start, end := ui.LaneWindow(len(m.lanes), visible, m.laneIdx)

	cols := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		cols = append(cols, m.renderLane(i, laneWidth))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (m Model) renderLane(i, width int) string {
	lane := m.lanes[i]
	focused := i == m.laneIdx
	inner := width - 4
	if inner < 10 {
		inner = 10
	}

	var b strings.Builder
	title := fmt.Sprintf("%s (%d)", lane.Member.Name, len(lane.Todo)+len(lane.Done))
	b.WriteString(theme.LaneTitleStyle.Render(title))
	b.WriteString("\n\n")

	b.WriteString(theme.StatusStyle(string(model.StatusTodo)).Render("To do"))
	b.WriteString("\n")
	m.renderCards(&b, lane.Todo, 0, focused, inner)

	b.WriteString("\n")
	b.WriteString(theme.StatusStyle(string(model.StatusDone)).Render("Done"))
	b.WriteString("\n")
	m.renderCards(&b, lane.Done, len(lane.Todo), focused, inner)

	style := theme.LaneStyle
	if focused {
		style = theme.FocusedLaneStyle
	}
	style = style.Width(width - 2)
	if m.height > 2 {
		style = style.Height(m.height - 2)
	}
	return style.Render(b.String())
}

func (m Model) renderCards(b *strings.Builder, tasks []model.Task, offset int, focused bool, width int) {
	if len(tasks) == 0 {
		b.WriteString(theme.HelpStyle.Render("  empty"))
		b.WriteString("\n")
		return
	}
	for j, t := range tasks {
		selected := focused && offset+j == m.cardIdx
		b.WriteString(m.renderCard(t, selected, width))
		b.WriteString("\n")
	}
}

func (m Model) renderCard(t model.Task, selected bool, width int) string {
	mark := "[ ]"
	if t.IsDone() {
		mark = "[x]"
	}
	title := mark + " " + t.Title
	if t.IsDone() && !selected {
		title = theme.DimmedStyle.Render(title)
	}

	lines := []string{title}
	if tags := board.ResolveTags(m.snap.Tags, t.TagIDs); len(tags) > 0 {
		chips := make([]string, len(tags))
		for i, tag := range tags {
			chips[i] = theme.TagStyle(tag.Color).Render("#" + tag.Name)
		}
		lines = append(lines, strings.Join(chips, " "))
	}
	lines = append(lines, theme.HelpStyle.Render(
		"⏱ "+board.FormatDuration(board.Elapsed(t, m.now)),
	))

	style := theme.CardStyle
	if selected {
		style = theme.SelectedCardStyle
	}
	return style.Width(width).Render(strings.Join(lines, "\n"))
}
