package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/teamboard/internal/model"
	"github.com/nhle/teamboard/internal/transfer"
	"github.com/nhle/teamboard/internal/ui"
	"github.com/nhle/teamboard/internal/ui/command"
	"github.com/nhle/teamboard/internal/ui/memberform"
	"github.com/nhle/teamboard/internal/ui/taskform"
)

// executeCommand handles a line from the command palette.
func (m *Model) executeCommand(line string) tea.Cmd {
	c, err := command.Parse(line)
	if err != nil {
		m.status = err.Error()
		return nil
	}

	switch c.Name {
	case command.Export:
		return m.exportBoard(m.pathOrDefault(c.Arg))
	case command.Import:
		return m.importBoard(m.pathOrDefault(c.Arg))
	case command.Tags:
		return m.openTags()
	case command.Member:
		m.open(ViewMemberForm)
		return m.memberForm.StartCreate()
	case command.Clear:
		m.boardView.ClearFilter()
		return nil
	case command.Help:
		m.open(ViewHelp)
		return nil
	case command.Quit:
		m.watcher.Stop()
		return tea.Quit
	}
	return nil
}

func (m Model) pathOrDefault(path string) string {
	if path == "" {
		return m.exportPath
	}
	return path
}

// exportBoard writes the current snapshot to path.
func (m Model) exportBoard(path string) tea.Cmd {
	snap := m.board.Snapshot()
	return func() tea.Msg {
		if err := transfer.ExportFile(path, snap); err != nil {
			return ui.StatusMsg(fmt.Sprintf("Export failed: %v", err))
		}
		return ui.StatusMsg("Exported to " + path)
	}
}

// importBoard replaces the board with the document at path. A file that
// cannot be read or lacks members, tags or tasks leaves the board as is.
func (m Model) importBoard(path string) tea.Cmd {
	b := m.board
	return func() tea.Msg {
		snap, err := transfer.ImportFile(path)
		if err != nil {
			return ui.StatusMsg(fmt.Sprintf("Import failed: %v", err))
		}
		b.SetState(snap)
		return ui.StatusMsg(fmt.Sprintf(
			"Imported %d members, %d tags, %d tasks from %s",
			len(snap.Members), len(snap.Tags), len(snap.Tasks), path,
		))
	}
}

func (m Model) saveTask(msg taskform.SubmitMsg) tea.Cmd {
	b := m.board
	return func() tea.Msg {
		if msg.TaskID == "" {
			task, err := b.AddTask(msg.MemberID, msg.Title, msg.Description, msg.TagIDs)
			if err != nil {
				return ui.StatusMsg(fmt.Sprintf("Error: %v", err))
			}
			return ui.StatusMsg(fmt.Sprintf("Added %q", task.Title))
		}

		patch := model.TaskPatch{
			MemberID:    &msg.MemberID,
			Title:       &msg.Title,
			Description: &msg.Description,
			TagIDs:      &msg.TagIDs,
		}
		if _, err := b.UpdateTask(msg.TaskID, patch); err != nil {
			return ui.StatusMsg(fmt.Sprintf("Error: %v", err))
		}
		return ui.StatusMsg(fmt.Sprintf("Saved %q", msg.Title))
	}
}

func (m Model) saveMember(msg memberform.SubmitMsg) tea.Cmd {
	b := m.board
	return func() tea.Msg {
		if msg.MemberID == "" {
			member := b.AddMember(msg.Name)
			return ui.StatusMsg(fmt.Sprintf("Added %s", member.Name))
		}
		b.UpdateMember(msg.MemberID, model.MemberPatch{Name: &msg.Name})
		return ui.StatusMsg(fmt.Sprintf("Renamed to %s", msg.Name))
	}
}

func (m Model) deleteMember(id string) tea.Cmd {
	b := m.board
	return func() tea.Msg {
		member, ok := b.Member(id)
		if !ok || !b.DeleteMember(id) {
			return nil
		}
		return ui.StatusMsg(fmt.Sprintf("Removed %s", member.Name))
	}
}
