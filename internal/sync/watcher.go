// Package sync forwards board changes into the Bubble Tea runtime.
package sync

import (
	gosync "sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/teamboard/internal/board"
	"github.com/nhle/teamboard/internal/model"
)

// ChangeMsg is a tea.Msg sent after the board changed. Snapshot is the
// board state when the message was produced, so bursts of changes
// collapse into one message carrying the latest state.
type ChangeMsg struct {
	Snapshot model.Snapshot
}

// Watcher subscribes to a board and hands change notifications to the
// program one at a time.
type Watcher struct {
	board       *board.Board
	changeCh    chan struct{}
	stopCh      chan struct{}
	unsubscribe func()
	mu          gosync.Mutex
	running     bool
}

// New creates a Watcher for b. Nothing is observed until Start.
func New(b *board.Board) *Watcher {
	return &Watcher{
		board:    b,
		changeCh: make(chan struct{}, 1),
		stopCh:   make(chan struct{}),
	}
}

// Start subscribes to the board and returns a tea.Cmd that waits for the
// first change. It returns nil when the watcher is already running.
func (w *Watcher) Start() tea.Cmd {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return nil
	}
	w.running = true
	w.unsubscribe = w.board.Subscribe(w.notify)

	return w.waitForChange()
}

// Stop unsubscribes from the board and releases any waiting command.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return
	}
	w.unsubscribe()
	close(w.stopCh)
	w.running = false
}

// notify runs on the goroutine that changed the board. It never blocks:
// a pending notification already covers this change.
func (w *Watcher) notify(model.Snapshot) {
	select {
	case w.changeCh <- struct{}{}:
	default:
	}
}

func (w *Watcher) waitForChange() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-w.changeCh:
			return ChangeMsg{Snapshot: w.board.Snapshot()}
		case <-w.stopCh:
			return nil
		}
	}
}

// WaitForNextChange returns a tea.Cmd that waits for the next change.
// Call it after handling each ChangeMsg to keep listening.
func (w *Watcher) WaitForNextChange() tea.Cmd {
	return w.waitForChange()
}
