// Package board holds the in-memory team board: members (swimlanes), tags
// and tasks, the operations that keep their ordering and references
// consistent, and the hook that hands every new snapshot to persistence.
package board

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/nhle/teamboard/internal/model"
	"github.com/nhle/teamboard/internal/store"
)

// persistTimeout bounds a single snapshot write.
const persistTimeout = 5 * time.Second

// Storage is the persistence collaborator. store.Store satisfies it.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
}

// Options configures a Board. Zero values select the defaults.
type Options struct {
	// Key is the storage key. Defaults to model.DefaultStorageKey.
	Key string

	// SeedMembers are created when no prior snapshot can be loaded.
	// Defaults to Alice and Bob.
	SeedMembers []string

	Logger log.FieldLogger

	// Now and NewID are the clock and identifier source.
	Now   func() time.Time
	NewID func() string
}

// Listener receives every snapshot produced by a change to the board.
type Listener func(model.Snapshot)

// Board is the observable state container. All methods are safe for
// concurrent use; each mutation is applied, persisted and published as
// one step.
type Board struct {
	mu        sync.Mutex
	state     model.Snapshot
	storage   Storage
	key       string
	logger    log.FieldLogger
	now       func() time.Time
	newID     func() string
	listeners map[int]Listener
	nextSub   int
}

// New creates a board and hydrates it from st. When st is nil, has no
// snapshot under the key, or holds an unreadable one, the board starts
// from the seed members with no tags or tasks.
func New(ctx context.Context, st Storage, opts Options) *Board {
	b := &Board{
		storage:   st,
		key:       opts.Key,
		logger:    opts.Logger,
		now:       opts.Now,
		newID:     opts.NewID,
		listeners: make(map[int]Listener),
	}
	if b.key == "" {
		b.key = model.DefaultStorageKey
	}
	if b.logger == nil {
		b.logger = log.StandardLogger()
	}
	if b.now == nil {
		b.now = time.Now
	}
	if b.newID == nil {
		b.newID = uuid.NewString
	}
	seed := opts.SeedMembers
	if seed == nil {
		seed = []string{"Alice", "Bob"}
	}

	if snap, ok := b.load(ctx); ok {
		b.state = snap
	} else {
		b.state = b.seed(seed)
	}
	return b
}

// load reads the persisted snapshot. Failures are logged, never returned.
func (b *Board) load(ctx context.Context) (model.Snapshot, bool) {
	if b.storage == nil {
		return model.Snapshot{}, false
	}
	logger := b.logger.WithField("key", b.key)

	data, err := b.storage.Get(ctx, b.key)
	if errors.Is(err, store.ErrNotFound) {
		logger.Info("no saved board, starting from seed")
		return model.Snapshot{}, false
	}
	if err != nil {
		logger.WithError(err).Warn("loading board failed, starting from seed")
		return model.Snapshot{}, false
	}

	var snap model.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		logger.WithError(err).Warn("saved board is unreadable, starting from seed")
		return model.Snapshot{}, false
	}

	logger.WithFields(log.Fields{
		"members": len(snap.Members),
		"tags":    len(snap.Tags),
		"tasks":   len(snap.Tasks),
	}).Debug("board loaded")
	return normalize(snap), true
}

func (b *Board) seed(names []string) model.Snapshot {
	snap := model.Snapshot{
		Members: make([]model.Member, 0, len(names)),
		Tags:    []model.Tag{},
		Tasks:   []model.Task{},
	}
	for _, name := range names {
		snap.Members = append(snap.Members, model.Member{ID: b.newID(), Name: name})
	}
	return snap
}

// normalize replaces nil collections with empty ones so the persisted
// document always carries arrays.
func normalize(s model.Snapshot) model.Snapshot {
	if s.Members == nil {
		s.Members = []model.Member{}
	}
	if s.Tags == nil {
		s.Tags = []model.Tag{}
	}
	if s.Tasks == nil {
		s.Tasks = []model.Task{}
	}
	for i := range s.Tasks {
		if s.Tasks[i].TagIDs == nil {
			s.Tasks[i].TagIDs = []string{}
		}
	}
	return s
}

// Key returns the storage key the board persists under.
func (b *Board) Key() string { return b.key }

// Snapshot returns the current state. The returned slices must not be
// modified; they are replaced, never mutated, by later changes.
func (b *Board) Snapshot() model.Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Subscribe registers fn to receive every new snapshot and returns a
// function that removes the registration. Listeners run on the goroutine
// that made the change, after the board lock is released.
func (b *Board) Subscribe(fn Listener) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextSub
	b.nextSub++
	b.listeners[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.listeners, id)
			b.mu.Unlock()
		})
	}
}

// SetState replaces the whole board, as done by import. The caller is
// responsible for validating the document's shape beforehand.
func (b *Board) SetState(snap model.Snapshot) {
	next := normalize(snap.Clone())
	b.update("set_state", func(model.Snapshot) (model.Snapshot, bool) {
		return next, true
	})
}

// update applies fn to the current state. When fn reports a change the new
// state is stored, persisted and published; otherwise nothing happens.
func (b *Board) update(op string, fn func(model.Snapshot) (model.Snapshot, bool)) bool {
	b.mu.Lock()
	next, changed := fn(b.state)
	if !changed {
		b.mu.Unlock()
		return false
	}
	b.state = next
	b.persist(op, next)

	listeners := make([]Listener, 0, len(b.listeners))
	for _, l := range b.listeners {
		listeners = append(listeners, l)
	}
	b.mu.Unlock()

	for _, l := range listeners {
		l(next)
	}
	return true
}

// persist writes snap to storage. Errors are logged; the in-memory state
// stays authoritative. Must be called with b.mu held.
func (b *Board) persist(op string, snap model.Snapshot) {
	logger := b.logger.WithFields(log.Fields{"op": op, "key": b.key})
	if b.storage == nil {
		logger.Debug("board changed")
		return
	}

	data, err := json.Marshal(snap)
	if err != nil {
		logger.WithError(err).Error("encoding board failed")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := b.storage.Put(ctx, b.key, data); err != nil {
		logger.WithError(fmt.Errorf("saving board: %w", err)).Error("board not persisted")
		return
	}
	logger.Debug("board saved")
}

func (b *Board) nowMillis() int64 {
	return b.now().UnixMilli()
}
