package testutil

import (
	"context"
	"testing"

	"github.com/nhle/teamboard/internal/board"
)

// NewTestBoard creates a board persisted to an in-memory SQLiteStore and
// seeded with members. Without members it starts empty.
func NewTestBoard(t *testing.T, members ...string) *board.Board {
	t.Helper()

	if members == nil {
		members = []string{}
	}
	return board.New(context.Background(), NewTestStore(t), board.Options{
		SeedMembers: members,
	})
}
