package transfer_test

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/teamboard/internal/board"
	"github.com/nhle/teamboard/internal/model"
	"github.com/nhle/teamboard/internal/transfer"
	"github.com/nhle/teamboard/tests/testutil"
)

func populated(t *testing.T) *board.Board {
	t.Helper()
	b := board.New(context.Background(), testutil.NewTestStore(t), board.Options{})
	s := b.Snapshot()
	alice, bob := s.Members[0], s.Members[1]

	bug := b.AddTag("bug", "#ff6b6b")
	ux := b.AddTag("ux", "hsl(200, 50%, 50%)")
	t1, err := b.AddTask(alice.ID, "Fix login", "oauth redirect", []string{bug.ID})
	require.NoError(t, err)
	_, err = b.AddTask(bob.ID, "Polish header", "", []string{ux.ID, bug.ID})
	require.NoError(t, err)
	_, err = b.AddTask(alice.ID, "Write tests", "", nil)
	require.NoError(t, err)
	require.True(t, b.MarkTaskDone(t1.ID))
	require.True(t, b.DeleteTag(ux.ID))
	return b
}

func TestExportShape(t *testing.T) {
	b := populated(t)

	var buf bytes.Buffer
	require.NoError(t, transfer.Export(&buf, b.Snapshot()))

	var doc map[string][]map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Len(t, doc["members"], 2)
	assert.Len(t, doc["tags"], 1)
	require.Len(t, doc["tasks"], 3)

	task := doc["tasks"][2]
	for _, k := range []string{"id", "memberId", "title", "description", "tagIds", "createdAt", "status", "completedAt"} {
		assert.Contains(t, task, k)
	}
	assert.Nil(t, task["completedAt"])
	assert.Equal(t, "todo", task["status"])
	assert.Equal(t, []any{}, task["tagIds"])
	assert.Equal(t, "done", doc["tasks"][0]["status"])
}

func TestRoundTripIntoFreshBoard(t *testing.T) {
	src := populated(t)
	path := filepath.Join(t.TempDir(), transfer.DefaultFileName)
	require.NoError(t, transfer.ExportFile(path, src.Snapshot()))

	snap, err := transfer.ImportFile(path)
	require.NoError(t, err)

	fresh := board.New(context.Background(), testutil.NewTestStore(t), board.Options{})
	fresh.SetState(snap)

	assert.Equal(t, src.Snapshot(), fresh.Snapshot())
}

func TestImportRejectsMissingKeys(t *testing.T) {
	tests := map[string]string{
		"no tasks":   `{"members":[],"tags":[]}`,
		"no members": `{"tags":[],"tasks":[]}`,
		"array":      `[]`,
		"garbage":    `hello`,
		"bad tasks":  `{"members":[],"tags":[],"tasks":"nope"}`,
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := transfer.Import(strings.NewReader(doc))
			assert.ErrorIs(t, err, transfer.ErrMalformedImport)
		})
	}
}

func TestImportAcceptsEmptyCollections(t *testing.T) {
	snap, err := transfer.Import(strings.NewReader(`{"members":[],"tags":[],"tasks":[]}`))
	require.NoError(t, err)
	assert.Empty(t, snap.Members)
	assert.Empty(t, snap.Tasks)
}

func TestFailedImportLeavesBoardUntouched(t *testing.T) {
	b := populated(t)
	before := b.Snapshot()

	if snap, err := transfer.Import(strings.NewReader(`{"members":[]}`)); err == nil {
		b.SetState(snap)
	}

	assert.Equal(t, before, b.Snapshot())
}

func TestImportFileMissing(t *testing.T) {
	_, err := transfer.ImportFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, transfer.ErrMalformedImport)
}

func TestRoundTripPreservesIDsVerbatim(t *testing.T) {
	in := model.Snapshot{
		Members: []model.Member{{ID: "m-1", Name: "Ann"}},
		Tags:    []model.Tag{},
		Tasks: []model.Task{{
			ID: "t-1", MemberID: "m-1", Title: "x", TagIDs: []string{"gone"},
			CreatedAt: 10, Status: model.StatusTodo,
		}},
	}
	var buf bytes.Buffer
	require.NoError(t, transfer.Export(&buf, in))

	out, err := transfer.Import(&buf)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
