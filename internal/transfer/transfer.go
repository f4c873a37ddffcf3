// Package transfer exports a board snapshot to a JSON file and imports one
// back, checking only that the document has the three top-level collections.
package transfer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/nhle/teamboard/internal/model"
)

// DefaultFileName is the name suggested for exported boards.
const DefaultFileName = "kanban-board.json"

// ErrMalformedImport is returned when an import document lacks members,
// tags or tasks, or is not a JSON object.
var ErrMalformedImport = errors.New("invalid board file")

var requiredKeys = []string{"members", "tags", "tasks"}

// Export writes snap as indented JSON.
func Export(w io.Writer, snap model.Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("encoding board: %w", err)
	}
	return nil
}

// ExportFile writes snap to path, replacing any existing file.
func ExportFile(path string, snap model.Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file %s: %w", path, err)
	}
	if err := Export(f, snap); err != nil {
		f.Close()
		return fmt.Errorf("exporting to %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing export file %s: %w", path, err)
	}
	return nil
}

// Import parses a board document. It fails with ErrMalformedImport unless
// the document is an object carrying all of members, tags and tasks.
func Import(r io.Reader) (model.Snapshot, error) {
	var doc map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return model.Snapshot{}, fmt.Errorf("%w: %v", ErrMalformedImport, err)
	}
	for _, k := range requiredKeys {
		if _, ok := doc[k]; !ok {
			return model.Snapshot{}, fmt.Errorf("%w: missing %q", ErrMalformedImport, k)
		}
	}

	var snap model.Snapshot
	if err := json.Unmarshal(doc["members"], &snap.Members); err != nil {
		return model.Snapshot{}, fmt.Errorf("%w: members: %v", ErrMalformedImport, err)
	}
	if err := json.Unmarshal(doc["tags"], &snap.Tags); err != nil {
		return model.Snapshot{}, fmt.Errorf("%w: tags: %v", ErrMalformedImport, err)
	}
	if err := json.Unmarshal(doc["tasks"], &snap.Tasks); err != nil {
		return model.Snapshot{}, fmt.Errorf("%w: tasks: %v", ErrMalformedImport, err)
	}
	return snap, nil
}

// ImportFile reads and parses the board document at path.
func ImportFile(path string) (model.Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("opening import file %s: %w", path, err)
	}
	defer f.Close()

	snap, err := Import(f)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("importing %s: %w", path, err)
	}
	return snap, nil
}
