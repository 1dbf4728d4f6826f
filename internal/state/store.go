package state

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dixonmyles/ubuntu-advantage-client/pkg/logging"
)

const (
	// DefaultDataDir is where the packaged client keeps its state.
	DefaultDataDir = "/var/lib/ubuntu-advantage"

	stateFileName = "attachment.yaml"
)

// Store loads and saves the attachment state file.
type Store struct {
	dataDir string
}

// NewStore creates a store rooted at the default data directory.
func NewStore() *Store {
	return NewStoreWithDir(DefaultDataDir)
}

// NewStoreWithDir creates a store rooted at a custom data directory.
func NewStoreWithDir(dataDir string) *Store {
	return &Store{dataDir: dataDir}
}

// Path returns the full path of the state file.
func (st *Store) Path() string {
	return filepath.Join(st.dataDir, stateFileName)
}

// Load reads the attachment state. A missing file is not an error: the
// machine simply has never been attached, so the zero state is returned.
func (st *Store) Load() (AttachmentState, error) {
	path := st.Path()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Debug("State", "no state file at %s, machine is unattached", path)
			return AttachmentState{}, nil
		}
		return AttachmentState{}, fmt.Errorf("reading state from %s: %w", path, err)
	}

	var state AttachmentState
	if err := yaml.Unmarshal(data, &state); err != nil {
		return AttachmentState{}, fmt.Errorf("parsing state from %s: %w", path, err)
	}
	logging.Debug("State", "loaded state from %s (attached=%v)", path, state.Attached)
	return state, nil
}

// Save writes the attachment state. The file holds the machine token, so
// it is never group or world readable.
func (st *Store) Save(state AttachmentState) error {
	if err := os.MkdirAll(st.dataDir, 0755); err != nil {
		return fmt.Errorf("creating data directory %s: %w", st.dataDir, err)
	}

	data, err := yaml.Marshal(state)
	if err != nil {
		return fmt.Errorf("serializing state: %w", err)
	}

	path := st.Path()
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing state to %s: %w", path, err)
	}
	logging.Debug("State", "saved state to %s (attached=%v)", path, state.Attached)
	return nil
}
