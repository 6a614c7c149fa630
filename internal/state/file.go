package state

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Jesterkori/Internship-scraper/internal/model"
)

// Ensure FileStore implements Store.
var _ Store = (*FileStore)(nil)

// FileStore keeps the tracker state in a single JSON document.
type FileStore struct {
	path   string
	logger *slog.Logger
}

// NewFileStore returns a store backed by the JSON file at path.
func NewFileStore(path string, logger *slog.Logger) *FileStore {
	return &FileStore{path: path, logger: logger}
}

// Load reads the state file. A missing file, unparsable content, or an
// unknown schema version all yield a fresh empty state rather than an error:
// the tracker must survive a corrupt file and simply start over.
func (s *FileStore) Load() (*TrackerState, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("state file unreadable, starting fresh", "path", s.path, "error", err)
		}
		return NewTrackerState(), nil
	}

	var st TrackerState
	if err := json.Unmarshal(data, &st); err != nil {
		s.logger.Warn("state file corrupt, starting fresh", "path", s.path, "error", err)
		return NewTrackerState(), nil
	}
	if st.SchemaVersion != SchemaVersion {
		s.logger.Warn("state schema version mismatch, starting fresh",
			"path", s.path, "got", st.SchemaVersion, "want", SchemaVersion)
		return NewTrackerState(), nil
	}

	if st.Postings == nil {
		st.Postings = make(map[string]model.Posting)
	}
	if st.CustomSources == nil {
		st.CustomSources = make(map[string]string)
	}
	return &st, nil
}

// Save writes the full state, replacing the previous snapshot. The document
// is written to a temp file in the same directory and renamed over the old
// one so a crash mid-write cannot leave a half-written snapshot behind.
func (s *FileStore) Save(st *TrackerState) error {
	st.SchemaVersion = SchemaVersion

	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling state: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".state-*.json")
	if err != nil {
		return fmt.Errorf("creating temp state file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp state file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing state file: %w", err)
	}
	return nil
}
