package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/faltula/faltula/internal/logger"
	"github.com/faltula/faltula/internal/models"
)

type jsonFile struct {
	Version  int                        `json:"version"`
	Profiles map[string]models.Snapshot `json:"profiles"`
}

// JSONStore keeps every profile's snapshot in a single JSON file. It is the
// default backend.
type JSONStore struct {
	path string
	file *jsonFile
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.file = &jsonFile{
		Version:  1,
		Profiles: make(map[string]models.Snapshot),
	}
	return s.write()
}

// ensureLoaded reads the file into memory on first use. A payload that no
// longer parses is treated as empty rather than fatal: every profile then
// starts from an empty snapshot and the next save rewrites the file.
func (s *JSONStore) ensureLoaded() error {
	if s.file != nil {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'faltula init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.file = &jsonFile{}
	if err := json.Unmarshal(data, s.file); err != nil {
		logger.Warn("stored payload is not parseable, starting empty", "path", s.path, "error", err)
		s.file = &jsonFile{Version: 1}
	}
	if s.file.Profiles == nil {
		s.file.Profiles = make(map[string]models.Snapshot)
	}

	return nil
}

func (s *JSONStore) Load(profileID string) (models.Snapshot, error) {
	if err := s.ensureLoaded(); err != nil {
		return models.Snapshot{}, err
	}

	snap, ok := s.file.Profiles[profileID]
	if !ok {
		return models.EmptySnapshot(), nil
	}
	if snap.Subjects == nil {
		snap.Subjects = []models.Subject{}
	}
	if snap.Schedule == nil {
		snap.Schedule = []models.ScheduleSlot{}
	}
	if snap.Absences == nil {
		snap.Absences = []models.Absence{}
	}
	return snap, nil
}

func (s *JSONStore) Save(profileID string, snap models.Snapshot) error {
	if err := s.ensureLoaded(); err != nil {
		return err
	}

	s.file.Profiles[profileID] = snap
	return s.write()
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) write() error {
	data, err := json.MarshalIndent(s.file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
