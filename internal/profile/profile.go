package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

var (
	ErrProfileExists   = errors.New("a profile with this name already exists")
	ErrProfileNotFound = errors.New("profile not found")
)

// Profile identifies one user of the tracker. The id is opaque and stable;
// storage namespaces every snapshot by it.
type Profile struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"` // RFC3339
}

type profilesFile struct {
	Version  int       `json:"version"`
	Active   string    `json:"active"` // profile id
	Profiles []Profile `json:"profiles"`
}

// Manager keeps the known profiles and which one is active. Switching the
// active profile only changes which snapshot later sessions load; it never
// touches snapshot data itself.
type Manager struct {
	path   string
	file   profilesFile
	loaded bool
}

func NewManager(path string) *Manager {
	return &Manager{path: path}
}

func (m *Manager) load() error {
	if m.loaded {
		return nil
	}

	data, err := os.ReadFile(m.path)
	if err != nil {
		if os.IsNotExist(err) {
			m.file = profilesFile{Version: 1}
			m.loaded = true
			return nil
		}
		return fmt.Errorf("failed to read profiles: %w", err)
	}

	if err := json.Unmarshal(data, &m.file); err != nil {
		return fmt.Errorf("failed to parse profiles: %w", err)
	}
	m.loaded = true
	return nil
}

func (m *Manager) save() error {
	if err := os.MkdirAll(filepath.Dir(m.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := json.MarshalIndent(m.file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize profiles: %w", err)
	}
	if err := os.WriteFile(m.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write profiles: %w", err)
	}
	return nil
}

// Create registers a new profile. The first profile created becomes active.
func (m *Manager) Create(name string) (Profile, error) {
	if err := m.load(); err != nil {
		return Profile{}, err
	}

	for _, p := range m.file.Profiles {
		if p.Name == name {
			return Profile{}, ErrProfileExists
		}
	}

	p := Profile{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	m.file.Profiles = append(m.file.Profiles, p)
	if m.file.Active == "" {
		m.file.Active = p.ID
	}
	if err := m.save(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Use switches the active profile by name.
func (m *Manager) Use(name string) (Profile, error) {
	if err := m.load(); err != nil {
		return Profile{}, err
	}

	for _, p := range m.file.Profiles {
		if p.Name == name {
			m.file.Active = p.ID
			if err := m.save(); err != nil {
				return Profile{}, err
			}
			return p, nil
		}
	}
	return Profile{}, ErrProfileNotFound
}

// Current returns the active profile, or false when none is set.
func (m *Manager) Current() (Profile, bool, error) {
	if err := m.load(); err != nil {
		return Profile{}, false, err
	}

	for _, p := range m.file.Profiles {
		if p.ID == m.file.Active {
			return p, true, nil
		}
	}
	return Profile{}, false, nil
}

// List returns all known profiles in creation order.
func (m *Manager) List() ([]Profile, error) {
	if err := m.load(); err != nil {
		return nil, err
	}
	out := make([]Profile, len(m.file.Profiles))
	copy(out, m.file.Profiles)
	return out, nil
}
