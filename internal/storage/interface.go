package storage

import "github.com/faltula/faltula/internal/models"

// Provider persists one snapshot per profile. Implementations keep the three
// collections of a snapshot together: Save always replaces the whole value.
type Provider interface {
	// Init creates the backing file or database.
	Init() error
	// Load returns the last saved snapshot for the profile. A profile that
	// was never saved, or whose stored payload cannot be parsed, loads as an
	// empty snapshot rather than an error.
	Load(profileID string) (models.Snapshot, error)
	// Save persists the full snapshot for the profile, overwriting any prior
	// value.
	Save(profileID string, snap models.Snapshot) error
	Close() error

	GetConfigPath() string
}
