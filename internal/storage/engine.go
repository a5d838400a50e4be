package storage

import (
	"fmt"

	"github.com/MosabAboidrees/AirBnB-clone-v3/internal/config"
	"github.com/MosabAboidrees/AirBnB-clone-v3/internal/models"
)

// Key returns the identity-map key for an entity, "<Kind>.<id>".
func Key(e models.Entity) string {
	return string(e.Kind()) + "." + e.GetID()
}

// Engine is the storage contract shared by both backing strategies. An
// engine moves from Uninitialized to Ready on Reload and to Closed on
// Close; the other operations are only defined in between.
type Engine interface {
	// All returns every resident entity keyed "<Kind>.<id>", optionally
	// filtered to one kind (empty kind means all). The map is a copy, the
	// entities are not: mutating them is visible to every holder.
	All(kind models.Kind) map[string]models.Entity

	// Get returns the resident entity, or nil when no match exists.
	// Within one engine instance it always returns the same instance for
	// the same (kind, id).
	Get(kind models.Kind, id string) models.Entity

	// New registers a freshly constructed entity with the identity map.
	// The registration is visible immediately; durability is only
	// guaranteed after Save.
	New(e models.Entity)

	// Save flushes the identity map to the backing store.
	Save() error

	// Delete removes the entity from the identity map and the backing
	// store, dropping Place-Amenity association links first. Deleting an
	// entity that is not resident is a no-op.
	Delete(e models.Entity) error

	// Count reports resident entities, optionally filtered to one kind.
	Count(kind models.Kind) int

	// Reload (re)populates the identity map from the backing store. The
	// database strategy also ensures schema objects exist.
	Reload() error

	// Close releases backing-store resources.
	Close() error
}

// NewEngine builds the engine selected by configuration. The choice is
// made exactly once; call sites only ever see the Engine interface.
func NewEngine(cfg *config.Config) (Engine, error) {
	switch cfg.StorageType {
	case config.StorageDB:
		return NewDBStore(cfg)
	case config.StorageFile:
		return NewFileStore(cfg.FilePath), nil
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.StorageType)
	}
}
