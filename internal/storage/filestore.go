package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/MosabAboidrees/AirBnB-clone-v3/internal/models"
)

// FileStore keeps every entity resident in the identity map and persists
// the whole map to a single JSON file on Save. The file maps each entity
// to its "<Kind>.<id>" key, value = the full attribute map including the
// __class__ discriminator.
type FileStore struct {
	path  string
	ident *identity
}

// NewFileStore returns a file-backed engine persisting to path. The store
// is not Ready until Reload has run.
func NewFileStore(path string) *FileStore {
	return &FileStore{
		path:  path,
		ident: newIdentity(),
	}
}

func (s *FileStore) All(kind models.Kind) map[string]models.Entity {
	return s.ident.all(kind)
}

func (s *FileStore) Get(kind models.Kind, id string) models.Entity {
	return s.ident.get(kind, id)
}

func (s *FileStore) New(e models.Entity) {
	s.ident.put(e)
}

// Save reserializes the full identity map and rewrites the snapshot file.
// The write goes through a temp file and a rename so a crash mid-write
// never leaves a truncated snapshot.
func (s *FileStore) Save() error {
	serialized := make(map[string]map[string]interface{})
	for key, e := range s.ident.all("") {
		serialized[key] = e.ToMap(false)
	}

	b, err := json.MarshalIndent(serialized, "", "  ")
	if err != nil {
		return fmt.Errorf("filestore marshal: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return fmt.Errorf("filestore write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("filestore rename %s: %w", s.path, err)
	}
	return nil
}

// Delete removes the entity from the identity map. Deleting an Amenity
// also drops its links from every resident Place. Not-resident entities
// are a no-op.
func (s *FileStore) Delete(e models.Entity) error {
	if !s.ident.remove(e) {
		return nil
	}
	if a, ok := e.(*models.Amenity); ok {
		for _, pe := range s.ident.snapshot(models.KindPlace) {
			pe.(*models.Place).RemoveAmenity(a.ID)
		}
	}
	return nil
}

func (s *FileStore) Count(kind models.Kind) int {
	return s.ident.count(kind)
}

// Reload repopulates the identity map from the snapshot file. A missing
// file is an empty store, not an error.
func (s *FileStore) Reload() error {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.ident.replace(make(map[string]models.Entity))
			return nil
		}
		return fmt.Errorf("filestore read %s: %w", s.path, err)
	}

	var raw map[string]map[string]interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("filestore parse %s: %w", s.path, err)
	}

	objects := make(map[string]models.Entity, len(raw))
	for key, attrs := range raw {
		kind, _, ok := strings.Cut(key, ".")
		if !ok {
			continue
		}
		e := models.New(models.Kind(kind), attrs)
		if e == nil {
			// Unknown kinds in the snapshot are skipped, not fatal.
			continue
		}
		objects[Key(e)] = e
	}
	s.ident.replace(objects)
	return nil
}

// Close flushes the pending state. The store holds no open handle between
// saves, so there is nothing else to release.
func (s *FileStore) Close() error {
	return s.Save()
}
