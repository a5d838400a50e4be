package storage

import (
	"strings"
	"sync"

	"github.com/MosabAboidrees/AirBnB-clone-v3/internal/models"
)

// identity is the mutex-guarded object table shared by both strategies.
// It holds one instance per (kind, id) pair while resident.
type identity struct {
	mu      sync.RWMutex
	objects map[string]models.Entity
}

func newIdentity() *identity {
	return &identity{objects: make(map[string]models.Entity)}
}

func (m *identity) all(kind models.Kind) map[string]models.Entity {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]models.Entity)
	prefix := string(kind) + "."
	for key, e := range m.objects {
		if kind == "" || strings.HasPrefix(key, prefix) {
			out[key] = e
		}
	}
	return out
}

func (m *identity) get(kind models.Kind, id string) models.Entity {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.objects[string(kind)+"."+id]
}

func (m *identity) put(e models.Entity) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[Key(e)] = e
}

// remove reports whether the entity was resident.
func (m *identity) remove(e models.Entity) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := Key(e)
	if _, ok := m.objects[key]; !ok {
		return false
	}
	delete(m.objects, key)
	return true
}

func (m *identity) count(kind models.Kind) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if kind == "" {
		return len(m.objects)
	}
	n := 0
	prefix := string(kind) + "."
	for key := range m.objects {
		if strings.HasPrefix(key, prefix) {
			n++
		}
	}
	return n
}

// replace swaps in a freshly loaded object table.
func (m *identity) replace(objects map[string]models.Entity) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects = objects
}

// snapshot returns the resident entities of one kind, for flushing in
// foreign-key dependency order.
func (m *identity) snapshot(kind models.Kind) []models.Entity {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Entity, 0)
	prefix := string(kind) + "."
	for key, e := range m.objects {
		if strings.HasPrefix(key, prefix) {
			out = append(out, e)
		}
	}
	return out
}
