package build

import (
	"context"
	"sync"

	"github.com/hpungsan/rig/internal/catalog"
)

// DefaultKey names the build used when none is given.
const DefaultKey = "default"

// Store persists selections per build key. Slots are written one at a time so
// a single pick never rewrites the whole snapshot.
type Store interface {
	// Load returns the saved selection for key, or an empty one when nothing
	// was saved.
	Load(ctx context.Context, key string) (*Selection, error)

	// SaveSlot writes one slot. A nil part clears it.
	SaveSlot(ctx context.Context, key string, c catalog.Category, part catalog.Part) error

	// Reset clears every slot of the build.
	Reset(ctx context.Context, key string) error
}

// MemoryStore is an in-process Store.
type MemoryStore struct {
	mu     sync.Mutex
	builds map[string]map[catalog.Category]catalog.Part
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{builds: make(map[string]map[catalog.Category]catalog.Part)}
}

// Load implements Store.
func (m *MemoryStore) Load(ctx context.Context, key string) (*Selection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	sel := NewSelection()
	sel.Restore(m.builds[key])
	return sel, nil
}

// SaveSlot implements Store.
func (m *MemoryStore) SaveSlot(ctx context.Context, key string, c catalog.Category, part catalog.Part) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	slots := m.builds[key]
	if slots == nil {
		slots = make(map[catalog.Category]catalog.Part)
		m.builds[key] = slots
	}
	if part == nil {
		delete(slots, c)
		return nil
	}
	slots[c] = part
	return nil
}

// Reset implements Store.
func (m *MemoryStore) Reset(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.builds, key)
	return nil
}
