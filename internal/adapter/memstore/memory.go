package memstore

import (
	"sort"
	"sync"

	"doccomment/internal/domain"
)

type entry struct {
	hash string
	node domain.ModuleNode
}

// MemoryStore is an in-process unit cache for long-running hosts such as
// the preview server and the browser build.
type MemoryStore struct {
	mu    sync.RWMutex
	units map[string]entry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		units: make(map[string]entry),
	}
}

func (s *MemoryStore) GetUnit(id, hash string) (domain.ModuleNode, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.units[id]
	if !ok || e.hash != hash {
		return domain.ModuleNode{}, false, nil
	}
	return e.node, true, nil
}

func (s *MemoryStore) PutUnit(id, hash string, node domain.ModuleNode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.units[id] = entry{hash: hash, node: node}
	return nil
}

func (s *MemoryStore) DeleteUnit(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.units, id)
}

// ListUnits returns the stored unit IDs in sorted order.
func (s *MemoryStore) ListUnits() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.units))
	for id := range s.units {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Tree returns every stored node keyed by unit ID.
func (s *MemoryStore) Tree() domain.ModuleTree {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tree := make(domain.ModuleTree, len(s.units))
	for id, e := range s.units {
		tree[id] = e.node
	}
	return tree
}

func (s *MemoryStore) PruneUnits(keep map[string]bool) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pruned := 0
	for id := range s.units {
		if !keep[id] {
			delete(s.units, id)
			pruned++
		}
	}
	return pruned, nil
}

func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.units = make(map[string]entry)
}

func (s *MemoryStore) Close() error {
	return nil
}
