package portfolio

import (
	"context"
	"sync"
)

// MemoryStore implements Store in process memory. State is lost on restart.
type MemoryStore struct {
	mu       sync.RWMutex
	config   *Config
	projects []Project
	services []Service
}

// NewMemoryStore creates an empty store serving the given catalog.
func NewMemoryStore(projects []Project, services []Service) *MemoryStore {
	return &MemoryStore{
		projects: append([]Project{}, projects...),
		services: append([]Service{}, services...),
	}
}

func (m *MemoryStore) Config(_ context.Context) (*Config, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return nil, nil
	}
	c := m.config.Clone()
	return &c, nil
}

func (m *MemoryStore) UpdateConfig(_ context.Context, patch Patch) (*Config, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	base := DefaultConfig()
	if m.config != nil {
		base = *m.config
	}
	merged := patch.Apply(base)
	m.config = &merged

	out := merged.Clone()
	return &out, nil
}

func (m *MemoryStore) Projects(_ context.Context) ([]Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]Project{}, m.projects...), nil
}

func (m *MemoryStore) Project(_ context.Context, id int) (*Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return findProject(m.projects, id)
}

func (m *MemoryStore) Services(_ context.Context) ([]Service, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]Service{}, m.services...), nil
}

func (m *MemoryStore) Service(_ context.Context, id int) (*Service, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return findService(m.services, id)
}

// Compile-time interface check
var _ Store = (*MemoryStore)(nil)
