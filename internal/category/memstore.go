package category

import (
	"context"
	"sort"
	"sync"
)

// MemStore keeps categories in memory for tests and local runs.
type MemStore struct {
	mu         sync.Mutex
	categories map[int]Category
}

func NewMemStore() *MemStore {
	return &MemStore{categories: map[int]Category{}}
}

func (m *MemStore) Get(ctx context.Context, id int) (Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.categories[id]
	if !ok {
		return Category{}, ErrNotFound
	}
	return c, nil
}

func (m *MemStore) GetAll(ctx context.Context) ([]Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Category, 0, len(m.categories))
	for _, c := range m.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemStore) Save(ctx context.Context, c Category) (Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.categories[c.ID]; ok {
		return Category{}, ErrDuplicateID
	}
	m.categories[c.ID] = c
	return c, nil
}

func (m *MemStore) Update(ctx context.Context, c Category) (Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.categories[c.ID]
	if !ok {
		return Category{}, ErrNotFound
	}
	c.CreationDate = cur.CreationDate
	m.categories[c.ID] = c
	return c, nil
}

func (m *MemStore) Delete(ctx context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.categories[id]; !ok {
		return ErrNotFound
	}
	delete(m.categories, id)
	return nil
}
