package reminder

import (
	"context"
	"sort"
	"sync"
)

// MemStore keeps reminders in memory for tests and local runs.
type MemStore struct {
	mu        sync.Mutex
	reminders map[string]Reminder
}

func NewMemStore() *MemStore {
	return &MemStore{reminders: map[string]Reminder{}}
}

func (m *MemStore) Get(ctx context.Context, id string) (Reminder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.reminders[id]
	if !ok {
		return Reminder{}, ErrNotFound
	}
	return r, nil
}

func (m *MemStore) GetAll(ctx context.Context) ([]Reminder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Reminder, 0, len(m.reminders))
	for _, r := range m.reminders {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemStore) Save(ctx context.Context, r Reminder) (Reminder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.reminders[r.ID]; ok {
		return Reminder{}, ErrDuplicateID
	}
	m.reminders[r.ID] = r
	return r, nil
}

func (m *MemStore) Update(ctx context.Context, r Reminder) (Reminder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.reminders[r.ID]
	if !ok {
		return Reminder{}, ErrNotFound
	}
	r.CreationDate = cur.CreationDate
	m.reminders[r.ID] = r
	return r, nil
}

func (m *MemStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.reminders[id]; !ok {
		return ErrNotFound
	}
	delete(m.reminders, id)
	return nil
}
