package note

import (
	"context"
	"sort"
	"sync"
)

// MemStore keeps notes in memory. Used by tests and for running the
// service without Postgres.
type MemStore struct {
	mu     sync.Mutex
	notes  map[int]Note
	nextID int
}

func NewMemStore() *MemStore {
	return &MemStore{notes: map[int]Note{}, nextID: 1}
}

func (m *MemStore) Get(ctx context.Context, id int) (Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.notes[id]
	if !ok {
		return Note{}, ErrNotFound
	}
	return n, nil
}

func (m *MemStore) GetAll(ctx context.Context) ([]Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Note, 0, len(m.notes))
	for _, n := range m.notes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemStore) Save(ctx context.Context, n Note) (Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if n.ID == 0 {
		n.ID = m.nextID
		m.nextID++
	} else {
		if _, ok := m.notes[n.ID]; ok {
			return Note{}, ErrDuplicateID
		}
		if n.ID >= m.nextID {
			m.nextID = n.ID + 1
		}
	}
	m.notes[n.ID] = n
	return n, nil
}

func (m *MemStore) Update(ctx context.Context, n Note) (Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.notes[n.ID]
	if !ok {
		return Note{}, ErrNotFound
	}
	n.CreatedAt = cur.CreatedAt
	m.notes[n.ID] = n
	return n, nil
}

func (m *MemStore) Delete(ctx context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.notes[id]; !ok {
		return ErrNotFound
	}
	delete(m.notes, id)
	return nil
}
