package education

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrNotFound = errors.New("education record not found")

// Repository defines persistence operations for education records. Lists are
// ordered by `order` ascending, then start date descending.
type Repository interface {
	List(ctx context.Context) ([]*Education, error)
	Create(ctx context.Context, e *Education) error
	Update(ctx context.Context, id string, p Patch) (*Education, error)
	Delete(ctx context.Context, id string) error
}

// MemoryRepository is an in-memory Repository used by unit tests.
type MemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*Education
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{store: make(map[string]*Education)}
}

func (m *MemoryRepository) List(ctx context.Context) ([]*Education, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []*Education{}
	for _, e := range m.store {
		cp := *e
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].StartDate.After(out[j].StartDate)
	})
	return out, nil
}

func (m *MemoryRepository) Create(ctx context.Context, e *Education) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	e.ID = primitive.NewObjectID()
	e.CreatedAt = now
	e.UpdatedAt = now
	cp := *e
	m.store[e.ID.Hex()] = &cp
	return nil
}

func (m *MemoryRepository) Update(ctx context.Context, id string, p Patch) (*Education, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.store[id]
	if !ok {
		return nil, ErrNotFound
	}
	if p.Institution != nil {
		e.Institution = *p.Institution
	}
	if p.Degree != nil {
		e.Degree = *p.Degree
	}
	if p.Field != nil {
		e.Field = *p.Field
	}
	if p.StartDate != nil {
		e.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		e.EndDate = p.EndDate
	}
	if p.Current != nil {
		e.Current = *p.Current
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Location != nil {
		e.Location = *p.Location
	}
	if p.Order != nil {
		e.Order = *p.Order
	}
	e.UpdatedAt = time.Now().UTC()
	cp := *e
	return &cp, nil
}

func (m *MemoryRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[id]; !ok {
		return ErrNotFound
	}
	delete(m.store, id)
	return nil
}

// Len reports the number of stored records (test helper).
func (m *MemoryRepository) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.store)
}
