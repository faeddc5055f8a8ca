package skills

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrNotFound = errors.New("skill not found")

// Repository defines persistence operations for skills. Lists are ordered by
// `order` ascending, then creation time descending.
type Repository interface {
	List(ctx context.Context, category string) ([]*Skill, error)
	Categories(ctx context.Context) ([]string, error)
	Create(ctx context.Context, s *Skill) error
	Update(ctx context.Context, id string, p Patch) (*Skill, error)
	Delete(ctx context.Context, id string) error
}

// MemoryRepository is an in-memory Repository used by unit tests.
type MemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*Skill
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{store: make(map[string]*Skill)}
}

func (m *MemoryRepository) List(ctx context.Context, category string) ([]*Skill, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []*Skill{}
	for _, s := range m.store {
		if category != "" && s.Category != category {
			continue
		}
		cp := *s
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *MemoryRepository) Categories(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	seen := map[string]bool{}
	out := []string{}
	for _, s := range m.store {
		if !seen[s.Category] {
			seen[s.Category] = true
			out = append(out, s.Category)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (m *MemoryRepository) Create(ctx context.Context, s *Skill) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	s.ID = primitive.NewObjectID()
	s.CreatedAt = now
	s.UpdatedAt = now
	cp := *s
	m.store[s.ID.Hex()] = &cp
	return nil
}

func (m *MemoryRepository) Update(ctx context.Context, id string, p Patch) (*Skill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.store[id]
	if !ok {
		return nil, ErrNotFound
	}
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Category != nil {
		s.Category = *p.Category
	}
	if p.Level != nil {
		s.Level = *p.Level
	}
	if p.Icon != nil {
		s.Icon = *p.Icon
	}
	if p.Order != nil {
		s.Order = *p.Order
	}
	s.UpdatedAt = time.Now().UTC()
	cp := *s
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

// Len reports the number of stored skills (test helper).
func (m *MemoryRepository) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.store)
}
