package contact

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrNotFound = errors.New("contact not found")

// Repository defines persistence operations for contact messages. Lists are
// ordered by creation time descending and paginated; the total count covers
// the whole filtered set, not just the returned page.
type Repository interface {
	List(ctx context.Context, opts ListOptions) ([]*Contact, int64, error)
	Create(ctx context.Context, c *Contact) error
	UpdateStatus(ctx context.Context, id, status string) (*Contact, error)
	Delete(ctx context.Context, id string) error
}

// MemoryRepository is an in-memory Repository used by unit tests.
type MemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*Contact
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{store: make(map[string]*Contact)}
}

func (m *MemoryRepository) List(ctx context.Context, opts ListOptions) ([]*Contact, int64, error) {
	opts.Normalize()
	m.mu.RLock()
	defer m.mu.RUnlock()
	matched := []*Contact{}
	for _, c := range m.store {
		if opts.Status != "" && c.Status != opts.Status {
			continue
		}
		cp := *c
		matched = append(matched, &cp)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	total := int64(len(matched))
	start := (opts.Page - 1) * opts.Limit
	if start >= len(matched) {
		return []*Contact{}, total, nil
	}
	end := start + opts.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (m *MemoryRepository) Create(ctx context.Context, c *Contact) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	c.ID = primitive.NewObjectID()
	if c.Status == "" {
		c.Status = StatusNew
	}
	c.CreatedAt = now
	c.UpdatedAt = now
	cp := *c
	m.store[c.ID.Hex()] = &cp
	return nil
}

func (m *MemoryRepository) UpdateStatus(ctx context.Context, id, status string) (*Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.store[id]
	if !ok {
		return nil, ErrNotFound
	}
	c.Status = status
	c.UpdatedAt = time.Now().UTC()
	cp := *c
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

// Len reports the number of stored messages (test helper).
func (m *MemoryRepository) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.store)
}
