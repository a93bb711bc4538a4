package store

import (
	"context"
	"sync"
	"time"

	"github.com/kass/go-school-locator/pkg/models"
)

// MemoryStore is a thread-safe in-process store
type MemoryStore struct {
	mu      sync.RWMutex
	schools []models.School
	nextID  int64
	now     func() time.Time
}

// NewMemoryStore creates an empty store whose IDs start at 1
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1, now: time.Now}
}

func (m *MemoryStore) Migrate(ctx context.Context) error {
	return nil
}

func (m *MemoryStore) Insert(ctx context.Context, s models.NewSchool) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, opError("insert", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++
	m.schools = append(m.schools, models.School{
		ID:        id,
		Name:      s.Name,
		Address:   s.Address,
		Latitude:  s.Latitude,
		Longitude: s.Longitude,
		CreatedAt: m.now().UTC(),
	})
	return id, nil
}

// ListAll returns a copy, so callers can never alias the store's slice
func (m *MemoryStore) ListAll(ctx context.Context) ([]models.School, error) {
	if err := ctx.Err(); err != nil {
		return nil, opError("list", err)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	schools := make([]models.School, len(m.schools))
	copy(schools, m.schools)
	return schools, nil
}

func (m *MemoryStore) Count(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.schools)), nil
}

func (m *MemoryStore) Close() error {
	return nil
}
