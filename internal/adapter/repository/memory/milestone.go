// Package memory holds process-local stores used when no database is
// configured and in tests. Every store guards its data with one mutex and
// hands out copies, so callers never share state with the store.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/simaogato/savings-backend/internal/domain"
)

// MilestoneStore implements domain.MilestoneRepository in memory.
type MilestoneStore struct {
	mu    sync.Mutex
	items map[uuid.UUID]*domain.Milestone
	order []uuid.UUID
}

func NewMilestoneStore() *MilestoneStore {
	return &MilestoneStore{items: make(map[uuid.UUID]*domain.Milestone)}
}

func (s *MilestoneStore) Create(_ context.Context, m *domain.Milestone) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[m.ID]; ok {
		return fmt.Errorf("%w: milestone %s already stored", domain.ErrStorageFailure, m.ID)
	}
	s.items[m.ID] = cloneMilestone(m)
	s.order = append(s.order, m.ID)
	return nil
}

func (s *MilestoneStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Milestone, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.items[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrMilestoneNotFound, id)
	}
	return cloneMilestone(m), nil
}

// GetByName returns the earliest stored milestone with the given name.
func (s *MilestoneStore) GetByName(_ context.Context, name string) (*domain.Milestone, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.order {
		if m := s.items[id]; m.Name == name {
			return cloneMilestone(m), nil
		}
	}
	return nil, fmt.Errorf("%w: no milestone named %q", domain.ErrMilestoneNotFound, name)
}

func (s *MilestoneStore) ListByStartDate(_ context.Context, date time.Time) ([]*domain.Milestone, error) {
	day := domain.DateOf(date)
	return s.filter(func(m *domain.Milestone) bool { return m.StartDate.Equal(day) }), nil
}

func (s *MilestoneStore) ListByCompletionDate(_ context.Context, date time.Time) ([]*domain.Milestone, error) {
	day := domain.DateOf(date)
	return s.filter(func(m *domain.Milestone) bool {
		return m.CompletionDate != nil && m.CompletionDate.Equal(day)
	}), nil
}

func (s *MilestoneStore) ListByStatus(_ context.Context, status domain.MilestoneStatus) ([]*domain.Milestone, error) {
	return s.filter(func(m *domain.Milestone) bool { return m.Status == status }), nil
}

func (s *MilestoneStore) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*domain.Milestone, error) {
	return s.filter(func(m *domain.Milestone) bool { return m.OwnerID == ownerID }), nil
}

func (s *MilestoneStore) filter(keep func(m *domain.Milestone) bool) []*domain.Milestone {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.Milestone, 0)
	for _, id := range s.order {
		if m := s.items[id]; keep(m) {
			out = append(out, cloneMilestone(m))
		}
	}
	return out
}

func (s *MilestoneStore) Update(_ context.Context, m *domain.Milestone) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[m.ID]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrMilestoneNotFound, m.ID)
	}
	s.items[m.ID] = cloneMilestone(m)
	return nil
}

// Modify runs mutate on a copy while holding the store lock and stores the
// copy only when mutate succeeds.
func (s *MilestoneStore) Modify(_ context.Context, id uuid.UUID, mutate domain.MilestoneMutation) (*domain.Milestone, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.items[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrMilestoneNotFound, id)
	}

	working := cloneMilestone(current)
	if err := mutate(working); err != nil {
		return nil, err
	}
	s.items[id] = working
	return cloneMilestone(working), nil
}

func (s *MilestoneStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrMilestoneNotFound, id)
	}
	delete(s.items, id)
	s.order = removeID(s.order, id)
	return nil
}

func cloneMilestone(m *domain.Milestone) *domain.Milestone {
	c := *m
	if m.CompletionDate != nil {
		d := *m.CompletionDate
		c.CompletionDate = &d
	}
	return &c
}

func removeID(ids []uuid.UUID, id uuid.UUID) []uuid.UUID {
	for i, v := range ids {
		if v == id {
			return append(ids[:i:i], ids[i+1:]...)
		}
	}
	return ids
}
