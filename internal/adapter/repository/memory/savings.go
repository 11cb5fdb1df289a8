package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/simaogato/savings-backend/internal/domain"
)

// SavingsStore implements domain.SavingsRepository in memory.
type SavingsStore struct {
	mu    sync.Mutex
	items map[uuid.UUID]domain.SavingsEntry
	order []uuid.UUID
}

func NewSavingsStore() *SavingsStore {
	return &SavingsStore{items: make(map[uuid.UUID]domain.SavingsEntry)}
}

func (s *SavingsStore) Create(_ context.Context, entry *domain.SavingsEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[entry.ID]; ok {
		return fmt.Errorf("%w: savings entry %s already stored", domain.ErrStorageFailure, entry.ID)
	}
	s.items[entry.ID] = *entry
	s.order = append(s.order, entry.ID)
	return nil
}

func (s *SavingsStore) GetByID(_ context.Context, id uuid.UUID) (*domain.SavingsEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.items[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSavingsNotFound, id)
	}
	return &entry, nil
}

func (s *SavingsStore) ListByDate(_ context.Context, date time.Time) ([]*domain.SavingsEntry, error) {
	day := domain.DateOf(date)
	return s.filter(func(e domain.SavingsEntry) bool { return e.Date.Equal(day) }), nil
}

func (s *SavingsStore) ListByMilestoneID(_ context.Context, milestoneID uuid.UUID) ([]*domain.SavingsEntry, error) {
	return s.filter(func(e domain.SavingsEntry) bool { return e.MilestoneID == milestoneID }), nil
}

func (s *SavingsStore) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*domain.SavingsEntry, error) {
	return s.filter(func(e domain.SavingsEntry) bool { return e.OwnerID == ownerID }), nil
}

// filter returns matching entries ordered by date, then insertion order.
func (s *SavingsStore) filter(keep func(e domain.SavingsEntry) bool) []*domain.SavingsEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.SavingsEntry, 0)
	for _, id := range s.order {
		if e := s.items[id]; keep(e) {
			out = append(out, &e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

func (s *SavingsStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrSavingsNotFound, id)
	}
	delete(s.items, id)
	s.order = removeID(s.order, id)
	return nil
}
