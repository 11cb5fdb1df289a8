package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/simaogato/savings-backend/internal/domain"
)

// AccountStore implements domain.AccountRepository and domain.AccountDirectory
// in memory. Emails are unique ignoring case.
type AccountStore struct {
	mu      sync.Mutex
	items   map[uuid.UUID]domain.Account
	byEmail map[string]uuid.UUID
}

func NewAccountStore() *AccountStore {
	return &AccountStore{
		items:   make(map[uuid.UUID]domain.Account),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (s *AccountStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.items[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, id)
	}
	return cloneAccount(a), nil
}

// Resolve implements domain.AccountDirectory.
func (s *AccountStore) Resolve(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	return s.GetByID(ctx, id)
}

func (s *AccountStore) GetByEmail(_ context.Context, email string) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, fmt.Errorf("%w: no account for email %q", domain.ErrAccountNotFound, email)
	}
	return cloneAccount(s.items[id]), nil
}

func (s *AccountStore) Create(_ context.Context, a *domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := strings.ToLower(a.Email)
	if _, ok := s.byEmail[key]; ok {
		return fmt.Errorf("%w: email %q is already registered", domain.ErrAccountExists, a.Email)
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	stored := *cloneAccount(*a)
	stored.Email = key
	s.items[a.ID] = stored
	s.byEmail[key] = a.ID
	return nil
}

func (s *AccountStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.items[id]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrAccountNotFound, id)
	}
	delete(s.items, id)
	delete(s.byEmail, a.Email)
	return nil
}

func cloneAccount(a domain.Account) *domain.Account {
	if a.ChildID != nil {
		child := *a.ChildID
		a.ChildID = &child
	}
	return &a
}

// CustomerStore implements domain.CustomerRepository in memory.
type CustomerStore struct {
	mu    sync.Mutex
	items map[uuid.UUID]domain.Customer
}

func NewCustomerStore() *CustomerStore {
	return &CustomerStore{items: make(map[uuid.UUID]domain.Customer)}
}

func (s *CustomerStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.items[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrCustomerNotFound, id)
	}
	return &c, nil
}

func (s *CustomerStore) Create(_ context.Context, c *domain.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[c.ID] = *c
	return nil
}

func (s *CustomerStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrCustomerNotFound, id)
	}
	delete(s.items, id)
	return nil
}
