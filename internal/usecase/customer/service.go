package customer

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/simaogato/savings-backend/internal/domain"
	"go.uber.org/zap"
)

// Service links parent accounts to child accounts
type Service struct {
	CustomerRepo domain.CustomerRepository
	AccountRepo  domain.AccountRepository
	Logger       *zap.Logger
}

// NewService creates a new customer Service
func NewService(customerRepo domain.CustomerRepository, accountRepo domain.AccountRepository, logger *zap.Logger) *Service {
	return &Service{
		CustomerRepo: customerRepo,
		AccountRepo:  accountRepo,
		Logger:       logger,
	}
}

// CreateCustomer records that parentID is the guardian of childID.
// Both accounts must exist, with roles PARENT and CHILD respectively.
func (s *Service) CreateCustomer(ctx context.Context, parentID, childID uuid.UUID) (*domain.Customer, error) {
	c := &domain.Customer{
		ID:       uuid.New(),
		ParentID: parentID,
		ChildID:  childID,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	parent, err := s.requireAccount(ctx, parentID, "parent")
	if err != nil {
		return nil, err
	}
	child, err := s.requireAccount(ctx, childID, "child")
	if err != nil {
		return nil, err
	}

	if parent.Role != domain.AccountRoleParent {
		return nil, fmt.Errorf("%w: the parent account must have the PARENT role", domain.ErrInvalidCustomer)
	}
	if child.Role != domain.AccountRoleChild {
		return nil, fmt.Errorf("%w: the child account must have the CHILD role", domain.ErrInvalidCustomer)
	}

	if err := s.CustomerRepo.Create(ctx, c); err != nil {
		return nil, err
	}

	s.Logger.Info("Customer relationship created",
		zap.String("customer_id", c.ID.String()),
		zap.String("parent_id", parentID.String()),
		zap.String("child_id", childID.String()),
	)
	return c, nil
}

func (s *Service) requireAccount(ctx context.Context, id uuid.UUID, side string) (*domain.Account, error) {
	account, err := s.AccountRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, fmt.Errorf("%w: %s account %s not found", domain.ErrInvalidCustomer, side, id)
		}
		return nil, err
	}
	return account, nil
}

// GetCustomer returns the relationship with the given id, or nil when absent.
func (s *Service) GetCustomer(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	c, err := s.CustomerRepo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrCustomerNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteCustomer removes a relationship. Both accounts are kept.
func (s *Service) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	if err := s.CustomerRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.Logger.Info("Customer relationship deleted", zap.String("customer_id", id.String()))
	return nil
}
