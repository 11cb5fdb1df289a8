package savings

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/savings-backend/internal/adapter/repository/memory"
	"github.com/simaogato/savings-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockSavingsRepository is a mock implementation of SavingsRepository for testing
type MockSavingsRepository struct {
	mock.Mock
}

func (m *MockSavingsRepository) Create(ctx context.Context, entry *domain.SavingsEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockSavingsRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SavingsEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SavingsEntry), args.Error(1)
}

func (m *MockSavingsRepository) ListByDate(ctx context.Context, date time.Time) ([]*domain.SavingsEntry, error) {
	args := m.Called(ctx, date)
	return args.Get(0).([]*domain.SavingsEntry), args.Error(1)
}

func (m *MockSavingsRepository) ListByMilestoneID(ctx context.Context, milestoneID uuid.UUID) ([]*domain.SavingsEntry, error) {
	args := m.Called(ctx, milestoneID)
	return args.Get(0).([]*domain.SavingsEntry), args.Error(1)
}

func (m *MockSavingsRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.SavingsEntry, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]*domain.SavingsEntry), args.Error(1)
}

func (m *MockSavingsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAccountDirectory is a mock implementation of AccountDirectory for testing
type MockAccountDirectory struct {
	mock.Mock
}

func (m *MockAccountDirectory) Resolve(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

var fixedNow = time.Date(2026, time.October, 18, 9, 0, 0, 0, time.UTC)

func newTestService(repo domain.SavingsRepository, accounts domain.AccountDirectory) *Service {
	s := NewService(repo, accounts, zap.NewNop())
	s.Now = func() time.Time { return fixedNow }
	return s
}

func TestCreateSavings_Success(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockSavingsRepository)
	mockAccounts := new(MockAccountDirectory)
	service := newTestService(mockRepo, mockAccounts)

	ownerID, milestoneID := uuid.New(), uuid.New()
	mockAccounts.On("Resolve", ctx, ownerID).Return(&domain.Account{ID: ownerID}, nil)
	mockRepo.On("Create", ctx, mock.MatchedBy(func(e *domain.SavingsEntry) bool {
		return e.MilestoneID == milestoneID && e.Amount.Equal(decimal.RequireFromString("12.50"))
	})).Return(nil)

	entry, err := service.CreateSavings(ctx, CreateSavingsInput{
		OwnerID:     ownerID,
		MilestoneID: milestoneID,
		Amount:      decimal.RequireFromString("12.50"),
		Date:        fixedNow,
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, entry.ID)
	assert.Equal(t, domain.DateOf(fixedNow), entry.Date)
	mockRepo.AssertExpectations(t)
	mockAccounts.AssertExpectations(t)
}

func TestCreateSavings_Validation(t *testing.T) {
	ownerID := uuid.New()
	valid := CreateSavingsInput{
		OwnerID:     ownerID,
		MilestoneID: uuid.New(),
		Amount:      decimal.NewFromInt(10),
		Date:        fixedNow,
	}

	tests := []struct {
		name         string
		modify       func(in *CreateSavingsInput)
		ownerMissing bool
		wantErr      error
	}{
		{name: "Unknown owner", modify: func(in *CreateSavingsInput) { in.Amount = decimal.Zero }, ownerMissing: true, wantErr: domain.ErrInvalidOwner},
		{name: "Nil owner", modify: func(in *CreateSavingsInput) { in.OwnerID = uuid.Nil }, wantErr: domain.ErrInvalidOwner},
		{name: "Zero amount", modify: func(in *CreateSavingsInput) { in.Amount = decimal.Zero; in.MilestoneID = uuid.Nil }, wantErr: domain.ErrInvalidAmount},
		{name: "Missing milestone", modify: func(in *CreateSavingsInput) { in.MilestoneID = uuid.Nil }, wantErr: domain.ErrInvalidMilestoneID},
		{name: "Future date", modify: func(in *CreateSavingsInput) { in.Date = fixedNow.AddDate(0, 0, 1) }, wantErr: domain.ErrInvalidDate},
		{name: "Missing date", modify: func(in *CreateSavingsInput) { in.Date = time.Time{} }, wantErr: domain.ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			mockRepo := new(MockSavingsRepository)
			mockAccounts := new(MockAccountDirectory)
			service := newTestService(mockRepo, mockAccounts)

			in := valid
			tt.modify(&in)
			if tt.ownerMissing {
				mockAccounts.On("Resolve", ctx, in.OwnerID).Return(nil, domain.ErrAccountNotFound)
			} else {
				mockAccounts.On("Resolve", ctx, in.OwnerID).Return(&domain.Account{ID: in.OwnerID}, nil).Maybe()
			}

			_, err := service.CreateSavings(ctx, in)

			assert.ErrorIs(t, err, tt.wantErr)
			mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestGetSavings_AbsentReturnsNil(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockSavingsRepository)
	service := newTestService(mockRepo, new(MockAccountDirectory))

	id := uuid.New()
	mockRepo.On("GetByID", ctx, id).Return(nil, domain.ErrSavingsNotFound)

	entry, err := service.GetSavings(ctx, id)
	assert.NoError(t, err)
	assert.Nil(t, entry)
}

func TestGetByMilestoneID_ReturnsOldest(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockSavingsRepository)
	service := newTestService(mockRepo, new(MockAccountDirectory))

	milestoneID := uuid.New()
	oldest := &domain.SavingsEntry{ID: uuid.New(), MilestoneID: milestoneID}
	newer := &domain.SavingsEntry{ID: uuid.New(), MilestoneID: milestoneID}
	mockRepo.On("ListByMilestoneID", ctx, milestoneID).Return([]*domain.SavingsEntry{oldest, newer}, nil)

	entry, err := service.GetByMilestoneID(ctx, milestoneID)
	require.NoError(t, err)
	assert.Equal(t, oldest.ID, entry.ID)

	empty := uuid.New()
	mockRepo.On("ListByMilestoneID", ctx, empty).Return([]*domain.SavingsEntry{}, nil)
	entry, err = service.GetByMilestoneID(ctx, empty)
	assert.NoError(t, err)
	assert.Nil(t, entry)
}

func TestListByDate_RequiresDate(t *testing.T) {
	service := newTestService(new(MockSavingsRepository), new(MockAccountDirectory))

	_, err := service.ListByDate(context.Background(), time.Time{})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestDeleteSavings_LeavesMilestoneUntouched(t *testing.T) {
	ctx := context.Background()
	accounts := memory.NewAccountStore()
	owner := &domain.Account{ID: uuid.New(), Email: "kid@example.com"}
	require.NoError(t, accounts.Create(ctx, owner))

	milestones := memory.NewMilestoneStore()
	m := &domain.Milestone{
		ID:           uuid.New(),
		OwnerID:      owner.ID,
		Name:         "Bike",
		TargetAmount: decimal.NewFromInt(200),
		SavedAmount:  decimal.NewFromInt(40),
		StartDate:    domain.DateOf(fixedNow),
		Status:       domain.MilestoneStatusActive,
	}
	require.NoError(t, milestones.Create(ctx, m))

	service := newTestService(memory.NewSavingsStore(), accounts)
	entry, err := service.CreateSavings(ctx, CreateSavingsInput{
		OwnerID:     owner.ID,
		MilestoneID: m.ID,
		Amount:      decimal.NewFromInt(40),
		Date:        fixedNow,
	})
	require.NoError(t, err)

	require.NoError(t, service.DeleteSavings(ctx, entry.ID))
	assert.ErrorIs(t, service.DeleteSavings(ctx, entry.ID), domain.ErrSavingsNotFound)

	stored, err := milestones.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(40).Equal(stored.SavedAmount))
}

func TestDeleteMilestone_KeepsLedger(t *testing.T) {
	ctx := context.Background()
	ledger := memory.NewSavingsStore()
	milestones := memory.NewMilestoneStore()
	milestoneID := uuid.New()

	require.NoError(t, milestones.Create(ctx, &domain.Milestone{ID: milestoneID, Name: "Bike"}))
	require.NoError(t, ledger.Create(ctx, &domain.SavingsEntry{ID: uuid.New(), MilestoneID: milestoneID, Amount: decimal.NewFromInt(5), Date: fixedNow}))

	require.NoError(t, milestones.Delete(ctx, milestoneID))

	service := newTestService(ledger, new(MockAccountDirectory))
	entries, err := service.ListByMilestoneID(ctx, milestoneID)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
