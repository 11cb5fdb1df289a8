//go:build integration

package postgres

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/savings-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testDB *DB

// TestMain connects to the database named by DB_CONN_STR and applies the
// migrations before running the suite.
func TestMain(m *testing.M) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var err error
	testDB, err = NewDB(ctx, getDBConnectionString())
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to database: %v", err))
	}

	if err := RunMigrations(testDB); err != nil {
		panic(fmt.Sprintf("Failed to run migrations: %v", err))
	}

	code := m.Run()
	testDB.Close()
	os.Exit(code)
}

func getDBConnectionString() string {
	if connStr := os.Getenv("DB_CONN_STR"); connStr != "" {
		return connStr
	}
	return "host=localhost port=5432 user=postgres password=postgres dbname=savings sslmode=disable"
}

func newStoredMilestone(t *testing.T, repo domain.MilestoneRepository, target string) *domain.Milestone {
	t.Helper()

	m := &domain.Milestone{
		ID:           uuid.New(),
		OwnerID:      uuid.New(),
		Name:         "integration-" + uuid.NewString(),
		TargetAmount: decimal.RequireFromString(target),
		SavedAmount:  decimal.Zero,
		StartDate:    domain.DateOf(time.Now()),
		Status:       domain.MilestoneStatusActive,
	}
	require.NoError(t, repo.Create(context.Background(), m))
	t.Cleanup(func() { _ = repo.Delete(context.Background(), m.ID) })
	return m
}

func TestMilestoneRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewMilestoneRepository(testDB, zap.NewNop())
	m := newStoredMilestone(t, repo, "200.00")

	got, err := repo.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, m.Name, got.Name)
	assert.True(t, m.TargetAmount.Equal(got.TargetAmount))
	assert.Equal(t, m.StartDate, got.StartDate)
	assert.Nil(t, got.CompletionDate)

	byName, err := repo.GetByName(ctx, m.Name)
	require.NoError(t, err)
	assert.Equal(t, m.ID, byName.ID)

	byOwner, err := repo.ListByOwner(ctx, m.OwnerID)
	require.NoError(t, err)
	require.Len(t, byOwner, 1)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrMilestoneNotFound)
}

func TestMilestoneRepository_ModifyCompletesAtTarget(t *testing.T) {
	ctx := context.Background()
	repo := NewMilestoneRepository(testDB, zap.NewNop())
	m := newStoredMilestone(t, repo, "200.00")
	today := time.Now()

	_, err := repo.Modify(ctx, m.ID, func(m *domain.Milestone) error {
		return m.ApplyContribution(decimal.RequireFromString("150.00"), today)
	})
	require.NoError(t, err)

	updated, err := repo.Modify(ctx, m.ID, func(m *domain.Milestone) error {
		return m.ApplyContribution(decimal.RequireFromString("50.00"), today)
	})
	require.NoError(t, err)
	assert.Equal(t, domain.MilestoneStatusCompleted, updated.Status)

	stored, err := repo.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("200.00").Equal(stored.SavedAmount))
	require.NotNil(t, stored.CompletionDate)
	assert.Equal(t, domain.DateOf(today), *stored.CompletionDate)

	completed, err := repo.ListByCompletionDate(ctx, today)
	require.NoError(t, err)
	ids := make([]uuid.UUID, 0, len(completed))
	for _, c := range completed {
		ids = append(ids, c.ID)
	}
	assert.Contains(t, ids, m.ID)
}

func TestMilestoneRepository_ModifyRejectionPersistsNothing(t *testing.T) {
	ctx := context.Background()
	repo := NewMilestoneRepository(testDB, zap.NewNop())
	m := newStoredMilestone(t, repo, "200.00")

	_, err := repo.Modify(ctx, m.ID, func(m *domain.Milestone) error {
		return m.ApplyContribution(decimal.RequireFromString("250.00"), time.Now())
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	stored, err := repo.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.True(t, stored.SavedAmount.IsZero())
	assert.Equal(t, domain.MilestoneStatusActive, stored.Status)
}

func TestMilestoneRepository_ConcurrentModifyIsSerialized(t *testing.T) {
	ctx := context.Background()
	repo := NewMilestoneRepository(testDB, zap.NewNop())
	m := newStoredMilestone(t, repo, "200.00")

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = repo.Modify(ctx, m.ID, func(m *domain.Milestone) error {
				return m.ApplyContribution(decimal.RequireFromString("120.00"), time.Now())
			})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.True(t, errors.Is(err, domain.ErrInvalidAmount), "unexpected error: %v", err)
	}
	assert.Equal(t, 1, succeeded)

	stored, err := repo.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("120.00").Equal(stored.SavedAmount))
}

func TestSavingsRepository_ListByMilestoneID(t *testing.T) {
	ctx := context.Background()
	repo := NewSavingsRepository(testDB, zap.NewNop())
	milestoneID := uuid.New()
	today := domain.DateOf(time.Now())

	for _, amount := range []string{"10.00", "20.50"} {
		entry := &domain.SavingsEntry{
			ID:          uuid.New(),
			OwnerID:     uuid.New(),
			MilestoneID: milestoneID,
			Amount:      decimal.RequireFromString(amount),
			Date:        today,
		}
		require.NoError(t, repo.Create(ctx, entry))
		t.Cleanup(func() { _ = repo.Delete(context.Background(), entry.ID) })
	}

	entries, err := repo.ListByMilestoneID(ctx, milestoneID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, today, entries[0].Date)

	err = repo.Delete(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrSavingsNotFound)
}

func TestAccountRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository(testDB, zap.NewNop())
	email := fmt.Sprintf("%s@example.com", uuid.NewString())

	newAccount := func() *domain.Account {
		return &domain.Account{
			ID:           uuid.New(),
			FirstName:    "Ana",
			LastName:     "Silva",
			Email:        email,
			PasswordHash: "hash",
			Role:         domain.AccountRoleParent,
			DateOfBirth:  time.Date(1990, time.May, 1, 0, 0, 0, 0, time.UTC),
		}
	}

	first := newAccount()
	require.NoError(t, repo.Create(ctx, first))
	t.Cleanup(func() { _ = repo.Delete(context.Background(), first.ID) })

	err := repo.Create(ctx, newAccount())
	assert.ErrorIs(t, err, domain.ErrAccountExists)

	resolved, err := repo.Resolve(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, email, resolved.Email)
}
