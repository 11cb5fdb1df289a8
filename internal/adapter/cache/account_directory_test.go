package cache

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/simaogato/savings-backend/internal/adapter/repository/memory"
	"github.com/simaogato/savings-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// unreachableRedis points at a port nothing listens on, so every command fails fast.
func unreachableRedis() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func TestAccountDirectory_FallsBackWhenRedisIsDown(t *testing.T) {
	ctx := context.Background()
	store := memory.NewAccountStore()
	account := &domain.Account{ID: uuid.New(), Email: "kid@example.com", Role: domain.AccountRoleChild}
	require.NoError(t, store.Create(ctx, account))

	rdb := unreachableRedis()
	defer rdb.Close()
	directory := NewAccountDirectory(rdb, store, time.Minute, zap.NewNop())

	got, err := directory.Resolve(ctx, account.ID)

	require.NoError(t, err)
	assert.Equal(t, account.ID, got.ID)
	assert.Equal(t, "kid@example.com", got.Email)
}

func TestAccountDirectory_MissIsReportedFromStore(t *testing.T) {
	rdb := unreachableRedis()
	defer rdb.Close()
	directory := NewAccountDirectory(rdb, memory.NewAccountStore(), time.Minute, zap.NewNop())

	_, err := directory.Resolve(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	directory.Invalidate(context.Background(), uuid.New())
}

func TestCachedAccount_OmitsPasswordHash(t *testing.T) {
	childID := uuid.New()
	a := &domain.Account{
		ID:           uuid.New(),
		Email:        "parent@example.com",
		PasswordHash: "secret-hash",
		Role:         domain.AccountRoleParent,
		ChildID:      &childID,
	}

	restored := fromDomain(a).toDomain()

	assert.Empty(t, restored.PasswordHash)
	assert.Equal(t, a.Email, restored.Email)
	assert.Equal(t, childID, *restored.ChildID)
}
