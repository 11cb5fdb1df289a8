package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/simaogato/savings-backend/internal/domain"
	"go.uber.org/zap"
)

// AccountDirectory is a cache-aside domain.AccountDirectory backed by Redis.
// Redis errors never reach the caller: the lookup falls through to the
// wrapped directory and the failure is logged.
type AccountDirectory struct {
	rdb    *redis.Client
	next   domain.AccountDirectory
	ttl    time.Duration
	logger *zap.Logger
}

// NewAccountDirectory wraps next with a Redis cache holding entries for ttl.
func NewAccountDirectory(rdb *redis.Client, next domain.AccountDirectory, ttl time.Duration, logger *zap.Logger) *AccountDirectory {
	return &AccountDirectory{
		rdb:    rdb,
		next:   next,
		ttl:    ttl,
		logger: logger,
	}
}

// cachedAccount is the JSON form stored in Redis. The password hash is
// never cached.
type cachedAccount struct {
	ID          uuid.UUID          `json:"id"`
	FirstName   string             `json:"first_name"`
	LastName    string             `json:"last_name"`
	Email       string             `json:"email"`
	Role        domain.AccountRole `json:"role"`
	ChildID     *uuid.UUID         `json:"child_id,omitempty"`
	DateOfBirth time.Time          `json:"date_of_birth"`
	CreatedAt   time.Time          `json:"created_at"`
}

func accountKey(id uuid.UUID) string {
	return fmt.Sprintf("account:%s", id)
}

// Resolve implements domain.AccountDirectory.
func (d *AccountDirectory) Resolve(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	key := accountKey(id)

	raw, err := d.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var c cachedAccount
		if err := json.Unmarshal(raw, &c); err == nil {
			return c.toDomain(), nil
		}
		d.logger.Warn("Discarding unreadable cached account", zap.String("key", key))
	case errors.Is(err, redis.Nil):
	default:
		d.logger.Warn("Redis account lookup failed, falling back to store",
			zap.String("account_id", id.String()),
			zap.Error(err),
		)
	}

	account, err := d.next.Resolve(ctx, id)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(fromDomain(account))
	if err != nil {
		return account, nil
	}
	if err := d.rdb.Set(ctx, key, payload, d.ttl).Err(); err != nil {
		d.logger.Warn("Redis account cache write failed",
			zap.String("account_id", id.String()),
			zap.Error(err),
		)
	}
	return account, nil
}

// Invalidate drops the cached entry for id.
func (d *AccountDirectory) Invalidate(ctx context.Context, id uuid.UUID) {
	if err := d.rdb.Del(ctx, accountKey(id)).Err(); err != nil {
		d.logger.Warn("Redis account cache invalidation failed",
			zap.String("account_id", id.String()),
			zap.Error(err),
		)
	}
}

func fromDomain(a *domain.Account) cachedAccount {
	return cachedAccount{
		ID:          a.ID,
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		Email:       a.Email,
		Role:        a.Role,
		ChildID:     a.ChildID,
		DateOfBirth: a.DateOfBirth,
		CreatedAt:   a.CreatedAt,
	}
}

func (c cachedAccount) toDomain() *domain.Account {
	return &domain.Account{
		ID:          c.ID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Email:       c.Email,
		Role:        c.Role,
		ChildID:     c.ChildID,
		DateOfBirth: c.DateOfBirth,
		CreatedAt:   c.CreatedAt,
	}
}

// NewRedisClient builds a client from the connection settings.
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}
