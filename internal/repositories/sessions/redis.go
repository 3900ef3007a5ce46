package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/dustward/combat-engine/internal/domain/combat"
	cbterr "github.com/dustward/combat-engine/internal/errors"
)

const (
	sessionKeyPrefix = "combat:session:"
	sessionSetKey    = "combat:sessions"
	activeKey        = "combat:active"
)

// Data is the serialized form of a session in Redis. The session snapshot is
// stored verbatim; SavedAt records when the snapshot was taken.
type Data struct {
	ID      string          `json:"id"`
	SavedAt time.Time       `json:"saved_at"`
	Session json.RawMessage `json:"session"`
}

type redisRepo struct {
	client       redis.UniversalClient
	timeProvider TimeProvider
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client       redis.UniversalClient
	TimeProvider TimeProvider // optional, defaults to the system clock
}

// NewRedisRepository creates a Redis-backed session repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("redis client is required")
	}

	repo := &redisRepo{
		client:       cfg.Client,
		timeProvider: cfg.TimeProvider,
	}
	if repo.timeProvider == nil {
		repo.timeProvider = NewRealTimeProvider()
	}
	return repo
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

func (r *redisRepo) marshal(session *combat.Session) (string, error) {
	snapshot, err := combat.Snapshot(session)
	if err != nil {
		return "", err
	}

	data, err := json.Marshal(Data{
		ID:      session.ID,
		SavedAt: r.timeProvider.Now(),
		Session: snapshot,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal session data: %w", err)
	}
	return string(data), nil
}

func unmarshal(raw []byte) (*combat.Session, error) {
	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session data: %w", err)
	}
	return combat.RestoreSnapshot(data.Session)
}

// Create stores a new session and marks it active
func (r *redisRepo) Create(ctx context.Context, session *combat.Session) error {
	if session == nil {
		return cbterr.InvalidArgument("session cannot be nil")
	}

	exists, err := r.client.Exists(ctx, sessionKey(session.ID)).Result()
	if err != nil {
		return cbterr.WrapWithCode(err, cbterr.CodeUnavailable, "failed to check session existence")
	}
	if exists > 0 {
		return cbterr.AlreadyExists("session with ID " + session.ID + " already exists")
	}

	payload, err := r.marshal(session)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, sessionKey(session.ID), payload, 0)
	pipe.SAdd(ctx, sessionSetKey, session.ID)
	pipe.Set(ctx, activeKey, session.ID, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return cbterr.WrapWithCode(err, cbterr.CodeUnavailable, "failed to store session in Redis")
	}

	return nil
}

// Get retrieves a session by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*combat.Session, error) {
	raw, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, cbterr.NotFoundf("session not found: %s", id)
		}
		return nil, cbterr.WrapWithCode(err, cbterr.CodeUnavailable, "failed to get session from Redis")
	}

	return unmarshal(raw)
}

// Update overwrites an existing session
func (r *redisRepo) Update(ctx context.Context, session *combat.Session) error {
	if session == nil {
		return cbterr.InvalidArgument("session cannot be nil")
	}

	exists, err := r.client.Exists(ctx, sessionKey(session.ID)).Result()
	if err != nil {
		return cbterr.WrapWithCode(err, cbterr.CodeUnavailable, "failed to check session existence")
	}
	if exists == 0 {
		return cbterr.NotFoundf("session not found: %s", session.ID)
	}

	payload, err := r.marshal(session)
	if err != nil {
		return err
	}

	if err := r.client.Set(ctx, sessionKey(session.ID), payload, 0).Err(); err != nil {
		return cbterr.WrapWithCode(err, cbterr.CodeUnavailable, "failed to update session in Redis")
	}
	return nil
}

// Delete removes a session, clearing the active marker if it points here
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	active, err := r.client.Get(ctx, activeKey).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return cbterr.WrapWithCode(err, cbterr.CodeUnavailable, "failed to read active session marker")
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, sessionKey(id))
	pipe.SRem(ctx, sessionSetKey, id)
	if active == id {
		pipe.Del(ctx, activeKey)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return cbterr.WrapWithCode(err, cbterr.CodeUnavailable, "failed to delete session from Redis")
	}

	return nil
}

// GetActive retrieves the single active session, if any
func (r *redisRepo) GetActive(ctx context.Context) (*combat.Session, error) {
	id, err := r.client.Get(ctx, activeKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, cbterr.NotFound("no active session")
		}
		return nil, cbterr.WrapWithCode(err, cbterr.CodeUnavailable, "failed to read active session marker")
	}

	return r.Get(ctx, id)
}

// List retrieves all stored sessions
func (r *redisRepo) List(ctx context.Context) ([]*combat.Session, error) {
	ids, err := r.client.SMembers(ctx, sessionSetKey).Result()
	if err != nil {
		return nil, cbterr.WrapWithCode(err, cbterr.CodeUnavailable, "failed to list session IDs")
	}

	var mu sync.Mutex
	result := make([]*combat.Session, 0, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	for _, id := range ids {
		g.Go(func() error {
			session, err := r.Get(gctx, id)
			if err != nil {
				// A session deleted between SMembers and Get is not an error
				if cbterr.IsNotFound(err) {
					return nil
				}
				return err
			}
			mu.Lock()
			result = append(result, session)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}
