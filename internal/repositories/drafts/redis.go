package drafts

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/grimdank-editor/internal/entities/wargame"
	"github.com/KirkDiggler/grimdank-editor/internal/errors"
	"github.com/KirkDiggler/grimdank-editor/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/grimdank-editor/internal/redis"
)

const (
	draftKeyPrefix  = "draft:"
	entityKeyPrefix = "draft:entity:"
)

// RedisConfig holds the dependencies for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
	// TTL for drafts without an explicit expiry (optional, defaults to DefaultTTL)
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	if c.TTL == 0 {
		c.TTL = DefaultTTL
	}

	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	errors.ValidatePositive("TTL", int64(c.TTL), vb)
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// NewRedisRepository creates a new Redis-backed draft repository
func NewRedisRepository(cfg *RedisConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		ttl:    cfg.TTL,
	}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateDraft(input.Draft); err != nil {
		return nil, err
	}

	ttl, err := remaining(input.Draft, r.clock.Now(), r.ttl)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Draft)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal draft")
	}

	var mappingKey, previousID string
	if input.Draft.EntityID != "" {
		mappingKey = entityKey(entityKeyPrefix, input.Draft.Kind, input.Draft.EntityID)
		previousID, err = r.client.Get(ctx, mappingKey).Result()
		if err != nil && err != redis.Nil {
			return nil, persistence(err, "failed to check existing draft")
		}
	}

	pipe := r.client.TxPipeline()

	if previousID != "" && previousID != input.Draft.ID {
		pipe.Del(ctx, draftKeyPrefix+previousID)
	}
	pipe.Set(ctx, draftKeyPrefix+input.Draft.ID, data, ttl)
	if mappingKey != "" {
		pipe.Set(ctx, mappingKey, input.Draft.ID, ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, persistence(err, "failed to create draft")
	}

	slog.DebugContext(ctx, "draft created",
		"draft_id", input.Draft.ID,
		"kind", input.Draft.Kind,
		"replaced", previousID)

	return &CreateOutput{Draft: input.Draft}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errDraftIDEmpty)
	}

	result, err := r.client.Get(ctx, draftKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("draft with ID %s not found", input.ID)
		}
		return nil, persistence(err, "failed to get draft")
	}

	var draft wargame.Draft
	if err := json.Unmarshal([]byte(result), &draft); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal draft")
	}

	return &GetOutput{Draft: &draft}, nil
}

func (r *redisRepository) GetByEntity(ctx context.Context, input GetByEntityInput) (*GetByEntityOutput, error) {
	if input.EntityID == "" {
		return nil, errors.InvalidArgument(errEntityIDEmpty)
	}

	mappingKey := entityKey(entityKeyPrefix, input.Kind, input.EntityID)
	draftID, err := r.client.Get(ctx, mappingKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no draft found for %s %s", input.Kind, input.EntityID)
		}
		return nil, persistence(err, "failed to get entity draft mapping")
	}

	out, err := r.Get(ctx, GetInput{ID: draftID})
	if err != nil {
		// drop a mapping whose draft is gone
		if errors.IsNotFound(err) {
			r.client.Del(ctx, mappingKey)
		}
		return nil, err
	}

	return &GetByEntityOutput{Draft: out.Draft}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateDraft(input.Draft); err != nil {
		return nil, err
	}

	key := draftKeyPrefix + input.Draft.ID
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, persistence(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("draft with ID %s not found", input.Draft.ID)
	}

	ttl, err := remaining(input.Draft, r.clock.Now(), r.ttl)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Draft)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal draft")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, ttl)
	if input.Draft.EntityID != "" {
		pipe.Set(ctx, entityKey(entityKeyPrefix, input.Draft.Kind, input.Draft.EntityID), input.Draft.ID, ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, persistence(err, "failed to update draft")
	}

	return &UpdateOutput{Draft: input.Draft}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errDraftIDEmpty)
	}

	out, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, draftKeyPrefix+input.ID)
	if out.Draft.EntityID != "" {
		pipe.Del(ctx, entityKey(entityKeyPrefix, out.Draft.Kind, out.Draft.EntityID))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, persistence(err, "failed to delete draft")
	}

	return &DeleteOutput{}, nil
}

func persistence(err error, message string) *errors.Error {
	return errors.Wrap(err, message).WithKind(errors.KindPersistenceFailure)
}
