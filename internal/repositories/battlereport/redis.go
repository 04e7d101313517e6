package battlereport

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-battle/internal/redis"
)

const (
	// Key pattern: battle_report:{battle_id}
	reportKeyPrefix = "battle_report:"
	// Sorted set of report ids scored by last save time
	reportIndexKey = "battle_report_index"
	defaultTTL     = 24 * time.Hour

	// Error messages
	errReportNil     = "report cannot be nil"
	errReportIDEmpty = "report ID cannot be empty"
)

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
	// TTL is how long a report lives after its last save. Zero uses one day.
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (cfg *RedisConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if cfg.Client == nil {
		vb.RequiredField("Client")
	}
	if cfg.TTL < 0 {
		vb.Field("TTL", "must not be negative")
	}

	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// NewRedis creates a Redis-backed report repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
		ttl:    ttl,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Save stores the report and refreshes its TTL
func (r *redisRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil || input.Report == nil {
		return nil, errors.InvalidArgument(errReportNil)
	}
	if input.Report.ID == "" {
		return nil, errors.InvalidArgument(errReportIDEmpty)
	}

	report := *input.Report
	now := r.clock.Now()
	if report.CreatedAt.IsZero() {
		report.CreatedAt = now
	}
	report.UpdatedAt = now

	data, err := json.Marshal(&report)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal report %s", report.ID)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, buildKey(report.ID), data, r.ttl)
	pipe.ZAdd(ctx, reportIndexKey, redis.Z{Score: float64(now.UnixNano()), Member: report.ID})
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to store report %s", report.ID)
	}

	return &SaveOutput{Report: &report}, nil
}

// Get retrieves a report by battle ID
func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument(errReportIDEmpty)
	}

	data, err := r.client.Get(ctx, buildKey(input.ID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("battle report %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get report %s", input.ID)
	}

	var report Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal report %s", input.ID)
	}

	return &GetOutput{Report: &report}, nil
}

// List returns the newest reports. Index entries whose report has expired
// are dropped from the index as they are found.
func (r *redisRepository) List(ctx context.Context, input *ListInput) (*ListOutput, error) {
	limit := DefaultListLimit
	if input != nil && input.Limit > 0 {
		limit = input.Limit
	}

	ids, err := r.client.ZRevRange(ctx, reportIndexKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read report index")
	}
	if len(ids) == 0 {
		return &ListOutput{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = buildKey(id)
	}
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get reports")
	}

	out := &ListOutput{Reports: make([]*Report, 0, len(values))}
	var stale []any
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			stale = append(stale, ids[i])
			continue
		}
		var report Report
		if err := json.Unmarshal([]byte(s), &report); err != nil {
			slog.Warn("skipping unreadable battle report", "id", ids[i], "error", err)
			continue
		}
		out.Reports = append(out.Reports, &report)
	}
	if len(stale) > 0 {
		if err := r.client.ZRem(ctx, reportIndexKey, stale...).Err(); err != nil {
			slog.Warn("failed to prune battle report index", "count", len(stale), "error", err)
		}
	}

	return out, nil
}

// Delete removes a report and its index entry
func (r *redisRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument(errReportIDEmpty)
	}

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, buildKey(input.ID))
	pipe.ZRem(ctx, reportIndexKey, input.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete report %s", input.ID)
	}
	if del.Val() == 0 {
		return nil, errors.NotFoundf("battle report %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}

func buildKey(id string) string {
	return reportKeyPrefix + id
}
