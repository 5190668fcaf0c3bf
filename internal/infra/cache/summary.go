package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"booking-engine/internal/domain/ledger"
	"booking-engine/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	summaryPrefix = "ledger:summary:"
	versionPrefix = "ledger:version:"
)

// SummaryCache keeps ledger summaries in redis. Each owner has a version
// counter that is part of every summary key; Invalidate bumps it so older
// entries are never read again and expire on their own.
type SummaryCache struct {
	client redis.Cmdable
}

func NewSummaryCache(client redis.Cmdable) *SummaryCache {
	return &SummaryCache{client: client}
}

type summaryEntry struct {
	Summary  ledger.Summary `json:"summary"`
	Location string         `json:"location"`
}

func (c *SummaryCache) Get(ctx context.Context, key string) (*ledger.Summary, error) {
	raw, err := c.client.Get(ctx, summaryPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, errs.Wrap(err, "failed to read ledger summary")
	}
	return decodeSummary(raw)
}

func (c *SummaryCache) Set(ctx context.Context, key string, s *ledger.Summary, ttl time.Duration) error {
	raw, err := encodeSummary(s)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, summaryPrefix+key, raw, ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to write ledger summary")
	}
	return nil
}

func (c *SummaryCache) Version(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	v, err := c.client.Get(ctx, versionPrefix+ownerID.String()).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, errs.Wrap(err, "failed to read ledger version")
	}
	return v, nil
}

func (c *SummaryCache) Invalidate(ctx context.Context, ownerID uuid.UUID) error {
	if err := c.client.Incr(ctx, versionPrefix+ownerID.String()).Err(); err != nil {
		return errs.Wrap(err, "failed to bump ledger version")
	}
	return nil
}

func encodeSummary(s *ledger.Summary) ([]byte, error) {
	raw, err := json.Marshal(summaryEntry{Summary: *s, Location: s.Period.Start.Location().String()})
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode ledger summary")
	}
	return raw, nil
}

func decodeSummary(raw []byte) (*ledger.Summary, error) {
	var e summaryEntry
	if err := json.Unmarshal(raw, &e); err != nil {
		return nil, errs.Wrap(err, "failed to decode ledger summary")
	}
	if loc, err := time.LoadLocation(e.Location); err == nil {
		e.Summary.Period.Start = e.Summary.Period.Start.In(loc)
		e.Summary.Period.End = e.Summary.Period.End.In(loc)
	}
	if e.Summary.ByCategory == nil {
		e.Summary.ByCategory = []ledger.CategoryTotal{}
	}
	return &e.Summary, nil
}

// Disabled satisfies the cache ports when redis is turned off.
type Disabled struct{}

func (Disabled) Get(context.Context, string) (*ledger.Summary, error) { return nil, nil }

func (Disabled) Set(context.Context, string, *ledger.Summary, time.Duration) error { return nil }

func (Disabled) Version(context.Context, uuid.UUID) (int64, error) { return 0, nil }

func (Disabled) Invalidate(context.Context, uuid.UUID) error { return nil }
