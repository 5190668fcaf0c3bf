package queries

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"booking-engine/internal/domain/ledger"
	"booking-engine/internal/domain/span"
	"booking-engine/internal/domain/user"
	"booking-engine/internal/pkg/clock"
	"booking-engine/internal/pkg/errs"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

var ErrInvalidAnchor = errs.New("anchor must be a date (YYYY-MM-DD) or an RFC3339 timestamp")

const summaryLoadTimeout = 30 * time.Second

type LedgerReadStore interface {
	ResourceRefs(ctx context.Context, ownerID uuid.UUID) ([]ledger.ResourceRef, error)
	RevenueRecords(ctx context.Context, ownerID uuid.UUID, p ledger.Period) ([]ledger.RevenueRecord, error)
	ExpenseRecords(ctx context.Context, ownerID uuid.UUID, p ledger.Period) ([]ledger.ExpenseRecord, error)
}

// SummaryCache stores computed summaries. Get returns nil on a miss.
// Version is bumped by writes so keys built with it go stale on change.
type SummaryCache interface {
	Get(ctx context.Context, key string) (*ledger.Summary, error)
	Set(ctx context.Context, key string, s *ledger.Summary, ttl time.Duration) error
	Version(ctx context.Context, ownerID uuid.UUID) (int64, error)
}

type LedgerSettings struct {
	CommissionBps int64
	CacheTTL      time.Duration
}

type LedgerParams struct {
	OwnerID    uuid.UUID
	ResourceID *uuid.UUID
	Range      string
	// Anchor defaults to now. Plain dates and timestamps are both bucketed in
	// TimeZone (UTC if empty).
	Anchor   string
	TimeZone string
}

type LedgerQueries interface {
	Summary(ctx context.Context, actorID uuid.UUID, actorRole user.Role, p LedgerParams) (*ledger.Summary, error)
}

type ledgerQueriesImpl struct {
	store    LedgerReadStore
	cache    SummaryCache
	clock    clock.Clock
	settings LedgerSettings
	group    singleflight.Group
}

func NewLedgerQueries(store LedgerReadStore, cache SummaryCache, clock clock.Clock, settings LedgerSettings) LedgerQueries {
	return &ledgerQueriesImpl{
		store:    store,
		cache:    cache,
		clock:    clock,
		settings: settings,
	}
}

func (q *ledgerQueriesImpl) Summary(ctx context.Context, actorID uuid.UUID, actorRole user.Role, p LedgerParams) (*ledger.Summary, error) {
	if !user.CanManage(actorID, actorRole, p.OwnerID) {
		return nil, errs.ErrForbidden
	}

	rng, err := ledger.ParseRange(p.Range)
	if err != nil {
		return nil, err
	}
	anchor, err := q.resolveAnchor(p.Anchor, p.TimeZone)
	if err != nil {
		return nil, err
	}

	period := ledger.ComputePeriod(rng, anchor)
	filter := ledger.Filter{OwnerID: p.OwnerID, ResourceID: p.ResourceID}

	key := q.cacheKey(ctx, filter, period)
	if key != "" {
		if cached, err := q.cache.Get(ctx, key); err != nil {
			slog.WarnContext(ctx, "ledger cache read failed", "key", key, "error", err.Error())
		} else if cached != nil {
			return cached, nil
		}
	}

	// identical concurrent misses share one load; it is detached from the
	// caller that started it so one disconnect does not fail the others
	flightKey := key
	if flightKey == "" {
		flightKey = summaryIdentity(filter, period, q.settings.CommissionBps)
	}
	flight := q.group.DoChan(flightKey, func() (any, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), summaryLoadTimeout)
		defer cancel()
		return q.load(loadCtx, filter, period)
	})

	var summary *ledger.Summary
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-flight:
		if res.Err != nil {
			return nil, res.Err
		}
		summary = res.Val.(*ledger.Summary)
	}

	if key != "" {
		if err := q.cache.Set(ctx, key, summary, q.settings.CacheTTL); err != nil {
			slog.WarnContext(ctx, "ledger cache write failed", "key", key, "error", err.Error())
		}
	}
	return summary, nil
}

func (q *ledgerQueriesImpl) load(ctx context.Context, f ledger.Filter, p ledger.Period) (*ledger.Summary, error) {
	var (
		refs     []ledger.ResourceRef
		revenue  []ledger.RevenueRecord
		expenses []ledger.ExpenseRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		refs, err = q.store.ResourceRefs(gctx, f.OwnerID)
		return err
	})
	g.Go(func() error {
		var err error
		revenue, err = q.store.RevenueRecords(gctx, f.OwnerID, p)
		return err
	})
	g.Go(func() error {
		var err error
		expenses, err = q.store.ExpenseRecords(gctx, f.OwnerID, p)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s := ledger.Summarize(ledger.Input{
		Filter:        f,
		Period:        p,
		Resources:     refs,
		Reservations:  revenue,
		Expenses:      expenses,
		CommissionBps: q.settings.CommissionBps,
	})
	return &s, nil
}

func (q *ledgerQueriesImpl) resolveAnchor(raw, tz string) (time.Time, error) {
	loc := time.UTC
	if tz = strings.TrimSpace(tz); tz != "" {
		l, err := time.LoadLocation(tz)
		if err != nil {
			return time.Time{}, errs.Mark(err, ErrInvalidQuery)
		}
		loc = l
	}

	if strings.TrimSpace(raw) == "" {
		return q.clock.Now().In(loc), nil
	}
	t, err := span.ParseInstant(raw, loc)
	if err != nil {
		return time.Time{}, errs.Mark(err, ErrInvalidAnchor)
	}
	// a timestamp anchor names an instant; its bucket is decided in loc
	return t.In(loc), nil
}

// cacheKey returns "" when caching is unavailable.
func (q *ledgerQueriesImpl) cacheKey(ctx context.Context, f ledger.Filter, p ledger.Period) string {
	if q.cache == nil || q.settings.CacheTTL <= 0 {
		return ""
	}
	version, err := q.cache.Version(ctx, f.OwnerID)
	if err != nil {
		slog.WarnContext(ctx, "ledger cache version lookup failed", "owner_id", f.OwnerID.String(), "error", err.Error())
		return ""
	}
	return "ledger:v" + strconv.FormatInt(version, 10) + ":" + summaryIdentity(f, p, q.settings.CommissionBps)
}

func summaryIdentity(f ledger.Filter, p ledger.Period, bps int64) string {
	resource := "all"
	if f.ResourceID != nil {
		resource = f.ResourceID.String()
	}
	return strings.Join([]string{
		f.OwnerID.String(),
		resource,
		string(p.Range),
		p.Start.Format(time.RFC3339),
		p.Start.Location().String(),
		strconv.FormatInt(bps, 10),
	}, ":")
}
