package wrapped

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kapu/hf-wrapped-go/internal/constants"
	"github.com/kapu/hf-wrapped-go/internal/domain"
	"github.com/kapu/hf-wrapped-go/internal/service/hub"
	"github.com/kapu/hf-wrapped-go/pkg/errors"
	"go.uber.org/zap"
)

// ActivitySource resolves handles and fetches per-kind activity. Satisfied
// by *hub.Service.
type ActivitySource interface {
	ResolveProfile(ctx context.Context, handle string) (*domain.Profile, error)
	FetchActivity(ctx context.Context, profile *domain.Profile, inputHandle string, year int) *hub.Activity
}

// SnapshotStore is the durable document-store cache for generation results.
// Read misses report absence, never errors; writes are best-effort.
type SnapshotStore interface {
	Read(ctx context.Context, handle string, year int, subjectType domain.SubjectType) (*domain.WrappedResult, bool)
	Write(ctx context.Context, result *domain.WrappedResult)
}

// HotCache is the optional short-TTL cache fronting the snapshot store.
type HotCache interface {
	GetResult(ctx context.Context, key string) (*domain.WrappedResult, bool)
	SetResult(ctx context.Context, key string, result *domain.WrappedResult)
}

// Generator composes resolve, fetch, aggregate, score and persist into one
// generation call under the freshness policy.
type Generator struct {
	source ActivitySource
	store  SnapshotStore
	cache  HotCache // nil disables the hot layer
	logger *zap.Logger
	freeze time.Time
	now    func() time.Time
}

func NewGenerator(source ActivitySource, store SnapshotStore, cache HotCache, logger *zap.Logger) *Generator {
	return &Generator{
		source: source,
		store:  store,
		cache:  cache,
		logger: logger,
		freeze: constants.WrappedConfig.FreezeInstant,
		now:    time.Now,
	}
}

// WithClock overrides the generator's clock. Used by tests to simulate
// instants around the freeze cutoff.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// Generate produces the wrapped result for one request: cache read-through
// when refresh is not requested, otherwise a full live generation gated by
// the global freeze instant.
func (g *Generator) Generate(ctx context.Context, input domain.GenerateInput) (*domain.WrappedResult, error) {
	input = input.Normalize(g.now())

	if !input.AllowRefresh {
		if hit := g.readCached(ctx, input); hit != nil {
			return hit, nil
		}
	}

	if input.AllowRefresh && !g.now().Before(g.freeze) {
		g.logger.Warn("Refresh rejected, freeze instant passed",
			zap.String("handle", input.Handle),
			zap.Int("year", input.Year),
			zap.Time("freeze", g.freeze),
		)
		return nil, errors.NewRefreshClosedError(input.Year)
	}

	profile, err := g.source.ResolveProfile(ctx, input.Handle)
	if err != nil {
		return nil, err
	}

	activity := g.source.FetchActivity(ctx, profile, input.Handle, input.Year)
	snapshot := BuildSnapshot(activity.Models, activity.Datasets, activity.Spaces, activity.Papers)
	archetype := DeriveArchetype(snapshot)
	badges := AssignBadges(snapshot)
	slides := BuildSlides(profile, input.Year, snapshot, archetype, badges)

	result := &domain.WrappedResult{
		Profile:     *profile,
		Year:        input.Year,
		Activity:    *snapshot,
		Archetype:   archetype,
		Badges:      badges,
		Slides:      slides,
		Cached:      false,
		GeneratedAt: g.now().UTC(),
		Source:      domain.ResultSourceLive,
	}

	g.persist(ctx, result)

	g.logger.Info("Wrapped generated",
		zap.String("handle", profile.Handle),
		zap.Int("year", input.Year),
		zap.String("archetype", archetype),
		zap.Int("total_repos", snapshot.TotalRepos),
	)

	return result, nil
}

// readCached consults the hot cache, then the snapshot store. Probing order
// for "auto" subject types is user before organization, matching the store's
// path layout.
func (g *Generator) readCached(ctx context.Context, input domain.GenerateInput) *domain.WrappedResult {
	subjects := subjectCandidates(input.SubjectType)

	if g.cache != nil {
		for _, subject := range subjects {
			if res, ok := g.cache.GetResult(ctx, CacheKey(input.Handle, input.Year, subject)); ok {
				return markCached(res)
			}
		}
	}

	for _, subject := range subjects {
		res, ok := g.store.Read(ctx, input.Handle, input.Year, subject)
		if !ok {
			continue
		}
		if g.cache != nil {
			g.cache.SetResult(ctx, CacheKey(res.Profile.Handle, res.Year, res.Profile.SubjectType), res)
		}
		return markCached(res)
	}

	return nil
}

func (g *Generator) persist(ctx context.Context, result *domain.WrappedResult) {
	g.store.Write(ctx, result)
	if g.cache != nil {
		g.cache.SetResult(ctx, CacheKey(result.Profile.Handle, result.Year, result.Profile.SubjectType), result)
	}
}

// CacheKey is the hot-cache identity for one generation result.
func CacheKey(handle string, year int, subjectType domain.SubjectType) string {
	return fmt.Sprintf("wrapped:%d:%s:%s", year, subjectType, strings.ToLower(strings.TrimPrefix(handle, "@")))
}

func subjectCandidates(subjectType domain.SubjectType) []domain.SubjectType {
	if subjectType.IsConcrete() {
		return []domain.SubjectType{subjectType}
	}
	return []domain.SubjectType{domain.SubjectTypeUser, domain.SubjectTypeOrganization}
}

// markCached returns a copy flagged as a cache hit, leaving the stored
// record untouched.
func markCached(res *domain.WrappedResult) *domain.WrappedResult {
	hit := *res
	hit.Cached = true
	hit.Source = domain.ResultSourceCache
	return &hit
}
