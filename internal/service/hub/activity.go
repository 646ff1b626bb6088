package hub

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/kapu/hf-wrapped-go/internal/constants"
	"github.com/kapu/hf-wrapped-go/internal/domain"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

// Activity bundles the raw per-kind listings fetched for one profile/year.
type Activity struct {
	Models   []*domain.Artifact
	Datasets []*domain.Artifact
	Spaces   []*domain.Artifact
	Papers   []*domain.Paper
}

// FetchActivity retrieves all artifacts of each kind plus papers for the
// target year. The four fetches run concurrently and independently: a
// failure or emptiness in one kind never blocks the others, so the result
// is total (empty lists, never an error).
func (s *Service) FetchActivity(ctx context.Context, profile *domain.Profile, inputHandle string, year int) *Activity {
	authors := buildAuthorCandidates(profile.Handle, inputHandle)

	s.logger.Info("Fetching hub activity",
		zap.String("handle", profile.Handle),
		zap.Int("year", year),
		zap.Strings("author_candidates", authors),
	)

	activity := &Activity{}

	p := pool.New()
	p.Go(func() {
		activity.Models = s.fetchArtifactsWithFallback(ctx, domain.ArtifactKindModel, authors, year)
	})
	p.Go(func() {
		activity.Datasets = s.fetchArtifactsWithFallback(ctx, domain.ArtifactKindDataset, authors, year)
	})
	p.Go(func() {
		activity.Spaces = s.fetchArtifactsWithFallback(ctx, domain.ArtifactKindSpace, authors, year)
	})
	p.Go(func() {
		activity.Papers = s.fetchPapersWithFallback(ctx, authors)
	})
	p.Wait()

	s.logger.Info("Hub activity fetched",
		zap.String("handle", profile.Handle),
		zap.Int("models", len(activity.Models)),
		zap.Int("datasets", len(activity.Datasets)),
		zap.Int("spaces", len(activity.Spaces)),
		zap.Int("papers", len(activity.Papers)),
	)

	return activity
}

// buildAuthorCandidates merges the resolved canonical handle with the handle
// the caller originally supplied, each in original and lower-cased form,
// deduplicated preserving order.
func buildAuthorCandidates(canonicalHandle, inputHandle string) []string {
	canonical := strings.TrimPrefix(canonicalHandle, "@")
	input := strings.TrimPrefix(strings.TrimSpace(inputHandle), "@")

	variants := []string{
		canonical,
		strings.ToLower(canonical),
		input,
		strings.ToLower(input),
	}

	seen := make(map[string]struct{}, len(variants))
	candidates := make([]string, 0, len(variants))
	for _, v := range variants {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		candidates = append(candidates, v)
	}
	return candidates
}

// firstNonEmpty runs attempt over candidates in order and returns the first
// non-empty result. An error or an empty result both advance to the next
// candidate; exhausting all candidates yields an empty slice.
func firstNonEmpty[T any](candidates []string, attempt func(candidate string) ([]T, error), onFail func(candidate string, err error)) []T {
	for _, candidate := range candidates {
		results, err := attempt(candidate)
		if err != nil {
			onFail(candidate, err)
			continue
		}
		if len(results) > 0 {
			return results
		}
	}
	return nil
}

func (s *Service) fetchArtifactsWithFallback(ctx context.Context, kind domain.ArtifactKind, authors []string, year int) []*domain.Artifact {
	fetched := firstNonEmpty(authors, func(author string) ([]*domain.Artifact, error) {
		artifacts, err := s.fetchArtifacts(ctx, kind, author, year)
		if err != nil {
			return nil, err
		}
		s.logger.Debug("Hub listing fetched",
			zap.String("kind", kind.String()),
			zap.String("author", author),
			zap.Int("count", len(artifacts)),
		)
		return artifacts, nil
	}, func(author string, err error) {
		s.logger.Warn("Hub listing failed, trying next author candidate",
			zap.String("kind", kind.String()),
			zap.String("author", author),
			zap.Error(err),
		)
	})

	return collectWithinYear(fetched, year)
}

// fetchArtifacts follows the listing cursor for one author until no cursor
// remains or the oldest item of the current page predates the target year.
// The early stop relies on the API returning items sorted newest-first; if
// that ordering ever breaks, this under-collects rather than crashing.
func (s *Service) fetchArtifacts(ctx context.Context, kind domain.ArtifactKind, author string, year int) ([]*domain.Artifact, error) {
	baseURL := fmt.Sprintf("%s/api/%ss?author=%s&full=true&sort=createdAt&direction=-1",
		s.client.BaseURL(), kind.String(), url.QueryEscape(author))

	artifacts := make([]*domain.Artifact, 0)
	nextURL := baseURL

	for page := 0; page < constants.APIConfig.MaxPages; page++ {
		body, err := s.client.GetURL(ctx, nextURL)
		if err != nil {
			return nil, err
		}

		items, cursor := normalizeRepoPage(body)
		if len(items) == 0 {
			break
		}

		for i := range items {
			artifacts = append(artifacts, items[i].toArtifact(kind, author))
		}

		if pageOldestPredatesYear(items, year) {
			break
		}

		if cursor == "" {
			break
		}
		if strings.HasPrefix(cursor, "http") {
			nextURL = cursor
		} else {
			nextURL = baseURL + "&cursor=" + url.QueryEscape(cursor)
		}
	}

	return artifacts, nil
}

// pageOldestPredatesYear inspects the last dated item of a page (items come
// newest-first, so the last one is the oldest) and reports whether it was
// created before the target year.
func pageOldestPredatesYear(items []hubRepoRaw, year int) bool {
	for i := len(items) - 1; i >= 0; i-- {
		created := parseHubTime(items[i].CreatedAt)
		if created == nil {
			continue
		}
		return created.UTC().Year() < year
	}
	return false
}

// collectWithinYear keeps items created in the target year. Items are
// newest-first, so the scan terminates at the first item from an earlier
// year instead of filtering the whole list; undated items are skipped, not
// treated as terminators.
func collectWithinYear(artifacts []*domain.Artifact, year int) []*domain.Artifact {
	kept := make([]*domain.Artifact, 0, len(artifacts))
	for _, artifact := range artifacts {
		createdYear := artifact.CreatedYear()
		if createdYear == 0 {
			continue
		}
		if createdYear < year {
			break
		}
		if createdYear == year {
			kept = append(kept, artifact)
		}
	}
	return kept
}

func (s *Service) fetchPapersWithFallback(ctx context.Context, submitters []string) []*domain.Paper {
	return firstNonEmpty(submitters, func(submitter string) ([]*domain.Paper, error) {
		return s.fetchPapers(ctx, submitter)
	}, func(submitter string, err error) {
		s.logger.Warn("Paper listing failed, trying next submitter candidate",
			zap.String("submitter", submitter),
			zap.Error(err),
		)
	})
}

// fetchPapers retrieves a single bounded page of the daily papers feed.
// Papers carry no trustworthy creation date, so no year filter applies.
func (s *Service) fetchPapers(ctx context.Context, submitter string) ([]*domain.Paper, error) {
	params := url.Values{}
	params.Set("submitter", submitter)
	params.Set("limit", strconv.Itoa(constants.APIConfig.PapersPageSize))

	body, err := s.client.GetJSON(ctx, "/api/daily_papers", params)
	if err != nil {
		return nil, err
	}

	var raw []hubPaperRaw
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}

	papers := make([]*domain.Paper, 0, len(raw))
	for i := range raw {
		papers = append(papers, raw[i].toPaper(s.client.BaseURL()))
	}

	s.logger.Debug("Paper listing fetched",
		zap.String("submitter", submitter),
		zap.Int("count", len(papers)),
	)

	return papers, nil
}
