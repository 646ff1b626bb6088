package wrapped

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/kapu/hf-wrapped-go/internal/constants"
	"github.com/kapu/hf-wrapped-go/internal/domain"
)

// BuildSlides assembles the ordered story for one generation. The sequence
// is fixed: intro, summary, models, datasets, spaces, papers, badges,
// archetype, cta. The four per-kind slides are omitted entirely when their
// source list is empty.
func BuildSlides(profile *domain.Profile, year int, activity *domain.ActivitySnapshot, archetype string, badges []string) []*domain.Slide {
	slides := make([]*domain.Slide, 0, 9)

	slides = append(slides, &domain.Slide{
		ID:       "intro",
		Kind:     domain.SlideKindIntro,
		Title:    fmt.Sprintf("Your %d Hugging Face Wrapped", year),
		Subtitle: fmt.Sprintf("Hello %s!", profile.Name()),
		Metrics: []domain.SlideMetric{
			{Label: "Total repositories", Value: strconv.Itoa(activity.TotalRepos), Accent: domain.MetricAccentPrimary},
			{Label: "Total downloads", Value: formatCompact(activity.TotalDownloads)},
		},
		Highlights: firstN(activity.TopTags, 3),
	})

	summaryHighlight := "Consistent contributions all year"
	if activity.BusiestMonth != "" {
		summaryHighlight = fmt.Sprintf("Busiest month: %s", activity.BusiestMonth)
	}
	slides = append(slides, &domain.Slide{
		ID:       "summary",
		Kind:     domain.SlideKindSummary,
		Title:    "Activity pulse",
		Subtitle: "Across models, datasets, spaces and papers",
		Metrics: []domain.SlideMetric{
			{Label: "Models", Value: strconv.Itoa(len(activity.Models))},
			{Label: "Datasets", Value: strconv.Itoa(len(activity.Datasets))},
			{Label: "Spaces", Value: strconv.Itoa(len(activity.Spaces))},
			{Label: "Papers", Value: strconv.Itoa(len(activity.Papers))},
		},
		Highlights: []string{summaryHighlight},
	})

	if len(activity.Models) > 0 {
		slides = append(slides, &domain.Slide{
			ID:         "models",
			Kind:       domain.SlideKindModels,
			Title:      "Top models",
			Subtitle:   "Most loved by downloads & likes",
			Metrics:    downloadMetrics(rankArtifacts(activity.Models, domain.ArtifactKindModel)),
			Highlights: firstN(activity.TopTags, 2),
		})
	}

	if len(activity.Datasets) > 0 {
		slides = append(slides, &domain.Slide{
			ID:       "datasets",
			Kind:     domain.SlideKindDatasets,
			Title:    "Top datasets",
			Subtitle: "Fueling experiments everywhere",
			Metrics:  downloadMetrics(rankArtifacts(activity.Datasets, domain.ArtifactKindDataset)),
		})
	}

	if len(activity.Spaces) > 0 {
		slides = append(slides, &domain.Slide{
			ID:       "spaces",
			Kind:     domain.SlideKindSpaces,
			Title:    "Spaces that sparked engagement",
			Subtitle: "Most engaging demos",
			Metrics:  likeMetrics(rankArtifacts(activity.Spaces, domain.ArtifactKindSpace)),
		})
	}

	if len(activity.Papers) > 0 {
		highlights := make([]string, 0, constants.WrappedConfig.TopRepoCount)
		for _, paper := range activity.Papers {
			if len(highlights) == constants.WrappedConfig.TopRepoCount {
				break
			}
			highlights = append(highlights, paper.Title)
		}
		slides = append(slides, &domain.Slide{
			ID:       "papers",
			Kind:     domain.SlideKindPapers,
			Title:    "Research highlights",
			Subtitle: "Papers you brought to the community",
			Metrics: []domain.SlideMetric{
				{Label: "Papers", Value: strconv.Itoa(len(activity.Papers)), Accent: domain.MetricAccentPrimary},
			},
			Highlights: highlights,
		})
	}

	badgeSubtitle := "Fresh start, badges await"
	if len(badges) > 0 {
		badgeSubtitle = "Your year at a glance"
	}
	slides = append(slides, &domain.Slide{
		ID:         "badges",
		Kind:       domain.SlideKindBadges,
		Title:      "Badges earned",
		Subtitle:   badgeSubtitle,
		Highlights: firstN(badges, constants.WrappedConfig.MaxBadges),
	})

	slides = append(slides, &domain.Slide{
		ID:       "archetype",
		Kind:     domain.SlideKindArchetype,
		Title:    "Your archetype",
		Subtitle: archetype,
		Metrics: []domain.SlideMetric{
			{Label: "Downloads", Value: formatCompact(activity.TotalDownloads), Accent: domain.MetricAccentPrimary},
			{Label: "Likes", Value: formatCompact(activity.TotalLikes)},
			{Label: "Repos", Value: strconv.Itoa(activity.TotalRepos)},
		},
		Highlights: firstN(activity.TopTags, 3),
	})

	slides = append(slides, &domain.Slide{
		ID:       "cta",
		Kind:     domain.SlideKindCTA,
		Title:    "Share it",
		Subtitle: "Download the slides or share your Space link",
		Metrics: []domain.SlideMetric{
			{Label: "Models", Value: strconv.Itoa(len(activity.Models))},
			{Label: "Datasets", Value: strconv.Itoa(len(activity.Datasets))},
			{Label: "Spaces", Value: strconv.Itoa(len(activity.Spaces))},
		},
	})

	return slides
}

// rankArtifacts returns the top entries for one kind under the fixed
// comparator: spaces rank by likes, then downloads, then recency, then name;
// models and datasets rank by downloads, then likes, then recency, then
// name. Deterministic for identical inputs.
func rankArtifacts(artifacts []*domain.Artifact, kind domain.ArtifactKind) []*domain.Artifact {
	ranked := make([]*domain.Artifact, len(artifacts))
	copy(ranked, artifacts)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]

		primaryA, primaryB := a.Downloads, b.Downloads
		secondaryA, secondaryB := a.Likes, b.Likes
		if kind == domain.ArtifactKindSpace {
			primaryA, primaryB = a.Likes, b.Likes
			secondaryA, secondaryB = a.Downloads, b.Downloads
		}

		if primaryA != primaryB {
			return primaryA > primaryB
		}
		if secondaryA != secondaryB {
			return secondaryA > secondaryB
		}
		if ta, tb := rankTimestamp(a), rankTimestamp(b); ta != tb {
			return ta > tb
		}
		return a.Name < b.Name
	})

	if len(ranked) > constants.WrappedConfig.TopRepoCount {
		ranked = ranked[:constants.WrappedConfig.TopRepoCount]
	}
	return ranked
}

func rankTimestamp(a *domain.Artifact) int64 {
	if a.CreatedAt != nil {
		return a.CreatedAt.UnixMilli()
	}
	if a.UpdatedAt != nil {
		return a.UpdatedAt.UnixMilli()
	}
	return 0
}

func downloadMetrics(artifacts []*domain.Artifact) []domain.SlideMetric {
	metrics := make([]domain.SlideMetric, 0, len(artifacts))
	for _, a := range artifacts {
		metrics = append(metrics, domain.SlideMetric{
			Label: a.Name,
			Value: fmt.Sprintf("%s downloads", formatCompact(a.Downloads)),
		})
	}
	return metrics
}

func likeMetrics(artifacts []*domain.Artifact) []domain.SlideMetric {
	metrics := make([]domain.SlideMetric, 0, len(artifacts))
	for _, a := range artifacts {
		metrics = append(metrics, domain.SlideMetric{
			Label: a.Name,
			Value: fmt.Sprintf("%s likes", formatCompact(a.Likes)),
		})
	}
	return metrics
}
