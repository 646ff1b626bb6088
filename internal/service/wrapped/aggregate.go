package wrapped

import (
	"sort"

	"github.com/kapu/hf-wrapped-go/internal/constants"
	"github.com/kapu/hf-wrapped-go/internal/domain"
)

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// BuildSnapshot reduces the raw per-kind listings into a single statistics
// snapshot. Pure and total: missing metrics count as zero and papers are
// excluded from download/like totals.
func BuildSnapshot(models, datasets, spaces []*domain.Artifact, papers []*domain.Paper) *domain.ActivitySnapshot {
	all := make([]*domain.Artifact, 0, len(models)+len(datasets)+len(spaces))
	all = append(all, models...)
	all = append(all, datasets...)
	all = append(all, spaces...)

	totalDownloads := 0
	totalLikes := 0
	for _, artifact := range all {
		totalDownloads += artifact.Downloads
		totalLikes += artifact.Likes
	}

	return &domain.ActivitySnapshot{
		Models:         orEmpty(models),
		Datasets:       orEmpty(datasets),
		Spaces:         orEmpty(spaces),
		Papers:         orEmptyPapers(papers),
		TotalDownloads: totalDownloads,
		TotalLikes:     totalLikes,
		TotalRepos:     len(all),
		TopTags:        topTags(all, constants.WrappedConfig.TopTagCount),
		BusiestMonth:   busiestMonth(all),
	}
}

// topTags ranks tags by descending frequency across all artifacts, breaking
// ties by first-seen order, and keeps the top limit entries.
func topTags(artifacts []*domain.Artifact, limit int) []string {
	frequency := make(map[string]int)
	firstSeen := make(map[string]int)
	order := 0

	for _, artifact := range artifacts {
		for _, tag := range artifact.Tags {
			if _, ok := frequency[tag]; !ok {
				firstSeen[tag] = order
				order++
			}
			frequency[tag]++
		}
	}

	tags := make([]string, 0, len(frequency))
	for tag := range frequency {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool {
		if frequency[tags[i]] != frequency[tags[j]] {
			return frequency[tags[i]] > frequency[tags[j]]
		}
		return firstSeen[tags[i]] < firstSeen[tags[j]]
	})

	if len(tags) > limit {
		tags = tags[:limit]
	}
	return tags
}

// busiestMonth tallies activity per UTC month (updatedAt, else createdAt)
// and names the month with the highest count, first month on ties. Empty
// when no artifact carries a parseable date.
func busiestMonth(artifacts []*domain.Artifact) string {
	var hits [12]int
	dated := false

	for _, artifact := range artifacts {
		date := artifact.ActivityDate()
		if date == nil {
			continue
		}
		hits[int(date.UTC().Month())-1]++
		dated = true
	}

	if !dated {
		return ""
	}

	top := 0
	for i := 1; i < len(hits); i++ {
		if hits[i] > hits[top] {
			top = i
		}
	}
	return monthNames[top]
}

func orEmpty(artifacts []*domain.Artifact) []*domain.Artifact {
	if artifacts == nil {
		return []*domain.Artifact{}
	}
	return artifacts
}

func orEmptyPapers(papers []*domain.Paper) []*domain.Paper {
	if papers == nil {
		return []*domain.Paper{}
	}
	return papers
}
