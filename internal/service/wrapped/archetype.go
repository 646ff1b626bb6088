package wrapped

import (
	"fmt"
	"strings"

	"github.com/kapu/hf-wrapped-go/internal/domain"
)

// Archetype labels, in tie-break priority order.
const (
	ArchetypeModelMaestro     = "Model Maestro"
	ArchetypeDatasetArchitect = "Dataset Architect"
	ArchetypeSpaceStoryteller = "Space Storyteller"
	ArchetypeResearchCurator  = "Research Curator"
	ArchetypeExplorer         = "HF Explorer"
)

// DeriveArchetype scores the snapshot against the fixed rubric and returns
// exactly one label. When every weight is non-positive the default explorer
// label applies.
func DeriveArchetype(activity *domain.ActivitySnapshot) string {
	weights := []struct {
		label  string
		weight float64
	}{
		{ArchetypeModelMaestro, float64(len(activity.Models))*2 + float64(sumDownloads(activity.Models))*0.000001},
		{ArchetypeDatasetArchitect, float64(len(activity.Datasets))*2 + float64(sumDownloads(activity.Datasets))*0.000001},
		{ArchetypeSpaceStoryteller, float64(len(activity.Spaces))*2 + float64(sumLikes(activity.Spaces))*0.001},
		{ArchetypeResearchCurator, float64(len(activity.Papers)) * 3},
	}

	best := ArchetypeExplorer
	bestWeight := 0.0
	for _, w := range weights {
		if w.weight > bestWeight {
			best = w.label
			bestWeight = w.weight
		}
	}
	return best
}

// AssignBadges evaluates the fixed rule chain in order. Rules are
// independent; each appends at most one badge and none excludes another.
func AssignBadges(activity *domain.ActivitySnapshot) []string {
	badges := make([]string, 0)

	if activity.TotalDownloads > 1_000_000 {
		badges = append(badges, "Top 1M+ downloads")
	}
	if activity.TotalLikes > 5_000 {
		badges = append(badges, "Community favorite")
	}
	if len(activity.Models) >= 10 {
		badges = append(badges, "Model builder")
	}
	if len(activity.Datasets) >= 5 {
		badges = append(badges, "Data shaper")
	}
	if len(activity.Spaces) >= 3 {
		badges = append(badges, "Spaces storyteller")
	}
	if activity.BusiestMonth != "" {
		badges = append(badges, fmt.Sprintf("Peak month: %s", activity.BusiestMonth))
	}
	if len(activity.TopTags) > 0 {
		badges = append(badges, fmt.Sprintf("Signature tags: %s", strings.Join(firstN(activity.TopTags, 3), ", ")))
	}

	return badges
}

func sumDownloads(artifacts []*domain.Artifact) int {
	total := 0
	for _, a := range artifacts {
		total += a.Downloads
	}
	return total
}

func sumLikes(artifacts []*domain.Artifact) int {
	total := 0
	for _, a := range artifacts {
		total += a.Likes
	}
	return total
}

func firstN(values []string, n int) []string {
	if len(values) <= n {
		return values
	}
	return values[:n]
}
