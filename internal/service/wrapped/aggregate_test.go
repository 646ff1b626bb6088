package wrapped

import (
	"testing"
	"time"

	"github.com/kapu/hf-wrapped-go/internal/domain"
)

func datePtr(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
	return &t
}

func artifact(kind domain.ArtifactKind, name string, downloads, likes int, tags ...string) *domain.Artifact {
	return &domain.Artifact{
		ID:        "acme/" + name,
		Kind:      kind,
		Name:      name,
		Author:    "acme",
		Downloads: downloads,
		Likes:     likes,
		Tags:      tags,
	}
}

func TestBuildSnapshotTotals(t *testing.T) {
	models := []*domain.Artifact{
		artifact(domain.ArtifactKindModel, "m1", 100, 5),
		artifact(domain.ArtifactKindModel, "m2", 50, 0),
	}
	datasets := []*domain.Artifact{
		artifact(domain.ArtifactKindDataset, "d1", 30, 2),
	}
	spaces := []*domain.Artifact{
		artifact(domain.ArtifactKindSpace, "s1", 0, 40),
	}
	papers := []*domain.Paper{
		{ID: "2501.00001", Title: "A paper"},
	}

	snapshot := BuildSnapshot(models, datasets, spaces, papers)

	if snapshot.TotalRepos != 4 {
		t.Fatalf("expected 4 total repos, got %d", snapshot.TotalRepos)
	}
	if snapshot.TotalDownloads != 180 {
		t.Fatalf("expected 180 total downloads, got %d", snapshot.TotalDownloads)
	}
	if snapshot.TotalLikes != 47 {
		t.Fatalf("expected 47 total likes, got %d", snapshot.TotalLikes)
	}
	if len(snapshot.Papers) != 1 {
		t.Fatalf("expected papers to pass through, got %d", len(snapshot.Papers))
	}
}

func TestBuildSnapshotEmptyInputIsTotal(t *testing.T) {
	snapshot := BuildSnapshot(nil, nil, nil, nil)

	if snapshot.TotalRepos != 0 || snapshot.TotalDownloads != 0 || snapshot.TotalLikes != 0 {
		t.Fatalf("expected zero totals, got %+v", snapshot)
	}
	if snapshot.Models == nil || snapshot.Datasets == nil || snapshot.Spaces == nil || snapshot.Papers == nil {
		t.Fatalf("expected empty slices, not nil")
	}
	if snapshot.BusiestMonth != "" {
		t.Fatalf("expected no busiest month, got %q", snapshot.BusiestMonth)
	}
}

func TestTopTagsRankingAndTieBreak(t *testing.T) {
	models := []*domain.Artifact{
		artifact(domain.ArtifactKindModel, "m1", 0, 0, "nlp", "pytorch"),
		artifact(domain.ArtifactKindModel, "m2", 0, 0, "pytorch", "vision"),
		artifact(domain.ArtifactKindModel, "m3", 0, 0, "pytorch", "nlp"),
	}

	snapshot := BuildSnapshot(models, nil, nil, nil)

	// pytorch 3x, nlp 2x, vision 1x
	expected := []string{"pytorch", "nlp", "vision"}
	if len(snapshot.TopTags) != len(expected) {
		t.Fatalf("expected %d tags, got %v", len(expected), snapshot.TopTags)
	}
	for i, tag := range expected {
		if snapshot.TopTags[i] != tag {
			t.Fatalf("expected tag %q at position %d, got %v", tag, i, snapshot.TopTags)
		}
	}
}

func TestTopTagsTieBreaksByFirstSeen(t *testing.T) {
	models := []*domain.Artifact{
		artifact(domain.ArtifactKindModel, "m1", 0, 0, "zeta", "alpha"),
	}

	snapshot := BuildSnapshot(models, nil, nil, nil)

	if snapshot.TopTags[0] != "zeta" || snapshot.TopTags[1] != "alpha" {
		t.Fatalf("expected first-seen order on ties, got %v", snapshot.TopTags)
	}
}

func TestTopTagsCappedAtSix(t *testing.T) {
	tags := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	models := []*domain.Artifact{
		artifact(domain.ArtifactKindModel, "m1", 0, 0, tags...),
	}

	snapshot := BuildSnapshot(models, nil, nil, nil)

	if len(snapshot.TopTags) != 6 {
		t.Fatalf("expected 6 tags, got %d", len(snapshot.TopTags))
	}
}

func TestBusiestMonthPrefersUpdatedAt(t *testing.T) {
	m1 := artifact(domain.ArtifactKindModel, "m1", 0, 0)
	m1.CreatedAt = datePtr(2025, time.January, 10)
	m1.UpdatedAt = datePtr(2025, time.March, 2)

	m2 := artifact(domain.ArtifactKindModel, "m2", 0, 0)
	m2.UpdatedAt = datePtr(2025, time.March, 20)

	m3 := artifact(domain.ArtifactKindModel, "m3", 0, 0)
	m3.CreatedAt = datePtr(2025, time.January, 5)

	snapshot := BuildSnapshot([]*domain.Artifact{m1, m2, m3}, nil, nil, nil)

	if snapshot.BusiestMonth != "March" {
		t.Fatalf("expected March, got %q", snapshot.BusiestMonth)
	}
}

func TestBusiestMonthFirstIndexOnTies(t *testing.T) {
	m1 := artifact(domain.ArtifactKindModel, "m1", 0, 0)
	m1.CreatedAt = datePtr(2025, time.June, 1)
	m2 := artifact(domain.ArtifactKindModel, "m2", 0, 0)
	m2.CreatedAt = datePtr(2025, time.February, 1)

	snapshot := BuildSnapshot([]*domain.Artifact{m1, m2}, nil, nil, nil)

	if snapshot.BusiestMonth != "February" {
		t.Fatalf("expected February on tie, got %q", snapshot.BusiestMonth)
	}
}
