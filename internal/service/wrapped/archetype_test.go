package wrapped

import (
	"testing"

	"github.com/kapu/hf-wrapped-go/internal/domain"
)

func TestDeriveArchetypeEmptyActivity(t *testing.T) {
	snapshot := BuildSnapshot(nil, nil, nil, nil)

	if got := DeriveArchetype(snapshot); got != ArchetypeExplorer {
		t.Fatalf("expected %q for empty activity, got %q", ArchetypeExplorer, got)
	}
}

func TestDeriveArchetypeModelHeavy(t *testing.T) {
	models := []*domain.Artifact{
		artifact(domain.ArtifactKindModel, "m1", 500_000, 10),
		artifact(domain.ArtifactKindModel, "m2", 200_000, 3),
	}
	datasets := []*domain.Artifact{
		artifact(domain.ArtifactKindDataset, "d1", 100, 1),
	}
	snapshot := BuildSnapshot(models, datasets, nil, nil)

	if got := DeriveArchetype(snapshot); got != ArchetypeModelMaestro {
		t.Fatalf("expected %q, got %q", ArchetypeModelMaestro, got)
	}
}

func TestDeriveArchetypeSpacesWinOnLikes(t *testing.T) {
	models := []*domain.Artifact{
		artifact(domain.ArtifactKindModel, "m1", 0, 0),
	}
	spaces := []*domain.Artifact{
		artifact(domain.ArtifactKindSpace, "s1", 0, 2_000),
	}
	snapshot := BuildSnapshot(models, nil, spaces, nil)

	if got := DeriveArchetype(snapshot); got != ArchetypeSpaceStoryteller {
		t.Fatalf("expected %q, got %q", ArchetypeSpaceStoryteller, got)
	}
}

func TestDeriveArchetypePapersOutweighSingleModel(t *testing.T) {
	models := []*domain.Artifact{
		artifact(domain.ArtifactKindModel, "m1", 0, 0),
	}
	papers := []*domain.Paper{
		{ID: "2501.00001", Title: "A paper"},
	}
	snapshot := BuildSnapshot(models, nil, nil, papers)

	// one paper weighs 3, one model without downloads weighs 2
	if got := DeriveArchetype(snapshot); got != ArchetypeResearchCurator {
		t.Fatalf("expected %q, got %q", ArchetypeResearchCurator, got)
	}
}

func TestDeriveArchetypeTieFavorsPriorityOrder(t *testing.T) {
	models := []*domain.Artifact{
		artifact(domain.ArtifactKindModel, "m1", 0, 0),
	}
	datasets := []*domain.Artifact{
		artifact(domain.ArtifactKindDataset, "d1", 0, 0),
	}
	snapshot := BuildSnapshot(models, datasets, nil, nil)

	if got := DeriveArchetype(snapshot); got != ArchetypeModelMaestro {
		t.Fatalf("expected models to win exact ties, got %q", got)
	}
}

func TestAssignBadgesDownloadsFirst(t *testing.T) {
	snapshot := &domain.ActivitySnapshot{
		TotalDownloads: 1_500_000,
		TopTags:        []string{"nlp"},
	}

	badges := AssignBadges(snapshot)

	if len(badges) == 0 || badges[0] != "Top 1M+ downloads" {
		t.Fatalf("expected downloads badge first, got %v", badges)
	}
}

func TestAssignBadgesFullChainOrder(t *testing.T) {
	models := make([]*domain.Artifact, 10)
	for i := range models {
		models[i] = artifact(domain.ArtifactKindModel, "m", 0, 0)
	}
	datasets := make([]*domain.Artifact, 5)
	for i := range datasets {
		datasets[i] = artifact(domain.ArtifactKindDataset, "d", 0, 0)
	}
	spaces := make([]*domain.Artifact, 3)
	for i := range spaces {
		spaces[i] = artifact(domain.ArtifactKindSpace, "s", 0, 0)
	}

	snapshot := &domain.ActivitySnapshot{
		Models:         models,
		Datasets:       datasets,
		Spaces:         spaces,
		TotalDownloads: 2_000_000,
		TotalLikes:     6_000,
		TopTags:        []string{"nlp", "vision", "audio", "rl"},
		BusiestMonth:   "June",
	}

	badges := AssignBadges(snapshot)

	expected := []string{
		"Top 1M+ downloads",
		"Community favorite",
		"Model builder",
		"Data shaper",
		"Spaces storyteller",
		"Peak month: June",
		"Signature tags: nlp, vision, audio",
	}
	if len(badges) != len(expected) {
		t.Fatalf("expected %d badges, got %v", len(expected), badges)
	}
	for i, want := range expected {
		if badges[i] != want {
			t.Fatalf("badge %d: expected %q, got %q", i, want, badges[i])
		}
	}
}

func TestAssignBadgesEmptyActivity(t *testing.T) {
	badges := AssignBadges(&domain.ActivitySnapshot{})

	if len(badges) != 0 {
		t.Fatalf("expected no badges, got %v", badges)
	}
}

func TestAssignBadgesThresholdsAreStrict(t *testing.T) {
	snapshot := &domain.ActivitySnapshot{
		TotalDownloads: 1_000_000,
		TotalLikes:     5_000,
	}

	if badges := AssignBadges(snapshot); len(badges) != 0 {
		t.Fatalf("expected exact thresholds to not qualify, got %v", badges)
	}
}
