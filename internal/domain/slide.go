package domain

type SlideKind string

const (
	SlideKindIntro     SlideKind = "intro"
	SlideKindSummary   SlideKind = "summary"
	SlideKindModels    SlideKind = "models"
	SlideKindDatasets  SlideKind = "datasets"
	SlideKindSpaces    SlideKind = "spaces"
	SlideKindPapers    SlideKind = "papers"
	SlideKindBadges    SlideKind = "badges"
	SlideKindArchetype SlideKind = "archetype"
	SlideKindCTA       SlideKind = "cta"
	SlideKindShare     SlideKind = "share"
)

func (k SlideKind) String() string {
	return string(k)
}

type MetricAccent string

const (
	MetricAccentPrimary   MetricAccent = "primary"
	MetricAccentSecondary MetricAccent = "secondary"
)

type SlideMetric struct {
	Label  string       `json:"label"`
	Value  string       `json:"value"`
	Accent MetricAccent `json:"accent,omitempty"`
}

// Slide is one presentation-ready record in the wrapped story. IDs are
// unique within a generation and slides are emitted in canonical kind
// order.
type Slide struct {
	ID         string        `json:"id"`
	Kind       SlideKind     `json:"kind"`
	Title      string        `json:"title"`
	Subtitle   string        `json:"subtitle"`
	Metrics    []SlideMetric `json:"metrics,omitempty"`
	Highlights []string      `json:"highlights,omitempty"`
}
