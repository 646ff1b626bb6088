package domain

// Paper is an authored publication surfaced through the daily papers feed.
// Papers are not typed by ArtifactKind and are never year-filtered.
type Paper struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Summary     string `json:"summary,omitempty"`
	Submitter   string `json:"submitter,omitempty"`
	PublishedAt string `json:"published_at,omitempty"`
	Link        string `json:"link"`
}
