package domain

import (
	"strings"
	"time"
)

type ResultSource string

const (
	ResultSourceCache ResultSource = "cache"
	ResultSourceLive  ResultSource = "live"
)

func (s ResultSource) String() string {
	return string(s)
}

// WrappedResult is the full outcome of one generation: the unit returned to
// the caller and the unit persisted verbatim in the snapshot store.
type WrappedResult struct {
	Profile     Profile          `json:"profile"`
	Year        int              `json:"year"`
	Activity    ActivitySnapshot `json:"activity"`
	Archetype   string           `json:"archetype"`
	Badges      []string         `json:"badges"`
	Slides      []*Slide         `json:"slides"`
	Cached      bool             `json:"cached"`
	GeneratedAt time.Time        `json:"generated_at"`
	Source      ResultSource     `json:"source"`
}

// GenerateInput is the normalized request for one wrapped generation.
type GenerateInput struct {
	Handle       string      `json:"handle"`
	Year         int         `json:"year"`
	SubjectType  SubjectType `json:"subject_type"`
	AllowRefresh bool        `json:"allow_refresh"`
}

// Normalize trims the handle and fills defaults: current UTC year, "auto"
// subject type, refresh disabled.
func (in GenerateInput) Normalize(now time.Time) GenerateInput {
	out := in
	out.Handle = strings.TrimSpace(in.Handle)
	if out.Year == 0 {
		out.Year = now.UTC().Year()
	}
	if out.SubjectType == "" {
		out.SubjectType = SubjectTypeAuto
	}
	return out
}
