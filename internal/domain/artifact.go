package domain

import "time"

type ArtifactKind string

const (
	ArtifactKindModel   ArtifactKind = "model"
	ArtifactKindDataset ArtifactKind = "dataset"
	ArtifactKindSpace   ArtifactKind = "space"
)

func (k ArtifactKind) String() string {
	return string(k)
}

func (k ArtifactKind) IsValid() bool {
	switch k {
	case ArtifactKindModel, ArtifactKindDataset, ArtifactKindSpace:
		return true
	default:
		return false
	}
}

// Artifact is one published repo (model, dataset or space) as returned by
// the Hub listing API. Likes and downloads default to 0 when the API omits
// them.
type Artifact struct {
	ID        string       `json:"id"`
	Kind      ArtifactKind `json:"kind"`
	Name      string       `json:"name"`
	Author    string       `json:"author"`
	Tags      []string     `json:"tags,omitempty"`
	Likes     int          `json:"likes"`
	Downloads int          `json:"downloads"`
	CreatedAt *time.Time   `json:"created_at,omitempty"`
	UpdatedAt *time.Time   `json:"updated_at,omitempty"`
	Private   bool         `json:"private,omitempty"`
}

// CreatedYear returns the UTC creation year, or 0 when no creation date is
// known.
func (a *Artifact) CreatedYear() int {
	if a == nil || a.CreatedAt == nil {
		return 0
	}
	return a.CreatedAt.UTC().Year()
}

// ActivityDate is the timestamp used for month tallies: updatedAt when
// present, else createdAt, else nil.
func (a *Artifact) ActivityDate() *time.Time {
	if a == nil {
		return nil
	}
	if a.UpdatedAt != nil {
		return a.UpdatedAt
	}
	return a.CreatedAt
}
