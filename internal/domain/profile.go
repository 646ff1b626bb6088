package domain

type SubjectType string

const (
	SubjectTypeUser         SubjectType = "user"
	SubjectTypeOrganization SubjectType = "organization"
	SubjectTypeAuto         SubjectType = "auto"
)

func (s SubjectType) String() string {
	return string(s)
}

func (s SubjectType) IsValid() bool {
	switch s {
	case SubjectTypeUser, SubjectTypeOrganization, SubjectTypeAuto:
		return true
	default:
		return false
	}
}

// IsConcrete reports whether the subject type names an actual account kind
// rather than the "auto" probe marker.
func (s SubjectType) IsConcrete() bool {
	return s == SubjectTypeUser || s == SubjectTypeOrganization
}

// Profile is the canonical identity of a Hub account, resolved once per
// generation and immutable afterwards.
type Profile struct {
	Handle      string      `json:"handle"`
	DisplayName string      `json:"display_name,omitempty"`
	AvatarURL   string      `json:"avatar_url,omitempty"`
	Bio         string      `json:"bio,omitempty"`
	SubjectType SubjectType `json:"subject_type"`
}

// Name returns the display name, falling back to the handle.
func (p *Profile) Name() string {
	if p == nil {
		return ""
	}
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return p.Handle
}
