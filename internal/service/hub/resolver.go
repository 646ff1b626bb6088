package hub

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/kapu/hf-wrapped-go/internal/domain"
	"github.com/kapu/hf-wrapped-go/pkg/errors"
	"go.uber.org/zap"
)

// Service exposes the Hub operations the generation pipeline consumes:
// profile resolution and activity fetching.
type Service struct {
	client *Client
	logger *zap.Logger
}

func NewService(client *Client, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// BuildHandleCandidates expands a raw handle into its lookup variants:
// as given, with a leading "@" stripped, lower-cased, and both combined.
// Order is preserved and duplicates are removed, because the first matching
// candidate wins.
func BuildHandleCandidates(handle string) []string {
	trimmed := strings.TrimSpace(handle)
	noAt := strings.TrimPrefix(trimmed, "@")
	variants := []string{
		trimmed,
		noAt,
		strings.ToLower(trimmed),
		strings.ToLower(noAt),
	}

	seen := make(map[string]struct{}, len(variants))
	candidates := make([]string, 0, len(variants))
	for _, v := range variants {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		candidates = append(candidates, v)
	}
	return candidates
}

// ResolveProfile maps a raw handle to a canonical profile. For each handle
// variant an organization lookup is tried before a user lookup; the first
// hit short-circuits the rest. Organization and user handles may collide
// across casing, so the match policy is "first candidate, org before user".
func (s *Service) ResolveProfile(ctx context.Context, handle string) (*domain.Profile, error) {
	candidates := BuildHandleCandidates(handle)
	var lastErr error

	for _, candidate := range candidates {
		profile, err := s.lookupAccount(ctx, "/api/organizations/"+candidate, candidate, domain.SubjectTypeOrganization)
		if err == nil {
			return profile, nil
		}
		lastErr = err

		profile, err = s.lookupAccount(ctx, "/api/users/"+candidate, candidate, domain.SubjectTypeUser)
		if err == nil {
			return profile, nil
		}
		lastErr = err

		s.logger.Debug("Handle candidate did not resolve",
			zap.String("candidate", candidate),
			zap.Error(err),
		)
	}

	return nil, errors.NewNotFoundError(handle, candidates, lastErr)
}

func (s *Service) lookupAccount(ctx context.Context, path, candidate string, subjectType domain.SubjectType) (*domain.Profile, error) {
	body, err := s.client.GetJSON(ctx, path, nil)
	if err != nil {
		return nil, err
	}

	var raw hubAccountRaw
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}

	profile := &domain.Profile{
		Handle:      candidate,
		DisplayName: candidate,
		SubjectType: subjectType,
	}
	if raw.Name != nil && *raw.Name != "" {
		profile.DisplayName = *raw.Name
	}
	if raw.AvatarURL != nil {
		profile.AvatarURL = *raw.AvatarURL
	}
	if raw.Bio != nil {
		profile.Bio = *raw.Bio
	}

	s.logger.Info("Resolved hub profile",
		zap.String("handle", candidate),
		zap.String("subject_type", subjectType.String()),
	)

	return profile, nil
}
