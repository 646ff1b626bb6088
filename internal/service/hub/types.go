package hub

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/kapu/hf-wrapped-go/internal/domain"
)

// hubRepoRaw represents one repo entry of a Hub listing response.
type hubRepoRaw struct {
	ID           string   `json:"id"`
	Author       string   `json:"author,omitempty"`
	Likes        *int     `json:"likes,omitempty"`
	Downloads    *int     `json:"downloads,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	Private      *bool    `json:"private,omitempty"`
	LastModified *string  `json:"lastModified,omitempty"`
	CreatedAt    *string  `json:"createdAt,omitempty"`
}

// hubAccountRaw represents the raw user/organization lookup response.
type hubAccountRaw struct {
	Name      *string `json:"name,omitempty"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
	Bio       *string `json:"bio,omitempty"`
}

// hubPaperRaw represents one daily papers feed entry.
type hubPaperRaw struct {
	ArxivID     string  `json:"arxivId"`
	Title       string  `json:"title"`
	Summary     *string `json:"summary,omitempty"`
	Submitter   *string `json:"submitter,omitempty"`
	PublishedAt *string `json:"publishedAt,omitempty"`
	URL         *string `json:"url,omitempty"`
}

// hubRepoPage is the object-shaped listing page carrying an explicit cursor.
type hubRepoPage struct {
	Items  []hubRepoRaw `json:"items"`
	Next   *string      `json:"next,omitempty"`
	Cursor *string      `json:"cursor,omitempty"`
}

// normalizeRepoPage accepts both page shapes the listing API produces: a
// bare array (no further pages) or an object with items plus a next/cursor
// token. Anything unrecognizable is treated as an empty page.
func normalizeRepoPage(body []byte) ([]hubRepoRaw, string) {
	var asArray []hubRepoRaw
	if err := json.Unmarshal(body, &asArray); err == nil {
		return asArray, ""
	}

	var asPage hubRepoPage
	if err := json.Unmarshal(body, &asPage); err != nil {
		return nil, ""
	}
	cursor := ""
	if asPage.Next != nil {
		cursor = *asPage.Next
	} else if asPage.Cursor != nil {
		cursor = *asPage.Cursor
	}
	return asPage.Items, cursor
}

func (r *hubRepoRaw) toArtifact(kind domain.ArtifactKind, author string) *domain.Artifact {
	artifact := &domain.Artifact{
		ID:     r.ID,
		Kind:   kind,
		Name:   repoName(r.ID),
		Author: author,
		Tags:   r.Tags,
	}
	if r.Likes != nil {
		artifact.Likes = *r.Likes
	}
	if r.Downloads != nil {
		artifact.Downloads = *r.Downloads
	}
	if r.Private != nil {
		artifact.Private = *r.Private
	}
	artifact.CreatedAt = parseHubTime(r.CreatedAt)
	artifact.UpdatedAt = parseHubTime(r.LastModified)
	return artifact
}

func (p *hubPaperRaw) toPaper(hubBaseURL string) *domain.Paper {
	paper := &domain.Paper{
		ID:    p.ArxivID,
		Title: p.Title,
		Link:  hubBaseURL + "/papers/" + p.ArxivID,
	}
	if p.Summary != nil {
		paper.Summary = *p.Summary
	}
	if p.Submitter != nil {
		paper.Submitter = *p.Submitter
	}
	if p.PublishedAt != nil {
		paper.PublishedAt = *p.PublishedAt
	}
	if p.URL != nil && *p.URL != "" {
		paper.Link = *p.URL
	}
	return paper
}

// repoName strips the owner prefix from a repo id.
func repoName(id string) string {
	if idx := strings.Index(id, "/"); idx >= 0 && idx+1 < len(id) {
		return id[idx+1:]
	}
	return id
}

func parseHubTime(value *string) *time.Time {
	if value == nil || *value == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, *value); err == nil {
		return &t
	}
	return nil
}
