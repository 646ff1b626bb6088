package dataset

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/kapu/hf-wrapped-go/internal/config"
	"github.com/kapu/hf-wrapped-go/internal/domain"
	"go.uber.org/zap"
)

// Store persists one JSON document per (year, subjectType, handle) in a Hub
// dataset repo. Reads go through the public resolve URL; writes go through
// the authenticated commit API. Caching is an optimization: reads report
// misses instead of errors and writes never raise.
type Store struct {
	httpClient   *http.Client
	baseURL      string
	datasetID    string
	dir          string
	writeEnabled bool
	token        string
	logger       *zap.Logger
}

func NewStore(cfg config.DatasetConfig, baseURL string, timeout time.Duration, logger *zap.Logger) *Store {
	return &Store{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:      strings.TrimRight(baseURL, "/"),
		datasetID:    cfg.ID,
		dir:          cfg.Dir,
		writeEnabled: cfg.WriteEnabled,
		token:        cfg.Token,
		logger:       logger,
	}
}

// Enabled reports whether a dataset is configured at all.
func (s *Store) Enabled() bool {
	return s.datasetID != ""
}

// Read fetches the cached result for one identity tuple. Any transport
// fault, non-2xx status or undecodable body counts as a miss.
func (s *Store) Read(ctx context.Context, handle string, year int, subjectType domain.SubjectType) (*domain.WrappedResult, bool) {
	if !s.Enabled() {
		return nil, false
	}

	url := fmt.Sprintf("%s/datasets/%s/resolve/main/%s", s.baseURL, s.datasetID, s.cachePath(handle, year, subjectType))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, false
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Debug("Snapshot read failed", zap.String("url", url), zap.Error(err))
		return nil, false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, false
	}

	var result domain.WrappedResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		s.logger.Warn("Snapshot body undecodable, treating as miss",
			zap.String("url", url),
			zap.Error(err),
		)
		return nil, false
	}

	s.logger.Debug("Snapshot cache hit",
		zap.String("handle", handle),
		zap.Int("year", year),
		zap.String("subject_type", subjectType.String()),
	)

	return &result, true
}

type commitOperation struct {
	Operation  string `json:"operation"`
	PathInRepo string `json:"path_in_repo"`
	Content    string `json:"content"`
	Encoding   string `json:"encoding"`
}

type commitRequest struct {
	Operations    []commitOperation `json:"operations"`
	CommitMessage string            `json:"commit_message"`
	Summary       string            `json:"summary"`
}

// Write commits the result to the dataset. Gated on the write flag and a
// token; absent either it is a silent no-op. Failures are logged and
// swallowed.
func (s *Store) Write(ctx context.Context, result *domain.WrappedResult) {
	if !s.Enabled() || !s.writeEnabled || s.token == "" {
		return
	}

	path := s.cachePath(result.Profile.Handle, result.Year, result.Profile.SubjectType)

	payload, err := json.Marshal(result)
	if err != nil {
		s.logger.Error("Snapshot marshal failed", zap.String("path", path), zap.Error(err))
		return
	}

	body, err := json.Marshal(commitRequest{
		Operations: []commitOperation{{
			Operation:  "add_or_update",
			PathInRepo: path,
			Content:    base64.StdEncoding.EncodeToString(payload),
			Encoding:   "base64",
		}},
		CommitMessage: "Add wrapped snapshot",
		Summary:       "Add wrapped snapshot",
	})
	if err != nil {
		s.logger.Error("Commit payload marshal failed", zap.String("path", path), zap.Error(err))
		return
	}

	url := fmt.Sprintf("%s/api/datasets/%s/commit?repo_type=dataset", s.baseURL, s.datasetID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		s.logger.Error("Commit request build failed", zap.String("path", path), zap.Error(err))
		return
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Error("Snapshot commit failed", zap.String("path", path), zap.Error(err))
		return
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 500))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		s.logger.Error("Snapshot commit rejected",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(respBody)),
		)
		return
	}

	s.logger.Info("Snapshot stored",
		zap.String("dataset", s.datasetID),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.String("info", string(respBody)),
	)
}

// CreateRepo creates the backing dataset repo via the Hub API. Used by the
// bootstrap tool; an already-existing dataset is not an error.
func (s *Store) CreateRepo(ctx context.Context) error {
	if !s.Enabled() {
		return fmt.Errorf("no dataset configured")
	}
	if s.token == "" {
		return fmt.Errorf("a write token is required to create the dataset")
	}

	owner, name, ok := strings.Cut(s.datasetID, "/")
	if !ok {
		return fmt.Errorf("dataset id %q must be owner/name", s.datasetID)
	}

	body, err := json.Marshal(map[string]string{
		"type":         "dataset",
		"name":         name,
		"organization": owner,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/api/repos/create", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 2000))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if strings.Contains(string(respBody), "already exists") {
			s.logger.Info("Dataset already exists", zap.String("dataset", s.datasetID))
			return nil
		}
		return fmt.Errorf("dataset creation failed: %d %s", resp.StatusCode, string(respBody))
	}

	s.logger.Info("Dataset created",
		zap.String("dataset", s.datasetID),
		zap.String("url", fmt.Sprintf("%s/datasets/%s", s.baseURL, s.datasetID)),
	)
	return nil
}

func (s *Store) cachePath(handle string, year int, subjectType domain.SubjectType) string {
	return fmt.Sprintf("%s/%d-%s-%s.json", s.dir, year, subjectType, strings.TrimPrefix(handle, "@"))
}
