package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/hirelens/hirelens/internal/models"
)

// Scorer is the relevance scoring collaborator. The scoring algorithm
// itself lives behind this contract; nothing in the pipeline assumes a
// particular formula, only the 0-1 scale.
type Scorer interface {
	Score(ctx context.Context, profiles []models.PersonProfile, queryText string) ([]models.PersonProfile, error)
}

// PassScorer returns its input unchanged, preserving the store's
// text-match scores. Used when no scoring endpoint is configured.
type PassScorer struct{}

func (PassScorer) Score(_ context.Context, profiles []models.PersonProfile, _ string) ([]models.PersonProfile, error) {
	return profiles, nil
}

// HTTPScorer posts the candidate list and query text to an external
// scoring endpoint and expects the same list back with
// relevance_score populated.
type HTTPScorer struct {
	url  string
	http *http.Client
}

func NewHTTPScorer(url string) *HTTPScorer {
	return &HTTPScorer{url: url, http: &http.Client{Timeout: 30 * time.Second}}
}

type scoreRequest struct {
	Profiles []models.PersonProfile `json:"profiles"`
	Query    string                 `json:"query"`
}

func (s *HTTPScorer) Score(ctx context.Context, profiles []models.PersonProfile, queryText string) ([]models.PersonProfile, error) {
	body, err := json.Marshal(scoreRequest{Profiles: profiles, Query: queryText})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scorer returned status %d", resp.StatusCode)
	}

	var scored []models.PersonProfile
	if err := json.NewDecoder(resp.Body).Decode(&scored); err != nil {
		return nil, err
	}
	return scored, nil
}
