package services

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hirelens/hirelens/internal/models"
	"github.com/hirelens/hirelens/internal/providers/proxycurl"
)

// ProfileProvider is the slice of the external provider the sourcer
// needs: criteria search plus per-URL hydration.
type ProfileProvider interface {
	SearchPersons(ctx context.Context, e *models.EntitySet, count int) ([]proxycurl.PersonMatch, error)
	FetchProfile(ctx context.Context, profileURL string) (*models.PersonProfile, error)
}

// Sourcer obtains new candidate records from the external provider.
// It never writes to the cache; persistence belongs to the
// orchestrator.
type Sourcer interface {
	Source(ctx context.Context, e *models.EntitySet, count int) ([]models.PersonProfile, error)
	Hydrate(ctx context.Context, profileURL string) (*models.PersonProfile, error)
}

type proxySourcer struct {
	provider       ProfileProvider
	hydrateTimeout time.Duration
	log            *logrus.Logger
}

func NewSourcer(provider ProfileProvider, hydrateTimeout time.Duration, log *logrus.Logger) Sourcer {
	if hydrateTimeout <= 0 {
		hydrateTimeout = 30 * time.Second
	}
	return &proxySourcer{provider: provider, hydrateTimeout: hydrateTimeout, log: log}
}

// Source is two-phase: fetch up to count candidate URLs, then hydrate
// each into a full record. A candidate whose hydration fails is
// dropped; partial results beat no results. Every returned record is
// stamped with the current time.
func (s *proxySourcer) Source(ctx context.Context, e *models.EntitySet, count int) ([]models.PersonProfile, error) {
	matches, err := s.provider.SearchPersons(ctx, e, count)
	if err != nil {
		return nil, err
	}

	out := make([]models.PersonProfile, 0, len(matches))
	for _, m := range matches {
		if m.LinkedinProfileURL == "" {
			continue
		}
		p, err := s.Hydrate(ctx, m.LinkedinProfileURL)
		if err != nil {
			s.log.WithError(err).WithField("profile_url", m.LinkedinProfileURL).
				Warn("dropping candidate, hydration failed")
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (s *proxySourcer) Hydrate(ctx context.Context, profileURL string) (*models.PersonProfile, error) {
	hctx, cancel := context.WithTimeout(ctx, s.hydrateTimeout)
	defer cancel()

	p, err := s.provider.FetchProfile(hctx, profileURL)
	if err != nil {
		return nil, err
	}
	p.LastUpdated = time.Now().UTC()
	return p, nil
}
