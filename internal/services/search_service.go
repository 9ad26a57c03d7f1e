package services

import (
	"context"
	"encoding/json"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"

	"github.com/hirelens/hirelens/internal/cache"
	"github.com/hirelens/hirelens/internal/models"
	"github.com/hirelens/hirelens/internal/providers/llm"
	"github.com/hirelens/hirelens/internal/query"
	mongorepo "github.com/hirelens/hirelens/internal/repositories/mongo"
	pgrepo "github.com/hirelens/hirelens/internal/repositories/postgres"
	"github.com/hirelens/hirelens/internal/utils"
)

// relevanceCutoff is applied to cache hits only; the final scoring
// pass returns everything.
const relevanceCutoff = 0.8

const extractionCacheTTL = 10 * time.Minute

type SearchService interface {
	SearchProfiles(ctx context.Context, prompt string) ([]models.ProfileCard, error)
}

type searchService struct {
	extractor llm.Extractor
	profiles  mongorepo.ProfileRepository
	sourcer   Sourcer
	scorer    Scorer
	freshness Freshness
	cache     cache.Cache
	logs      pgrepo.SearchLogRepository // nil disables the search log
	log       *logrus.Logger

	backfillDefault int
	persistTimeout  time.Duration
}

func NewSearchService(
	extractor llm.Extractor,
	profiles mongorepo.ProfileRepository,
	sourcer Sourcer,
	scorer Scorer,
	freshness Freshness,
	c cache.Cache,
	logs pgrepo.SearchLogRepository,
	log *logrus.Logger,
	backfillDefault int,
) SearchService {
	if backfillDefault <= 0 {
		backfillDefault = 5
	}
	if c == nil {
		c = cache.Noop{}
	}
	return &searchService{
		extractor:       extractor,
		profiles:        profiles,
		sourcer:         sourcer,
		scorer:          scorer,
		freshness:       freshness,
		cache:           c,
		logs:            logs,
		log:             log,
		backfillDefault: backfillDefault,
		persistTimeout:  30 * time.Second,
	}
}

// backfillCount computes how many records to source externally on the
// cache-hit path: 30% of the filtered hit count, floored at the
// default so every query attempts some enrichment, capped low to bound
// provider cost.
func (s *searchService) backfillCount(filtered int) int {
	n := int(math.Round(0.3 * float64(filtered)))
	if n < s.backfillDefault {
		return s.backfillDefault
	}
	return n
}

// SearchProfiles runs the pipeline: extract, validate, cache lookup,
// relevance filter, backfill, merge, freshness refresh, final scoring.
func (s *searchService) SearchProfiles(ctx context.Context, prompt string) ([]models.ProfileCard, error) {
	const op = "SearchService.SearchProfiles"
	start := time.Now()

	entities, err := s.extractEntities(ctx, prompt)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "entity extraction failed", err)
	}
	if entities == nil || !entities.Complete() {
		s.logRun(ctx, prompt, entities, runStats{outcome: "invalid"}, start)
		return nil, utils.E(utils.CodeInvalidArgument, op,
			"your query is invalid, please provide a valid candidate search query", nil)
	}

	q := query.Translate(entities)

	hits, err := s.profiles.Search(ctx, q)
	if err != nil {
		// A broken cache lookup degrades to the empty-cache path.
		s.log.WithError(err).Warn("cache lookup failed, falling back to full backfill")
		hits = nil
	}

	var (
		filtered []models.PersonProfile
		count    int
	)
	if len(hits) > 0 {
		for _, p := range s.score(ctx, hits, prompt) {
			if p.RelevanceScore > relevanceCutoff {
				filtered = append(filtered, p)
			}
		}
		count = s.backfillCount(len(filtered))
	} else {
		count = s.backfillDefault
	}

	sourced, err := s.sourcer.Source(ctx, entities, count)
	if err != nil {
		s.log.WithError(err).Warn("backfill sourcing failed, continuing with cache hits only")
		sourced = nil
	}
	if len(sourced) > 0 {
		s.persist(ctx, sourced)
	}

	combined := append(filtered, sourced...)
	if len(combined) == 0 {
		s.logRun(ctx, prompt, entities, runStats{
			cacheHits: len(hits), outcome: "not_found",
		}, start)
		return nil, utils.E(utils.CodeNotFound, op, "no profiles found for the given query", nil)
	}

	// Re-read under the same query so just-persisted records are
	// picked up with store scores attached.
	result, err := s.profiles.Search(ctx, q)
	if err != nil || len(result) == 0 {
		if err != nil {
			s.log.WithError(err).Warn("cache re-read failed, serving merged set")
		}
		result = combined
	}

	result = s.refresh(ctx, result)
	result = s.score(ctx, result, prompt)

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].RelevanceScore > result[j].RelevanceScore
	})

	cards := make([]models.ProfileCard, 0, len(result))
	for i := range result {
		cards = append(cards, result[i].Card())
	}

	s.logRun(ctx, prompt, entities, runStats{
		cacheHits:  len(hits),
		filtered:   len(filtered),
		backfilled: len(sourced),
		returned:   len(cards),
		outcome:    "ok",
	}, start)
	return cards, nil
}

type cachedExtraction struct {
	Null     bool              `json:"null"`
	Entities *models.EntitySet `json:"entities,omitempty"`
}

func (s *searchService) extractEntities(ctx context.Context, prompt string) (*models.EntitySet, error) {
	key := extractionKey(prompt)

	var cached cachedExtraction
	if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
		if cached.Null {
			return nil, nil
		}
		return cached.Entities, nil
	}

	entities, err := s.extractor.Extract(ctx, prompt)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetJSON(ctx, key, cachedExtraction{
		Null: entities == nil, Entities: entities,
	}, extractionCacheTTL); err != nil {
		s.log.WithError(err).Debug("failed to cache extraction result")
	}
	return entities, nil
}

func extractionKey(prompt string) string {
	return "ner:" + hashKey(strings.ToLower(strings.TrimSpace(prompt)))
}

func (s *searchService) score(ctx context.Context, profiles []models.PersonProfile, prompt string) []models.PersonProfile {
	scored, err := s.scorer.Score(ctx, profiles, prompt)
	if err != nil {
		s.log.WithError(err).Warn("relevance scoring failed, keeping store scores")
		return profiles
	}
	return scored
}

// persist writes newly sourced records concurrently. Duplicates are
// expected (another request may have cached the same profile) and are
// quietly skipped; the returned result set never depends on these
// writes succeeding.
func (s *searchService) persist(ctx context.Context, profiles []models.PersonProfile) {
	var wg sync.WaitGroup
	for i := range profiles {
		wg.Add(1)
		go func(p *models.PersonProfile) {
			defer wg.Done()
			pctx, cancel := context.WithTimeout(ctx, s.persistTimeout)
			defer cancel()

			outcome, err := s.profiles.Insert(pctx, p)
			switch {
			case err != nil:
				s.log.WithError(err).WithField("profile_url", p.LinkedinProfileURL).
					Warn("failed to persist sourced profile")
			case outcome == mongorepo.AlreadyExists:
				s.log.WithField("profile_url", p.LinkedinProfileURL).
					Debug("profile already cached")
			}
		}(&profiles[i])
	}
	wg.Wait()
}

// refresh applies the freshness policy to every record concurrently.
// Stale records are re-hydrated and re-persisted over the old copy; a
// failed refresh keeps the stale record, so the output always has the
// same cardinality and order as the input.
func (s *searchService) refresh(ctx context.Context, profiles []models.PersonProfile) []models.PersonProfile {
	now := time.Now().UTC()
	out := make([]models.PersonProfile, len(profiles))

	var wg sync.WaitGroup
	for i := range profiles {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p := profiles[i]
			if s.freshness.Fresh(p.LastUpdated, now) {
				out[i] = p
				return
			}

			enriched, err := s.sourcer.Hydrate(ctx, p.LinkedinProfileURL)
			if err != nil {
				s.log.WithError(err).WithField("profile_url", p.LinkedinProfileURL).
					Warn("refresh failed, serving stale profile")
				out[i] = p
				return
			}

			pctx, cancel := context.WithTimeout(ctx, s.persistTimeout)
			defer cancel()
			if err := s.profiles.Replace(pctx, enriched); err != nil {
				s.log.WithError(err).WithField("profile_url", p.LinkedinProfileURL).
					Warn("failed to re-persist refreshed profile")
			}

			// Keep the score from the lookup so ordering survives a
			// pass-through final scorer.
			enriched.RelevanceScore = p.RelevanceScore
			out[i] = *enriched
		}(i)
	}
	wg.Wait()
	return out
}

type runStats struct {
	cacheHits  int
	filtered   int
	backfilled int
	returned   int
	outcome    string
}

func (s *searchService) logRun(ctx context.Context, prompt string, entities *models.EntitySet, st runStats, start time.Time) {
	if s.logs == nil {
		return
	}

	entry := &models.SearchLog{
		Prompt:     prompt,
		CacheHits:  st.cacheHits,
		Filtered:   st.filtered,
		Backfilled: st.backfilled,
		Returned:   st.returned,
		Outcome:    st.outcome,
		DurationMS: time.Since(start).Milliseconds(),
		CreatedAt:  time.Now().UTC(),
	}
	if entities != nil {
		if raw, err := json.Marshal(entities); err == nil {
			entry.Entities = datatypes.JSON(raw)
		}
		entry.Skills = splitTerms(entities.Skills)
	}

	if err := s.logs.Create(ctx, entry); err != nil {
		s.log.WithError(err).Debug("failed to write search log")
	}
}

// splitTerms flattens a Boolean micro-syntax expression into its bare
// terms for the search log.
func splitTerms(expr string) []string {
	if expr == "" {
		return nil
	}
	var out []string
	for _, alt := range strings.Split(expr, "||") {
		for _, term := range strings.Split(alt, "&&") {
			if term = strings.TrimSpace(term); term != "" {
				out = append(out, term)
			}
		}
	}
	return out
}
