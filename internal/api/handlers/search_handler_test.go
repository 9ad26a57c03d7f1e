package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirelens/hirelens/internal/models"
	"github.com/hirelens/hirelens/internal/utils"
)

type stubSearchService struct {
	cards []models.ProfileCard
	err   error
}

func (s *stubSearchService) SearchProfiles(context.Context, string) ([]models.ProfileCard, error) {
	return s.cards, s.err
}

func doSearch(t *testing.T, svc *stubSearchService, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/search-profiles", NewSearchHandler(svc).SearchProfiles)

	req := httptest.NewRequest(http.MethodPost, "/search-profiles", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSearchProfilesOK(t *testing.T) {
	svc := &stubSearchService{cards: []models.ProfileCard{
		{LinkedinProfileURL: "https://linkedin.com/in/a", FullName: "Ada", RelevanceScore: 0.91},
	}}

	w := doSearch(t, svc, `{"prompt":"python developer in lahore"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var cards []models.ProfileCard
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cards))
	require.Len(t, cards, 1)
	assert.Equal(t, "Ada", cards[0].FullName)
}

func TestSearchProfilesMissingPrompt(t *testing.T) {
	w := doSearch(t, &stubSearchService{}, `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchProfilesInvalidQuery(t *testing.T) {
	svc := &stubSearchService{err: utils.E(utils.CodeInvalidArgument, "SearchService.SearchProfiles", "invalid query", nil)}
	w := doSearch(t, svc, `{"prompt":"hello"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var apiErr APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	assert.Equal(t, utils.CodeInvalidArgument, apiErr.Code)
}

func TestSearchProfilesNoResults(t *testing.T) {
	svc := &stubSearchService{err: utils.E(utils.CodeNotFound, "SearchService.SearchProfiles", "no profiles found", nil)}
	w := doSearch(t, svc, `{"prompt":"cobol expert"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearchProfilesInternalError(t *testing.T) {
	svc := &stubSearchService{err: utils.E(utils.CodeInternal, "SearchService.SearchProfiles", "extraction failed", nil)}
	w := doSearch(t, svc, `{"prompt":"python dev"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
