package proxycurl

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirelens/hirelens/internal/models"
	"github.com/hirelens/hirelens/internal/utils"
)

func fastRetry(t *testing.T) {
	t.Helper()
	old := retryBaseDelay
	retryBaseDelay = time.Millisecond
	t.Cleanup(func() { retryBaseDelay = old })
}

func TestSearchPersonsOmitsEmptyCriteria(t *testing.T) {
	var got url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/search/person", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("Authorization"))
		got = r.URL.Query()
		w.Write([]byte(`{"results":[{"linkedin_profile_url":"https://linkedin.com/in/a"},{"linkedin_profile_url":"https://linkedin.com/in/b"}]}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", srv.URL)
	matches, err := c.SearchPersons(context.Background(), &models.EntitySet{
		Country:          "PK",
		City:             "Lahore",
		Skills:           "Python",
		CurrentRoleTitle: "Backend Developer",
	}, 5)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "https://linkedin.com/in/a", matches[0].LinkedinProfileURL)

	assert.Equal(t, "PK", got.Get("country"))
	assert.Equal(t, "Lahore", got.Get("city"))
	assert.Equal(t, "Python", got.Get("skills"))
	assert.Equal(t, "Backend Developer", got.Get("current_role_title"))
	assert.Equal(t, "5", got.Get("page_size"))
	assert.Equal(t, "skip", got.Get("enrich_profiles"))
	assert.Equal(t, "if-present", got.Get("use_cache"))

	// Empty criteria are omitted, not sent blank.
	for _, key := range []string{"past_role_title", "current_company_name", "past_company_name", "region", "headline"} {
		_, present := got[key]
		assert.False(t, present, "%s should be omitted", key)
	}
}

func TestSearchPersonsNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad request", http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewClient("k", srv.URL)
	_, err := c.SearchPersons(context.Background(), &models.EntitySet{Country: "PK"}, 5)
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeUnavailable))
}

func TestFetchProfileStampsURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/linkedin", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "https://linkedin.com/in/a", q.Get("url"))
		assert.Equal(t, "include", q.Get("skills"))
		assert.Equal(t, "if-recent", q.Get("use_cache"))
		assert.Equal(t, "on-error", q.Get("fallback_to_cache"))
		w.Write([]byte(`{"full_name":"Ada Lovelace","city":"London","skills":["Python","Math"]}`))
	}))
	defer srv.Close()

	c := NewClient("k", srv.URL)
	p, err := c.FetchProfile(context.Background(), "https://linkedin.com/in/a")
	require.NoError(t, err)
	assert.Equal(t, "https://linkedin.com/in/a", p.LinkedinProfileURL)
	assert.Equal(t, "Ada Lovelace", p.FullName)
	assert.Equal(t, []string{"Python", "Math"}, p.Skills)
}

func TestFetchProfileFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient("k", srv.URL)
	_, err := c.FetchProfile(context.Background(), "https://linkedin.com/in/ghost")
	require.Error(t, err)
}

func TestRetryOn429ThenSuccess(t *testing.T) {
	fastRetry(t)

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) <= 2 {
			http.Error(w, "slow down", http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"credit_balance":42}`))
	}))
	defer srv.Close()

	c := NewClient("k", srv.URL)
	cb, err := c.GetCreditBalance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, cb.CreditBalance)
	assert.Equal(t, int32(3), calls.Load())
}

func TestGetProfilePicNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient("k", srv.URL)
	_, err := c.GetProfilePic(context.Background(), "https://linkedin.com/in/ghost")
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}

func TestGetProfilePicRateLimited(t *testing.T) {
	fastRetry(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "slow down", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient("k", srv.URL)
	_, err := c.GetProfilePic(context.Background(), "https://linkedin.com/in/a")
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeRateLimited))
}

func TestGetProfilePicOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/linkedin/person/profile-picture", r.URL.Path)
		assert.Equal(t, "https://linkedin.com/in/a", r.URL.Query().Get("linkedin_person_profile_url"))
		w.Write([]byte(`{"tmp_profile_pic_url":"https://cdn.example.com/pic.jpg"}`))
	}))
	defer srv.Close()

	c := NewClient("k", srv.URL)
	pic, err := c.GetProfilePic(context.Background(), "https://linkedin.com/in/a")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/pic.jpg", pic.TmpProfilePicURL)
}
