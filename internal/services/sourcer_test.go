package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirelens/hirelens/internal/models"
	"github.com/hirelens/hirelens/internal/providers/proxycurl"
)

type fakeProvider struct {
	matches   []proxycurl.PersonMatch
	searchErr error
	gotCount  int

	profiles map[string]*models.PersonProfile
	fetchErr map[string]error
	fetched  []string
}

func (f *fakeProvider) SearchPersons(_ context.Context, _ *models.EntitySet, count int) ([]proxycurl.PersonMatch, error) {
	f.gotCount = count
	return f.matches, f.searchErr
}

func (f *fakeProvider) FetchProfile(_ context.Context, profileURL string) (*models.PersonProfile, error) {
	f.fetched = append(f.fetched, profileURL)
	if err, ok := f.fetchErr[profileURL]; ok {
		return nil, err
	}
	if p, ok := f.profiles[profileURL]; ok {
		cp := *p
		return &cp, nil
	}
	return &models.PersonProfile{LinkedinProfileURL: profileURL}, nil
}

func TestSourcerTwoPhase(t *testing.T) {
	provider := &fakeProvider{
		matches: []proxycurl.PersonMatch{
			{LinkedinProfileURL: "https://linkedin.com/in/a"},
			{LinkedinProfileURL: "https://linkedin.com/in/b"},
		},
	}
	s := NewSourcer(provider, time.Second, quietLogger())

	before := time.Now().UTC()
	out, err := s.Source(context.Background(), validEntities(), 2)
	require.NoError(t, err)

	assert.Equal(t, 2, provider.gotCount)
	require.Len(t, out, 2)
	for _, p := range out {
		assert.False(t, p.LastUpdated.Before(before), "records are stamped with the current time")
	}
	assert.Equal(t, []string{"https://linkedin.com/in/a", "https://linkedin.com/in/b"}, provider.fetched)
}

func TestSourcerDropsFailedHydration(t *testing.T) {
	provider := &fakeProvider{
		matches: []proxycurl.PersonMatch{
			{LinkedinProfileURL: "https://linkedin.com/in/a"},
			{LinkedinProfileURL: "https://linkedin.com/in/broken"},
			{LinkedinProfileURL: "https://linkedin.com/in/c"},
		},
		fetchErr: map[string]error{
			"https://linkedin.com/in/broken": fmt.Errorf("upstream 500"),
		},
	}
	s := NewSourcer(provider, time.Second, quietLogger())

	out, err := s.Source(context.Background(), validEntities(), 3)
	require.NoError(t, err, "one failed hydration never fails the batch")
	require.Len(t, out, 2)
	assert.Equal(t, "https://linkedin.com/in/a", out[0].LinkedinProfileURL)
	assert.Equal(t, "https://linkedin.com/in/c", out[1].LinkedinProfileURL)
}

func TestSourcerSkipsEmptyMatchURLs(t *testing.T) {
	provider := &fakeProvider{
		matches: []proxycurl.PersonMatch{{LinkedinProfileURL: ""}, {LinkedinProfileURL: "https://linkedin.com/in/a"}},
	}
	s := NewSourcer(provider, time.Second, quietLogger())

	out, err := s.Source(context.Background(), validEntities(), 2)
	require.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestSourcerPropagatesSearchFailure(t *testing.T) {
	provider := &fakeProvider{searchErr: fmt.Errorf("rate limited")}
	s := NewSourcer(provider, time.Second, quietLogger())

	_, err := s.Source(context.Background(), validEntities(), 5)
	assert.Error(t, err)
}
