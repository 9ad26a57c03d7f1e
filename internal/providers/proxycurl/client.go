// Package proxycurl wraps the external profile provider: criteria
// search, full-record hydration, credit balance and profile pictures.
package proxycurl

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/hirelens/hirelens/internal/models"
	"github.com/hirelens/hirelens/internal/utils"
)

const DefaultBaseURL = "https://nubela.co/proxycurl/api"

// PersonMatch is one hit from the criteria search: just the canonical
// profile URL, to be hydrated separately.
type PersonMatch struct {
	LinkedinProfileURL string `json:"linkedin_profile_url"`
}

type searchResponse struct {
	Results []PersonMatch `json:"results"`
}

type CreditBalance struct {
	CreditBalance int `json:"credit_balance"`
}

type ProfilePicture struct {
	TmpProfilePicURL string `json:"tmp_profile_pic_url"`
}

type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		http:    &http.Client{Timeout: 60 * time.Second},
	}
}

func (c *Client) get(ctx context.Context, path string, params url.Values) (*http.Response, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Accept", "application/json")
	return doWithRetry(ctx, c.http, req)
}

// SearchPersons asks for up to count candidate profile URLs matching
// the entity criteria. Empty criteria values are omitted entirely:
// sending them as blanks would over-constrain the remote query.
func (c *Client) SearchPersons(ctx context.Context, e *models.EntitySet, count int) ([]PersonMatch, error) {
	const op = "Proxycurl.SearchPersons"

	params := url.Values{}
	set := func(key, val string) {
		if val != "" {
			params.Set(key, val)
		}
	}
	set("country", e.Country)
	set("current_role_title", e.CurrentRoleTitle)
	set("past_role_title", e.PastRoleTitle)
	set("current_company_name", e.CurrentCompanyName)
	set("past_company_name", e.PastCompanyName)
	set("region", e.Region)
	set("city", e.City)
	set("headline", e.Headline)
	set("skills", e.Skills)
	params.Set("page_size", strconv.Itoa(count))
	params.Set("enrich_profiles", "skip")
	params.Set("use_cache", "if-present")

	resp, err := c.get(ctx, "/v2/search/person", params)
	if err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "search request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, utils.E(utils.CodeUnavailable, op,
			fmt.Sprintf("search returned status %d", resp.StatusCode), nil)
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to decode search response", err)
	}
	return sr.Results, nil
}

// FetchProfile hydrates a full record for a known profile URL.
func (c *Client) FetchProfile(ctx context.Context, profileURL string) (*models.PersonProfile, error) {
	const op = "Proxycurl.FetchProfile"

	params := url.Values{}
	params.Set("url", profileURL)
	params.Set("skills", "include")
	params.Set("use_cache", "if-recent")
	params.Set("fallback_to_cache", "on-error")

	resp, err := c.get(ctx, "/v2/linkedin", params)
	if err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "hydration request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, utils.E(utils.CodeUnavailable, op,
			fmt.Sprintf("hydration returned status %d for %s", resp.StatusCode, profileURL), nil)
	}

	var p models.PersonProfile
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to decode profile", err)
	}
	// The profile payload does not echo its own URL back.
	p.LinkedinProfileURL = profileURL
	return &p, nil
}

func (c *Client) GetCreditBalance(ctx context.Context) (*CreditBalance, error) {
	const op = "Proxycurl.GetCreditBalance"

	resp, err := c.get(ctx, "/credit-balance", nil)
	if err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "credit balance request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, utils.E(utils.CodeInternal, op,
			fmt.Sprintf("credit balance returned status %d", resp.StatusCode), nil)
	}

	var cb CreditBalance
	if err := json.NewDecoder(resp.Body).Decode(&cb); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to decode credit balance", err)
	}
	return &cb, nil
}

// GetProfilePic returns a temporary picture URL for a profile. 404 and
// 429 are surfaced as coded errors so the HTTP layer can map them.
func (c *Client) GetProfilePic(ctx context.Context, profileURL string) (*ProfilePicture, error) {
	const op = "Proxycurl.GetProfilePic"

	params := url.Values{}
	params.Set("linkedin_person_profile_url", profileURL)

	resp, err := c.get(ctx, "/linkedin/person/profile-picture", params)
	if err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "profile picture request failed", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, utils.E(utils.CodeNotFound, op, "profile picture not found", nil)
	case http.StatusTooManyRequests:
		return nil, utils.E(utils.CodeRateLimited, op, "provider rate limit exceeded", nil)
	default:
		return nil, utils.E(utils.CodeInternal, op,
			fmt.Sprintf("profile picture returned status %d", resp.StatusCode), nil)
	}

	var pic ProfilePicture
	if err := json.NewDecoder(resp.Body).Decode(&pic); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to decode profile picture", err)
	}
	return &pic, nil
}
