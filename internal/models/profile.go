package models

import (
	"time"
)

// PersonProfile is one cached candidate. LinkedinProfileURL is the
// natural key; the store enforces a unique index on it.
// RelevanceScore is attached at query time only, omitempty keeps it
// out of persisted documents.
type PersonProfile struct {
	LinkedinProfileURL string `bson:"linkedin_profile_url" json:"linkedin_profile_url"`

	FullName        string   `bson:"full_name,omitempty" json:"full_name,omitempty"`
	Headline        string   `bson:"headline,omitempty" json:"headline,omitempty"`
	Occupation      string   `bson:"occupation,omitempty" json:"occupation,omitempty"`
	Summary         string   `bson:"summary,omitempty" json:"summary,omitempty"`
	Country         string   `bson:"country,omitempty" json:"country,omitempty"`
	CountryFullName string   `bson:"country_full_name,omitempty" json:"country_full_name,omitempty"`
	City            string   `bson:"city,omitempty" json:"city,omitempty"`
	State           string   `bson:"state,omitempty" json:"state,omitempty"`
	Skills          []string `bson:"skills,omitempty" json:"skills,omitempty"`

	ProfilePicURL           string `bson:"profile_pic_url,omitempty" json:"profile_pic_url,omitempty"`
	BackgroundCoverImageURL string `bson:"background_cover_image_url,omitempty" json:"background_cover_image_url,omitempty"`

	LastUpdated time.Time `bson:"last_updated" json:"last_updated"`

	RelevanceScore float64 `bson:"relevance_score,omitempty" json:"relevance_score,omitempty"`
}

// ProfileCard is the display projection returned to clients.
type ProfileCard struct {
	LinkedinProfileURL      string    `json:"linkedin_profile_url"`
	FullName                string    `json:"full_name,omitempty"`
	Headline                string    `json:"headline,omitempty"`
	City                    string    `json:"city,omitempty"`
	ProfilePicURL           string    `json:"profile_pic_url,omitempty"`
	BackgroundCoverImageURL string    `json:"background_cover_image_url,omitempty"`
	LastUpdated             time.Time `json:"last_updated"`
	RelevanceScore          float64   `json:"relevance_score"`
}

func (p *PersonProfile) Card() ProfileCard {
	return ProfileCard{
		LinkedinProfileURL:      p.LinkedinProfileURL,
		FullName:                p.FullName,
		Headline:                p.Headline,
		City:                    p.City,
		ProfilePicURL:           p.ProfilePicURL,
		BackgroundCoverImageURL: p.BackgroundCoverImageURL,
		LastUpdated:             p.LastUpdated,
		RelevanceScore:          p.RelevanceScore,
	}
}
