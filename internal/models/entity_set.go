package models

// EntitySet is the structured output of the extraction collaborator
// for one candidate-search query. String fields carry the provider's
// Boolean micro-syntax (terms joined with && / ||, quoting and
// parentheses allowed); an absent dimension is the empty string.
// Country and city are defaulted by the extraction contract and are
// expected to be non-empty on any valid query.
type EntitySet struct {
	Country            string `json:"country"`
	CurrentRoleTitle   string `json:"current_role_title"`
	PastRoleTitle      string `json:"past_role_title"`
	CurrentCompanyName string `json:"current_company_name"`
	PastCompanyName    string `json:"past_company_name"`
	Region             string `json:"region"`
	City               string `json:"city"`
	Headline           string `json:"headline"`
	Skills             string `json:"skills"`
	PageSize           int    `json:"page_size"`
}

func (e *EntitySet) HasCountry() bool { return e != nil && e.Country != "" }

func (e *EntitySet) HasCity() bool { return e != nil && e.City != "" }

func (e *EntitySet) HasSkills() bool { return e != nil && e.Skills != "" }

func (e *EntitySet) HasRoleTitle() bool { return e != nil && e.CurrentRoleTitle != "" }

// Complete reports whether the set carries every dimension required to
// run the pipeline: country, city, skills and current role title.
func (e *EntitySet) Complete() bool {
	return e.HasCountry() && e.HasCity() && e.HasSkills() && e.HasRoleTitle()
}
