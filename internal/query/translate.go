package query

import (
	"strings"

	"github.com/hirelens/hirelens/internal/models"
)

// Title-like paths a role title alternative is matched against.
var titlePaths = []string{"headline", "occupation", "summary"}

// Translate converts an entity set into a compound search query.
//
// Country and city are hard constraints and go into must. Skills are
// split on || into alternatives; an alternative containing && becomes
// a nested group whose sub-terms are all mandatory, a plain
// alternative stays preferred. The whole skill group is added as one
// must clause, so once skills are specified at least one alternative
// has to match. Role title alternatives are preference-only and are
// matched against the title-like fields.
func Translate(e *models.EntitySet) Compound {
	var q Compound

	if e.HasCountry() {
		q.Must = append(q.Must, Text{Query: e.Country, Paths: []string{"country"}})
	}
	if e.HasCity() {
		q.Must = append(q.Must, Text{Query: e.City, Paths: []string{"city"}})
	}

	if e.HasSkills() {
		var skill Compound
		for _, alt := range strings.Split(e.Skills, "||") {
			if strings.Contains(alt, "&&") {
				for _, term := range strings.Split(alt, "&&") {
					if term = strings.TrimSpace(term); term != "" {
						skill.Must = append(skill.Must, Text{Query: term, Paths: []string{"skills"}})
					}
				}
			} else if alt = strings.TrimSpace(alt); alt != "" {
				skill.Should = append(skill.Should, Text{Query: alt, Paths: []string{"skills"}})
			}
		}
		if len(skill.Must) > 0 || len(skill.Should) > 0 {
			q.Must = append(q.Must, skill)
		}
	}

	if e.HasRoleTitle() {
		for _, role := range strings.Split(e.CurrentRoleTitle, "||") {
			if role = strings.TrimSpace(role); role != "" {
				q.Should = append(q.Should, Text{Query: role, Paths: titlePaths})
			}
		}
	}

	return q
}
