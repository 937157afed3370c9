package projects

import (
	"net/url"

	"github.com/atelier-studio/atelier/pkg/query"
	"github.com/atelier-studio/atelier/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "projects", "p").
	Project("id", "ID").
	Project("type", "Type").
	Project("client_name", "ClientName").
	Project("client_business_name", "ClientBusinessName").
	Project("niche", "Niche").
	Project("platform", "Platform").
	Project("tone_of_voice", "ToneOfVoice").
	Project("language", "Language").
	Project("brief", "Brief").
	Project("inputs_json", "InputsJSON").
	Project("output_json", "OutputJSON").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{
	Field:      "CreatedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for project queries.
// Nil fields are ignored. Type uses exact matching. Search matches
// client_name OR niche as a substring via ILIKE, so it is case-insensitive
// on PostgreSQL; callers must not rely on case-sensitive containment.
type Filters struct {
	Type   *Type   `json:"type,omitempty"`
	Search *string `json:"search,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	if f.Type != nil {
		b.WhereEquals("Type", string(*f.Type))
	}
	return b.WhereSearch(f.Search, "ClientName", "Niche")
}

// FiltersFromQuery extracts filter values from URL query parameters.
// Unrecognized type values are ignored rather than rejected.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if s := values.Get("type"); s != "" {
		if t, err := ParseType(s); err == nil {
			f.Type = &t
		}
	}

	if s := values.Get("search"); s != "" {
		f.Search = &s
	}

	return f
}

func scanProject(s repository.Scanner) (Project, error) {
	var p Project
	err := s.Scan(
		&p.ID,
		&p.Type,
		&p.ClientName,
		&p.ClientBusinessName,
		&p.Niche,
		&p.Platform,
		&p.ToneOfVoice,
		&p.Language,
		&p.Brief,
		&p.InputsJSON,
		&p.OutputJSON,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}
