// Package projects implements the project record domain for Atelier.
// A project is the durable record of one generation run: the submitted
// brief, the validated generated content, and denormalized summary fields
// for display and search.
package projects

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Project is the persisted record of a single generation run.
// InputsJSON is the exact serialized brief as submitted; OutputJSON is the
// validated generated content. ClientName, Niche, and Brief are denormalized
// from the brief so list and search queries never parse InputsJSON.
type Project struct {
	ID                 uuid.UUID       `json:"id"`
	Type               Type            `json:"type"`
	ClientName         string          `json:"client_name"`
	ClientBusinessName *string         `json:"client_business_name"`
	Niche              string          `json:"niche"`
	Platform           *string         `json:"platform"`
	ToneOfVoice        *string         `json:"tone_of_voice"`
	Language           string          `json:"language"`
	Brief              string          `json:"brief"`
	InputsJSON         json.RawMessage `json:"inputs_json"`
	OutputJSON         json.RawMessage `json:"output_json"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// CreateCommand carries the data needed to persist a new project record.
// All fields are stored verbatim; id and timestamps are assigned at creation.
type CreateCommand struct {
	Type               Type            `json:"type"`
	ClientName         string          `json:"client_name"`
	ClientBusinessName *string         `json:"client_business_name"`
	Niche              string          `json:"niche"`
	Platform           *string         `json:"platform"`
	ToneOfVoice        *string         `json:"tone_of_voice"`
	Language           string          `json:"language"`
	Brief              string          `json:"brief"`
	InputsJSON         json.RawMessage `json:"inputs_json"`
	OutputJSON         json.RawMessage `json:"output_json"`
}

// Stats aggregates the total project count and the count per project type.
type Stats struct {
	Total    int `json:"total"`
	Social   int `json:"social"`
	Scripts  int `json:"scripts"`
	Branding int `json:"branding"`
}
