package projects

import (
	"encoding/json"
	"slices"
)

// Type discriminates the three content domains a project can belong to.
// A project's type fixes the shape its output_json must satisfy.
type Type string

// Valid project types.
const (
	TypeSocialContent Type = "SOCIAL_CONTENT"
	TypeTikTokScripts Type = "TIKTOK_SCRIPTS"
	TypeBrandingKit   Type = "BRANDING_KIT"
)

var types = []Type{
	TypeSocialContent,
	TypeTikTokScripts,
	TypeBrandingKit,
}

// Types returns the list of valid project types.
func Types() []Type {
	return types
}

// UnmarshalJSON validates that the decoded string is a known project type.
func (t *Type) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v := Type(raw)
	if !slices.Contains(types, v) {
		return ErrInvalidType
	}
	*t = v
	return nil
}

// ParseType validates a string as a known project type.
// Returns ErrInvalidType if the value is not recognized.
func ParseType(s string) (Type, error) {
	v := Type(s)
	if !slices.Contains(types, v) {
		return "", ErrInvalidType
	}
	return v, nil
}
