// Package content defines the structured output shapes the generation
// service must produce, one per content domain, and validates raw model
// output against them. Validation sits between generation and persistence
// so that partially-invalid content never reaches the store.
package content

import (
	"encoding/json"

	"github.com/atelier-studio/atelier/internal/projects"
)

// Content is a tagged union of the three domain output shapes. Kind
// discriminates which payload pointer is set; exactly one is non-nil.
type Content struct {
	Kind     projects.Type    `json:"kind"`
	Social   *SocialContent   `json:"social,omitempty"`
	Scripts  *ScriptsContent  `json:"scripts,omitempty"`
	Branding *BrandingContent `json:"branding,omitempty"`
}

// Payload returns the active payload for serialization into a project's
// output_json column.
func (c *Content) Payload() any {
	switch c.Kind {
	case projects.TypeSocialContent:
		return c.Social
	case projects.TypeTikTokScripts:
		return c.Scripts
	case projects.TypeBrandingKit:
		return c.Branding
	}
	return nil
}

// MarshalPayload serializes the active payload as JSON.
func (c *Content) MarshalPayload() (json.RawMessage, error) {
	return json.Marshal(c.Payload())
}

// SocialPost is one entry in a social content plan.
type SocialPost struct {
	ID                int      `json:"id"`
	Concept           string   `json:"concept"`
	Caption           string   `json:"caption"`
	Hook              string   `json:"hook"`
	SuggestedHashtags []string `json:"suggested_hashtags"`
	CallToAction      string   `json:"call_to_action"`
	PostType          string   `json:"post_type,omitempty"`
}

// SocialContent is the required output shape for the social domain.
type SocialContent struct {
	Posts []SocialPost `json:"posts"`
}

// Beat is a timed segment within a video script.
type Beat struct {
	Timestamp string `json:"timestamp,omitempty"`
	Text      string `json:"text"`
}

// Script is one entry in a short-form video script set.
type Script struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Hook         string   `json:"hook"`
	ScriptBody   string   `json:"script_body"`
	Beats        []Beat   `json:"beats,omitempty"`
	OnScreenText []string `json:"on_screen_text,omitempty"`
	CallToAction string   `json:"call_to_action"`
	Hashtags     []string `json:"hashtags"`
}

// ScriptsContent is the required output shape for the scripts domain.
type ScriptsContent struct {
	Scripts []Script `json:"scripts"`
}

// Color is one palette entry in a branding kit.
type Color struct {
	Hex         string `json:"hex"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// FontPairing recommends heading and body typefaces for a brand.
type FontPairing struct {
	Heading     string `json:"heading"`
	Body        string `json:"body"`
	Description string `json:"description,omitempty"`
}

// BrandingContent is the required output shape for the branding domain.
type BrandingContent struct {
	BrandNames           []string    `json:"brand_names"`
	Taglines             []string    `json:"taglines"`
	ColorPalette         []Color     `json:"color_palette"`
	FontPairing          FontPairing `json:"font_pairing"`
	ToneOfVoice          string      `json:"tone_of_voice"`
	MoodboardDescription string      `json:"moodboard_description"`
}
