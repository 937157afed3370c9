package prompts

import "strings"

// BrandingBrief describes a request for a branding kit. BrandName is
// optional; when absent the service is asked to propose name ideas.
type BrandingBrief struct {
	BrandName        *string `json:"brand_name,omitempty"`
	Industry         string  `json:"industry"`
	Keywords         string  `json:"keywords"`
	TargetAudience   string  `json:"target_audience"`
	BrandPersonality string  `json:"brand_personality"`
	ColorPreferences *string `json:"color_preferences,omitempty"`
	AvoidColors      *string `json:"avoid_colors,omitempty"`
	WantNameIdeas    bool    `json:"want_name_ideas"`
	ExtraNotes       *string `json:"extra_notes,omitempty"`
}

// BuildBranding produces the instruction pair for a branding kit brief.
func BuildBranding(brief BrandingBrief) Prompt {
	var b strings.Builder

	b.WriteString("Create a comprehensive branding kit with the following specifications:\n\n")

	if brief.BrandName != nil && *brief.BrandName != "" {
		line(&b, "Existing Brand Name", *brief.BrandName)
	} else {
		b.WriteString("No existing brand name - generate name ideas\n")
	}

	line(&b, "Industry/Niche", brief.Industry)
	line(&b, "Keywords/Brand Feel", brief.Keywords)
	line(&b, "Target Audience", brief.TargetAudience)
	line(&b, "Brand Personality", brief.BrandPersonality)
	optional(&b, "Color Preferences", brief.ColorPreferences)
	optional(&b, "Avoid Colors", brief.AvoidColors)

	if brief.WantNameIdeas {
		b.WriteString("Generate 8-10 brand name ideas\n")
	} else {
		b.WriteString("Skip brand name ideas\n")
	}

	optional(&b, "Additional Notes", brief.ExtraNotes)
	b.WriteString("\nGenerate a cohesive, professional branding kit that will resonate with the target audience and reflect the brand personality.")

	return Prompt{System: brandingSpec, User: b.String()}
}
