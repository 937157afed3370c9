package prompts

import (
	"fmt"
	"strings"
)

// SocialBrief describes a request for a social media content plan.
// BusinessName and ExtraNotes are optional; nil values are omitted from
// the built instructions.
type SocialBrief struct {
	ClientName     string   `json:"client_name"`
	BusinessName   *string  `json:"business_name,omitempty"`
	Niche          string   `json:"niche"`
	Platforms      []string `json:"platforms"`
	TargetAudience string   `json:"target_audience"`
	ToneOfVoice    string   `json:"tone_of_voice"`
	NumberOfPosts  int      `json:"number_of_posts"`
	Objectives     string   `json:"objectives"`
	ExtraNotes     *string  `json:"extra_notes,omitempty"`
}

// BuildSocial produces the instruction pair for a social content brief.
func BuildSocial(brief SocialBrief) Prompt {
	var b strings.Builder

	fmt.Fprintf(&b, "Create %d social media posts with the following specifications:\n\n", brief.NumberOfPosts)
	line(&b, "Client", brief.ClientName)
	optional(&b, "Business", brief.BusinessName)
	line(&b, "Niche/Industry", brief.Niche)
	line(&b, "Platforms", strings.Join(brief.Platforms, ", "))
	line(&b, "Target Audience", brief.TargetAudience)
	line(&b, "Tone of Voice", brief.ToneOfVoice)
	line(&b, "Objectives", brief.Objectives)
	optional(&b, "Additional Notes", brief.ExtraNotes)
	b.WriteString("\nGenerate diverse, engaging content that will resonate with the target audience and achieve the stated objectives.")

	return Prompt{System: socialSpec, User: b.String()}
}
