package prompts

import (
	"fmt"
	"strings"
)

// ScriptsBrief describes a request for short-form video scripts.
type ScriptsBrief struct {
	ClientName      string  `json:"client_name"`
	Niche           string  `json:"niche"`
	ContentType     string  `json:"content_type"`
	TargetAudience  string  `json:"target_audience"`
	VideoLength     string  `json:"video_length"`
	NumberOfScripts int     `json:"number_of_scripts"`
	HookStyle       string  `json:"hook_style"`
	CallToAction    string  `json:"call_to_action"`
	ExtraNotes      *string `json:"extra_notes,omitempty"`
}

// BuildScripts produces the instruction pair for a video scripts brief.
func BuildScripts(brief ScriptsBrief) Prompt {
	var b strings.Builder

	fmt.Fprintf(&b, "Create %d short-form video scripts with the following specifications:\n\n", brief.NumberOfScripts)
	line(&b, "Client/Channel", brief.ClientName)
	line(&b, "Niche", brief.Niche)
	line(&b, "Content Type", brief.ContentType)
	line(&b, "Target Audience", brief.TargetAudience)
	line(&b, "Video Length", brief.VideoLength)
	line(&b, "Hook Style", brief.HookStyle)
	line(&b, "Call-to-Action Preference", brief.CallToAction)
	optional(&b, "Additional Notes", brief.ExtraNotes)
	b.WriteString("\nGenerate scripts that are optimized for maximum engagement and virality potential.")

	return Prompt{System: scriptsSpec, User: b.String()}
}
