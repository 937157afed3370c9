package content

import (
	"fmt"

	"github.com/atelier-studio/atelier/internal/projects"
	"github.com/atelier-studio/atelier/pkg/formatting"
)

// Validate parses raw generation output for the given project type and
// enforces the domain's required shape. Parse failures wrap
// formatting.ErrParseFailed with the offending text attached; shape
// failures wrap ErrMissingField naming the field. Collections that views
// iterate must be present; hashtag and name lists may be empty, but the
// text fields each view reads must be non-empty. Item counts are never
// checked against the brief: the service is not forced to comply exactly.
func Validate(raw string, kind projects.Type) (*Content, error) {
	switch kind {
	case projects.TypeSocialContent:
		return validateSocial(raw)
	case projects.TypeTikTokScripts:
		return validateScripts(raw)
	case projects.TypeBrandingKit:
		return validateBranding(raw)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, kind)
}

func validateSocial(raw string) (*Content, error) {
	parsed, err := formatting.Parse[SocialContent](raw)
	if err != nil {
		return nil, err
	}

	if parsed.Posts == nil {
		return nil, missing("posts")
	}
	for i, post := range parsed.Posts {
		if post.Concept == "" {
			return nil, missing(fmt.Sprintf("posts[%d].concept", i))
		}
		if post.Caption == "" {
			return nil, missing(fmt.Sprintf("posts[%d].caption", i))
		}
		if post.SuggestedHashtags == nil {
			return nil, missing(fmt.Sprintf("posts[%d].suggested_hashtags", i))
		}
	}

	return &Content{Kind: projects.TypeSocialContent, Social: &parsed}, nil
}

func validateScripts(raw string) (*Content, error) {
	parsed, err := formatting.Parse[ScriptsContent](raw)
	if err != nil {
		return nil, err
	}

	if parsed.Scripts == nil {
		return nil, missing("scripts")
	}
	for i, script := range parsed.Scripts {
		if script.Title == "" {
			return nil, missing(fmt.Sprintf("scripts[%d].title", i))
		}
		if script.ScriptBody == "" {
			return nil, missing(fmt.Sprintf("scripts[%d].script_body", i))
		}
		if script.Hashtags == nil {
			return nil, missing(fmt.Sprintf("scripts[%d].hashtags", i))
		}
	}

	return &Content{Kind: projects.TypeTikTokScripts, Scripts: &parsed}, nil
}

func validateBranding(raw string) (*Content, error) {
	parsed, err := formatting.Parse[BrandingContent](raw)
	if err != nil {
		return nil, err
	}

	if parsed.Taglines == nil {
		return nil, missing("taglines")
	}
	if parsed.ColorPalette == nil {
		return nil, missing("color_palette")
	}
	if parsed.FontPairing.Heading == "" {
		return nil, missing("font_pairing.heading")
	}
	if parsed.FontPairing.Body == "" {
		return nil, missing("font_pairing.body")
	}
	if parsed.ToneOfVoice == "" {
		return nil, missing("tone_of_voice")
	}
	if parsed.MoodboardDescription == "" {
		return nil, missing("moodboard_description")
	}

	return &Content{Kind: projects.TypeBrandingKit, Branding: &parsed}, nil
}

func missing(field string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, field)
}
