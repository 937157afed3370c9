package projects_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/atelier-studio/atelier/internal/projects"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    projects.Type
		wantErr bool
	}{
		{"social", "SOCIAL_CONTENT", projects.TypeSocialContent, false},
		{"scripts", "TIKTOK_SCRIPTS", projects.TypeTikTokScripts, false},
		{"branding", "BRANDING_KIT", projects.TypeBrandingKit, false},
		{"unknown", "PODCAST", "", true},
		{"empty", "", "", true},
		{"lowercase rejected", "social_content", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := projects.ParseType(tt.input)
			if tt.wantErr {
				if !errors.Is(err, projects.ErrInvalidType) {
					t.Errorf("error = %v, want ErrInvalidType", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseType error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseType(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTypeUnmarshalJSON(t *testing.T) {
	t.Run("valid type", func(t *testing.T) {
		var typ projects.Type
		if err := json.Unmarshal([]byte(`"BRANDING_KIT"`), &typ); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if typ != projects.TypeBrandingKit {
			t.Errorf("type = %v, want %v", typ, projects.TypeBrandingKit)
		}
	})

	t.Run("invalid type rejected", func(t *testing.T) {
		var typ projects.Type
		err := json.Unmarshal([]byte(`"NEWSLETTER"`), &typ)
		if !errors.Is(err, projects.ErrInvalidType) {
			t.Errorf("error = %v, want ErrInvalidType", err)
		}
	})

	t.Run("non-string rejected", func(t *testing.T) {
		var typ projects.Type
		if err := json.Unmarshal([]byte(`42`), &typ); err == nil {
			t.Error("expected error for non-string type")
		}
	})
}

func TestTypes(t *testing.T) {
	got := projects.Types()
	if len(got) != 3 {
		t.Fatalf("Types() length = %d, want 3", len(got))
	}
}
