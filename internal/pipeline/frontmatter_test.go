package pipeline

import (
	"strings"
	"testing"
)

func TestParseFrontMatter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		record    string
		wantFM    bool
		wantTitle string
		wantTags  []string
		wantBody  string
	}{
		{
			name:      "obsidian style export",
			record:    "---\ntitle: 'Getting Started'\nauthor: Ada\ntags: [intro, howto]\n---\n\nWelcome.",
			wantFM:    true,
			wantTitle: "Getting Started",
			wantTags:  []string{"intro", "howto"},
			wantBody:  "Welcome.",
		},
		{
			name:     "no front matter",
			record:   "title: 'Inline'\nBody",
			wantFM:   false,
			wantBody: "title: 'Inline'\nBody",
		},
		{
			name:     "malformed front matter falls back to whole record",
			record:   "---\ntitle: [unclosed\n---\nBody",
			wantFM:   false,
			wantBody: "---\ntitle: [unclosed\n---\nBody",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := ParseFrontMatter(tt.record)
			if doc.HasFrontMatter != tt.wantFM {
				t.Fatalf("HasFrontMatter = %v, want %v", doc.HasFrontMatter, tt.wantFM)
			}
			if doc.Meta.Title != tt.wantTitle {
				t.Errorf("Meta.Title = %q, want %q", doc.Meta.Title, tt.wantTitle)
			}
			if strings.Join(doc.Meta.Tags, ",") != strings.Join(tt.wantTags, ",") {
				t.Errorf("Meta.Tags = %v, want %v", doc.Meta.Tags, tt.wantTags)
			}
			if strings.TrimSpace(doc.Body) != tt.wantBody {
				t.Errorf("Body = %q, want %q", doc.Body, tt.wantBody)
			}
		})
	}
}

func TestMeta_AllTags(t *testing.T) {
	t.Parallel()

	m := Meta{Tags: []string{"a"}, Keywords: []string{"b", "c"}}
	if got := strings.Join(m.AllTags(), ","); got != "a,b,c" {
		t.Errorf("AllTags() = %q, want %q", got, "a,b,c")
	}

	m = Meta{Tags: []string{"only"}}
	if got := strings.Join(m.AllTags(), ","); got != "only" {
		t.Errorf("AllTags() = %q, want %q", got, "only")
	}
}
