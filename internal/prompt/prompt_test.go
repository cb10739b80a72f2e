// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package prompt

import (
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	p := Generate("Chocolate Cake", "write a recipe for chocolate cake", nil)

	if !strings.Contains(p, "Title: Chocolate Cake") {
		t.Errorf("prompt missing title: %q", p)
	}
	if !strings.Contains(p, "Content or Request: write a recipe for chocolate cake") {
		t.Errorf("prompt missing content: %q", p)
	}
	if !strings.HasSuffix(p, "without any additional comments or questions.") {
		t.Errorf("prompt missing no-commentary suffix: %q", p)
	}
	if strings.Contains(p, "perspectives") {
		t.Errorf("prompt mentions perspectives although none were given: %q", p)
	}
}

func TestGenerateWithPerspectives(t *testing.T) {
	p := Generate("Chocolate Cake", "notes", []string{"Beginner", "Expert"})

	if !strings.Contains(p, "Include separate sections for the following perspectives: Beginner, Expert.") {
		t.Errorf("prompt missing perspective instruction: %q", p)
	}
}

func TestReauthor(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		template     string
		perspectives []string
		want         []string
		notWant      []string
	}{
		{
			name:    "plain reauthor",
			content: "messy notes",
			want: []string{
				"Reauthor the following content",
				"improving its clarity, structure, and readability",
				"messy notes",
				"without any additional comments or questions.",
			},
			notWant: []string{"Template:"},
		},
		{
			name:     "reauthor with template",
			content:  "messy notes",
			template: "# Overview\n# Steps",
			want: []string{
				"Reauthor the following content",
				"using the provided template as a guide for formatting",
				"Template:\n# Overview\n# Steps",
				"Content to reauthor:",
			},
		},
		{
			name:     "blank content degenerates to generate-from-template",
			content:  "   \n",
			template: "# Overview",
			want: []string{
				"Generate a knowledge base article based on the following template:",
				"Template:\n# Overview",
			},
			notWant: []string{"Reauthor the following content"},
		},
		{
			name:         "perspectives included",
			content:      "notes",
			perspectives: []string{"Admin"},
			want:         []string{"Include separate sections for the following perspectives: Admin."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Reauthor(tt.content, tt.template, tt.perspectives)
			for _, w := range tt.want {
				if !strings.Contains(p, w) {
					t.Errorf("prompt missing %q:\n%s", w, p)
				}
			}
			for _, nw := range tt.notWant {
				if strings.Contains(p, nw) {
					t.Errorf("prompt should not contain %q:\n%s", nw, p)
				}
			}
		})
	}
}

func TestFormatToTemplate(t *testing.T) {
	p := FormatToTemplate("raw content", "# Sections")

	for _, w := range []string{
		"match the provided template structure",
		"Content:\nraw content",
		"Template:\n# Sections",
		"without any additional comments or questions.",
	} {
		if !strings.Contains(p, w) {
			t.Errorf("prompt missing %q:\n%s", w, p)
		}
	}
}

func TestTranslate(t *testing.T) {
	p := Translate("# Heading\n\nBody.", "French")

	if !strings.Contains(p, "Translate the following content to French") {
		t.Errorf("prompt missing language: %q", p)
	}
	if !strings.HasSuffix(p, "# Heading\n\nBody.") {
		t.Errorf("prompt should end with the content: %q", p)
	}
}

func TestPerspectiveSections(t *testing.T) {
	out := PerspectiveSections("# Article\n\nBody.", []string{"Beginner", "Expert"})

	if !strings.HasPrefix(out, "# Article\n\nBody.") {
		t.Errorf("original content not preserved: %q", out)
	}
	if !strings.Contains(out, "## Beginner Perspective") || !strings.Contains(out, "## Expert Perspective") {
		t.Errorf("missing perspective sections: %q", out)
	}
}

func TestPerspectiveSectionsEmpty(t *testing.T) {
	if got := PerspectiveSections("content", nil); got != "content" {
		t.Errorf("expected content unchanged, got %q", got)
	}
}
