// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package prompt constructs the instruction text sent to the model for each
// request shape: generation, reauthoring, template formatting, and
// translation. Pure string building, no side effects.
//
// Every prompt ends with an explicit instruction to return only the
// requested content, so replies can be used verbatim as article Markdown.
package prompt

import (
	"fmt"
	"strings"
)

// Generate builds the prompt for writing a new article from a title and raw
// content. The content may itself be a directive (e.g. "write a recipe for
// chocolate cake"); the prompt tells the model to fulfill such requests.
func Generate(title, content string, perspectives []string) string {
	var sb strings.Builder

	sb.WriteString("Generate a detailed knowledge base article based on the following title and content. ")
	sb.WriteString("If the content is a specific request (e.g., 'write a recipe for chocolate cake'), create an article that fulfills that request. ")
	fmt.Fprintf(&sb, "Title: %s\n\nContent or Request: %s\n\n", title, content)

	writePerspectives(&sb, perspectives)

	sb.WriteString("Provide the generated content in markdown format, without any additional comments or questions.")
	return sb.String()
}

// Reauthor builds the prompt for restructuring existing content. When the
// content is blank the instruction degenerates to generating from the
// template alone. A non-empty template is included as a formatting guide.
func Reauthor(content, template string, perspectives []string) string {
	var sb strings.Builder

	if strings.TrimSpace(content) == "" {
		sb.WriteString("Generate a knowledge base article based on the following template:")
	} else {
		sb.WriteString("Reauthor the following content")
	}

	if template != "" {
		fmt.Fprintf(&sb, ", using the provided template as a guide for formatting:\n\nTemplate:\n%s\n\nContent to reauthor:", template)
	} else {
		sb.WriteString(", maintaining its core information but improving its clarity, structure, and readability:")
	}

	fmt.Fprintf(&sb, "\n\n%s\n\n", content)

	writePerspectives(&sb, perspectives)

	sb.WriteString("Provide the reauthored content directly, without any additional comments or questions.")
	return sb.String()
}

// FormatToTemplate builds the prompt for reshaping content into a template's
// structure without losing information.
func FormatToTemplate(content, template string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Format the following content to match the provided template structure, maintaining the original information:\n\nContent:\n%s\n\nTemplate:\n%s\n\n", content, template)
	sb.WriteString("Provide the formatted content directly, without any additional comments or questions.")
	return sb.String()
}

// Translate builds the prompt for translating content into the named
// language while preserving structure and formatting.
func Translate(content, language string) string {
	return fmt.Sprintf(
		"Translate the following content to %s, maintaining its original structure and formatting. "+
			"Provide the translated content directly, without any additional comments or questions:\n\n%s",
		language, content)
}

// PerspectiveSections appends one empty section heading per perspective to
// already-processed content. Presentation-only restructuring, no model call.
func PerspectiveSections(content string, perspectives []string) string {
	if len(perspectives) == 0 {
		return content
	}

	var sb strings.Builder
	sb.WriteString(content)
	for _, p := range perspectives {
		fmt.Fprintf(&sb, "\n\n## %s Perspective\n", p)
	}
	return sb.String()
}

// writePerspectives appends the shared per-perspective section instruction.
func writePerspectives(sb *strings.Builder, perspectives []string) {
	if len(perspectives) == 0 {
		return
	}
	fmt.Fprintf(sb, "Include separate sections for the following perspectives: %s.\n\n", strings.Join(perspectives, ", "))
}
