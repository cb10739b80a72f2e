// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the data model and configuration shared across
// the kb-dojo pipeline stages.
package types

import "fmt"

// Action identifies one processing step requested for an article. Actions
// form a small closed set; the pipeline selects its content stage by
// switching over them rather than by string membership checks.
type Action string

const (
	// ActionGenerate writes a new article from the title and content/request.
	ActionGenerate Action = "generate"

	// ActionReauthor restructures existing content for clarity and structure.
	ActionReauthor Action = "reauthor"

	// ActionFormat reshapes content into a supplied template's structure.
	ActionFormat Action = "format"

	// ActionTranslate produces one output variant per target language.
	ActionTranslate Action = "translate"
)

// ParseAction converts a user-supplied action name into an Action.
func ParseAction(s string) (Action, error) {
	switch Action(s) {
	case ActionGenerate, ActionReauthor, ActionFormat, ActionTranslate:
		return Action(s), nil
	}
	return "", fmt.Errorf("unknown action %q (expected generate, reauthor, format, or translate)", s)
}

// Article is one unit of input: a title plus raw content or a directive
// (e.g. "write a recipe for chocolate cake"). Immutable during a run.
type Article struct {
	Title   string `json:"title" yaml:"title"`
	Content string `json:"content" yaml:"content"`
}

// Options holds the processing configuration for a run. Read-only for the
// duration of the run.
type Options struct {
	// Actions is the set of requested processing steps.
	Actions []Action

	// Perspectives lists named viewpoints (e.g. "Beginner", "Expert") that
	// each get a dedicated article section.
	Perspectives []string

	// Languages lists target language names for translation.
	Languages []string

	// Template is the optional template document content used by the
	// reauthor and format actions.
	Template string
}

// Has reports whether the action set includes a.
func (o Options) Has(a Action) bool {
	for _, x := range o.Actions {
		if x == a {
			return true
		}
	}
	return false
}

// OperationsPerArticle returns the number of progress-countable operations
// one article contributes: one per action, plus one per target language
// when translation is requested.
func (o Options) OperationsPerArticle() int {
	n := len(o.Actions)
	if o.Has(ActionTranslate) {
		n += len(o.Languages)
	}
	return n
}

// LanguageOriginal tags the single untranslated output variant.
const LanguageOriginal = "Original"

// Result is one output variant produced for an article: either the single
// "Original" variant, or one per translation language.
type Result struct {
	// Doc is the exported Word document. Nil when document export failed;
	// the presentation layer shows a per-item error instead of a download.
	Doc []byte

	// Title is the article title, without any language suffix.
	Title string

	// Text is the final rendered Markdown for this variant.
	Text string

	// Language is LanguageOriginal or a target language name.
	Language string
}

// FileName returns the download name for this result's document.
func (r Result) FileName() string {
	return fmt.Sprintf("%s_%s.docx", r.Title, r.Language)
}
