// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs the ordered processing steps for each article —
// content generation or reauthoring, perspective sectioning, and translation
// fan-out — and orchestrates batches with progress accounting.
//
// Failures degrade locally: a failed or empty model reply keeps the content
// that existed before the call, and a failed document export yields a nil
// artifact for that result only. No failure aborts the batch.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/kb-dojo/internal/prompt"
	"github.com/pdiddy/kb-dojo/pkg/types"
)

// Completer abstracts the model API so tests can supply a mock.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Exporter abstracts document conversion so tests can supply a mock.
type Exporter interface {
	Export(markdown string) ([]byte, error)
}

// Pipeline processes articles according to one fixed Options set. The model
// client and exporter are injected at construction time; the caller owns
// their lifecycle.
type Pipeline struct {
	model    Completer
	exporter Exporter
	opts     types.Options
	log      io.Writer
}

// New creates a Pipeline. Degradation warnings are written to log.
func New(model Completer, exporter Exporter, opts types.Options, log io.Writer) *Pipeline {
	if log == nil {
		log = io.Discard
	}
	return &Pipeline{
		model:    model,
		exporter: exporter,
		opts:     opts,
		log:      log,
	}
}

// ProcessArticle runs the three stages for one article and returns one
// Result per output variant: one per target language when translation is
// requested, otherwise a single "Original" variant.
func (p *Pipeline) ProcessArticle(ctx context.Context, art types.Article) []types.Result {
	content := p.contentStage(ctx, art)

	// Reauthoring already embeds perspective sections, so local sectioning
	// only applies when reauthor was not among the actions.
	if len(p.opts.Perspectives) > 0 && !p.opts.Has(types.ActionReauthor) {
		content = prompt.PerspectiveSections(content, p.opts.Perspectives)
	}

	if p.opts.Has(types.ActionTranslate) && len(p.opts.Languages) > 0 {
		results := make([]types.Result, 0, len(p.opts.Languages))
		for _, lang := range p.opts.Languages {
			text := p.callModel(ctx, prompt.Translate(content, lang), content, "translation to "+lang)
			results = append(results, p.buildResult(art.Title, text, lang))
		}
		return results
	}

	return []types.Result{p.buildResult(art.Title, content, types.LanguageOriginal)}
}

// contentStage runs the mutually exclusive first stage. Generation wins over
// reauthoring/formatting; with neither requested the content passes through
// unchanged.
func (p *Pipeline) contentStage(ctx context.Context, art types.Article) string {
	switch {
	case p.opts.Has(types.ActionGenerate):
		return p.callModel(ctx,
			prompt.Generate(art.Title, art.Content, p.opts.Perspectives),
			art.Content, "content generation")

	case p.opts.Has(types.ActionReauthor):
		return p.callModel(ctx,
			prompt.Reauthor(art.Content, p.opts.Template, p.opts.Perspectives),
			art.Content, "reauthoring")

	case p.opts.Has(types.ActionFormat):
		var pr string
		if p.opts.Template != "" {
			pr = prompt.FormatToTemplate(art.Content, p.opts.Template)
		} else {
			// No template to format against; fall back to a plain reauthor pass.
			pr = prompt.Reauthor(art.Content, "", p.opts.Perspectives)
		}
		return p.callModel(ctx, pr, art.Content, "template formatting")
	}

	return art.Content
}

// callModel runs one model call and applies the fallback policy: on error or
// a whitespace-only reply, keep prior and log the degradation.
func (p *Pipeline) callModel(ctx context.Context, pr, prior, stage string) string {
	out, err := p.model.Complete(ctx, pr)
	if err != nil {
		fmt.Fprintf(p.log, "warning: %s failed, keeping prior content: %v\n", stage, err)
		return prior
	}
	if strings.TrimSpace(out) == "" {
		fmt.Fprintf(p.log, "warning: %s returned empty content, keeping prior content\n", stage)
		return prior
	}
	return out
}

// buildResult exports text to a document and assembles the Result. Export
// failure yields a nil Doc so the presentation layer can show a per-item
// error instead of a download.
func (p *Pipeline) buildResult(title, text, language string) types.Result {
	doc, err := p.exporter.Export(text)
	if err != nil {
		fmt.Fprintf(p.log, "warning: document export failed for %s (%s): %v\n", title, language, err)
		doc = nil
	}
	return types.Result{
		Doc:      doc,
		Title:    title,
		Text:     text,
		Language: language,
	}
}
