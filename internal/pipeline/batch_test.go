// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/pdiddy/kb-dojo/pkg/types"
)

func TestProcessBatchReauthorProgress(t *testing.T) {
	m := &fakeModel{respond: func(string) string { return "reauthored" }}
	opts := types.Options{Actions: []types.Action{types.ActionReauthor}}
	p := New(m, &fakeExporter{}, opts, nil)

	articles := []types.Article{
		{Title: "A", Content: "one"},
		{Title: "B", Content: "two"},
		{Title: "C", Content: "three"},
	}

	var fractions []float64
	sink := func(completed, total int) {
		if total != 3 {
			t.Errorf("total = %d, want 3", total)
		}
		fractions = append(fractions, float64(completed)/float64(total))
	}

	results := p.ProcessBatch(context.Background(), articles, sink)

	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}

	// Progress advances once per article and reaches 1.0 exactly at the end.
	if len(fractions) != 3 {
		t.Fatalf("got %d progress updates, want 3", len(fractions))
	}
	for i, f := range fractions[:len(fractions)-1] {
		if f >= 1.0 {
			t.Errorf("update %d reached %v before the batch completed", i, f)
		}
	}
	if last := fractions[len(fractions)-1]; last != 1.0 {
		t.Errorf("final fraction = %v, want 1.0", last)
	}
}

func TestProcessBatchTranslationOperations(t *testing.T) {
	m := &fakeModel{respond: func(string) string { return "text" }}
	opts := types.Options{
		Actions:   []types.Action{types.ActionGenerate, types.ActionTranslate},
		Languages: []string{"French", "Spanish"},
	}
	p := New(m, &fakeExporter{}, opts, nil)

	articles := []types.Article{{Title: "A", Content: "a"}, {Title: "B", Content: "b"}}

	var lastCompleted, lastTotal int
	results := p.ProcessBatch(context.Background(), articles, func(completed, total int) {
		lastCompleted, lastTotal = completed, total
	})

	// 2 articles x (2 actions + 2 languages) operations; 2 results each.
	if lastTotal != 8 {
		t.Errorf("total = %d, want 8", lastTotal)
	}
	if lastCompleted != lastTotal {
		t.Errorf("completed = %d, want %d at batch end", lastCompleted, lastTotal)
	}
	if len(results) != 4 {
		t.Errorf("got %d results, want 4", len(results))
	}
}

func TestProcessBatchResultsInOrder(t *testing.T) {
	m := &fakeModel{}
	p := New(m, &fakeExporter{}, types.Options{}, nil)

	articles := []types.Article{
		{Title: "First", Content: "1"},
		{Title: "Second", Content: "2"},
	}

	results := p.ProcessBatch(context.Background(), articles, nil)

	if results[0].Title != "First" || results[1].Title != "Second" {
		t.Errorf("results out of order: %q, %q", results[0].Title, results[1].Title)
	}
}

func TestProcessBatchCompletesDespiteFailures(t *testing.T) {
	m := &fakeModel{err: errors.New("api down")}
	e := &fakeExporter{err: errors.New("pandoc down")}
	opts := types.Options{Actions: []types.Action{types.ActionGenerate}}
	p := New(m, e, opts, nil)

	articles := []types.Article{{Title: "A", Content: "a"}, {Title: "B", Content: "b"}}

	var lastCompleted int
	results := p.ProcessBatch(context.Background(), articles, func(completed, _ int) {
		lastCompleted = completed
	})

	// Every article still yields a result and progress still completes.
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if lastCompleted != 2 {
		t.Errorf("completed = %d, want 2", lastCompleted)
	}
	for _, r := range results {
		if r.Doc != nil {
			t.Error("expected nil documents when export fails")
		}
		if r.Text == "" {
			t.Error("fallback should preserve input content, not blank it")
		}
	}
}
