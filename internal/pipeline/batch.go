// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"context"

	"github.com/pdiddy/kb-dojo/pkg/types"
)

// ProcessBatch runs the pipeline over articles strictly sequentially,
// accumulating every article's results in order. The total operation count
// is fixed before the first article starts; progress advances by one
// article's operation count as each article finishes, so the sink reaches
// completed == total exactly when the last article is done.
//
// Operations are not individually tracked mid-article.
func (p *Pipeline) ProcessBatch(ctx context.Context, articles []types.Article, sink Sink) []types.Result {
	perArticle := p.opts.OperationsPerArticle()
	tracker := NewTracker(len(articles)*perArticle, sink)

	var all []types.Result
	for _, art := range articles {
		all = append(all, p.ProcessArticle(ctx, art)...)
		tracker.Advance(perArticle)
	}

	return all
}
