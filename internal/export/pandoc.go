// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"bytes"
	"fmt"
	"strings"
)

// pandocArgs converts Markdown on stdin to a .docx document on stdout.
var pandocArgs = []string{"-f", "markdown", "-t", "docx", "-o", "-"}

// DocxExporter converts Markdown to Word documents by piping it through
// pandoc. It depends on a Runner injected at construction time.
type DocxExporter struct {
	runner Runner
}

// NewDocxExporter creates an exporter that uses the given runner.
func NewDocxExporter(r Runner) *DocxExporter {
	return &DocxExporter{runner: r}
}

// Export converts markdown into .docx bytes. A failed or empty conversion
// returns an error; callers produce a nil artifact for that result and keep
// going.
func (e *DocxExporter) Export(markdown string) ([]byte, error) {
	var out bytes.Buffer
	if err := e.runner.Run(pandocArgs, strings.NewReader(markdown), &out); err != nil {
		return nil, fmt.Errorf("converting markdown with %s: %w", e.runner.Name(), err)
	}

	if out.Len() == 0 {
		return nil, fmt.Errorf("%s produced empty output", e.runner.Name())
	}

	return out.Bytes(), nil
}
