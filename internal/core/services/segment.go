package services

import (
	"strings"

	"github.com/custodia-labs/authdocs-cli/internal/core/domain"
)

// segment splits a document's lines into paragraphs. A paragraph is a
// maximal run of non-blank lines; blank lines (empty after trimming)
// separate paragraphs and belong to none. Line numbers are 1-based and
// inclusive.
func segment(doc *domain.Document) []domain.Paragraph {
	var paragraphs []domain.Paragraph
	start := -1 // 0-based index of the current paragraph's first line

	flush := func(end int) {
		if start < 0 {
			return
		}
		paragraphs = append(paragraphs, domain.Paragraph{
			StartLine: start + 1,
			EndLine:   end + 1,
			Text:      strings.Join(doc.Lines[start:end+1], "\n"),
		})
		start = -1
	}

	for i, line := range doc.Lines {
		if strings.TrimSpace(line) == "" {
			flush(i - 1)
			continue
		}
		if start < 0 {
			start = i
		}
	}
	flush(len(doc.Lines) - 1)

	return paragraphs
}
