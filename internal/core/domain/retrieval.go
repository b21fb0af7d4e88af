package domain

// ScoredSnippet is a paragraph selected during retrieval, paired with
// its relevance score and the owning document's display name.
type ScoredSnippet struct {
	// Paragraph is the matched paragraph.
	Paragraph Paragraph

	// Score is the non-negative relevance score.
	Score float64

	// DocumentName is the display name of the owning document.
	DocumentName string
}

// Citation points at the corpus location a snippet was drawn from.
type Citation struct {
	// File is the document display name.
	File string

	// LineRange is the rendered "start-end" line range.
	LineRange string
}

// RetrievalResult is the answer assembled from the corpus.
type RetrievalResult struct {
	// Answer is the assembled answer text, at most 1,600 characters.
	Answer string

	// Snippets are the selected paragraphs in ranked order, at most 4.
	Snippets []ScoredSnippet

	// Sources are citations parallel to Snippets.
	Sources []Citation

	// Confidence is a heuristic score in [0, 0.95]. It indicates
	// retrieval strength, not a calibrated probability.
	Confidence float64
}
