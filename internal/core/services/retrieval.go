package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/custodia-labs/authdocs-cli/internal/core/domain"
	"github.com/custodia-labs/authdocs-cli/internal/core/ports/driven"
	"github.com/custodia-labs/authdocs-cli/internal/core/ports/driving"
	"github.com/custodia-labs/authdocs-cli/internal/logger"
)

// Ensure RetrievalService implements the interface.
var _ driving.RetrievalService = (*RetrievalService)(nil)

const (
	// maxSnippets caps how many paragraphs make it into the answer.
	maxSnippets = 4

	// minScore is the noise threshold; paragraphs scoring at or below
	// it are not considered matches.
	minScore = 0.05

	// maxAnswerLen bounds the assembled answer.
	maxAnswerLen = 1600

	// truncateLen is where an over-long answer is cut before the
	// ellipsis marker is appended.
	truncateLen = 1575

	// fallbackConfidence is the fixed confidence of a no-match result.
	fallbackConfidence = 0.1

	// fallbackPreviewLines bounds the preview snippet of a no-match result.
	fallbackPreviewLines = 20

	// maxConfidence caps confidence below certainty; retrieval is
	// keyword-based, not a verified answer.
	maxConfidence = 0.95
)

// fallbackAnswer is returned when no paragraph clears the threshold.
const fallbackAnswer = "No direct match found in the local Better Auth docs. " +
	"Try a more specific question, or narrow it with a topic hint such as " +
	`"authentication", "plugins", or "database".`

// RetrievalService answers questions from the local docs corpus.
type RetrievalService struct {
	corpus driven.CorpusStore
}

// NewRetrievalService creates a new retrieval service.
func NewRetrievalService(corpus driven.CorpusStore) *RetrievalService {
	return &RetrievalService{corpus: corpus}
}

// Retrieve runs the retrieval pipeline: candidate selection, paragraph
// segmentation and scoring, ranking, and answer assembly. For a fixed
// corpus snapshot it is a deterministic function of (topic, question).
func (s *RetrievalService) Retrieve(
	ctx context.Context, topic, question string,
) (*domain.RetrievalResult, error) {
	logger.Section("Docs Retrieval")
	logger.Debug("Topic: %q, Question: %q", topic, question)

	// Reject before any corpus access; a default question is never
	// substituted.
	if strings.TrimSpace(question) == "" {
		return nil, fmt.Errorf("question is required: %w", domain.ErrInvalidInput)
	}

	docs, err := s.corpus.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}
	logger.Debug("Corpus: %d documents", len(docs))

	candidates := selectCandidates(docs, topic)
	logger.Debug("Candidates: %d documents", len(candidates))

	var scored []domain.ScoredSnippet
	for i := range candidates {
		doc := &candidates[i]
		for _, para := range segment(doc) {
			score := scoreParagraph(para.Text, question)
			if score <= minScore {
				continue
			}
			scored = append(scored, domain.ScoredSnippet{
				Paragraph:    para,
				Score:        score,
				DocumentName: doc.Name,
			})
		}
	}
	logger.Debug("Paragraphs above threshold: %d", len(scored))

	// Stable sort: equal scores keep corpus order (document order,
	// then paragraph order within a document).
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > maxSnippets {
		scored = scored[:maxSnippets]
	}

	if len(scored) == 0 {
		logger.Info("No paragraph matched, returning fallback")
		return fallbackResult(docs), nil
	}

	result := assemble(scored)
	logger.Info("Answer: %d snippets, confidence %.2f", len(result.Snippets), result.Confidence)
	return result, nil
}

// assemble concatenates ranked snippets into a bounded answer with
// parallel citations and a confidence estimate.
func assemble(scored []domain.ScoredSnippet) *domain.RetrievalResult {
	parts := make([]string, len(scored))
	sources := make([]domain.Citation, len(scored))
	scoreSum := 0.0

	for i, sn := range scored {
		parts[i] = sn.Paragraph.Text
		sources[i] = domain.Citation{
			File:      sn.DocumentName,
			LineRange: fmt.Sprintf("%d-%d", sn.Paragraph.StartLine, sn.Paragraph.EndLine),
		}
		scoreSum += sn.Score
	}

	answer := strings.Join(parts, "\n\n")
	if len(answer) > maxAnswerLen {
		answer = answer[:truncateLen] + "..."
	}

	confidence := 0.4 + scoreSum/20
	if confidence > maxConfidence {
		confidence = maxConfidence
	}

	return &domain.RetrievalResult{
		Answer:     answer,
		Snippets:   scored,
		Sources:    sources,
		Confidence: confidence,
	}
}

// fallbackResult builds the no-match result: a fixed guidance message
// and, when the corpus is non-empty, a preview of the first document's
// opening lines so the caller sees what the corpus looks like.
func fallbackResult(docs []domain.Document) *domain.RetrievalResult {
	result := &domain.RetrievalResult{
		Answer:     fallbackAnswer,
		Confidence: fallbackConfidence,
	}
	if len(docs) == 0 {
		return result
	}

	doc := &docs[0]
	end := len(doc.Lines)
	if end > fallbackPreviewLines {
		end = fallbackPreviewLines
	}
	if end == 0 {
		return result
	}

	preview := domain.Paragraph{
		StartLine: 1,
		EndLine:   end,
		Text:      strings.Join(doc.Lines[:end], "\n"),
	}
	result.Snippets = []domain.ScoredSnippet{{
		Paragraph:    preview,
		Score:        0,
		DocumentName: doc.Name,
	}}
	result.Sources = []domain.Citation{{
		File:      doc.Name,
		LineRange: fmt.Sprintf("1-%d", end),
	}}
	return result
}
