package services

import "strings"

const (
	// minTermLen drops question terms too short to carry signal.
	minTermLen = 3

	// phraseBonus rewards a verbatim phrase match over scattered hits.
	phraseBonus = 2.0

	// phraseBonusMinLen is the minimum normalised question length
	// (exclusive) for the phrase bonus to apply.
	phraseBonusMinLen = 10

	// lengthFloor stops very short paragraphs from getting
	// disproportionate boosts from length normalisation.
	lengthFloor = 40
)

// scoreParagraph scores a paragraph's relevance to a question.
//
// Terms are the whitespace-separated words of the normalised question;
// each term of at least minTermLen characters contributes its substring
// occurrence count in the normalised paragraph. A flat bonus is added
// when the paragraph contains the whole question verbatim. The sum is
// scaled by 200/max(40, len(paragraph)) so long paragraphs cannot win
// on volume alone.
func scoreParagraph(paragraphText, questionText string) float64 {
	question := normalize(questionText)
	terms := strings.Fields(question)
	if len(terms) == 0 {
		return 0
	}

	paragraph := normalize(paragraphText)

	sum := 0.0
	for _, term := range terms {
		if len(term) < minTermLen {
			continue
		}
		sum += float64(countOccurrences(paragraph, term))
	}

	if len(question) > phraseBonusMinLen && strings.Contains(paragraph, question) {
		sum += phraseBonus
	}

	length := len(paragraphText)
	if length < lengthFloor {
		length = lengthFloor
	}

	return sum * 200 / float64(length)
}

// countOccurrences counts non-overlapping occurrences of sub in s using
// the split identity: occurrences = splits - 1. Kept explicit rather
// than regex-based; the two diverge on overlapping matches.
func countOccurrences(s, sub string) int {
	if sub == "" {
		return 0
	}
	return len(strings.Split(s, sub)) - 1
}
