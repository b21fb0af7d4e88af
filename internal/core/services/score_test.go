package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreParagraph(t *testing.T) {
	t.Run("matches spec formula on worked example", func(t *testing.T) {
		paragraph := "Database adapters support PostgreSQL and MySQL."
		question := "How do I configure the PostgreSQL adapter?"

		// Recompute independently from the definition rather than
		// asserting a literal.
		normPara := normalize(paragraph)
		sum := 0.0
		for _, term := range strings.Fields(normalize(question)) {
			if len(term) < 3 {
				continue
			}
			sum += float64(strings.Count(normPara, term))
		}
		length := len(paragraph)
		if length < 40 {
			length = 40
		}
		want := sum * 200 / float64(length)

		assert.InDelta(t, want, scoreParagraph(paragraph, question), 1e-12)
		assert.Greater(t, want, 0.0)
	})

	t.Run("zero when question has no terms", func(t *testing.T) {
		assert.Zero(t, scoreParagraph("Some paragraph about sessions.", "  ?! "))
		assert.Zero(t, scoreParagraph("Some paragraph about sessions.", ""))
	})

	t.Run("short terms are ignored", func(t *testing.T) {
		// "a" and "is" are under the 3-character minimum.
		assert.Zero(t, scoreParagraph("a is a is a", "a is"))
	})

	t.Run("exact phrase beats scattered keywords", func(t *testing.T) {
		question := "how do sessions expire"
		verbatim := "This covers how do sessions expire and related cleanup."
		scattered := "Sessions are stored server side. Tokens expire separately and how that works varies."

		assert.Greater(t, scoreParagraph(verbatim, question), scoreParagraph(scattered, question))
	})

	t.Run("no phrase bonus for short questions", func(t *testing.T) {
		// Normalised question "kysely" is under the 10-character bar,
		// so both paragraphs score by term count only.
		base := scoreParagraph(strings.Repeat("kysely ", 6), "kysely!")
		assert.InDelta(t, 6*200/42.0, base, 1e-12)
	})

	t.Run("length normalisation favours dense paragraphs", func(t *testing.T) {
		question := "configure the drizzle adapter"
		dense := "Configure the drizzle adapter with your database instance."
		// Same hits buried in filler.
		diluted := dense + strings.Repeat(" Unrelated filler text about nothing in particular.", 10)

		assert.Greater(t, scoreParagraph(dense, question), scoreParagraph(diluted, question))
	})

	t.Run("short paragraphs hit the length floor", func(t *testing.T) {
		// 12-character paragraph is normalised as if it were 40 long.
		got := scoreParagraph("drizzle docs", "drizzle")
		assert.InDelta(t, 1*200/40.0, got, 1e-12)
	})
}

func TestCountOccurrences(t *testing.T) {
	assert.Equal(t, 2, countOccurrences("auth and auth", "auth"))
	assert.Equal(t, 0, countOccurrences("auth", "session"))
	assert.Equal(t, 0, countOccurrences("anything", ""))
	// Split counting is non-overlapping: "aaaa" contains "aa" twice.
	assert.Equal(t, 2, countOccurrences("aaaa", "aa"))
}
