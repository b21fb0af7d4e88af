package services

import (
	"strings"

	"github.com/custodia-labs/authdocs-cli/internal/core/domain"
	"github.com/custodia-labs/authdocs-cli/internal/logger"
)

// Filename scoring weights for candidate selection.
const (
	substringWeight = 3
	aliasWeight     = 2
)

// aliasGroups maps canonical concept keys to synonym phrases, all in
// normalised form. A group contributes when both the topic hint and a
// filename mention the key or any of its synonyms.
var aliasGroups = map[string][]string{
	"concepts":       {"concept", "overview", "architecture", "basics", "core"},
	"authentication": {"auth", "sign in", "signin", "sign up", "signup", "login", "session", "oauth", "email password"},
	"plugins":        {"plugin", "two factor", "2fa", "passkey", "magic link", "organization", "admin"},
	"integration":    {"integrations", "framework", "next js", "nextjs", "express", "hono", "sveltekit", "nuxt", "remix"},
	"database":       {"db", "adapter", "adapters", "postgres", "postgresql", "mysql", "sqlite", "mongodb", "drizzle", "prisma", "kysely"},
	"reference":      {"api", "options", "config", "configuration", "cli"},
}

// selectCandidates narrows the corpus to documents whose filenames look
// relevant to the topic hint. Filenames are short and only loosely
// related to topics, so near-tied runners-up are kept and a total
// absence of signal falls back to the whole corpus. The result is
// non-empty whenever docs is non-empty.
func selectCandidates(docs []domain.Document, topic string) []domain.Document {
	if strings.TrimSpace(topic) == "" {
		return docs
	}
	normTopic := normalize(topic)
	if normTopic == "" {
		return docs
	}

	scores := make([]int, len(docs))
	max := 0
	for i := range docs {
		score := scoreFileName(normalize(docs[i].Name), normTopic)
		scores[i] = score
		if score > max {
			max = score
		}
	}

	if max == 0 {
		logger.Debug("Topic %q matched no filenames, keeping all %d documents", topic, len(docs))
		return docs
	}

	// Keep the top scorer and any near-tied runners-up, never
	// requiring a score below 1.
	cut := max - 1
	if cut < 1 {
		cut = 1
	}

	var selected []domain.Document
	for i := range docs {
		if scores[i] >= cut {
			selected = append(selected, docs[i])
		}
	}
	if len(selected) == 0 {
		return docs
	}

	logger.Debug("Topic %q selected %d/%d documents (max score %d)", topic, len(selected), len(docs), max)
	return selected
}

// scoreFileName scores one normalised filename against a normalised topic.
func scoreFileName(normName, normTopic string) int {
	score := 0
	if strings.Contains(normName, normTopic) {
		score += substringWeight
	}
	for key, synonyms := range aliasGroups {
		if mentionsGroup(normTopic, key, synonyms) && mentionsGroup(normName, key, synonyms) {
			score += aliasWeight
		}
	}
	return score
}

// mentionsGroup reports whether text mentions the canonical key or any
// synonym of an alias group.
func mentionsGroup(text, key string, synonyms []string) bool {
	if strings.Contains(text, key) {
		return true
	}
	for _, syn := range synonyms {
		if strings.Contains(text, syn) {
			return true
		}
	}
	return false
}
