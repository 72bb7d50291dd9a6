package scheduler

import (
	"strings"

	"produceotron/internal/domain"
)

// Classifier assigns a forecast category to a backlog task's text. It is a
// plain function so tests can substitute a deterministic one.
type Classifier func(taskText string) domain.Category

// categoryOrder fixes the match precedence when a task text hits keywords
// from more than one category.
var categoryOrder = []domain.Category{
	domain.CategoryInterface,
	domain.CategoryEngineering,
	domain.CategoryArt,
	domain.CategoryDesign,
	domain.CategoryQuality,
}

var categoryKeywords = map[domain.Category][]string{
	domain.CategoryInterface:   {"ui", "ux", "interface", "menu", "hud", "screen", "frontend"},
	domain.CategoryEngineering: {"bug", "fix", "code", "engine", "server", "backend", "implement", "refactor"},
	domain.CategoryArt:         {"art", "model", "texture", "animation", "sprite", "shader"},
	domain.CategoryDesign:      {"design", "level", "layout", "balance", "concept"},
	domain.CategoryQuality:     {"test", "qa", "quality", "verify", "regression"},
}

// KeywordClassifier matches case-insensitive keyword substrings against the
// five fixed categories. Tasks matching nothing classify as CategoryNone.
func KeywordClassifier(taskText string) domain.Category {
	text := strings.ToLower(taskText)
	for _, cat := range categoryOrder {
		for _, kw := range categoryKeywords[cat] {
			if strings.Contains(text, kw) {
				return cat
			}
		}
	}
	return domain.CategoryNone
}

// Tally counts category hits across the backlog using the given classifier.
func Tally(items []domain.BacklogItem, classify Classifier) map[domain.Category]int {
	counts := make(map[domain.Category]int)
	for _, it := range items {
		counts[classify(it.Task)]++
	}
	return counts
}
