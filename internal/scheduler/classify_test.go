package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"produceotron/internal/domain"
)

func TestKeywordClassifier(t *testing.T) {
	tests := []struct {
		task string
		want domain.Category
	}{
		{"Redesign the settings MENU", domain.CategoryInterface},
		{"Fix login bug on server", domain.CategoryEngineering},
		{"Paint new character sprite", domain.CategoryArt},
		{"Balance the economy", domain.CategoryDesign},
		{"Regression pass before release", domain.CategoryQuality},
		{"Write marketing copy", domain.CategoryNone},
		{"", domain.CategoryNone},
	}
	for _, tt := range tests {
		t.Run(tt.task, func(t *testing.T) {
			assert.Equal(t, tt.want, KeywordClassifier(tt.task))
		})
	}
}

func TestKeywordClassifier_PrecedenceOnMultiMatch(t *testing.T) {
	// "UI bug" hits both interface and engineering; interface comes first.
	assert.Equal(t, domain.CategoryInterface, KeywordClassifier("UI bug in the HUD"))
	// "test the level layout" hits design before quality.
	assert.Equal(t, domain.CategoryDesign, KeywordClassifier("test the level layout"))
}

func TestTally(t *testing.T) {
	items := []domain.BacklogItem{
		{Task: "Fix crash", Effort: 2},
		{Task: "Menu polish", Effort: 1},
		{Task: "Refactor backend", Effort: 3},
		{Task: "Write newsletter", Effort: 1},
	}

	counts := Tally(items, KeywordClassifier)
	assert.Equal(t, 2, counts[domain.CategoryEngineering])
	assert.Equal(t, 1, counts[domain.CategoryInterface])
	assert.Equal(t, 1, counts[domain.CategoryNone])
}

func TestTally_CustomClassifier(t *testing.T) {
	fixed := func(string) domain.Category { return domain.CategoryArt }
	counts := Tally([]domain.BacklogItem{{Task: "a"}, {Task: "b"}}, fixed)
	assert.Equal(t, map[domain.Category]int{domain.CategoryArt: 2}, counts)
}
