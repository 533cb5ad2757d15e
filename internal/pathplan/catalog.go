package pathplan

import (
	"strings"

	"github.com/sowmya1811d/edupath/internal/learnstyle"
	"github.com/sowmya1811d/edupath/internal/profile"
)

// difficultyRank orders difficulty tags for sorting. Unknown tags sort
// after every known one.
var difficultyRank = map[string]int{
	"beginner":     0,
	"intermediate": 1,
	"advanced":     2,
	"expert":       3,
}

// rankOf returns the sort rank for a difficulty tag.
func rankOf(difficulty string) int {
	if r, ok := difficultyRank[difficulty]; ok {
		return r
	}
	return len(difficultyRank)
}

// progressions maps a path level to the difficulty steps a subject visits,
// in order. This is a template: the assembled path may realize fewer steps.
var progressions = map[profile.Level][]string{
	profile.LevelBeginner:     {"beginner", "beginner", "intermediate"},
	profile.LevelIntermediate: {"intermediate", "intermediate", "advanced"},
	profile.LevelAdvanced:     {"advanced", "advanced", "expert"},
}

// defaultProgression covers unknown path levels.
var defaultProgression = []string{"intermediate", "advanced"}

// Progression returns the difficulty progression template for a path level.
func Progression(level profile.Level) []string {
	if p, ok := progressions[level]; ok {
		return p
	}
	return defaultProgression
}

// baseObjectiveCounts is the per-level objective count used when no target
// duration is given.
var baseObjectiveCounts = map[profile.Level]int{
	profile.LevelBeginner:     4,
	profile.LevelIntermediate: 6,
	profile.LevelAdvanced:     8,
}

const defaultBaseObjectiveCount = 6

// durationMultipliers scale the word-count duration estimate by difficulty.
var durationMultipliers = map[string]float64{
	"beginner":     0.8,
	"intermediate": 1.0,
	"advanced":     1.3,
	"expert":       1.5,
}

// styleContentTypes is the content-type allow-list per primary learning
// style. Styles without an entry use defaultContentTypes.
var styleContentTypes = map[learnstyle.Style][]string{
	learnstyle.StyleVisual:      {"lesson", "tutorial", "concept"},
	learnstyle.StyleAuditory:    {"lesson", "tutorial"},
	learnstyle.StyleKinesthetic: {"exercise", "tutorial", "assessment"},
}

var defaultContentTypes = []string{"lesson", "tutorial"}

// preferredContentTypes returns the allow-list for a primary style.
func preferredContentTypes(primary learnstyle.Style) []string {
	if types, ok := styleContentTypes[primary]; ok {
		return types
	}
	return defaultContentTypes
}

// subjectLabels maps subject tags to display labels for objective titles.
var subjectLabels = map[string]string{
	"mathematics":      "Mathematics",
	"physics":          "Physics",
	"chemistry":        "Chemistry",
	"biology":          "Biology",
	"computer_science": "Computer Science",
	"history":          "History",
	"literature":       "Literature",
	"economics":        "Economics",
}

// difficultyLabels maps difficulty tags to display labels.
var difficultyLabels = map[string]string{
	"beginner":     "Fundamentals",
	"intermediate": "Intermediate Concepts",
	"advanced":     "Advanced Topics",
	"expert":       "Expert Level",
}

// SubjectLabel returns the display label for a subject tag, title-casing
// unknown tags.
func SubjectLabel(subject string) string {
	if l, ok := subjectLabels[subject]; ok {
		return l
	}
	return titleCase(subject)
}

// DifficultyLabel returns the display label for a difficulty tag.
func DifficultyLabel(difficulty string) string {
	if l, ok := difficultyLabels[difficulty]; ok {
		return l
	}
	return titleCase(difficulty)
}

// titleCase uppercases the first letter of each underscore- or
// space-separated word.
func titleCase(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == ' '
	})
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
