package pathplan

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/sowmya1811d/edupath/internal/content"
	"github.com/sowmya1811d/edupath/internal/learnstyle"
	"github.com/sowmya1811d/edupath/internal/profile"
)

// Planner selects and orders learning objectives from a content pool.
type Planner interface {
	// PlanObjectives builds an ordered objective sequence for one student.
	// targetDuration is in minutes; 0 means "use the level's base count".
	// An empty pool yields an empty plan, not an error.
	PlanObjectives(pool []content.Item, p *profile.StudentProfile, style *learnstyle.Result, pathLevel profile.Level, targetDuration int) []Objective
}

// DefaultPlanner implements the subject-distribution planning strategy.
// Candidate shuffling uses the injected source so identical seeds reproduce
// identical plans.
type DefaultPlanner struct {
	rng *rand.Rand
}

// NewPlanner creates a DefaultPlanner using rng for candidate selection.
func NewPlanner(rng *rand.Rand) *DefaultPlanner {
	return &DefaultPlanner{rng: rng}
}

// PlanObjectives plans objectives in five steps: group the pool by
// (subject, difficulty), derive the target count, walk each subject's
// difficulty progression, synthesize fillers for uncovered subjects, then
// stable-sort by difficulty and truncate.
func (pl *DefaultPlanner) PlanObjectives(pool []content.Item, p *profile.StudentProfile, style *learnstyle.Result, pathLevel profile.Level, targetDuration int) []Objective {
	groups := groupBySubjectAndDifficulty(pool)
	if len(groups.subjects) == 0 {
		return nil
	}

	count := objectiveCount(pathLevel, targetDuration)
	perSubject := count / len(groups.subjects)

	var objectives []Objective
	for _, subject := range groups.subjects {
		objectives = append(objectives, pl.planSubject(subject, groups.bySubject[subject], style, pathLevel, perSubject)...)
	}

	if len(objectives) < count {
		objectives = append(objectives, pl.fillerObjectives(pool, objectives, count)...)
	}

	sortByDifficulty(objectives)

	if len(objectives) > count {
		objectives = objectives[:count]
	}
	return objectives
}

// contentGroups indexes a pool by subject and difficulty while remembering
// first-seen subject order for deterministic iteration.
type contentGroups struct {
	subjects  []string
	bySubject map[string]map[string][]content.Item
}

func groupBySubjectAndDifficulty(pool []content.Item) contentGroups {
	g := contentGroups{bySubject: make(map[string]map[string][]content.Item)}
	for _, item := range pool {
		subject := item.Subject()
		difficulty := item.Difficulty()
		if _, ok := g.bySubject[subject]; !ok {
			g.bySubject[subject] = make(map[string][]content.Item)
			g.subjects = append(g.subjects, subject)
		}
		g.bySubject[subject][difficulty] = append(g.bySubject[subject][difficulty], item)
	}
	return g
}

// objectiveCount derives the target objective count. A target duration
// converts at AvgObjectiveDuration minutes per objective; otherwise the
// level's base count applies. Both paths clamp to
// [MinObjectivesPerPath, MaxObjectivesPerPath].
func objectiveCount(pathLevel profile.Level, targetDuration int) int {
	if targetDuration > 0 {
		n := targetDuration / AvgObjectiveDuration
		if n < MinObjectivesPerPath {
			n = MinObjectivesPerPath
		}
		if n > MaxObjectivesPerPath {
			n = MaxObjectivesPerPath
		}
		return n
	}

	n, ok := baseObjectiveCounts[pathLevel]
	if !ok {
		n = defaultBaseObjectiveCount
	}
	if n > MaxObjectivesPerPath {
		n = MaxObjectivesPerPath
	}
	return n
}

// planSubject walks the level's difficulty progression and creates up to
// budget objectives from the subject's groups.
func (pl *DefaultPlanner) planSubject(subject string, byDifficulty map[string][]content.Item, style *learnstyle.Result, pathLevel profile.Level, budget int) []Objective {
	var objectives []Objective

	for _, difficulty := range Progression(pathLevel) {
		candidates, ok := byDifficulty[difficulty]
		if !ok || len(objectives) >= budget {
			continue
		}
		filtered := filterByStyle(candidates, style)
		if len(filtered) == 0 {
			continue
		}
		objectives = append(objectives, pl.objectivesFromContent(filtered, subject, difficulty, budget-len(objectives))...)
	}

	return objectives
}

// filterByStyle keeps items whose content type is on the primary style's
// allow-list. Filtering never empties the candidate set: when nothing
// matches, the unfiltered set comes back.
func filterByStyle(candidates []content.Item, style *learnstyle.Result) []content.Item {
	primary := learnstyle.StyleVisual
	if style != nil {
		primary = style.Primary
	}
	preferred := preferredContentTypes(primary)

	var filtered []content.Item
	for _, item := range candidates {
		ct := item.ContentType()
		for _, want := range preferred {
			if ct == want {
				filtered = append(filtered, item)
				break
			}
		}
	}

	if len(filtered) == 0 {
		return candidates
	}
	return filtered
}

// objectivesFromContent shuffles the candidates for variety and synthesizes
// one objective per selected item, up to limit.
func (pl *DefaultPlanner) objectivesFromContent(candidates []content.Item, subject, difficulty string, limit int) []Objective {
	shuffled := make([]content.Item, len(candidates))
	copy(shuffled, candidates)
	pl.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if len(shuffled) > limit {
		shuffled = shuffled[:limit]
	}

	objectives := make([]Objective, 0, len(shuffled))
	for i, item := range shuffled {
		objectives = append(objectives, Objective{
			ID:                fmt.Sprintf("obj_%s_%s_%d", subject, difficulty, i),
			Title:             fmt.Sprintf("%s - %s (Part %d)", SubjectLabel(subject), DifficultyLabel(difficulty), i+1),
			Description:       extractDescription(item.Text),
			Subject:           subject,
			Difficulty:        difficulty,
			Prerequisites:     []string{},
			EstimatedDuration: estimateDuration(item.Text, difficulty),
			ContentIDs:        []string{item.ID},
		})
	}
	return objectives
}

// fillerObjectives synthesizes one beginner "Introduction" objective per
// subject present in the pool but absent from the plan, until the target
// count is met or subjects run out.
func (pl *DefaultPlanner) fillerObjectives(pool []content.Item, existing []Objective, target int) []Objective {
	covered := make(map[string]bool, len(existing))
	for _, obj := range existing {
		covered[obj.Subject] = true
	}

	bySubject := make(map[string][]content.Item)
	var uncovered []string
	for _, item := range pool {
		subject := item.Subject()
		if covered[subject] {
			continue
		}
		if _, seen := bySubject[subject]; !seen {
			uncovered = append(uncovered, subject)
		}
		bySubject[subject] = append(bySubject[subject], item)
	}

	var fillers []Objective
	for _, subject := range uncovered {
		if len(existing)+len(fillers) >= target {
			break
		}
		items := bySubject[subject]
		item := items[pl.rng.IntN(len(items))]
		fillers = append(fillers, Objective{
			ID:                fmt.Sprintf("obj_%s_additional_%d", subject, len(fillers)),
			Title:             fmt.Sprintf("%s - Introduction", SubjectLabel(subject)),
			Description:       extractDescription(item.Text),
			Subject:           subject,
			Difficulty:        "beginner",
			Prerequisites:     []string{},
			EstimatedDuration: FillerObjectiveDuration,
			ContentIDs:        []string{item.ID},
		})
	}
	return fillers
}

// sortByDifficulty orders objectives by ascending difficulty rank. The sort
// is stable: objectives of equal difficulty keep their subject-distribution
// order.
func sortByDifficulty(objectives []Objective) {
	sort.SliceStable(objectives, func(i, j int) bool {
		return rankOf(objectives[i].Difficulty) < rankOf(objectives[j].Difficulty)
	})
}

// SortObjectivesByDifficulty exposes the plan ordering for re-sorting an
// existing objective list. Sorting an already-sorted list is a no-op.
func SortObjectivesByDifficulty(objectives []Objective) {
	sortByDifficulty(objectives)
}

// extractDescription takes the first two sentences of the content text, or
// the first 200 characters with an ellipsis when fewer than two sentence
// boundaries exist.
func extractDescription(text string) string {
	sentences := strings.Split(text, ".")
	if len(sentences) > 2 {
		return strings.TrimSpace(strings.Join(sentences[:2], ". ") + ".")
	}
	if len(text) > 200 {
		return strings.TrimSpace(text[:200] + "...")
	}
	return strings.TrimSpace(text)
}

// estimateDuration derives minutes from content length at WordsPerMinute,
// scaled by the difficulty multiplier and clamped to the objective bounds.
func estimateDuration(text, difficulty string) int {
	words := len(strings.Fields(text))
	base := words / WordsPerMinute
	if base < MinObjectiveDuration {
		base = MinObjectiveDuration
	}

	mult, ok := durationMultipliers[difficulty]
	if !ok {
		mult = 1.0
	}
	return clampDuration(int(float64(base) * mult))
}
