package learnstyle

import (
	"sort"

	"github.com/sowmya1811d/edupath/internal/profile"
)

// Assess determines a student's learning style. Quiz answers take priority;
// without them the style is inferred from behavioral signals in the profile.
// Pure function of its input and the static catalogs.
func Assess(p *profile.StudentProfile) *Result {
	if len(p.StyleAssessment) > 0 {
		return fromQuizAnswers(p.StyleAssessment)
	}
	return inferFromProfile(p)
}

// fromQuizAnswers tallies quiz responses per modality. Confidence is the
// share of total responses held by the primary and secondary styles.
func fromQuizAnswers(answers map[string]string) *Result {
	scores := zeroScores()
	total := 0.0
	for _, answer := range answers {
		s := Style(answer)
		if s.Valid() {
			scores[s]++
			total++
		}
	}

	primary, secondary := rankStyles(scores)

	var primaryConf, secondaryConf float64
	if total > 0 {
		primaryConf = scores[primary] / total
		secondaryConf = scores[secondary] / total
	}

	return buildResult(primary, secondary, scores, primaryConf, secondaryConf, false)
}

// inferFromProfile accumulates three independent signal groups into the
// four modality accumulators: preference weights, behavior time
// comparisons, and performance-pattern comparisons. If nothing fires, the
// result defaults to visual with weight 1 so the primary style is never
// undefined.
func inferFromProfile(p *profile.StudentProfile) *Result {
	scores := zeroScores()

	// Signal group (a): content preference weights per modality bucket.
	for style, tags := range preferenceBuckets {
		for _, tag := range tags {
			if w := p.ContentPreferences[tag]; w > 0 {
				scores[style] += w
			}
		}
	}

	// Signal group (b): time on a modality's activity vs time on text.
	textTime := p.LearningBehavior[behaviorTextSignal]
	for style, tag := range behaviorSignals {
		if p.LearningBehavior[tag] > textTime {
			scores[style]++
		}
	}
	if textTime > 0 {
		scores[StyleReadingWriting]++
	}

	// Signal group (c): performance on a modality's tasks vs text tasks.
	textPerf := p.PerformancePatterns[performanceTextSignal]
	for style, tag := range performanceSignals {
		if p.PerformancePatterns[tag] > textPerf {
			scores[style]++
		}
	}
	if textPerf > 0 {
		scores[StyleReadingWriting]++
	}

	// No clear indicators at all: default to visual.
	if sum(scores) == 0 {
		scores[StyleVisual] = 1
	}

	primary, secondary := rankStyles(scores)
	return buildResult(primary, secondary, scores,
		InferredPrimaryConfidence, InferredSecondaryConfidence, true)
}

// rankStyles returns the top two styles by score. Ties break by the
// enumeration order from AllStyles.
func rankStyles(scores map[Style]float64) (primary, secondary Style) {
	ranked := AllStyles()
	order := make(map[Style]int, len(ranked))
	for i, s := range ranked {
		order[s] = i
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if scores[ranked[i]] != scores[ranked[j]] {
			return scores[ranked[i]] > scores[ranked[j]]
		}
		return order[ranked[i]] < order[ranked[j]]
	})
	return ranked[0], ranked[1]
}

func buildResult(primary, secondary Style, scores map[Style]float64, primaryConf, secondaryConf float64, inferred bool) *Result {
	info := Info(primary)
	return &Result{
		Primary:             primary,
		Secondary:           secondary,
		Scores:              scores,
		PrimaryConfidence:   primaryConf,
		SecondaryConfidence: secondaryConf,
		Inferred:            inferred,
		Description:         info.Description,
		Preferences:         info.Preferences,
		Strengths:           info.Strengths,
		Challenges:          info.Challenges,
	}
}

func zeroScores() map[Style]float64 {
	scores := make(map[Style]float64, 4)
	for _, s := range AllStyles() {
		scores[s] = 0
	}
	return scores
}

func sum(scores map[Style]float64) float64 {
	var t float64
	for _, v := range scores {
		t += v
	}
	return t
}
