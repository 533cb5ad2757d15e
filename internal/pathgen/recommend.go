package pathgen

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/sowmya1811d/edupath/internal/profile"
)

// maxSubjectsPerRecommendation caps the subject sample per candidate path.
const maxSubjectsPerRecommendation = 3

// defaultSubjects is the fallback when the statistics collaborator fails.
var defaultSubjects = []string{"mathematics", "science", "computer_science", "literature"}

// Recommendation is a candidate path reduced to a summary record.
type Recommendation struct {
	PathID         string   `json:"path_id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Subjects       []string `json:"subjects"`
	TotalDuration  int      `json:"estimated_duration"`
	Difficulty     string   `json:"difficulty_level"`
	ObjectiveCount int      `json:"objectives_count"`
}

// Recommendations generates n candidate paths from random subject subsets
// and reduces each to a summary. A failure generating one sample skips that
// sample; the result is best-effort, never a whole-call failure.
func (g *Generator) Recommendations(ctx context.Context, p *profile.StudentProfile, n int) []Recommendation {
	subjects := g.knownSubjects(ctx)

	recommendations := make([]Recommendation, 0, n)
	for i := 0; i < n; i++ {
		sample := g.sampleSubjects(subjects, maxSubjectsPerRecommendation)

		path, err := g.GenerateLearningPath(ctx, p, sample, 0)
		if err != nil {
			g.log.Warn("skipping recommendation sample",
				zap.Int("sample", i), zap.Error(err))
			continue
		}

		difficulty := ""
		if len(path.DifficultyProgression) > 0 {
			difficulty = path.DifficultyProgression[0]
		}
		recommendations = append(recommendations, Recommendation{
			PathID:         path.PathID,
			Title:          path.Title,
			Description:    path.Description,
			Subjects:       path.Subjects,
			TotalDuration:  path.TotalDuration,
			Difficulty:     difficulty,
			ObjectiveCount: len(path.Objectives),
		})
	}
	return recommendations
}

// knownSubjects asks the statistics collaborator for the subject set,
// falling back to the fixed default list on failure.
func (g *Generator) knownSubjects(ctx context.Context) []string {
	subjects, err := g.stats.ListKnownSubjects(ctx)
	if err != nil || len(subjects) == 0 {
		g.log.Warn("listing known subjects failed, using defaults", zap.Error(err))
		return defaultSubjects
	}
	sort.Strings(subjects)
	return subjects
}

// sampleSubjects draws up to k distinct subjects without replacement.
func (g *Generator) sampleSubjects(subjects []string, k int) []string {
	if k > len(subjects) {
		k = len(subjects)
	}
	idx := g.rng.Perm(len(subjects))[:k]
	sample := make([]string, k)
	for i, j := range idx {
		sample[i] = subjects[j]
	}
	return sample
}
