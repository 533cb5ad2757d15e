package pathgen

import (
	"context"

	"go.uber.org/zap"

	"github.com/sowmya1811d/edupath/internal/learnstyle"
	"github.com/sowmya1811d/edupath/internal/profile"
)

// progressAnalysis is the outcome of checking progress against the
// adaptation thresholds.
type progressAnalysis struct {
	needsAdaptation bool
	currentLevel    profile.Level
	learningPace    profile.Pace
	pathLevel       profile.Level
}

// analyzeProgress applies the adaptation thresholds. Completion rate sets
// level and pace first; performance may then override the level. Values
// inside the (0.3, 0.8] completion and (0.4, 0.8] performance bands trigger
// nothing.
func analyzeProgress(pr *profile.Progress) progressAnalysis {
	a := progressAnalysis{
		currentLevel: profile.LevelIntermediate,
		learningPace: profile.PaceNormal,
		pathLevel:    profile.LevelIntermediate,
	}

	completion := pr.EffectiveCompletionRate()
	if completion < lowCompletionRate {
		a.needsAdaptation = true
		a.currentLevel = profile.LevelBeginner
		a.learningPace = profile.PaceSlow
	} else if completion > highCompletionRate {
		a.needsAdaptation = true
		a.currentLevel = profile.LevelAdvanced
		a.learningPace = profile.PaceFast
	}

	perf := pr.EffectivePerformance()
	if perf < lowPerformance {
		a.needsAdaptation = true
		a.currentLevel = profile.LevelBeginner
	} else if perf > highPerformance {
		a.needsAdaptation = true
		a.currentLevel = profile.LevelAdvanced
	}

	a.pathLevel = a.currentLevel
	return a
}

// AdaptLearningPath re-plans a path's objectives when progress crosses an
// adaptation threshold. The path keeps its identity and target duration;
// objectives are replaced in place and TotalDuration and UpdatedAt refresh.
// Inside the no-adaptation band the path comes back unchanged.
func (g *Generator) AdaptLearningPath(ctx context.Context, path *LearningPath, pr *profile.Progress) (*LearningPath, error) {
	analysis := analyzeProgress(pr)
	if !analysis.needsAdaptation {
		return path, nil
	}

	// Rebuild a minimal profile from the progress signals; the style
	// assessment falls back to inference over it.
	adapted := &profile.StudentProfile{
		StudentID:        path.StudentID,
		CurrentLevel:     analysis.currentLevel,
		LearningPace:     analysis.learningPace,
		CompletedContent: pr.CompletedContent,
	}

	pool, err := g.availableContent(ctx, path.Subjects, adapted.CompletedSet())
	if err != nil {
		return nil, err
	}

	style := learnstyle.Assess(adapted)
	objectives := g.planner.PlanObjectives(pool, adapted, style, analysis.pathLevel, path.TotalDuration)

	path.Objectives = objectives
	path.RecomputeDuration()
	path.UpdatedAt = g.now()

	g.log.Info("adapted learning path",
		zap.String("path_id", path.PathID),
		zap.String("level", string(analysis.pathLevel)),
		zap.Int("objectives", len(objectives)))
	return path, nil
}
