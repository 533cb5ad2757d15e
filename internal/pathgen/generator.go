package pathgen

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sowmya1811d/edupath/internal/content"
	"github.com/sowmya1811d/edupath/internal/learnstyle"
	"github.com/sowmya1811d/edupath/internal/pathplan"
	"github.com/sowmya1811d/edupath/internal/profile"
)

// retrievalLimit caps the candidate pool fetched per subject.
const retrievalLimit = 100

// planningDifficulties are the difficulty tags eligible for retrieval.
var planningDifficulties = []string{"beginner", "intermediate", "advanced"}

// Config tunes a Generator. Zero values get working defaults: an unseeded
// PCG source, a no-op logger, and the wall clock.
type Config struct {
	// RNG drives candidate shuffling and subject sampling. Inject a seeded
	// source for reproducible plans.
	RNG *rand.Rand

	Logger *zap.Logger

	// Now supplies timestamps for path ids and created/updated times.
	Now func() time.Time
}

// Generator orchestrates learning path generation: style assessment, level
// determination, content retrieval, objective planning, and assembly. Each
// call is independent; the Generator holds no per-student state.
type Generator struct {
	retriever content.Retriever
	stats     content.StatsProvider
	planner   pathplan.Planner
	rng       *rand.Rand
	log       *zap.Logger
	now       func() time.Time
}

// NewGenerator creates a Generator over the retrieval and statistics
// collaborators.
func NewGenerator(retriever content.Retriever, stats content.StatsProvider, cfg Config) *Generator {
	rng := cfg.RNG
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Generator{
		retriever: retriever,
		stats:     stats,
		planner:   pathplan.NewPlanner(rng),
		rng:       rng,
		log:       log,
		now:       now,
	}
}

// GenerateLearningPath builds a personalized path for the profiled student
// across the requested subjects. targetDuration is in minutes; 0 picks the
// level's base objective count. Retrieval failures propagate; an empty
// candidate pool yields a path with no objectives, left to the caller to
// validate.
func (g *Generator) GenerateLearningPath(ctx context.Context, p *profile.StudentProfile, subjects []string, targetDuration int) (*LearningPath, error) {
	style := learnstyle.Assess(p)
	level := DeterminePathLevel(p)

	pool, err := g.availableContent(ctx, subjects, p.CompletedSet())
	if err != nil {
		return nil, err
	}

	objectives := g.planner.PlanObjectives(pool, p, style, level, targetDuration)

	path := g.assemblePath(p.StudentID, objectives, style, level)
	g.log.Info("generated learning path",
		zap.String("student_id", p.StudentID),
		zap.String("path_id", path.PathID),
		zap.String("level", string(level)),
		zap.Int("objectives", len(path.Objectives)))
	return path, nil
}

// availableContent fetches candidates per subject at the planning
// difficulties, excluding content the student already completed.
func (g *Generator) availableContent(ctx context.Context, subjects []string, completed map[string]bool) ([]content.Item, error) {
	var pool []content.Item
	for _, subject := range subjects {
		f := content.Filter{
			Equals: map[string]string{content.KeySubject: subject},
			In:     map[string][]string{content.KeyDifficulty: planningDifficulties},
		}
		items, err := g.retriever.QueryByMetadata(ctx, f, retrievalLimit)
		if err != nil {
			return nil, &content.UnavailableError{Subject: subject, Err: err}
		}
		pool = append(pool, items...)
	}

	if len(completed) == 0 {
		return pool, nil
	}
	filtered := pool[:0]
	for _, item := range pool {
		if !completed[item.ID] {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

// assemblePath wraps planned objectives into a LearningPath with a fresh
// path id derived from the student id and the generation timestamp.
func (g *Generator) assemblePath(studentID string, objectives []pathplan.Objective, style *learnstyle.Result, level profile.Level) *LearningPath {
	now := g.now()
	subjects := uniqueSubjects(objectives)

	path := &LearningPath{
		StudentID:             studentID,
		PathID:                fmt.Sprintf("path_%s_%s", studentID, now.Format("20060102_150405")),
		Title:                 fmt.Sprintf("Personalized Learning Path - %s", strings.Join(subjects, ", ")),
		Description:           fmt.Sprintf("Custom learning path designed for %s learners", style.Primary),
		Objectives:            objectives,
		DifficultyProgression: pathplan.Progression(level),
		Subjects:              subjects,
		CreatedAt:             now,
		UpdatedAt:             now,
		Status:                StatusActive,
	}
	path.RecomputeDuration()
	return path
}
