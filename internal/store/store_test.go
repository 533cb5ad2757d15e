package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sowmya1811d/edupath/internal/content"
	"github.com/sowmya1811d/edupath/internal/pathgen"
	"github.com/sowmya1811d/edupath/internal/pathplan"
	"github.com/sowmya1811d/edupath/internal/profile"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	require.NotNil(t, s.Client())
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is skipped here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		require.NoError(t, db.QueryRow("PRAGMA "+tt.pragma).Scan(&got))
		assert.Equal(t, tt.want, got, "PRAGMA %s", tt.pragma)
	}
}

func seedContent(t *testing.T, repo ContentRepo) {
	t.Helper()
	items := []content.Item{
		{ID: "m-1", Text: "Linear equations.", Metadata: content.Metadata{
			content.KeySubject: "mathematics", content.KeyDifficulty: "beginner", content.KeyContentType: "lesson",
		}},
		{ID: "m-2", Text: "Quadratic equations.", Metadata: content.Metadata{
			content.KeySubject: "mathematics", content.KeyDifficulty: "intermediate", content.KeyContentType: "exercise",
		}},
		{ID: "p-1", Text: "Newtonian motion.", Metadata: content.Metadata{
			content.KeySubject: "physics", content.KeyDifficulty: "intermediate", content.KeyContentType: "lesson",
		}},
	}
	n, err := repo.Import(context.Background(), items)
	require.NoError(t, err)
	require.Equal(t, 3, n)
}

func TestContentQueryByMetadata(t *testing.T) {
	s := openTestStore(t)
	repo := s.ContentRepo()
	ctx := context.Background()
	seedContent(t, repo)

	items, err := repo.QueryByMetadata(ctx, content.Filter{
		Equals: map[string]string{content.KeySubject: "mathematics"},
		In:     map[string][]string{content.KeyDifficulty: {"beginner", "intermediate", "advanced"}},
	}, 10)
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, it := range items {
		assert.Equal(t, "mathematics", it.Subject())
	}

	items, err = repo.QueryByMetadata(ctx, content.Filter{
		Equals: map[string]string{content.KeyContentType: "exercise"},
	}, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "m-2", items[0].ID)
}

func TestContentQueryExtraMetadataKey(t *testing.T) {
	s := openTestStore(t)
	repo := s.ContentRepo()
	ctx := context.Background()

	item := content.Item{ID: "tag-1", Text: "Tagged content.", Metadata: content.Metadata{
		content.KeySubject: "history", "source": "textbook",
	}}
	require.NoError(t, repo.Add(ctx, &item))

	items, err := repo.QueryByMetadata(ctx, content.Filter{
		Equals: map[string]string{"source": "textbook"},
	}, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "tag-1", items[0].ID)

	items, err = repo.QueryByMetadata(ctx, content.Filter{
		Equals: map[string]string{"source": "lecture"},
	}, 0)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestContentAddGeneratesID(t *testing.T) {
	s := openTestStore(t)
	repo := s.ContentRepo()
	ctx := context.Background()

	item := content.Item{Text: "Untitled fragment."}
	require.NoError(t, repo.Add(ctx, &item))
	require.NotEmpty(t, item.ID)

	items, err := repo.Export(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, item.ID, items[0].ID)
	assert.Equal(t, "general", items[0].Subject(), "untagged item defaults")
}

func TestContentImportReplacesExisting(t *testing.T) {
	s := openTestStore(t)
	repo := s.ContentRepo()
	ctx := context.Background()
	seedContent(t, repo)

	n, err := repo.Import(ctx, []content.Item{
		{ID: "m-1", Text: "Linear equations, revised.", Metadata: content.Metadata{
			content.KeySubject: "mathematics",
		}},
	})
	require.NoError(t, err)
	require.Equal(t, 1, n)

	items, err := repo.QueryByMetadata(ctx, content.Filter{
		Equals: map[string]string{content.KeySubject: "mathematics"},
	}, 0)
	require.NoError(t, err)
	assert.Len(t, items, 2, "replacement must not duplicate")
}

func TestContentStatistics(t *testing.T) {
	s := openTestStore(t)
	repo := s.ContentRepo()
	ctx := context.Background()
	seedContent(t, repo)

	stats, err := repo.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalItems)
	assert.Equal(t, 2, stats.Subjects["mathematics"])
	assert.Equal(t, 1, stats.Subjects["physics"])
	assert.Equal(t, 2, stats.Difficulties["intermediate"])
	assert.Equal(t, 2, stats.ContentTypes["lesson"])

	subjects, err := repo.ListKnownSubjects(ctx)
	require.NoError(t, err)
	assert.Len(t, subjects, 2)
}

func TestStudentRepoRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.StudentRepo()
	ctx := context.Background()

	perf := 0.75
	p := &profile.StudentProfile{
		StudentID:          "student-7",
		Name:               "Priya",
		CurrentLevel:       profile.LevelIntermediate,
		LearningPace:       profile.PaceFast,
		AveragePerformance: &perf,
		ContentPreferences: map[string]float64{"videos": 0.9},
		CompletedContent:   []string{"m-1"},
	}
	require.NoError(t, repo.Save(ctx, p))

	got, err := repo.Get(ctx, "student-7")
	require.NoError(t, err)
	assert.Equal(t, "Priya", got.Name)
	assert.Equal(t, profile.LevelIntermediate, got.CurrentLevel)
	require.NotNil(t, got.AveragePerformance)
	assert.Equal(t, 0.75, *got.AveragePerformance)
	assert.Equal(t, 0.9, got.ContentPreferences["videos"])
	assert.Equal(t, []string{"m-1"}, got.CompletedContent)

	// Saving again replaces, not duplicates.
	p.LearningPace = profile.PaceSlow
	require.NoError(t, repo.Save(ctx, p))
	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, profile.PaceSlow, all[0].LearningPace)
}

func TestStudentRepoNotFound(t *testing.T) {
	s := openTestStore(t)
	repo := s.StudentRepo()
	ctx := context.Background()

	_, err := repo.Get(ctx, "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "ghost"), ErrNotFound)
}

func testPath(studentID, pathID string) *pathgen.LearningPath {
	created := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	return &pathgen.LearningPath{
		StudentID: studentID,
		PathID:    pathID,
		Title:     "Personalized Learning Path - mathematics",
		Objectives: []pathplan.Objective{
			{
				ID:                "obj_mathematics_beginner_1",
				Title:             "Mathematics - Beginner (Part 1)",
				Subject:           "mathematics",
				Difficulty:        "beginner",
				EstimatedDuration: 30,
				ContentIDs:        []string{"m-1"},
			},
		},
		TotalDuration:         30,
		DifficultyProgression: []string{"beginner", "beginner", "intermediate"},
		Subjects:              []string{"mathematics"},
		CreatedAt:             created,
		UpdatedAt:             created,
		Status:                pathgen.StatusActive,
	}
}

func TestPathRepoRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.PathRepo()
	ctx := context.Background()

	p := testPath("student-7", "path_student-7_20250314_092653")
	require.NoError(t, repo.Save(ctx, p))

	got, err := repo.Get(ctx, p.PathID)
	require.NoError(t, err)
	assert.Equal(t, "student-7", got.StudentID)
	require.Len(t, got.Objectives, 1)
	assert.Equal(t, 30, got.TotalDuration)
	assert.True(t, got.CreatedAt.Equal(p.CreatedAt))
}

func TestPathRepoListByStudent(t *testing.T) {
	s := openTestStore(t)
	repo := s.PathRepo()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testPath("student-7", "path_student-7_a")))
	require.NoError(t, repo.Save(ctx, testPath("student-7", "path_student-7_b")))
	require.NoError(t, repo.Save(ctx, testPath("student-8", "path_student-8_a")))

	paths, err := repo.ListByStudent(ctx, "student-7")
	require.NoError(t, err)
	require.Len(t, paths, 2)
	for _, p := range paths {
		assert.Equal(t, "student-7", p.StudentID)
	}
}

func TestPathRepoSetStatus(t *testing.T) {
	s := openTestStore(t)
	repo := s.PathRepo()
	ctx := context.Background()

	p := testPath("student-7", "path_student-7_a")
	require.NoError(t, repo.Save(ctx, p))

	require.NoError(t, repo.SetStatus(ctx, p.PathID, pathgen.StatusCompleted))
	got, err := repo.Get(ctx, p.PathID)
	require.NoError(t, err)
	assert.Equal(t, pathgen.StatusCompleted, got.Status)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt))

	assert.Error(t, repo.SetStatus(ctx, p.PathID, pathgen.Status("archived")))
	assert.ErrorIs(t, repo.SetStatus(ctx, "ghost", pathgen.StatusPaused), ErrNotFound)
}

func TestPathRepoSkipsCorruptRecords(t *testing.T) {
	s := openTestStore(t)
	repo := s.PathRepo()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testPath("student-7", "path_student-7_good")))
	// Sneak in a record that fails schema validation.
	_, err := s.Client().PathRecord.Create().
		SetPathID("path_student-7_bad").
		SetStudentID("student-7").
		SetStatus("active").
		SetRecord(`{"path_id": "path_student-7_bad"}`).
		Save(ctx)
	require.NoError(t, err)

	paths, err := repo.ListByStudent(ctx, "student-7")
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, "path_student-7_good", paths[0].PathID)

	_, err = repo.Get(ctx, "path_student-7_bad")
	var corrupt *pathgen.CorruptRecordError
	assert.ErrorAs(t, err, &corrupt)
}
