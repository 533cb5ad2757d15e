package pathgen

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/sowmya1811d/edupath/internal/content"
	"github.com/sowmya1811d/edupath/internal/profile"
)

// mockRetriever implements content.Retriever over an in-memory pool.
type mockRetriever struct {
	items []content.Item
	err   error
	calls int
}

func (m *mockRetriever) QueryByMetadata(_ context.Context, f content.Filter, limit int) ([]content.Item, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	var out []content.Item
	for _, item := range m.items {
		if f.Matches(item.Metadata) {
			out = append(out, item)
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// mockStats implements content.StatsProvider.
type mockStats struct {
	subjects []string
	err      error
}

func (m *mockStats) Statistics(_ context.Context) (*content.Stats, error) {
	return &content.Stats{}, m.err
}

func (m *mockStats) ListKnownSubjects(_ context.Context) ([]string, error) {
	return m.subjects, m.err
}

func fixedClock() func() time.Time {
	t := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	return func() time.Time { return t }
}

func testGenerator(items []content.Item) (*Generator, *mockRetriever) {
	r := &mockRetriever{items: items}
	g := NewGenerator(r, &mockStats{subjects: []string{"mathematics", "physics"}}, Config{
		RNG: rand.New(rand.NewPCG(1, 0)),
		Now: fixedClock(),
	})
	return g, r
}

func intermediatePool(perSubject int, subjects ...string) []content.Item {
	var pool []content.Item
	text := strings.Repeat("word ", 600) + "Opening sentence. Follow-up sentence. Closing remark."
	for _, subject := range subjects {
		for i := 0; i < perSubject; i++ {
			pool = append(pool, content.Item{
				ID:   fmt.Sprintf("%s-%d", subject, i),
				Text: text,
				Metadata: content.Metadata{
					content.KeySubject:     subject,
					content.KeyDifficulty:  "intermediate",
					content.KeyContentType: "lesson",
				},
			})
		}
	}
	return pool
}

func TestGenerateLearningPath(t *testing.T) {
	perf := 0.7
	p := &profile.StudentProfile{
		StudentID:          "student-7",
		CurrentLevel:       profile.LevelIntermediate,
		LearningPace:       profile.PaceNormal,
		TimeAvailability:   profile.AvailabilityMedium,
		AveragePerformance: &perf,
	}
	g, _ := testGenerator(intermediatePool(10, "mathematics", "physics"))

	path, err := g.GenerateLearningPath(context.Background(), p, []string{"mathematics", "physics"}, 120)
	if err != nil {
		t.Fatalf("GenerateLearningPath: %v", err)
	}

	if path.PathID != "path_student-7_20250314_092653" {
		t.Errorf("path id = %q", path.PathID)
	}
	if len(path.Objectives) != 4 {
		t.Fatalf("objectives = %d, want 4", len(path.Objectives))
	}
	if path.Status != StatusActive {
		t.Errorf("status = %s, want active", path.Status)
	}
	wantSubjects := []string{"mathematics", "physics"}
	if len(path.Subjects) != 2 || path.Subjects[0] != wantSubjects[0] || path.Subjects[1] != wantSubjects[1] {
		t.Errorf("subjects = %v, want %v", path.Subjects, wantSubjects)
	}
	if !strings.Contains(path.Title, "mathematics, physics") {
		t.Errorf("title = %q", path.Title)
	}
	if !strings.Contains(path.Description, "visual") {
		t.Errorf("description = %q, want the primary style named", path.Description)
	}

	total := 0
	for _, obj := range path.Objectives {
		total += obj.EstimatedDuration
	}
	if path.TotalDuration != total {
		t.Errorf("total duration = %d, want live sum %d", path.TotalDuration, total)
	}
	if !path.CreatedAt.Equal(path.UpdatedAt) {
		t.Error("created and updated timestamps differ at generation")
	}
}

func TestGenerateLearningPathExcludesCompleted(t *testing.T) {
	pool := intermediatePool(3, "mathematics")
	p := &profile.StudentProfile{
		StudentID:        "s1",
		CompletedContent: []string{"mathematics-0", "mathematics-1"},
	}
	g, _ := testGenerator(pool)

	path, err := g.GenerateLearningPath(context.Background(), p, []string{"mathematics"}, 0)
	if err != nil {
		t.Fatalf("GenerateLearningPath: %v", err)
	}

	for _, obj := range path.Objectives {
		for _, id := range obj.ContentIDs {
			if id == "mathematics-0" || id == "mathematics-1" {
				t.Errorf("objective %s references completed content %s", obj.ID, id)
			}
		}
	}
}

func TestGenerateLearningPathRetrievalFailure(t *testing.T) {
	r := &mockRetriever{err: errors.New("store offline")}
	g := NewGenerator(r, &mockStats{}, Config{RNG: rand.New(rand.NewPCG(1, 0)), Now: fixedClock()})

	_, err := g.GenerateLearningPath(context.Background(), &profile.StudentProfile{StudentID: "s1"}, []string{"physics"}, 0)
	if !errors.Is(err, content.ErrUnavailable) {
		t.Fatalf("err = %v, want content.ErrUnavailable", err)
	}
}

func TestGenerateLearningPathEmptyPool(t *testing.T) {
	g, _ := testGenerator(nil)

	path, err := g.GenerateLearningPath(context.Background(), &profile.StudentProfile{StudentID: "s1"}, []string{"history"}, 0)
	if err != nil {
		t.Fatalf("GenerateLearningPath: %v", err)
	}
	if len(path.Objectives) != 0 {
		t.Errorf("objectives = %d, want 0", len(path.Objectives))
	}
	if path.TotalDuration != 0 {
		t.Errorf("total duration = %d, want 0", path.TotalDuration)
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	pool := intermediatePool(8, "mathematics", "physics")
	p := &profile.StudentProfile{StudentID: "s1"}

	gen := func() *LearningPath {
		g := NewGenerator(&mockRetriever{items: pool}, &mockStats{}, Config{
			RNG: rand.New(rand.NewPCG(99, 0)),
			Now: fixedClock(),
		})
		path, err := g.GenerateLearningPath(context.Background(), p, []string{"mathematics", "physics"}, 150)
		if err != nil {
			t.Fatalf("GenerateLearningPath: %v", err)
		}
		return path
	}

	first, second := gen(), gen()
	if len(first.Objectives) != len(second.Objectives) {
		t.Fatalf("objective counts differ: %d vs %d", len(first.Objectives), len(second.Objectives))
	}
	for i := range first.Objectives {
		if first.Objectives[i].ContentIDs[0] != second.Objectives[i].ContentIDs[0] {
			t.Errorf("slot %d differs between identically seeded runs", i)
		}
	}
}
