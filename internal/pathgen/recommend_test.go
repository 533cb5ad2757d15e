package pathgen

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/sowmya1811d/edupath/internal/profile"
)

func TestRecommendations(t *testing.T) {
	pool := intermediatePool(6, "mathematics", "physics", "chemistry")
	g := NewGenerator(&mockRetriever{items: pool}, &mockStats{subjects: []string{"physics", "chemistry", "mathematics"}}, Config{
		RNG: rand.New(rand.NewPCG(5, 0)),
		Now: fixedClock(),
	})

	recs := g.Recommendations(context.Background(), &profile.StudentProfile{StudentID: "s1"}, 3)
	if len(recs) != 3 {
		t.Fatalf("recommendations = %d, want 3", len(recs))
	}
	for i, rec := range recs {
		if rec.PathID == "" || rec.Title == "" {
			t.Errorf("recommendation %d missing identity: %+v", i, rec)
		}
		if len(rec.Subjects) == 0 || len(rec.Subjects) > maxSubjectsPerRecommendation {
			t.Errorf("recommendation %d has %d subjects", i, len(rec.Subjects))
		}
		if rec.ObjectiveCount == 0 {
			t.Errorf("recommendation %d has no objectives", i)
		}
		if rec.Difficulty == "" {
			t.Errorf("recommendation %d has no difficulty", i)
		}
	}
}

func TestRecommendationsSkipsFailedSamples(t *testing.T) {
	r := &mockRetriever{err: errors.New("store offline")}
	g := NewGenerator(r, &mockStats{subjects: []string{"mathematics"}}, Config{
		RNG: rand.New(rand.NewPCG(5, 0)),
		Now: fixedClock(),
	})

	recs := g.Recommendations(context.Background(), &profile.StudentProfile{StudentID: "s1"}, 4)
	if len(recs) != 0 {
		t.Fatalf("recommendations = %d, want 0 when every sample fails", len(recs))
	}
	if r.calls != 4 {
		t.Errorf("retriever calls = %d, want one attempt per sample", r.calls)
	}
}

func TestKnownSubjectsFallback(t *testing.T) {
	tests := []struct {
		name  string
		stats *mockStats
	}{
		{"stats error", &mockStats{err: errors.New("no database")}},
		{"empty subject list", &mockStats{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGenerator(&mockRetriever{}, tt.stats, Config{RNG: rand.New(rand.NewPCG(5, 0))})
			subjects := g.knownSubjects(context.Background())
			if len(subjects) != len(defaultSubjects) {
				t.Fatalf("subjects = %v, want defaults", subjects)
			}
		})
	}
}

func TestKnownSubjectsSorted(t *testing.T) {
	g := NewGenerator(&mockRetriever{}, &mockStats{subjects: []string{"physics", "chemistry", "art"}}, Config{RNG: rand.New(rand.NewPCG(5, 0))})
	subjects := g.knownSubjects(context.Background())
	want := []string{"art", "chemistry", "physics"}
	for i := range want {
		if subjects[i] != want[i] {
			t.Fatalf("subjects = %v, want %v", subjects, want)
		}
	}
}

func TestSampleSubjectsBounds(t *testing.T) {
	g := NewGenerator(&mockRetriever{}, &mockStats{}, Config{RNG: rand.New(rand.NewPCG(5, 0))})

	sample := g.sampleSubjects([]string{"a", "b"}, 3)
	if len(sample) != 2 {
		t.Fatalf("sample = %v, want both available subjects", sample)
	}

	sample = g.sampleSubjects([]string{"a", "b", "c", "d"}, 3)
	if len(sample) != 3 {
		t.Fatalf("sample = %v, want exactly 3", sample)
	}
	seen := map[string]bool{}
	for _, s := range sample {
		if seen[s] {
			t.Fatalf("sample %v contains a duplicate", sample)
		}
		seen[s] = true
	}
}
