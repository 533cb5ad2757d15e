package content

import "context"

// Metadata carries the tags the ingestion pipeline attaches to a content
// item. Extra keys beyond the well-known ones are preserved as-is.
type Metadata map[string]string

// Well-known metadata keys.
const (
	KeySubject     = "subject"
	KeyDifficulty  = "difficulty_level"
	KeyContentType = "content_type"
)

// Item is a single piece of tagged educational content. Items are produced
// by an external ingestion pipeline and are immutable from this module's
// perspective.
type Item struct {
	ID       string   `json:"id"`
	Text     string   `json:"content"`
	Metadata Metadata `json:"metadata"`
}

// Subject returns the item's subject tag, or "general" when untagged.
func (it Item) Subject() string {
	if s, ok := it.Metadata[KeySubject]; ok && s != "" {
		return s
	}
	return "general"
}

// Difficulty returns the item's difficulty tag, or "intermediate" when
// untagged.
func (it Item) Difficulty() string {
	if d, ok := it.Metadata[KeyDifficulty]; ok && d != "" {
		return d
	}
	return "intermediate"
}

// ContentType returns the item's content-type tag, or "lesson" when
// untagged.
func (it Item) ContentType() string {
	if t, ok := it.Metadata[KeyContentType]; ok && t != "" {
		return t
	}
	return "lesson"
}

// Filter is a metadata filter for retrieval queries. A field maps either to
// a single required value or, via In, to a set of acceptable values.
type Filter struct {
	Equals map[string]string
	In     map[string][]string
}

// Matches reports whether an item's metadata satisfies the filter.
func (f Filter) Matches(md Metadata) bool {
	for field, want := range f.Equals {
		if md[field] != want {
			return false
		}
	}
	for field, set := range f.In {
		got := md[field]
		found := false
		for _, v := range set {
			if got == v {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Retriever is the retrieval collaborator's query contract. Result order is
// a candidate pool, not a ranking the caller must preserve.
type Retriever interface {
	// QueryByMetadata returns up to limit items whose metadata satisfies
	// the filter. A limit of 0 means no limit.
	QueryByMetadata(ctx context.Context, f Filter, limit int) ([]Item, error)
}

// Stats summarizes the content pool by tag.
type Stats struct {
	TotalItems   int            `json:"total_items"`
	Subjects     map[string]int `json:"subjects"`
	ContentTypes map[string]int `json:"content_types"`
	Difficulties map[string]int `json:"difficulty_levels"`
}

// StatsProvider is the statistics collaborator's contract.
type StatsProvider interface {
	// Statistics returns tag counts over the whole pool.
	Statistics(ctx context.Context) (*Stats, error)

	// ListKnownSubjects returns every subject tag present in the pool.
	ListKnownSubjects(ctx context.Context) ([]string, error)
}
