package learnstyle

// StyleInfo is the static catalog entry for a learning style.
type StyleInfo struct {
	Style       Style
	Description string
	Preferences []string
	Strengths   []string
	Challenges  []string
}

// catalog is the package-level style catalog, keyed by style.
var catalog = map[Style]StyleInfo{
	StyleVisual: {
		Style:       StyleVisual,
		Description: "Learns best through visual aids, diagrams, and spatial organization",
		Preferences: []string{"diagrams", "charts", "videos", "images", "mind maps"},
		Strengths:   []string{"spatial reasoning", "visual memory", "pattern recognition"},
		Challenges:  []string{"verbal instructions", "auditory-only content"},
	},
	StyleAuditory: {
		Style:       StyleAuditory,
		Description: "Learns best through listening, discussion, and verbal communication",
		Preferences: []string{"discussions", "lectures", "podcasts", "verbal explanations"},
		Strengths:   []string{"verbal memory", "listening comprehension", "oral communication"},
		Challenges:  []string{"visual-only content", "silent reading"},
	},
	StyleKinesthetic: {
		Style:       StyleKinesthetic,
		Description: "Learns best through hands-on activities, movement, and physical interaction",
		Preferences: []string{"experiments", "hands-on activities", "role-playing", "physical movement"},
		Strengths:   []string{"physical coordination", "tactile memory", "practical application"},
		Challenges:  []string{"passive learning", "theoretical content"},
	},
	StyleReadingWriting: {
		Style:       StyleReadingWriting,
		Description: "Learns best through reading, writing, and text-based activities",
		Preferences: []string{"reading", "note-taking", "writing", "text-based materials"},
		Strengths:   []string{"text comprehension", "written expression", "analytical thinking"},
		Challenges:  []string{"visual content", "hands-on activities"},
	},
}

// Info returns the catalog entry for a style. Unknown styles fall back to
// the visual entry so callers never receive an empty bundle.
func Info(s Style) StyleInfo {
	if info, ok := catalog[s]; ok {
		return info
	}
	return catalog[StyleVisual]
}

// preferenceBuckets maps each style to the content-preference tags that
// count toward it during inference.
var preferenceBuckets = map[Style][]string{
	StyleVisual:         {"videos", "diagrams", "images"},
	StyleAuditory:       {"podcasts", "discussions", "lectures"},
	StyleKinesthetic:    {"experiments", "hands_on", "interactive"},
	StyleReadingWriting: {"reading", "note_taking", "writing"},
}

// behaviorSignals maps each non-text style to the learning-behavior tag
// whose recorded time is compared against time spent on text.
var behaviorSignals = map[Style]string{
	StyleVisual:      "time_on_videos",
	StyleAuditory:    "time_on_audio",
	StyleKinesthetic: "time_on_interactive",
}

// behaviorTextSignal is the baseline activity tag for behavior comparisons.
const behaviorTextSignal = "time_on_text"

// performanceSignals maps each non-text style to the performance-pattern
// tag compared against text-task performance.
var performanceSignals = map[Style]string{
	StyleVisual:      "visual_tasks",
	StyleAuditory:    "audio_tasks",
	StyleKinesthetic: "hands_on_tasks",
}

// performanceTextSignal is the baseline task tag for performance comparisons.
const performanceTextSignal = "text_tasks"
