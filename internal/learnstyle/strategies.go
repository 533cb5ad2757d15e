package learnstyle

// Strategies groups accommodation strategy lists for a learning style.
type Strategies struct {
	ContentPresentation  []string `json:"content_presentation"`
	InteractionMethods   []string `json:"interaction_methods"`
	AssessmentApproaches []string `json:"assessment_approaches"`
	StudyTechniques      []string `json:"study_techniques"`
	MultiModalSupport    []string `json:"multi_modal_support"`
}

var presentationStrategies = map[Style][]string{
	StyleVisual: {
		"Use diagrams, charts, and infographics",
		"Include relevant images and visual aids",
		"Create mind maps and concept maps",
		"Use color coding for organization",
		"Provide visual summaries and flowcharts",
	},
	StyleAuditory: {
		"Include audio explanations and podcasts",
		"Provide verbal instructions and discussions",
		"Use group discussions and peer teaching",
		"Include audio feedback and explanations",
		"Provide verbal summaries and key points",
	},
	StyleKinesthetic: {
		"Include hands-on activities and experiments",
		"Provide interactive simulations and games",
		"Use role-playing and physical demonstrations",
		"Include movement-based learning activities",
		"Provide tactile learning materials",
	},
	StyleReadingWriting: {
		"Provide comprehensive text-based materials",
		"Include note-taking opportunities",
		"Use written summaries and key points",
		"Provide reading guides and outlines",
		"Include writing assignments and reflections",
	},
}

var interactionStrategies = map[Style][]string{
	StyleVisual: {
		"Visual feedback and progress indicators",
		"Interactive diagrams and charts",
		"Visual quizzes and assessments",
		"Screen sharing and visual demonstrations",
	},
	StyleAuditory: {
		"Verbal feedback and discussions",
		"Audio-based interactions",
		"Group discussions and debates",
		"Voice-based navigation and commands",
	},
	StyleKinesthetic: {
		"Hands-on interactive activities",
		"Physical movement and gestures",
		"Touch-based interactions",
		"Real-time feedback and adjustments",
	},
	StyleReadingWriting: {
		"Text-based interactions and responses",
		"Written feedback and comments",
		"Text-based quizzes and assessments",
		"Written discussions and forums",
	},
}

var assessmentStrategies = map[Style][]string{
	StyleVisual: {
		"Visual quizzes with diagrams and charts",
		"Image-based assessments",
		"Visual problem-solving tasks",
		"Diagram creation and analysis",
	},
	StyleAuditory: {
		"Oral presentations and discussions",
		"Audio-based assessments",
		"Verbal problem-solving tasks",
		"Group discussion assessments",
	},
	StyleKinesthetic: {
		"Hands-on practical assessments",
		"Physical demonstrations and tasks",
		"Interactive simulations and games",
		"Real-world application projects",
	},
	StyleReadingWriting: {
		"Written essays and reports",
		"Text-based quizzes and tests",
		"Written problem-solving tasks",
		"Research and writing assignments",
	},
}

var studyTechniques = map[Style][]string{
	StyleVisual: {
		"Create visual study guides and mind maps",
		"Use color-coded notes and highlighters",
		"Watch educational videos and documentaries",
		"Create diagrams and flowcharts",
		"Use visual mnemonics and memory aids",
	},
	StyleAuditory: {
		"Read aloud and discuss with others",
		"Listen to educational podcasts and lectures",
		"Participate in study groups and discussions",
		"Use verbal mnemonics and rhymes",
		"Record and listen to your own explanations",
	},
	StyleKinesthetic: {
		"Use flashcards and physical study aids",
		"Act out concepts and scenarios",
		"Take frequent breaks and move around",
		"Use hands-on study materials",
		"Apply concepts through real-world practice",
	},
	StyleReadingWriting: {
		"Take detailed notes and summaries",
		"Write out key concepts and definitions",
		"Create written study guides and outlines",
		"Practice through writing exercises",
		"Use text-based mnemonics and lists",
	},
}

// generalMultiModal lists strategies appended to every multi-modal blend.
var generalMultiModal = []string{
	"Provide content in multiple formats simultaneously",
	"Allow students to choose their preferred format",
	"Use progressive disclosure (start with preferred, add others)",
	"Create hybrid activities that engage multiple styles",
}

// lookupStrategies returns the table entry for a style, falling back to the
// visual entry for unknown styles.
func lookupStrategies(table map[Style][]string, s Style) []string {
	if list, ok := table[s]; ok {
		return list
	}
	return table[StyleVisual]
}

// AccommodationStrategies derives the accommodation bundle for an assessed
// style. Multi-modal support blends the top presentation strategies of the
// primary and secondary styles with the general strategies.
func AccommodationStrategies(r *Result) *Strategies {
	primary := r.Primary
	secondary := r.Secondary
	if !secondary.Valid() {
		secondary = primary
	}

	multiModal := make([]string, 0, 3+len(generalMultiModal))
	multiModal = append(multiModal, lookupStrategies(presentationStrategies, primary)[:2]...)
	multiModal = append(multiModal, lookupStrategies(presentationStrategies, secondary)[:1]...)
	multiModal = append(multiModal, generalMultiModal...)

	return &Strategies{
		ContentPresentation:  lookupStrategies(presentationStrategies, primary),
		InteractionMethods:   lookupStrategies(interactionStrategies, primary),
		AssessmentApproaches: lookupStrategies(assessmentStrategies, primary),
		StudyTechniques:      lookupStrategies(studyTechniques, primary),
		MultiModalSupport:    multiModal,
	}
}
