package learnstyle

import "math/rand/v2"

// Question is one learning-style quiz question with one option per modality.
type Question struct {
	ID      string
	Prompt  string
	Options map[Style]string
}

// questions is the static quiz catalog in presentation order.
var questions = []Question{
	{
		ID:     "q1",
		Prompt: "When learning something new, I prefer to:",
		Options: map[Style]string{
			StyleVisual:         "See diagrams, charts, or visual aids",
			StyleAuditory:       "Listen to explanations or discussions",
			StyleKinesthetic:    "Try it out hands-on or through movement",
			StyleReadingWriting: "Read about it or take notes",
		},
	},
	{
		ID:     "q2",
		Prompt: "I remember information best when:",
		Options: map[Style]string{
			StyleVisual:         "I can see it in pictures or diagrams",
			StyleAuditory:       "I hear it explained or discussed",
			StyleKinesthetic:    "I physically do it or experience it",
			StyleReadingWriting: "I read it or write it down",
		},
	},
	{
		ID:     "q3",
		Prompt: "When solving problems, I typically:",
		Options: map[Style]string{
			StyleVisual:         "Draw diagrams or visualize the solution",
			StyleAuditory:       "Talk through the problem out loud",
			StyleKinesthetic:    "Use physical objects or move around",
			StyleReadingWriting: "Write out the steps or make lists",
		},
	},
	{
		ID:     "q4",
		Prompt: "I enjoy learning activities that involve:",
		Options: map[Style]string{
			StyleVisual:         "Watching videos, looking at images, or creating mind maps",
			StyleAuditory:       "Group discussions, listening to podcasts, or verbal explanations",
			StyleKinesthetic:    "Hands-on experiments, role-playing, or physical activities",
			StyleReadingWriting: "Reading books, taking notes, or writing essays",
		},
	},
	{
		ID:     "q5",
		Prompt: "When studying, I prefer to:",
		Options: map[Style]string{
			StyleVisual:         "Use color-coded notes, diagrams, or visual organizers",
			StyleAuditory:       "Discuss topics with others or listen to recorded lectures",
			StyleKinesthetic:    "Use flashcards, act out concepts, or take frequent breaks",
			StyleReadingWriting: "Read textbooks, write summaries, or create outlines",
		},
	},
}

// Questions returns the quiz catalog.
func Questions() []Question {
	return questions
}

// RandomAssessment produces quiz answers chosen uniformly per question.
// Used by the assess command's demo mode and by tests.
func RandomAssessment(rng *rand.Rand) map[string]string {
	styles := AllStyles()
	answers := make(map[string]string, len(questions))
	for _, q := range questions {
		answers[q.ID] = string(styles[rng.IntN(len(styles))])
	}
	return answers
}
