package pathplan

import "fmt"

// Validation is the outcome of checking a planned objective sequence.
// Issues make the plan invalid; warnings do not.
type Validation struct {
	IsValid       bool
	Issues        []string
	Warnings      []string
	TotalDuration int
	Subjects      map[string]bool
	Difficulties  map[string]bool
}

// minTotalDuration is the threshold below which a path draws a
// "very short" warning, in minutes.
const minTotalDuration = 30

// Validate checks an objective sequence for coherence and completeness.
// Pure check: it never mutates the objectives.
func Validate(objectives []Objective) *Validation {
	v := &Validation{
		IsValid:      true,
		Subjects:     make(map[string]bool),
		Difficulties: make(map[string]bool),
	}

	if len(objectives) == 0 {
		v.IsValid = false
		v.Issues = append(v.Issues, "No objectives defined")
		return v
	}

	for i, obj := range objectives {
		if obj.EstimatedDuration < MinObjectiveDuration {
			v.Warnings = append(v.Warnings,
				fmt.Sprintf("Objective %d duration (%d min) is below minimum", i+1, obj.EstimatedDuration))
		}
		if obj.EstimatedDuration > MaxObjectiveDuration {
			v.Warnings = append(v.Warnings,
				fmt.Sprintf("Objective %d duration (%d min) is above maximum", i+1, obj.EstimatedDuration))
		}
		v.TotalDuration += obj.EstimatedDuration
		v.Subjects[obj.Subject] = true
		v.Difficulties[obj.Difficulty] = true
	}

	if v.TotalDuration < minTotalDuration {
		v.Warnings = append(v.Warnings, "Total duration is very short")
	}
	if len(v.Subjects) == 1 {
		v.Warnings = append(v.Warnings, "Path covers only one subject")
	}
	if len(objectives) < MinObjectivesPerPath {
		v.IsValid = false
		v.Issues = append(v.Issues, fmt.Sprintf("Too few objectives (%d)", len(objectives)))
	}
	if len(objectives) > MaxObjectivesPerPath {
		v.Warnings = append(v.Warnings, fmt.Sprintf("Many objectives (%d)", len(objectives)))
	}

	return v
}
