package pathgen

import "github.com/sowmya1811d/edupath/internal/profile"

// Performance thresholds for the level vote and adaptation analysis.
const (
	advancedPerformance     = 0.8
	intermediatePerformance = 0.6

	// Adaptation trigger thresholds.
	lowCompletionRate  = 0.3
	highCompletionRate = 0.8
	lowPerformance     = 0.4
	highPerformance    = 0.8
)

// DeterminePathLevel picks the path level by weighted vote across four
// profile signals. The declared current level carries weight 2; performance,
// pace, and availability carry 1 each. Pace and availability never vote for
// intermediate directly. Ties resolve toward the easier level.
func DeterminePathLevel(p *profile.StudentProfile) profile.Level {
	votes := map[profile.Level]int{
		profile.LevelBeginner:     0,
		profile.LevelIntermediate: 0,
		profile.LevelAdvanced:     0,
	}

	votes[p.EffectiveLevel()] += 2

	switch perf := p.EffectivePerformance(); {
	case perf > advancedPerformance:
		votes[profile.LevelAdvanced]++
	case perf > intermediatePerformance:
		votes[profile.LevelIntermediate]++
	default:
		votes[profile.LevelBeginner]++
	}

	switch p.EffectivePace() {
	case profile.PaceFast:
		votes[profile.LevelAdvanced]++
	case profile.PaceSlow:
		votes[profile.LevelBeginner]++
	}

	switch p.EffectiveAvailability() {
	case profile.AvailabilityHigh:
		votes[profile.LevelAdvanced]++
	case profile.AvailabilityLow:
		votes[profile.LevelBeginner]++
	}

	best := profile.LevelBeginner
	for _, level := range []profile.Level{profile.LevelIntermediate, profile.LevelAdvanced} {
		if votes[level] > votes[best] {
			best = level
		}
	}
	return best
}
