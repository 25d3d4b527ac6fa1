package grading

import (
	"errors"
	"math"
)

// ErrNoComponents is returned when a grade is finalized with neither a
// multiple-choice nor an essay component.
var ErrNoComponents = errors.New("grading requires at least one scoring component")

// Final-grade weighting: 60% multiple choice, 40% essay.
const (
	mcWeight    = 0.6
	essayWeight = 0.4
)

// Aggregate combines the component scores into the final grade. With both
// components present the result is the weighted sum; with one, that score
// unchanged; with none, ErrNoComponents.
func Aggregate(mcScore, essayScore *int) (int, error) {
	switch {
	case mcScore != nil && essayScore != nil:
		return int(math.Round(float64(*mcScore)*mcWeight + float64(*essayScore)*essayWeight)), nil
	case mcScore != nil:
		return *mcScore, nil
	case essayScore != nil:
		return *essayScore, nil
	default:
		return 0, ErrNoComponents
	}
}

// GradeLetter maps a 0..100 score to the report-card letter band.
func GradeLetter(score int) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "E"
	}
}
