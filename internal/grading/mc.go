package grading

import (
	"math"
	"strings"
)

// ItemDetail records one compared multiple-choice position.
type ItemDetail struct {
	Number    int    `json:"number"` // 1-based
	Correct   string `json:"correct"`
	Student   string `json:"student"`
	IsCorrect bool   `json:"is_correct"`
}

// ScoreMC compares student answers against the key position-by-position up
// to the shorter length; positions beyond it are not scored. The score
// denominator is always the key length, so a truncated response is
// implicitly penalized. Both inputs are upper-cased before comparison.
func ScoreMC(answerKey, studentAnswers string) (int, []ItemDetail) {
	key := strings.ToUpper(answerKey)
	answers := strings.ToUpper(studentAnswers)
	if len(key) == 0 {
		return 0, nil
	}

	n := len(key)
	if len(answers) < n {
		n = len(answers)
	}

	correct := 0
	details := make([]ItemDetail, 0, n)
	for i := 0; i < n; i++ {
		match := key[i] == answers[i]
		if match {
			correct++
		}
		details = append(details, ItemDetail{
			Number:    i + 1,
			Correct:   string(key[i]),
			Student:   string(answers[i]),
			IsCorrect: match,
		})
	}

	score := int(math.Round(float64(correct) / float64(len(key)) * 100))
	return score, details
}
