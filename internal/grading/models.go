package grading

import (
	"time"

	"github.com/koreksi-id/koreksi/internal/essay"
)

// Request carries everything needed to grade one student's exam.
type Request struct {
	ExamName string `json:"exam_name,omitempty"`
	ExamDate string `json:"exam_date,omitempty"`

	Name      string `json:"name"`
	StudentID string `json:"student_id"` // nomor absen
	Class     string `json:"class"`

	AnswerKey string `json:"answer_key,omitempty"` // MC key, letters A-E
	MCAnswers string `json:"mc_answers,omitempty"`

	EssayQuestion string `json:"essay_question,omitempty"`
	EssayAnswer   string `json:"essay_answer,omitempty"`
	EssayRubric   string `json:"essay_rubric,omitempty"`
	UseAPI        bool   `json:"use_api,omitempty"`
}

// Result is the finished grade for one student. Component scores are nil
// when that component was absent from the request.
type Result struct {
	ID       string `json:"id"`
	ExamName string `json:"exam_name,omitempty"`
	ExamDate string `json:"exam_date,omitempty"`

	Name      string `json:"name"`
	StudentID string `json:"student_id"`
	Class     string `json:"class"`

	MCScore   *int         `json:"mc_score"`
	MCDetails []ItemDetail `json:"mc_details,omitempty"`

	EssayScore    *int          `json:"essay_score"`
	EssayAnalysis *essay.Result `json:"essay_analysis,omitempty"`

	FinalScore int       `json:"final_score"`
	Timestamp  time.Time `json:"timestamp"`
}
