package grading

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log"
	"time"

	"github.com/koreksi-id/koreksi/internal/essay"
)

// defaultRubric is used when the teacher supplies no rubric text.
const defaultRubric = "Evaluate based on content, grammar, and relevance to the question."

// fallbackEssayScore is awarded when essay analysis fails entirely.
const fallbackEssayScore = 70

// EssayAnalyzer is the essay-scoring collaborator.
type EssayAnalyzer interface {
	Analyze(ctx context.Context, req essay.Request) (essay.Result, error)
}

// ResultStore persists finished grades.
type ResultStore interface {
	SaveResult(ctx context.Context, r Result) error
}

// Service grades one student end-to-end: multiple-choice comparison, essay
// analysis and weighted aggregation.
type Service struct {
	analyzer EssayAnalyzer
	store    ResultStore
	now      func() time.Time
}

func NewService(analyzer EssayAnalyzer, store ResultStore) *Service {
	return &Service{analyzer: analyzer, store: store, now: time.Now}
}

// Grade computes a Result for req and persists it. A request with neither
// component returns ErrNoComponents.
func (s *Service) Grade(ctx context.Context, req Request) (Result, error) {
	hasMC := req.AnswerKey != "" && req.MCAnswers != ""
	hasEssay := req.EssayQuestion != "" && req.EssayAnswer != ""
	if !hasMC && !hasEssay {
		return Result{}, ErrNoComponents
	}

	res := Result{
		ID:        newID(),
		ExamName:  req.ExamName,
		ExamDate:  req.ExamDate,
		Name:      req.Name,
		StudentID: req.StudentID,
		Class:     req.Class,
		Timestamp: s.now().UTC(),
	}

	if hasMC {
		score, details := ScoreMC(req.AnswerKey, req.MCAnswers)
		res.MCScore = &score
		res.MCDetails = details
	}

	if hasEssay {
		rubric := req.EssayRubric
		if rubric == "" {
			rubric = defaultRubric
		}
		analysis, err := s.analyzer.Analyze(ctx, essay.Request{
			Question: req.EssayQuestion,
			Answer:   req.EssayAnswer,
			Rubric:   rubric,
			UseAPI:   req.UseAPI,
		})
		if err != nil {
			log.Printf("grading: essay analysis failed, using fallback score: %v", err)
			score := fallbackEssayScore
			res.EssayScore = &score
		} else {
			score := analysis.Score
			res.EssayScore = &score
			res.EssayAnalysis = &analysis
		}
	}

	final, err := Aggregate(res.MCScore, res.EssayScore)
	if err != nil {
		return Result{}, err
	}
	res.FinalScore = final

	if s.store != nil {
		if err := s.store.SaveResult(ctx, res); err != nil {
			return Result{}, err
		}
	}
	return res, nil
}

func newID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return time.Now().Format("20060102150405.000000000")
	}
	return hex.EncodeToString(b)
}
