package essay

import (
	"context"
	"log"
	"math"
	"regexp"
	"strings"
)

// Request describes one essay-analysis operation.
type Request struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Rubric   string `json:"rubric,omitempty"`
	UseAPI   bool   `json:"use_api,omitempty"`
}

// Detailed carries the four independent sub-scores, each in 0..100.
type Detailed struct {
	Content   int `json:"content"`
	Structure int `json:"structure"`
	Language  int `json:"language"`
	Relevance int `json:"relevance"`
}

// Result is the immutable outcome of a single analysis.
type Result struct {
	Score       int      `json:"score"`
	Feedback    string   `json:"feedback"`
	Strengths   []string `json:"strengths"`
	Weaknesses  []string `json:"weaknesses"`
	Suggestions []string `json:"suggestions"`
	Keywords    []string `json:"keywords"`
	Detailed    Detailed `json:"detailed_analysis"`
}

// Analyzer scores essays with the local heuristic pipeline, optionally
// delegating the content dimension to an external oracle.
type Analyzer struct {
	oracle Oracle
}

type Option func(*Analyzer)

// WithOracle enables the external AI-assisted path for requests that ask
// for it. A nil oracle keeps the analyzer fully local.
func WithOracle(o Oracle) Option { return func(a *Analyzer) { a.oracle = o } }

func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Analyze scores one essay. The oracle path is best-effort: any oracle
// failure falls back to the local pipeline, which never fails for
// well-formed string inputs.
func (a *Analyzer) Analyze(ctx context.Context, req Request) (Result, error) {
	if req.UseAPI && a.oracle != nil {
		res, err := a.analyzeWithOracle(ctx, req)
		if err == nil {
			return res, nil
		}
		log.Printf("essay: oracle analysis failed, falling back to local: %v", err)
	}
	return a.analyzeLocal(req), nil
}

func (a *Analyzer) analyzeLocal(req Request) Result {
	detailed := Detailed{
		Content:   scoreContent(req.Answer),
		Structure: scoreStructure(req.Answer),
		Language:  scoreLanguage(req.Answer),
		Relevance: scoreRelevance(req.Question, req.Answer),
	}
	overall := roundInt(float64(detailed.Content+detailed.Structure+detailed.Language+detailed.Relevance) / 4)

	band := localBand(overall)
	return Result{
		Score:       overall,
		Feedback:    band.feedback,
		Strengths:   append([]string(nil), band.strengths...),
		Weaknesses:  append([]string(nil), band.weaknesses...),
		Suggestions: append([]string(nil), band.suggestions...),
		Keywords:    ExtractKeywords(req.Answer),
		Detailed:    detailed,
	}
}

func (a *Analyzer) analyzeWithOracle(ctx context.Context, req Request) (Result, error) {
	verdict, err := a.oracle.Score(ctx, buildPrompt(req))
	if err != nil {
		return Result{}, err
	}

	// Confidence scaled to 0..100 plus a length bonus, clamped after the
	// sum. Zero or absent confidence counts as 0.5.
	confidence := verdict.Score
	if confidence == 0 {
		confidence = 0.5
	}
	content := clampRound(confidence*100 + float64(len(req.Answer))/10)

	feedback := "Jawaban memerlukan pengembangan lebih lanjut."
	if verdict.Label == "POSITIVE" {
		feedback = "Jawaban menunjukkan pemahaman yang baik terhadap topik."
	}

	band := oracleBand(content)
	return Result{
		Score:       content,
		Feedback:    feedback,
		Strengths:   append([]string(nil), band.strengths...),
		Weaknesses:  append([]string(nil), band.weaknesses...),
		Suggestions: append([]string(nil), band.suggestions...),
		Keywords:    ExtractKeywords(req.Answer),
		Detailed: Detailed{
			Content:   content,
			Structure: scoreStructure(req.Answer),
			Language:  scoreLanguage(req.Answer),
			Relevance: scoreRelevance(req.Question, req.Answer),
		},
	}, nil
}

func buildPrompt(req Request) string {
	var b strings.Builder
	b.WriteString("Pertanyaan: " + req.Question + "\n")
	b.WriteString("Jawaban: " + req.Answer + "\n")
	if req.Rubric != "" {
		b.WriteString("Rubrik: " + req.Rubric + "\n")
	}
	b.WriteString("\nAnalisis jawaban esai di atas dan berikan:\n")
	b.WriteString("1. Skor keseluruhan (0-100)\n")
	b.WriteString("2. Umpan balik umum\n")
	b.WriteString("3. Daftar kekuatan\n")
	b.WriteString("4. Daftar kelemahan\n")
	b.WriteString("5. Saran perbaikan\n")
	b.WriteString("6. Kata kunci penting\n")
	b.WriteString("7. Analisis detail untuk konten, struktur, bahasa, dan relevansi\n")
	return b.String()
}

// --- sub-scores ---

var (
	reSentenceEnd = regexp.MustCompile(`[.!?]+`)
	reParagraph   = regexp.MustCompile(`\n\s*\n`)

	// Mechanical error patterns; each counts at most once.
	languageErrorPatterns = []*regexp.Regexp{
		regexp.MustCompile(`[a-z][A-Z]`),     // case break with no separator
		regexp.MustCompile(`[.!?]\s*[a-z]`),  // missing capital after sentence end
		regexp.MustCompile(`,\s*[A-Z]`),      // capital right after a comma
		regexp.MustCompile(`\s{2,}`),         // run of spaces
	}
)

func scoreContent(answer string) int {
	words := strings.Fields(answer)
	sentences := reSentenceEnd.Split(answer, -1)
	sentenceCount := len(sentences)
	if sentenceCount == 0 {
		sentenceCount = 1
	}
	avgWordsPerSentence := float64(len(words)) / float64(sentenceCount)

	score := float64(len(words))/10 + avgWordsPerSentence*2
	if strings.Contains(answer, "karena") {
		score += 10 // causal reasoning
	}
	if strings.Contains(answer, "contoh") {
		score += 10 // exemplification
	}
	if strings.Contains(answer, "menurut") {
		score += 5 // citation/reference
	}
	return clampRound(score)
}

func scoreStructure(answer string) int {
	paragraphs := len(reParagraph.Split(answer, -1))
	lower := strings.ToLower(answer)

	score := float64(paragraphs * 15)
	if strings.Contains(lower, "pendahuluan") || strings.Contains(lower, "pertama") {
		score += 20
	}
	if strings.Contains(lower, "kesimpulan") || strings.Contains(lower, "akhirnya") {
		score += 20
	}
	return clampRound(score)
}

func scoreLanguage(answer string) int {
	wordCount := len(strings.Fields(answer))
	if wordCount == 0 {
		return 100
	}
	errorCount := 0
	for _, p := range languageErrorPatterns {
		if p.MatchString(answer) {
			errorCount++
		}
	}
	errorRate := float64(errorCount) / float64(wordCount)
	return clampRound(100 - errorRate*100)
}

func scoreRelevance(question, answer string) int {
	questionWords := strings.Fields(strings.ToLower(question))
	if len(questionWords) == 0 {
		return 0
	}
	answerWords := map[string]struct{}{}
	for _, w := range strings.Fields(strings.ToLower(answer)) {
		answerWords[w] = struct{}{}
	}
	matched := 0
	for _, w := range questionWords {
		if len(w) > 3 {
			if _, ok := answerWords[w]; ok {
				matched++
			}
		}
	}
	return clampRound(float64(matched) / float64(len(questionWords)) * 100)
}

func clampRound(v float64) int {
	if v < 0 {
		v = 0
	}
	if v > 100 {
		v = 100
	}
	return roundInt(v)
}

func roundInt(v float64) int { return int(math.Round(v)) }
