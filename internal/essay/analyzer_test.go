package essay

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeOracle struct {
	verdict OracleVerdict
	err     error
	calls   int
}

func (f *fakeOracle) Score(context.Context, string) (OracleVerdict, error) {
	f.calls++
	if f.err != nil {
		return OracleVerdict{}, f.err
	}
	return f.verdict, nil
}

func checkWellFormed(t *testing.T, res Result) {
	t.Helper()
	for name, v := range map[string]int{
		"overall":   res.Score,
		"content":   res.Detailed.Content,
		"structure": res.Detailed.Structure,
		"language":  res.Detailed.Language,
		"relevance": res.Detailed.Relevance,
	} {
		if v < 0 || v > 100 {
			t.Fatalf("%s score %d out of range", name, v)
		}
	}
	if res.Feedback == "" {
		t.Fatalf("feedback must not be empty")
	}
	if len(res.Strengths) == 0 || len(res.Weaknesses) == 0 || len(res.Suggestions) == 0 {
		t.Fatalf("feedback lists must be populated")
	}
	if len(res.Keywords) > 5 {
		t.Fatalf("at most 5 keywords, got %d", len(res.Keywords))
	}
}

func TestAnalyzeLocalNeverFails(t *testing.T) {
	a := NewAnalyzer()
	cases := []Request{
		{},
		{Question: "", Answer: ""},
		{Question: "Apa itu fotosintesis?", Answer: ""},
		{Question: "", Answer: "Jawaban tanpa pertanyaan."},
		{Question: "???", Answer: "!!!"},
		{Question: "Jelaskan proses fotosintesis", Answer: strings.Repeat("fotosintesis adalah proses penting karena menghasilkan oksigen. ", 40)},
	}
	for i, req := range cases {
		res, err := a.Analyze(context.Background(), req)
		if err != nil {
			t.Fatalf("case %d: local analysis returned error: %v", i, err)
		}
		checkWellFormed(t, res)
	}
}

func TestAnalyzeLocalOverallIsMeanOfSubScores(t *testing.T) {
	a := NewAnalyzer()
	req := Request{
		Question: "Jelaskan manfaat fotosintesis bagi kehidupan",
		Answer:   "Fotosintesis bermanfaat karena menghasilkan oksigen. Sebagai contoh tumbuhan hijau menyerap karbon dioksida.",
	}
	res, err := a.Analyze(context.Background(), req)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	d := res.Detailed
	want := roundInt(float64(d.Content+d.Structure+d.Language+d.Relevance) / 4)
	if res.Score != want {
		t.Fatalf("overall = %d, want mean %d (detail %+v)", res.Score, want, d)
	}
}

func TestScoreRelevance(t *testing.T) {
	// "jelaskan" and "fotosintesis" are >3 chars; only "fotosintesis"
	// appears in the answer: 1 of 2 question words.
	got := scoreRelevance("jelaskan fotosintesis", "proses fotosintesis itu rumit")
	if got != 50 {
		t.Fatalf("relevance = %d, want 50", got)
	}
	if scoreRelevance("", "apapun") != 0 {
		t.Fatalf("empty question must score 0")
	}
}

func TestScoreLanguagePenalizesMechanicalErrors(t *testing.T) {
	clean := scoreLanguage("Kalimat pertama rapi. Kalimat kedua juga rapi.")
	if clean != 100 {
		t.Fatalf("clean text = %d, want 100", clean)
	}
	// Double space plus a lowercase letter after a period: two patterns in
	// four words.
	messy := scoreLanguage("satu  dua. tiga empat")
	if messy != 50 {
		t.Fatalf("messy text = %d, want 50", messy)
	}
}

func TestScoreStructureMarkers(t *testing.T) {
	base := scoreStructure("Satu paragraf saja tanpa penanda.")
	if base != 15 {
		t.Fatalf("single paragraph = %d, want 15", base)
	}
	full := scoreStructure("Pendahuluan dulu.\n\nIsi di tengah.\n\nKesimpulan di akhir.")
	if full != 15*3+20+20 {
		t.Fatalf("three paragraphs with markers = %d, want 85", full)
	}
}

func TestFeedbackTierBoundaries(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{100, "Jawaban sangat baik dengan analisis mendalam dan struktur yang jelas."},
		{90, "Jawaban sangat baik dengan analisis mendalam dan struktur yang jelas."},
		{89, "Jawaban baik dengan pemahaman yang solid terhadap topik."},
		{80, "Jawaban baik dengan pemahaman yang solid terhadap topik."},
		{79, "Jawaban cukup baik namun memerlukan pengembangan lebih lanjut."},
		{70, "Jawaban cukup baik namun memerlukan pengembangan lebih lanjut."},
		{69, "Jawaban memerlukan perbaikan signifikan dalam konten dan struktur."},
		{0, "Jawaban memerlukan perbaikan signifikan dalam konten dan struktur."},
	}
	for _, tc := range cases {
		if got := localBand(tc.score).feedback; got != tc.want {
			t.Fatalf("band(%d) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestExtractKeywords(t *testing.T) {
	got := ExtractKeywords("Fotosintesis menghasilkan oksigen. Fotosintesis membutuhkan cahaya, dan fotosintesis terjadi pada tumbuhan hijau.")
	if len(got) == 0 || got[0] != "fotosintesis" {
		t.Fatalf("most frequent keyword should lead, got %v", got)
	}
	if len(got) > 5 {
		t.Fatalf("too many keywords: %v", got)
	}
	for _, w := range got {
		if _, stop := stopWords[w]; stop {
			t.Fatalf("stop word leaked into keywords: %q", w)
		}
		if len(w) <= 3 {
			t.Fatalf("short word leaked into keywords: %q", w)
		}
	}
}

func TestExtractKeywordsStopWordsOnly(t *testing.T) {
	got := ExtractKeywords("yang dan di ke dari untuk dengan pada dalam adalah itu ini ada")
	if len(got) != 0 {
		t.Fatalf("stop-word-only text must yield no keywords, got %v", got)
	}
}

func TestExtractKeywordsKeepsConnectives(t *testing.T) {
	// Words like "akan" and "karena" are not stop words and must rank by
	// frequency like any other word.
	got := ExtractKeywords("akan akan akan karena karena tumbuhan")
	want := []string{"akan", "karena", "tumbuhan"}
	if len(got) != len(want) {
		t.Fatalf("keywords = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("keywords = %v, want %v", got, want)
		}
	}
}

func TestAnalyzeOracleFallback(t *testing.T) {
	oracle := &fakeOracle{err: errors.New("status 503")}
	a := NewAnalyzer(WithOracle(oracle))
	req := Request{
		Question: "Jelaskan daur air",
		Answer:   "Air menguap karena panas matahari, lalu mengembun menjadi awan.",
		UseAPI:   true,
	}
	res, err := a.Analyze(context.Background(), req)
	if err != nil {
		t.Fatalf("fallback must not surface an error: %v", err)
	}
	if oracle.calls != 1 {
		t.Fatalf("oracle should be tried once, got %d", oracle.calls)
	}
	checkWellFormed(t, res)

	local, _ := NewAnalyzer().Analyze(context.Background(), Request{Question: req.Question, Answer: req.Answer})
	if res.Score != local.Score || res.Detailed != local.Detailed {
		t.Fatalf("fallback result differs from local-only path: %+v vs %+v", res, local)
	}
}

func TestAnalyzeOracleContentFormula(t *testing.T) {
	answer := strings.Repeat("a", 200) // length bonus 200/10 = 20
	oracle := &fakeOracle{verdict: OracleVerdict{Label: "POSITIVE", Score: 0.6}}
	a := NewAnalyzer(WithOracle(oracle))

	res, err := a.Analyze(context.Background(), Request{Question: "q", Answer: answer, UseAPI: true})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if res.Detailed.Content != 80 {
		t.Fatalf("content = %d, want 0.6*100 + 20 = 80", res.Detailed.Content)
	}
	if res.Score != 80 {
		t.Fatalf("oracle-path overall = %d, want content score", res.Score)
	}
	if res.Feedback != "Jawaban menunjukkan pemahaman yang baik terhadap topik." {
		t.Fatalf("POSITIVE label feedback mismatch: %q", res.Feedback)
	}
}

func TestAnalyzeOracleContentClamped(t *testing.T) {
	answer := strings.Repeat("b", 1000) // bonus 100, sum well over 100
	oracle := &fakeOracle{verdict: OracleVerdict{Label: "NEGATIVE", Score: 0.9}}
	a := NewAnalyzer(WithOracle(oracle))

	res, err := a.Analyze(context.Background(), Request{Question: "q", Answer: answer, UseAPI: true})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if res.Detailed.Content != 100 {
		t.Fatalf("content = %d, want clamp to 100", res.Detailed.Content)
	}
	if res.Feedback != "Jawaban memerlukan pengembangan lebih lanjut." {
		t.Fatalf("non-POSITIVE label feedback mismatch: %q", res.Feedback)
	}
}

func TestAnalyzeOracleZeroConfidenceDefaults(t *testing.T) {
	answer := strings.Repeat("c", 100) // length bonus 10
	oracle := &fakeOracle{verdict: OracleVerdict{Label: "NEGATIVE", Score: 0}}
	a := NewAnalyzer(WithOracle(oracle))

	res, err := a.Analyze(context.Background(), Request{Question: "q", Answer: answer, UseAPI: true})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	// Zero confidence is treated as 0.5: 0.5*100 + 10 = 60.
	if res.Score != 60 {
		t.Fatalf("score = %d, want 60", res.Score)
	}
}

func TestAnalyzeLocalWhenAPIDisabled(t *testing.T) {
	oracle := &fakeOracle{verdict: OracleVerdict{Label: "POSITIVE", Score: 1}}
	a := NewAnalyzer(WithOracle(oracle))
	_, err := a.Analyze(context.Background(), Request{Question: "q", Answer: "jawaban singkat", UseAPI: false})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if oracle.calls != 0 {
		t.Fatalf("oracle must not be consulted when UseAPI is false")
	}
}
