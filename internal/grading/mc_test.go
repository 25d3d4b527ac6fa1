package grading

import "testing"

func TestScoreMCShortStudentResponse(t *testing.T) {
	score, details := ScoreMC("ABCD", "AB")
	if score != 50 {
		t.Fatalf("score = %d, want 50", score)
	}
	if len(details) != 2 {
		t.Fatalf("only 2 positions should be scored, got %d", len(details))
	}
	for i, d := range details {
		if !d.IsCorrect {
			t.Fatalf("position %d should match", i+1)
		}
	}
}

func TestScoreMCExactness(t *testing.T) {
	score, _ := ScoreMC("ABCDE", "ABCDE")
	if score != 100 {
		t.Fatalf("identical answers: score = %d, want 100", score)
	}
	score, details := ScoreMC("ABCDE", "EDCBA")
	if score != 20 {
		t.Fatalf("reversed answers: score = %d, want 20", score)
	}
	if !details[2].IsCorrect {
		t.Fatalf("only position 3 (C) should match")
	}
	for _, i := range []int{0, 1, 3, 4} {
		if details[i].IsCorrect {
			t.Fatalf("position %d should not match", i+1)
		}
	}
}

func TestScoreMCCaseInsensitive(t *testing.T) {
	score, details := ScoreMC("abcde", "ABCDE")
	if score != 100 {
		t.Fatalf("case-folded comparison: score = %d, want 100", score)
	}
	if details[0].Correct != "A" || details[0].Student != "A" {
		t.Fatalf("details should carry upper-cased letters: %+v", details[0])
	}
}

func TestScoreMCPerItemDetail(t *testing.T) {
	_, details := ScoreMC("AB", "AC")
	want := []ItemDetail{
		{Number: 1, Correct: "A", Student: "A", IsCorrect: true},
		{Number: 2, Correct: "B", Student: "C", IsCorrect: false},
	}
	if len(details) != len(want) {
		t.Fatalf("detail count = %d, want %d", len(details), len(want))
	}
	for i := range want {
		if details[i] != want[i] {
			t.Fatalf("detail[%d] = %+v, want %+v", i, details[i], want[i])
		}
	}
}

func TestScoreMCEmptyKey(t *testing.T) {
	score, details := ScoreMC("", "ABCDE")
	if score != 0 || details != nil {
		t.Fatalf("empty key: got %d, %v", score, details)
	}
}

func TestScoreMCLongerStudentResponse(t *testing.T) {
	score, details := ScoreMC("AB", "ABCDE")
	if score != 100 {
		t.Fatalf("extra answers beyond the key are ignored: score = %d", score)
	}
	if len(details) != 2 {
		t.Fatalf("detail count = %d, want 2", len(details))
	}
}
