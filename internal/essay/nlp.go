package essay

import (
	"fmt"
	"regexp"
	"strings"
)

// Lightweight text utilities surfaced alongside analysis results.

var (
	reTerminalPunct = regexp.MustCompile(`[.!?]$`)
	reLowerStart    = regexp.MustCompile(`[.!?]\s+[a-z]`)
	reWord          = regexp.MustCompile(`\b[a-z]+\b`)
	reVowelGroup    = regexp.MustCompile(`[aiueo]+`)
)

// CountWords counts whitespace-separated words.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// CheckGrammar reports simple mechanical issues as user-facing Indonesian
// messages. It is advisory only and does not affect scoring.
func CheckGrammar(text string) []string {
	var issues []string

	if w := firstRepeatedWord(text); w != "" {
		issues = append(issues, fmt.Sprintf("Kata berulang ditemukan: %q", w))
	}
	if strings.TrimSpace(text) != "" && !reTerminalPunct.MatchString(strings.TrimSpace(text)) {
		issues = append(issues, "Paragraf tidak diakhiri dengan tanda baca")
	}
	for i, sentence := range reSentenceEnd.Split(text, -1) {
		if n := len(strings.Fields(sentence)); n > 30 {
			issues = append(issues, fmt.Sprintf("Kalimat %d terlalu panjang (%d kata)", i+1, n))
		}
	}
	if reLowerStart.MatchString(text) {
		issues = append(issues, "Beberapa kalimat tidak dimulai dengan huruf kapital")
	}
	return issues
}

func firstRepeatedWord(text string) string {
	words := strings.Fields(text)
	for i := 1; i < len(words); i++ {
		prev := strings.Trim(strings.ToLower(words[i-1]), ".,!?;:")
		cur := strings.Trim(strings.ToLower(words[i]), ".,!?;:")
		if prev != "" && prev == cur {
			return words[i-1] + " " + words[i]
		}
	}
	return ""
}

// ReadabilityScore is a Flesch reading-ease variant adapted for Indonesian,
// clamped to 0..100. Syllables are estimated from vowel groups.
func ReadabilityScore(text string) float64 {
	words := CountWords(text)
	if words == 0 {
		return 0
	}
	sentences := 0
	for _, s := range reSentenceEnd.Split(text, -1) {
		if strings.TrimSpace(s) != "" {
			sentences++
		}
	}
	if sentences == 0 {
		sentences = 1
	}
	syllables := estimateSyllables(text)

	score := 206.835 - 1.015*(float64(words)/float64(sentences)) - 84.6*(float64(syllables)/float64(words))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func estimateSyllables(text string) int {
	total := 0
	for _, w := range reWord.FindAllString(strings.ToLower(text), -1) {
		groups := len(reVowelGroup.FindAllString(w, -1))
		if groups < 1 {
			groups = 1
		}
		total += groups
	}
	return total
}
