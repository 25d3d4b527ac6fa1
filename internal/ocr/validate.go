package ocr

import "regexp"

// Validation is the verdict on an extracted answer string.
type Validation struct {
	IsValid     bool     `json:"is_valid"`
	Error       string   `json:"error,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// Extracted sequences must hold between MinAnswers and MaxAnswers letters.
const (
	MinAnswers = 5
	MaxAnswers = 100
)

var reOnlyAnswerLetters = regexp.MustCompile(`^[ABCDEabcde]*$`)

// ValidateAnswers checks an extracted answer string. Rules run in order and
// the first failing rule wins. Pure function: same input, same verdict.
func ValidateAnswers(answers string) Validation {
	if answers == "" {
		return Validation{
			Error:       "Tidak ada jawaban yang terdeteksi",
			Suggestions: []string{"Pastikan gambar jelas dan tidak blur", "Coba sesuaikan pencahayaan"},
		}
	}
	if !reOnlyAnswerLetters.MatchString(answers) {
		return Validation{
			Error:       "Format jawaban tidak valid",
			Suggestions: []string{"Pastikan hanya huruf A-E yang ada di lembar jawaban"},
		}
	}
	if len(answers) < MinAnswers {
		return Validation{
			Error:       "Jumlah jawaban terlalu sedikit",
			Suggestions: []string{"Pastikan semua jawaban terlihat dalam gambar"},
		}
	}
	if len(answers) > MaxAnswers {
		return Validation{
			Error:       "Jumlah jawaban terlalu banyak",
			Suggestions: []string{"Pastikan gambar hanya berisi lembar jawaban"},
		}
	}
	return Validation{IsValid: true}
}
