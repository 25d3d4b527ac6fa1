package essay

// Feedback is templated prose looked up by overall-score band, not computed
// from the sub-scores. The band boundaries (90, 80, 70) must stay fixed to
// keep behavior reproducible.

type feedbackBand struct {
	min         int
	feedback    string
	strengths   []string
	weaknesses  []string
	suggestions []string
}

// localBands is the four-tier table used by the fully local pipeline.
var localBands = []feedbackBand{
	{
		min:      90,
		feedback: "Jawaban sangat baik dengan analisis mendalam dan struktur yang jelas.",
		strengths: []string{
			"Analisis mendalam terhadap topik",
			"Struktur jawaban yang terorganisir dengan baik",
			"Penggunaan bahasa yang tepat dan efektif",
		},
		weaknesses: []string{
			"Beberapa poin minor dapat dikembangkan lebih lanjut",
		},
		suggestions: []string{
			"Tambahkan contoh konkret untuk memperkuat argumen",
		},
	},
	{
		min:      80,
		feedback: "Jawaban baik dengan pemahaman yang solid terhadap topik.",
		strengths: []string{
			"Pemahaman yang baik terhadap topik",
			"Argumen yang cukup terstruktur",
		},
		weaknesses: []string{
			"Beberapa bagian kurang dikembangkan",
			"Transisi antar paragraf dapat ditingkatkan",
		},
		suggestions: []string{
			"Kembangkan poin-poin utama dengan lebih detail",
			"Perbaiki struktur paragraf untuk alur yang lebih baik",
		},
	},
	{
		min:      70,
		feedback: "Jawaban cukup baik namun memerlukan pengembangan lebih lanjut.",
		strengths: []string{
			"Ide dasar yang relevan dengan pertanyaan",
			"Beberapa poin penting telah diidentifikasi",
		},
		weaknesses: []string{
			"Kurang pengembangan ide",
			"Struktur jawaban kurang terorganisir",
			"Beberapa kesalahan tata bahasa",
		},
		suggestions: []string{
			"Kembangkan argumen dengan lebih mendalam",
			"Perbaiki struktur jawaban dengan paragraf yang lebih jelas",
			"Perhatikan tata bahasa dan ejaan",
		},
	},
	{
		min:      0,
		feedback: "Jawaban memerlukan perbaikan signifikan dalam konten dan struktur.",
		strengths: []string{
			"Upaya untuk menjawab pertanyaan",
		},
		weaknesses: []string{
			"Kurangnya pemahaman terhadap topik",
			"Struktur jawaban tidak jelas",
			"Banyak kesalahan tata bahasa dan ejaan",
		},
		suggestions: []string{
			"Pelajari kembali materi terkait topik",
			"Buat outline sebelum menulis jawaban",
			"Perhatikan tata bahasa dan ejaan",
		},
	},
}

// oracleBands is the simplified two-tier table for the AI-assisted path.
var oracleBands = []feedbackBand{
	{
		min: 80,
		strengths: []string{
			"Pemahaman yang baik terhadap topik",
			"Argumen yang cukup terstruktur",
		},
		weaknesses: []string{
			"Beberapa bagian kurang dikembangkan",
		},
		suggestions: []string{
			"Kembangkan poin-poin utama",
		},
	},
	{
		min: 0,
		strengths: []string{
			"Upaya menjawab pertanyaan",
		},
		weaknesses: []string{
			"Kurang pengembangan ide",
			"Struktur jawaban kurang jelas",
		},
		suggestions: []string{
			"Pelajari kembali materi terkait",
		},
	},
}

func bandFor(table []feedbackBand, score int) feedbackBand {
	for _, b := range table {
		if score >= b.min {
			return b
		}
	}
	return table[len(table)-1]
}

func localBand(score int) feedbackBand  { return bandFor(localBands, score) }
func oracleBand(score int) feedbackBand { return bandFor(oracleBands, score) }
