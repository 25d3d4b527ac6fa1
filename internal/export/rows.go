package export

import (
	"strconv"
	"time"

	"github.com/koreksi-id/koreksi/internal/grading"
)

// Header is the fixed first row of every export. Column order is part of
// the contract with the downstream spreadsheet.
var Header = []string{
	"Nama Ujian", "Tanggal Ujian", "Nama Siswa", "Nomor Absen", "Kelas",
	"Nilai PG", "Nilai Esai", "Nilai Akhir", "Timestamp",
}

// BuildRows renders grading results into spreadsheet rows, header first.
// class "" or "all" includes every class. Absent component scores become
// empty cells.
func BuildRows(results []grading.Result, class string) [][]string {
	rows := make([][]string, 0, len(results)+1)
	rows = append(rows, Header)
	for _, r := range results {
		if class != "" && class != "all" && r.Class != class {
			continue
		}
		rows = append(rows, []string{
			r.ExamName,
			r.ExamDate,
			r.Name,
			r.StudentID,
			r.Class,
			optScore(r.MCScore),
			optScore(r.EssayScore),
			strconv.Itoa(r.FinalScore),
			r.Timestamp.Format(time.RFC3339),
		})
	}
	return rows
}

func optScore(s *int) string {
	if s == nil {
		return ""
	}
	return strconv.Itoa(*s)
}
