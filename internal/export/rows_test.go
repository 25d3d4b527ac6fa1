package export

import (
	"reflect"
	"testing"
	"time"

	"github.com/koreksi-id/koreksi/internal/grading"
)

func TestBuildRowsHeaderAndValues(t *testing.T) {
	mc, es := 80, 90
	ts := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	results := []grading.Result{
		{
			ExamName: "UTS IPA", ExamDate: "2025-03-10",
			Name: "Siti", StudentID: "12", Class: "XI IPA 1",
			MCScore: &mc, EssayScore: &es, FinalScore: 84, Timestamp: ts,
		},
		{
			ExamName: "UTS IPA", ExamDate: "2025-03-10",
			Name: "Budi", StudentID: "7", Class: "XI IPA 2",
			MCScore: &mc, FinalScore: 80, Timestamp: ts,
		},
	}

	rows := BuildRows(results, "")
	if len(rows) != 3 {
		t.Fatalf("row count = %d, want header + 2", len(rows))
	}
	wantHeader := []string{"Nama Ujian", "Tanggal Ujian", "Nama Siswa", "Nomor Absen", "Kelas", "Nilai PG", "Nilai Esai", "Nilai Akhir", "Timestamp"}
	if !reflect.DeepEqual(rows[0], wantHeader) {
		t.Fatalf("header = %v", rows[0])
	}
	want := []string{"UTS IPA", "2025-03-10", "Siti", "12", "XI IPA 1", "80", "90", "84", "2025-03-10T08:00:00Z"}
	if !reflect.DeepEqual(rows[1], want) {
		t.Fatalf("row 1 = %v, want %v", rows[1], want)
	}
	if rows[2][6] != "" {
		t.Fatalf("absent essay score must be an empty cell, got %q", rows[2][6])
	}
}

func TestBuildRowsClassFilter(t *testing.T) {
	results := []grading.Result{
		{Name: "Siti", Class: "XI IPA 1"},
		{Name: "Budi", Class: "XI IPA 2"},
	}
	rows := BuildRows(results, "XI IPA 2")
	if len(rows) != 2 {
		t.Fatalf("row count = %d, want header + 1", len(rows))
	}
	if rows[1][2] != "Budi" {
		t.Fatalf("filtered row = %v", rows[1])
	}
	if got := BuildRows(results, "all"); len(got) != 3 {
		t.Fatalf("class \"all\" must include everyone, got %d rows", len(got))
	}
}

func TestBuildRowsEmptyResults(t *testing.T) {
	rows := BuildRows(nil, "")
	if len(rows) != 1 {
		t.Fatalf("empty export still carries the header, got %d rows", len(rows))
	}
}
