package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/koreksi-id/koreksi/internal/essay"
	"github.com/koreksi-id/koreksi/internal/grading"
)

type SQLStore struct {
	db     *sql.DB
	driver string // "sqlite" or "postgres"
}

func NewSQLStore(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, driver: driver}
}

func (s *SQLStore) SaveResult(ctx context.Context, r grading.Result) error {
	var detailsJSON, analysisJSON string
	if r.MCDetails != nil {
		b, err := json.Marshal(r.MCDetails)
		if err != nil {
			return err
		}
		detailsJSON = string(b)
	}
	if r.EssayAnalysis != nil {
		b, err := json.Marshal(r.EssayAnalysis)
		if err != nil {
			return err
		}
		analysisJSON = string(b)
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO grading_results
		(id,exam_name,exam_date,name,student_id,class,mc_score,mc_details_json,essay_score,essay_analysis_json,final_score,created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		r.ID, r.ExamName, r.ExamDate, r.Name, r.StudentID, r.Class,
		r.MCScore, detailsJSON, r.EssayScore, analysisJSON, r.FinalScore, r.Timestamp.Unix())
	return err
}

func (s *SQLStore) GetResult(ctx context.Context, id string) (grading.Result, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id,exam_name,exam_date,name,student_id,class,mc_score,mc_details_json,essay_score,essay_analysis_json,final_score,created_at
		FROM grading_results WHERE id=$1`, id)
	r, err := scanResult(row)
	if errors.Is(err, sql.ErrNoRows) {
		return grading.Result{}, ErrNotFound
	}
	return r, err
}

func (s *SQLStore) ListResults(ctx context.Context, class string) ([]grading.Result, error) {
	q := `SELECT id,exam_name,exam_date,name,student_id,class,mc_score,mc_details_json,essay_score,essay_analysis_json,final_score,created_at
		FROM grading_results`
	args := []any{}
	if class != "" && class != "all" {
		q += ` WHERE class=$1`
		args = append(args, class)
	}
	q += ` ORDER BY created_at DESC, id`

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []grading.Result
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanResult(row scanner) (grading.Result, error) {
	var r grading.Result
	var detailsJSON, analysisJSON string
	var createdAt int64
	if err := row.Scan(&r.ID, &r.ExamName, &r.ExamDate, &r.Name, &r.StudentID, &r.Class,
		&r.MCScore, &detailsJSON, &r.EssayScore, &analysisJSON, &r.FinalScore, &createdAt); err != nil {
		return grading.Result{}, err
	}
	if detailsJSON != "" {
		if err := json.Unmarshal([]byte(detailsJSON), &r.MCDetails); err != nil {
			return grading.Result{}, err
		}
	}
	if analysisJSON != "" {
		var a essay.Result
		if err := json.Unmarshal([]byte(analysisJSON), &a); err != nil {
			return grading.Result{}, err
		}
		r.EssayAnalysis = &a
	}
	r.Timestamp = time.Unix(createdAt, 0).UTC()
	return r, nil
}
