package assessment

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

type SQLStore struct {
	db     *sql.DB
	driver string // "sqlite" or "postgres"
}

func NewSQLStore(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, driver: driver}
}

func (s *SQLStore) PutResult(ctx context.Context, r ScoredResult) error {
	blob, err := json.Marshal(r.Result)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO scored_results (user_id, submission_id, tool, result_json, submitted_at)
		 VALUES ($1,$2,$3,$4,$5)`,
		r.UserID, r.SubmissionID, r.Tool, string(blob), r.SubmittedAt)
	if err != nil && isUniqueViolation(err) {
		return ErrAlreadyScored
	}
	return err
}

func (s *SQLStore) GetResult(ctx context.Context, userID, submissionID string) (ScoredResult, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT user_id, submission_id, tool, result_json, submitted_at
		 FROM scored_results WHERE user_id=$1 AND submission_id=$2`,
		userID, submissionID)

	var r ScoredResult
	var blob string
	if err := row.Scan(&r.UserID, &r.SubmissionID, &r.Tool, &blob, &r.SubmittedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ScoredResult{}, ErrNotFound
		}
		return ScoredResult{}, err
	}
	if err := json.Unmarshal([]byte(blob), &r.Result); err != nil {
		return ScoredResult{}, fmt.Errorf("decode result %s: %w", r.SubmissionID, err)
	}
	if r.Result.EntryAnswers == nil {
		r.Result.EntryAnswers = map[string]map[string]float64{}
	}
	if r.Result.SectionScores == nil {
		r.Result.SectionScores = map[string]float64{}
	}
	return r, nil
}

func (s *SQLStore) ListSubmissions(ctx context.Context, opts ListOpts) ([]SubmissionRow, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT submission_id, submitted_at FROM scored_results
		 WHERE user_id=$1 AND tool=$2
		 ORDER BY submitted_at ASC
		 LIMIT $3 OFFSET $4`,
		opts.UserID, opts.Tool, limit, opts.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]SubmissionRow, 0)
	for rows.Next() {
		var r SubmissionRow
		if err := rows.Scan(&r.SubmissionID, &r.SubmittedAt); err != nil {
			return nil, err
		}
		r.Date = dateLabel(r.SubmittedAt)
		out = append(out, r)
	}
	return out, rows.Err()
}

func isUniqueViolation(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || // sqlite
		strings.Contains(msg, "duplicate key") // postgres
}
