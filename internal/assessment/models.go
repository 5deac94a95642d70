package assessment

import (
	"time"

	"github.com/openminds/readiness-assessments/internal/scoring"
)

// ScoredResult is the immutable record created once per submission. It is
// addressed by (user id, submission id) and never updated or deleted.
type ScoredResult struct {
	SubmissionID string         `json:"submission_id"`
	Tool         string         `json:"tool"`
	UserID       string         `json:"user_id"`
	Result       scoring.Result `json:"result"`
	SubmittedAt  int64          `json:"submitted_at"` // unix seconds
}

// SubmissionRow is one line of a user's submission history.
type SubmissionRow struct {
	SubmissionID string `json:"submission_id"`
	Date         string `json:"date"` // display label, e.g. "Aug 30, 2026"
	SubmittedAt  int64  `json:"submitted_at"`
}

const dateLabelLayout = "Jan 2, 2006"

func dateLabel(unix int64) string {
	return time.Unix(unix, 0).UTC().Format(dateLabelLayout)
}
