package assessment

import (
	"context"
	"errors"
)

// ErrNotFound is the "no report" outcome: no scored result exists for the
// requested (user, submission) pair.
var ErrNotFound = errors.New("scored result not found")

// ErrAlreadyScored guards the insert-only lifecycle: a submission id is
// scored exactly once per user.
var ErrAlreadyScored = errors.New("submission already scored")

type ListOpts struct {
	UserID string // required
	Tool   string // required
	Limit  int
	Offset int
}

type Store interface {
	// PutResult inserts a new scored result; it never overwrites.
	PutResult(ctx context.Context, r ScoredResult) error
	GetResult(ctx context.Context, userID, submissionID string) (ScoredResult, error)
	// ListSubmissions returns the user's submissions for a tool, oldest first.
	ListSubmissions(ctx context.Context, opts ListOpts) ([]SubmissionRow, error)
}
