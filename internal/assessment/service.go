package assessment

import (
	"context"
	"sort"
	"sync"
)

type memoryStore struct {
	mu      sync.RWMutex
	results map[string]ScoredResult // key: userID|submissionID
}

// NewInMemoryStore backs dev runs and tests; production uses NewSQLStore.
func NewInMemoryStore() Store {
	return &memoryStore{results: map[string]ScoredResult{}}
}

func memKey(userID, submissionID string) string { return userID + "|" + submissionID }

func (m *memoryStore) PutResult(_ context.Context, r ScoredResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := memKey(r.UserID, r.SubmissionID)
	if _, ok := m.results[k]; ok {
		return ErrAlreadyScored
	}
	m.results[k] = r
	return nil
}

func (m *memoryStore) GetResult(_ context.Context, userID, submissionID string) (ScoredResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.results[memKey(userID, submissionID)]
	if !ok {
		return ScoredResult{}, ErrNotFound
	}
	return r, nil
}

func (m *memoryStore) ListSubmissions(_ context.Context, opts ListOpts) ([]SubmissionRow, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	matched := make([]ScoredResult, 0)
	for _, r := range m.results {
		if r.UserID == opts.UserID && r.Tool == opts.Tool {
			matched = append(matched, r)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].SubmittedAt < matched[j].SubmittedAt })

	if opts.Offset > len(matched) {
		matched = nil
	} else {
		matched = matched[opts.Offset:]
	}
	if opts.Limit > 0 && opts.Limit < len(matched) {
		matched = matched[:opts.Limit]
	}

	rows := make([]SubmissionRow, 0, len(matched))
	for _, r := range matched {
		rows = append(rows, SubmissionRow{
			SubmissionID: r.SubmissionID,
			Date:         dateLabel(r.SubmittedAt),
			SubmittedAt:  r.SubmittedAt,
		})
	}
	return rows, nil
}
