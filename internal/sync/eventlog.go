package syncx

import (
	"context"
	"database/sql"
	"time"
)

const EventSubmissionScored = "SubmissionScored"

type Event struct {
	Offset    int64
	SiteID    string
	Type      string
	Key       string // natural key: submission id
	DataJSON  string
	CreatedAt int64
}

// EventRepo appends to the insert-only event_log table. One event per scored
// submission; nothing consumes the log in-process, it exists for replication
// and audit.
type EventRepo struct {
	db     *sql.DB
	siteID string
}

func NewEventRepo(db *sql.DB, siteID string) *EventRepo {
	if siteID == "" {
		siteID = "local"
	}
	return &EventRepo{db: db, siteID: siteID}
}

func (r *EventRepo) Append(ctx context.Context, e Event) error {
	site := e.SiteID
	if site == "" {
		site = r.siteID
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO event_log (site_id, typ, "key", data, created_at)
		 VALUES ($1,$2,$3,$4,$5)`,
		site, e.Type, e.Key, e.DataJSON, time.Now().Unix())
	return err
}
