package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/openminds/readiness-assessments/internal/assessment"
	authmw "github.com/openminds/readiness-assessments/internal/auth/middleware"
	"github.com/openminds/readiness-assessments/internal/catalog"
	"github.com/openminds/readiness-assessments/internal/rbac"
	"github.com/openminds/readiness-assessments/internal/report"
)

// GetReportHandler renders the scored report for one submission.
// A submission id with no persisted record (including someone else's
// submission) yields the explicit no-report outcome, never partial output.
//
// GET /tools/{tool}/submissions/{submissionID}/report
func GetReportHandler(reg *catalog.Registry, store assessment.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		toolID := chi.URLParam(r, "tool")
		submissionID := chi.URLParam(r, "submissionID")

		tool, err := reg.Tool(toolID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		userID := reportSubject(r)
		if userID == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		rec, err := store.GetResult(r.Context(), userID, submissionID)
		if err != nil {
			if errors.Is(err, assessment.ErrNotFound) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusNotFound)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "no report available"})
				return
			}
			http.Error(w, err.Error(), 500)
			return
		}
		if rec.Tool != toolID {
			// scored under a different tool; treat as absent for this one
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "no report available"})
			return
		}

		view := report.Render(tool, rec.Result)
		resp := struct {
			SubmissionID string      `json:"submission_id"`
			SubmittedAt  int64       `json:"submitted_at"`
			Report       report.View `json:"report"`
		}{
			SubmissionID: rec.SubmissionID,
			SubmittedAt:  rec.SubmittedAt,
			Report:       view,
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

// reportSubject resolves whose report is requested: callers with
// report:view-all may name any user via ?user_id=, everyone else gets their
// own.
func reportSubject(r *http.Request) string {
	sub := authmw.SubjectFromContext(r.Context())
	role := rbac.RoleFromContext(r.Context())
	if override := strings.TrimSpace(r.URL.Query().Get("user_id")); override != "" {
		if rbac.NewChecker(nil).Has(role, "report:view-all") {
			return override
		}
	}
	return sub
}
