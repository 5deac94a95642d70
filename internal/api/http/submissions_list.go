package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/openminds/readiness-assessments/internal/assessment"
	authmw "github.com/openminds/readiness-assessments/internal/auth/middleware"
	"github.com/openminds/readiness-assessments/internal/catalog"
	"github.com/openminds/readiness-assessments/internal/rbac"
)

// GET /tools/{tool}/submissions?limit=50&offset=0
// Members see only their own submissions; callers with submission:list-all
// may name another user via ?user_id=.
func ListSubmissionsHandler(reg *catalog.Registry, store assessment.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		toolID := chi.URLParam(r, "tool")
		if _, err := reg.Tool(toolID); err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		role := rbac.RoleFromContext(r.Context())
		userID := authmw.SubjectFromContext(r.Context())
		if override := strings.TrimSpace(r.URL.Query().Get("user_id")); override != "" {
			if rbac.NewChecker(nil).Has(role, "submission:list-all") {
				userID = override
			}
		}
		if userID == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		rows, err := store.ListSubmissions(r.Context(), assessment.ListOpts{
			UserID: userID,
			Tool:   toolID,
			Limit:  parseIntDefault(r.URL.Query().Get("limit"), 50),
			Offset: parseIntDefault(r.URL.Query().Get("offset"), 0),
		})
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(rows)
	}
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil && v >= 0 {
		return v
	}
	return def
}
