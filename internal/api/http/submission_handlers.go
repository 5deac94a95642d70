package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/openminds/readiness-assessments/internal/assessment"
	authmw "github.com/openminds/readiness-assessments/internal/auth/middleware"
	"github.com/openminds/readiness-assessments/internal/catalog"
	"github.com/openminds/readiness-assessments/internal/scoring"
	"github.com/openminds/readiness-assessments/internal/storage"
	syncx "github.com/openminds/readiness-assessments/internal/sync"
)

// SubmitHandler receives a raw form submission for {tool}, scores it and
// persists the immutable result. The raw payload is archived and an event is
// appended; both side channels are best-effort and nil-tolerant (in-memory
// deployments run without them).
//
// POST /hooks/submissions/{tool}
// body: { "entry_id": "123", "answers": { "<field key>": <number|string>, ... } }
func SubmitHandler(reg *catalog.Registry, store assessment.Store, blobs storage.BlobStore, events *syncx.EventRepo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		toolID := chi.URLParam(r, "tool")
		tool, err := reg.Tool(toolID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		fields, err := reg.Fields(toolID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "read body", 400)
			return
		}
		var req struct {
			EntryID string                 `json:"entry_id"`
			Answers map[string]interface{} `json:"answers"`
		}
		if err := json.Unmarshal(body, &req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		if req.EntryID == "" {
			req.EntryID = uuid.NewString()
		}

		userID := authmw.SubjectFromContext(r.Context())
		if userID == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		res, err := scoring.Score(tool, fields, req.Answers)
		if err != nil {
			// catalog/field-map misconfiguration; nothing the caller can fix
			http.Error(w, err.Error(), 500)
			return
		}

		rec := assessment.ScoredResult{
			SubmissionID: req.EntryID,
			Tool:         toolID,
			UserID:       userID,
			Result:       res,
			SubmittedAt:  time.Now().Unix(),
		}
		if err := store.PutResult(r.Context(), rec); err != nil {
			if errors.Is(err, assessment.ErrAlreadyScored) {
				http.Error(w, err.Error(), http.StatusConflict)
				return
			}
			http.Error(w, err.Error(), 500)
			return
		}

		if blobs != nil {
			key := fmt.Sprintf("submissions/%s/%s/%s.json", toolID, userID, req.EntryID)
			if _, err := blobs.Put(key, bytes.NewReader(body)); err != nil {
				log.Printf("archive %s: %v", key, err)
			}
		}
		if events != nil {
			data, _ := json.Marshal(map[string]interface{}{
				"tool":          toolID,
				"user_id":       userID,
				"overall_score": res.OverallScore,
			})
			if err := events.Append(r.Context(), syncx.Event{
				Type:     syncx.EventSubmissionScored,
				Key:      req.EntryID,
				DataJSON: string(data),
			}); err != nil {
				log.Printf("event append %s: %v", req.EntryID, err)
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(rec)
	}
}
