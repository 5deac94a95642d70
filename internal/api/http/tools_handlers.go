package http

import (
	"encoding/json"
	"net/http"

	"github.com/openminds/readiness-assessments/internal/catalog"
)

type sectionSummary struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Count     int     `json:"count"`
	Benchmark float64 `json:"benchmark"`
}

type toolSummary struct {
	ID       string           `json:"id"`
	Label    string           `json:"label"`
	Sections []sectionSummary `json:"sections"`
}

// GET /tools
func ListToolsHandler(reg *catalog.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tools := reg.Tools()
		out := make([]toolSummary, 0, len(tools))
		for _, t := range tools {
			ts := toolSummary{ID: t.ID, Label: t.Label}
			for _, s := range t.Sections {
				ts.Sections = append(ts.Sections, sectionSummary{
					ID: s.ID, Name: s.Name, Count: s.Count, Benchmark: s.Benchmark,
				})
			}
			out = append(out, ts)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(out)
	}
}
