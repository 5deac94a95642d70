package report

import (
	"fmt"
	"strconv"

	"github.com/openminds/readiness-assessments/internal/catalog"
	"github.com/openminds/readiness-assessments/internal/scoring"
)

// NoRecommendations is shown for questions answered at the top of the scale.
const NoRecommendations = "No recommendations."

type RowKind string

const (
	RowHeader     RowKind = "header"
	RowSubheading RowKind = "subheading"
	RowData       RowKind = "data"
)

type Row struct {
	Kind           RowKind `json:"kind"`
	Name           string  `json:"name"`
	Score          string  `json:"score,omitempty"`          // header: "43.75%", data: "3 / 4"
	Recommendation string  `json:"recommendation,omitempty"` // data rows only
}

type SectionView struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Score     string  `json:"score"`
	Benchmark float64 `json:"benchmark"`
	Rows      []Row   `json:"rows"`
}

// Chart feeds a grouped bar chart of actual vs. benchmark section scores.
// The two series are parallel and ordered like the catalog's sections.
type Chart struct {
	Labels     []string  `json:"labels"`
	Actual     []float64 `json:"actual"`
	Benchmarks []float64 `json:"benchmarks"`
	YMin       float64   `json:"y_min"`
	YMax       float64   `json:"y_max"`
}

type View struct {
	Tool         string        `json:"tool"`
	Label        string        `json:"label"`
	OverallScore string        `json:"overall_score"`
	Sections     []SectionView `json:"sections"`
	Chart        Chart         `json:"chart"`
}

// Render builds the user-facing report for a stored scored result. Pure: the
// same inputs always produce the same view. Missing section scores or answers
// default to 0 rather than failing the whole report.
func Render(tool catalog.Tool, res scoring.Result) View {
	view := View{
		Tool:         tool.ID,
		Label:        tool.Label,
		OverallScore: formatPercent(res.OverallScore),
		Sections:     make([]SectionView, 0, len(tool.Sections)),
		Chart: Chart{
			Labels:     make([]string, 0, len(tool.Sections)),
			Actual:     make([]float64, 0, len(tool.Sections)),
			Benchmarks: make([]float64, 0, len(tool.Sections)),
			YMin:       0,
			YMax:       100,
		},
	}

	for _, sec := range tool.Sections {
		score := res.SectionScores[sec.ID]
		sv := SectionView{
			ID:        sec.ID,
			Name:      sec.Name,
			Score:     formatPercent(score),
			Benchmark: sec.Benchmark,
			Rows:      make([]Row, 0, len(sec.Questions)+1),
		}
		sv.Rows = append(sv.Rows, Row{Kind: RowHeader, Name: sec.Name, Score: sv.Score})

		for _, q := range sec.Questions {
			if !q.Scored() {
				sv.Rows = append(sv.Rows, Row{Kind: RowSubheading, Name: q.Name})
				continue
			}
			answer := res.EntryAnswers[sec.ID][q.AnswerID]
			row := Row{
				Kind:           RowData,
				Name:           q.Name,
				Score:          formatAnswer(answer),
				Recommendation: NoRecommendations,
			}
			if answer < scoring.MaxAnswer {
				row.Recommendation = q.Recommendation
			}
			sv.Rows = append(sv.Rows, row)
		}

		view.Sections = append(view.Sections, sv)
		view.Chart.Labels = append(view.Chart.Labels, sec.Name)
		view.Chart.Actual = append(view.Chart.Actual, score)
		view.Chart.Benchmarks = append(view.Chart.Benchmarks, sec.Benchmark)
	}
	return view
}

func formatPercent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

func formatAnswer(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + " / 4"
}
