package report

import (
	"reflect"
	"testing"

	"github.com/openminds/readiness-assessments/internal/catalog"
	"github.com/openminds/readiness-assessments/internal/scoring"
)

func testTool() catalog.Tool {
	return catalog.Tool{
		ID:    "t",
		Label: "Test Tool",
		Sections: []catalog.Section{
			{Name: "Alpha", ID: "a", Count: 3, Benchmark: 40.5, Questions: []catalog.Question{
				{Name: "Q1", AnswerID: "a1", Recommendation: "Do better at Q1."},
				{Name: "Group heading"},
				{Name: "Q2", AnswerID: "a2", Recommendation: "Do better at Q2."},
				{Name: "Q3", AnswerID: "a3", Recommendation: "Do better at Q3."},
			}},
			{Name: "Beta", ID: "b", Count: 1, Benchmark: 60, Questions: []catalog.Question{
				{Name: "Q4", AnswerID: "b1", Recommendation: "Do better at Q4."},
			}},
		},
	}
}

func testResult() scoring.Result {
	return scoring.Result{
		EntryAnswers: map[string]map[string]float64{
			"a": {"a1": 4, "a2": 2, "a3": 0},
			"b": {"b1": 3},
		},
		SectionScores: map[string]float64{"a": 50, "b": 75},
		OverallScore:  56.25,
	}
}

func TestRenderFormats(t *testing.T) {
	view := Render(testTool(), testResult())

	if view.OverallScore != "56.25%" {
		t.Errorf("overall = %q", view.OverallScore)
	}
	if len(view.Sections) != 2 {
		t.Fatalf("sections = %d", len(view.Sections))
	}
	a := view.Sections[0]
	if a.Score != "50.00%" {
		t.Errorf("section a score = %q", a.Score)
	}
	if a.Benchmark != 40.5 {
		t.Errorf("section a benchmark = %v", a.Benchmark)
	}

	// header + 4 question rows
	if len(a.Rows) != 5 {
		t.Fatalf("section a rows = %d", len(a.Rows))
	}
	header := a.Rows[0]
	if header.Kind != RowHeader || header.Name != "Alpha" || header.Score != "50.00%" {
		t.Errorf("header row = %+v", header)
	}
	if a.Rows[2].Kind != RowSubheading || a.Rows[2].Name != "Group heading" {
		t.Errorf("subheading row = %+v", a.Rows[2])
	}
	if a.Rows[2].Score != "" || a.Rows[2].Recommendation != "" {
		t.Errorf("subheading row carries score/recommendation: %+v", a.Rows[2])
	}
	if a.Rows[1].Score != "4 / 4" {
		t.Errorf("Q1 score = %q", a.Rows[1].Score)
	}
	if a.Rows[3].Score != "2 / 4" {
		t.Errorf("Q2 score = %q", a.Rows[3].Score)
	}
}

func TestRenderRecommendationThreshold(t *testing.T) {
	view := Render(testTool(), testResult())
	a := view.Sections[0]

	// Q1 answered 4: no recommendation text.
	if a.Rows[1].Recommendation != NoRecommendations {
		t.Errorf("Q1 recommendation = %q", a.Rows[1].Recommendation)
	}
	// Q2 answered 2 and Q3 answered 0: catalog recommendations shown.
	if a.Rows[3].Recommendation != "Do better at Q2." {
		t.Errorf("Q2 recommendation = %q", a.Rows[3].Recommendation)
	}
	if a.Rows[4].Recommendation != "Do better at Q3." {
		t.Errorf("Q3 recommendation = %q", a.Rows[4].Recommendation)
	}
}

func TestRenderFractionalAnswer(t *testing.T) {
	res := testResult()
	res.EntryAnswers["b"]["b1"] = 3.5
	view := Render(testTool(), res)
	row := view.Sections[1].Rows[1]
	if row.Score != "3.5 / 4" {
		t.Errorf("fractional answer = %q", row.Score)
	}
	// 3.5 is still below the top of the scale.
	if row.Recommendation != "Do better at Q4." {
		t.Errorf("recommendation = %q", row.Recommendation)
	}
}

func TestRenderChart(t *testing.T) {
	view := Render(testTool(), testResult())
	c := view.Chart
	if !reflect.DeepEqual(c.Labels, []string{"Alpha", "Beta"}) {
		t.Errorf("labels = %v", c.Labels)
	}
	if !reflect.DeepEqual(c.Actual, []float64{50, 75}) {
		t.Errorf("actual = %v", c.Actual)
	}
	if !reflect.DeepEqual(c.Benchmarks, []float64{40.5, 60}) {
		t.Errorf("benchmarks = %v", c.Benchmarks)
	}
	if c.YMin != 0 || c.YMax != 100 {
		t.Errorf("y range = [%v,%v]", c.YMin, c.YMax)
	}
}

func TestRenderMissingAnswersDefaultToZero(t *testing.T) {
	res := scoring.Result{} // nothing stored at all
	view := Render(testTool(), res)
	if view.OverallScore != "0.00%" {
		t.Errorf("overall = %q", view.OverallScore)
	}
	row := view.Sections[0].Rows[1]
	if row.Score != "0 / 4" {
		t.Errorf("missing answer = %q", row.Score)
	}
	if row.Recommendation != "Do better at Q1." {
		t.Errorf("missing answer recommendation = %q", row.Recommendation)
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	a := Render(testTool(), testResult())
	b := Render(testTool(), testResult())
	if !reflect.DeepEqual(a, b) {
		t.Error("two renders of the same result differ")
	}
}
