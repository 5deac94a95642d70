package scoring

import (
	"fmt"
	"strconv"

	"github.com/openminds/readiness-assessments/internal/catalog"
)

// MaxAnswer is the top of the 0-4 rating scale. The denominator of every
// percentage is answers*MaxAnswer; fixed by the assessment's convention, not
// derived from data.
const MaxAnswer = 4

// Result is the persisted outcome of scoring one submission. Raw answers are
// copied verbatim (coerced to float, never clamped), so percentages can leave
// [0,100] when the form delivers out-of-range values.
type Result struct {
	EntryAnswers  map[string]map[string]float64 `json:"entry_answers"`
	SectionScores map[string]float64            `json:"section_scores"`
	OverallScore  float64                       `json:"overall_score"`
}

// Score groups the raw submission's fields into sections per the tool's field
// map and computes per-section and overall percentage scores. Missing or
// non-numeric fields count as 0; they lower the score rather than reject the
// submission.
func Score(tool catalog.Tool, fields catalog.FieldMap, raw map[string]interface{}) (Result, error) {
	res := Result{
		EntryAnswers:  make(map[string]map[string]float64, len(tool.Sections)),
		SectionScores: make(map[string]float64, len(tool.Sections)),
	}

	var total, denominator float64
	for _, sec := range tool.Sections {
		fm := fields.Sections[sec.ID]
		if len(fm) == 0 {
			return Result{}, fmt.Errorf("section %q of tool %q maps no answers", sec.ID, tool.ID)
		}
		answers := make(map[string]float64, len(fm))
		sum := 0.0
		for answerID, fieldKey := range fm {
			v := toFloat(raw[fieldKey])
			answers[answerID] = v
			sum += v
		}
		res.EntryAnswers[sec.ID] = answers
		res.SectionScores[sec.ID] = sum / (float64(len(fm)) * MaxAnswer) * 100
		total += sum
		denominator += float64(len(fm)) * MaxAnswer
	}
	res.OverallScore = total / denominator * 100
	return res, nil
}

// toFloat mirrors the form provider's loose typing: answers arrive as JSON
// numbers or numeric strings, and anything else is worth 0.
func toFloat(v interface{}) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case string:
		if f, err := strconv.ParseFloat(t, 64); err == nil {
			return f
		}
		return 0
	default:
		return 0
	}
}
