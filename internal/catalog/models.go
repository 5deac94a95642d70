package catalog

// Question is a single row in a section: either a scoreable item or, when
// AnswerID is empty, a non-scored subheading.
type Question struct {
	Name           string `json:"name" yaml:"name"`
	AnswerID       string `json:"answer_id,omitempty" yaml:"answer_id"`
	Recommendation string `json:"recommendation,omitempty" yaml:"recommendation"`
}

func (q Question) Scored() bool { return q.AnswerID != "" }

type Section struct {
	Name      string  `json:"name" yaml:"name"`
	ID        string  `json:"id" yaml:"id"` // single letter, unique within a tool
	Count     int     `json:"count" yaml:"count"`
	Benchmark float64 `json:"benchmark" yaml:"benchmark"` // industry average, 0-100

	Questions []Question `json:"questions" yaml:"questions"`
}

type Tool struct {
	ID       string    `json:"id" yaml:"id"`
	Label    string    `json:"label" yaml:"label"`
	Sections []Section `json:"sections" yaml:"sections"`
}

// FieldMap binds a tool's answer ids to the external form provider's field
// keys. It is the authority for which raw fields a submission is expected to
// carry: scoring groups answers by these sections, so an answer id listed
// here is persisted even if no catalog question displays it.
type FieldMap struct {
	Tool     string                       `yaml:"tool"`
	Sections map[string]map[string]string `yaml:"sections"` // section id -> answer id -> external field key
}
