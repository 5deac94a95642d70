package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads every tool catalog in dir. A tool is a pair of files:
// <tool>.yaml (the catalog) and <tool>_fields.yaml (the external field map).
// Validation failures are configuration errors and abort the load.
func Load(dir string) (*Registry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("catalog dir: %w", err)
	}

	reg := newRegistry()
	for _, ent := range entries {
		name := ent.Name()
		if ent.IsDir() || !strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, "_fields.yaml") {
			continue
		}
		toolID := strings.TrimSuffix(name, ".yaml")

		tool, err := loadTool(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("catalog %s: %w", name, err)
		}
		if tool.ID != toolID {
			return nil, fmt.Errorf("catalog %s: id %q does not match filename", name, tool.ID)
		}
		fields, err := loadFieldMap(filepath.Join(dir, toolID+"_fields.yaml"))
		if err != nil {
			return nil, fmt.Errorf("catalog %s: field map: %w", name, err)
		}
		if err := validate(tool, fields); err != nil {
			return nil, fmt.Errorf("catalog %s: %w", name, err)
		}
		reg.add(tool, fields)
	}
	if len(reg.order) == 0 {
		return nil, fmt.Errorf("catalog dir %s: no tool catalogs found", dir)
	}
	return reg, nil
}

func loadTool(path string) (Tool, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return Tool{}, err
	}
	var t Tool
	if err := yaml.Unmarshal(buf, &t); err != nil {
		return Tool{}, err
	}
	return t, nil
}

func loadFieldMap(path string) (FieldMap, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return FieldMap{}, err
	}
	var fm FieldMap
	if err := yaml.Unmarshal(buf, &fm); err != nil {
		return FieldMap{}, err
	}
	return fm, nil
}

// validate enforces the static catalog invariants. Note: answer id uniqueness
// within a tool is deliberately NOT enforced; shipped catalogs contain a known
// alias (mc question 10 reuses a9) that must keep loading as-is.
func validate(t Tool, fm FieldMap) error {
	if t.ID == "" || t.Label == "" {
		return fmt.Errorf("tool id and label are required")
	}
	if fm.Tool != t.ID {
		return fmt.Errorf("field map is for tool %q, not %q", fm.Tool, t.ID)
	}
	if len(t.Sections) == 0 {
		return fmt.Errorf("tool %q has no sections", t.ID)
	}

	seen := map[string]bool{}
	for _, sec := range t.Sections {
		if sec.ID == "" || sec.Name == "" {
			return fmt.Errorf("tool %q: section id and name are required", t.ID)
		}
		if seen[sec.ID] {
			return fmt.Errorf("tool %q: duplicate section id %q", t.ID, sec.ID)
		}
		seen[sec.ID] = true

		if sec.Benchmark < 0 || sec.Benchmark > 100 {
			return fmt.Errorf("section %q: benchmark %v out of range [0,100]", sec.ID, sec.Benchmark)
		}
		fields, ok := fm.Sections[sec.ID]
		if !ok {
			return fmt.Errorf("section %q has no field map", sec.ID)
		}
		// A section with zero answers would make the score a division by
		// zero; treat it as fatal here rather than at scoring time.
		if len(fields) == 0 {
			return fmt.Errorf("section %q maps no answers", sec.ID)
		}
		if sec.Count != len(fields) {
			return fmt.Errorf("section %q: count %d but field map has %d answers", sec.ID, sec.Count, len(fields))
		}
		for _, q := range sec.Questions {
			if q.Name == "" {
				return fmt.Errorf("section %q has a question with no name", sec.ID)
			}
			if q.Scored() {
				if _, ok := fields[q.AnswerID]; !ok {
					return fmt.Errorf("section %q: question %q references unmapped answer id %q", sec.ID, q.Name, q.AnswerID)
				}
			}
		}
	}
	for id := range fm.Sections {
		if !seen[id] {
			return fmt.Errorf("field map section %q not present in catalog", id)
		}
	}
	return nil
}
