package catalog

import "fmt"

// ErrUnknownTool is returned when scoring or reporting is requested for a
// tool absent from the loaded catalogs. Callers must surface this as a
// configuration error, never fall back to a default tool.
type ErrUnknownTool struct{ ID string }

func (e ErrUnknownTool) Error() string { return fmt.Sprintf("unknown assessment tool %q", e.ID) }

// Registry holds the catalogs loaded at startup. Read-only after Load.
type Registry struct {
	tools  map[string]Tool
	fields map[string]FieldMap
	order  []string
}

func newRegistry() *Registry {
	return &Registry{tools: map[string]Tool{}, fields: map[string]FieldMap{}}
}

func (r *Registry) add(t Tool, fm FieldMap) {
	r.tools[t.ID] = t
	r.fields[t.ID] = fm
	r.order = append(r.order, t.ID)
}

func (r *Registry) Tool(id string) (Tool, error) {
	t, ok := r.tools[id]
	if !ok {
		return Tool{}, ErrUnknownTool{ID: id}
	}
	return t, nil
}

func (r *Registry) Fields(id string) (FieldMap, error) {
	fm, ok := r.fields[id]
	if !ok {
		return FieldMap{}, ErrUnknownTool{ID: id}
	}
	return fm, nil
}

// Tools returns the loaded tools in load order.
func (r *Registry) Tools() []Tool {
	out := make([]Tool, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.tools[id])
	}
	return out
}
