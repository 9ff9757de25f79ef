// Package tools implements the reservation operations exposed to the LLM and
// the registry that advertises and dispatches them.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"

	"github.com/Vinay-014/GoodFoods/internal/schema"
)

// Registry maps tool names to implementations. It is populated once at
// startup; dispatch is a map lookup, never a name switch.
type Registry struct {
	tools map[string]schema.Tool
	order []string
}

// NewRegistry builds a Registry over the given tools.
func NewRegistry(ts ...schema.Tool) *Registry {
	r := &Registry{tools: make(map[string]schema.Tool, len(ts))}
	for _, t := range ts {
		r.tools[t.Name()] = t
		r.order = append(r.order, t.Name())
	}
	sort.Strings(r.order)
	return r
}

// Get returns the tool with the given name, or nil.
func (r *Registry) Get(name string) schema.Tool { return r.tools[name] }

// Names returns the registered tool names, sorted.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Definitions returns every registered schema in OpenAI function-calling
// format, for inclusion in a model request.
func (r *Registry) Definitions() []map[string]any {
	out := make([]map[string]any, 0, len(r.order))
	for _, name := range r.order {
		t := r.tools[name]
		var params any
		if err := json.Unmarshal(t.Parameters(), &params); err != nil {
			params = map[string]any{"type": "object", "properties": map[string]any{}}
		}
		out = append(out, map[string]any{
			"type": "function",
			"function": map[string]any{
				"name":        t.Name(),
				"description": t.Description(),
				"parameters":  params,
			},
		})
	}
	return out
}

// Dispatch executes the named tool. An unregistered name and any failure
// raised by the tool are converted into structured failure payloads; the
// conversation must always continue, so nothing escapes this boundary.
func (r *Registry) Dispatch(ctx context.Context, name string, args map[string]any) (result any) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("tool panicked", "tool", name, "panic", rec)
			result = map[string]any{"success": false, "error": fmt.Sprintf("%v", rec)}
		}
	}()

	t := r.tools[name]
	if t == nil {
		return map[string]any{"success": false, "error": fmt.Sprintf("Tool %s not found", name)}
	}

	out, err := t.Execute(ctx, args)
	if err != nil {
		slog.Error("tool failed", "tool", name, "err", err)
		return map[string]any{"success": false, "error": err.Error()}
	}
	return out
}
