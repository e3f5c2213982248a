// Package inspect runs JSONPath queries over a saved project document.
package inspect

import (
	"fmt"
	"os"
	"sort"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
)

// Load parses a project file into generic JSON values.
func Load(path string) (any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read project %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse parses a project document.
func Parse(raw []byte) (any, error) {
	doc, err := oj.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse project: %w", err)
	}
	return doc, nil
}

// Query evaluates selector against root, for example
// "$.elements[?(@.type == 'knob')].name".
func Query(root any, selector string) ([]any, error) {
	x, err := jp.ParseString(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid jsonpath '%s': %w", selector, err)
	}
	return x.Get(root), nil
}

// Format renders query results as indented JSON, one document per line
// group.
func Format(results []any) string {
	return oj.JSON(results, &oj.Options{Indent: 2, Sort: true})
}

// Types counts elements by type.
func Types(root any) ([]TypeCount, error) {
	types, err := Query(root, "$.elements[*].type")
	if err != nil {
		return nil, err
	}
	counts := map[string]int{}
	for _, t := range types {
		if s, ok := t.(string); ok {
			counts[s]++
		}
	}
	out := make([]TypeCount, 0, len(counts))
	for t, n := range counts {
		out = append(out, TypeCount{Type: t, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Type < out[j].Type
	})
	return out, nil
}

// TypeCount is one row of Types.
type TypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}
