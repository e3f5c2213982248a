package api

import "encoding/json"

// Project is the editor's saved-project document (format 3.x).
// It is the only input the compiler accepts.
type Project struct {
	// Version of the project format, e.g. "3.0.0".
	Version string `json:"version"`
	// Name of the project. Optional; used to name archives.
	Name string `json:"name,omitempty"`
	// Windows in editor order.
	Windows []Window `json:"windows"`
	// Elements across all windows. Each entry is decoded by its "type" tag.
	Elements []json.RawMessage `json:"elements"`
	// Layers control render order. Optional.
	Layers []Layer `json:"layers,omitempty"`
}

// Window is a top-level UI surface.
type Window struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Type            string   `json:"type"` // "release" or "developer"
	Width           float64  `json:"width"`
	Height          float64  `json:"height"`
	BackgroundColor string   `json:"backgroundColor,omitempty"`
	ElementIDs      []string `json:"elementIds"`
}

// Layer is a named render-order group.
type Layer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Order   int    `json:"order"` // 0 = bottom
	Visible bool   `json:"visible"`
}
