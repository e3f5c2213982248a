package model

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/agentic-research/faceplate/api"
)

// WindowKind distinguishes shipped windows from editor-only ones.
type WindowKind string

const (
	WindowRelease   WindowKind = "release"
	WindowDeveloper WindowKind = "developer"
)

// Window is a top-level UI surface and the ordered ids of its elements.
type Window struct {
	ID              string
	Name            string
	Kind            WindowKind
	Width           float64
	Height          float64
	BackgroundColor string
	ElementIDs      []string
}

// Snapshot is an immutable view of a project. Pipeline entry points clone
// it before use and never write through it.
type Snapshot struct {
	Name     string
	Windows  []Window
	Elements []Element
	Layers   []Layer
}

// FromProject converts the wire document into a snapshot. An element with
// an unknown type fails the whole conversion.
func FromProject(p *api.Project) (*Snapshot, error) {
	s := &Snapshot{Name: p.Name}
	for _, w := range p.Windows {
		kind := WindowKind(w.Type)
		if kind != WindowDeveloper {
			kind = WindowRelease
		}
		s.Windows = append(s.Windows, Window{
			ID:              w.ID,
			Name:            w.Name,
			Kind:            kind,
			Width:           w.Width,
			Height:          w.Height,
			BackgroundColor: w.BackgroundColor,
			ElementIDs:      append([]string(nil), w.ElementIDs...),
		})
	}
	for i, raw := range p.Elements {
		el, err := Decode(raw)
		if err != nil {
			return nil, fmt.Errorf("elements[%d]: %w", i, err)
		}
		s.Elements = append(s.Elements, el)
	}
	for _, l := range p.Layers {
		s.Layers = append(s.Layers, Layer{ID: l.ID, Name: l.Name, Order: l.Order, Visible: l.Visible})
	}
	return s, nil
}

// ToProject converts s back into the wire document.
func (s *Snapshot) ToProject() (*api.Project, error) {
	p := &api.Project{Version: "3.0.0", Name: s.Name}
	for _, w := range s.Windows {
		p.Windows = append(p.Windows, api.Window{
			ID:              w.ID,
			Name:            w.Name,
			Type:            string(w.Kind),
			Width:           w.Width,
			Height:          w.Height,
			BackgroundColor: w.BackgroundColor,
			ElementIDs:      append([]string{}, w.ElementIDs...),
		})
	}
	for _, el := range s.Elements {
		raw, err := Encode(el)
		if err != nil {
			return nil, err
		}
		p.Elements = append(p.Elements, raw)
	}
	for _, l := range s.Layers {
		p.Layers = append(p.Layers, api.Layer{ID: l.ID, Name: l.Name, Order: l.Order, Visible: l.Visible})
	}
	return p, nil
}

// Read decodes a saved-project document.
func Read(r io.Reader) (*Snapshot, error) {
	var p api.Project
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode project: %w", err)
	}
	return FromProject(&p)
}

// Load reads a saved-project file.
func Load(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open project %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return Read(f)
}

// Clone returns a deep copy of s. Later edits to the original are not
// visible through the copy.
func (s *Snapshot) Clone() (*Snapshot, error) {
	c := &Snapshot{
		Name:     s.Name,
		Windows:  make([]Window, len(s.Windows)),
		Elements: make([]Element, 0, len(s.Elements)),
		Layers:   append([]Layer(nil), s.Layers...),
	}
	for i, w := range s.Windows {
		w.ElementIDs = append([]string(nil), w.ElementIDs...)
		c.Windows[i] = w
	}
	for _, el := range s.Elements {
		cp, err := Clone(el)
		if err != nil {
			return nil, fmt.Errorf("clone snapshot: %w", err)
		}
		c.Elements = append(c.Elements, cp)
	}
	return c, nil
}

// Window returns the window with the given id.
func (s *Snapshot) Window(id string) (Window, bool) {
	for _, w := range s.Windows {
		if w.ID == id {
			return w, true
		}
	}
	return Window{}, false
}

// ExportWindows returns the windows that ship, in snapshot order.
// Developer windows are included only when includeDeveloper is set.
func (s *Snapshot) ExportWindows(includeDeveloper bool) []Window {
	var out []Window
	for _, w := range s.Windows {
		if w.Kind == WindowDeveloper && !includeDeveloper {
			continue
		}
		out = append(out, w)
	}
	return out
}
