package model

import "sort"

// DefaultLayerID is the layer of elements with no explicit layer.
const DefaultLayerID = "default"

// Layer is a named render-order group. Order 0 is the bottom.
type Layer struct {
	ID      string
	Name    string
	Order   int
	Visible bool
}

// LayerOrder resolves layer ids to their render order and visibility.
// The zero value treats every element as being on a visible layer 0.
type LayerOrder struct {
	order  map[string]int
	hidden map[string]bool
}

// NewLayerOrder indexes layers. Unknown or empty layer ids resolve to the
// default layer.
func NewLayerOrder(layers []Layer) LayerOrder {
	lo := LayerOrder{order: make(map[string]int, len(layers)), hidden: make(map[string]bool)}
	for _, l := range layers {
		lo.order[l.ID] = l.Order
		if !l.Visible {
			lo.hidden[l.ID] = true
		}
	}
	return lo
}

func (lo LayerOrder) layerOf(el Element) string {
	id := el.Base().LayerID
	if id == "" {
		return DefaultLayerID
	}
	if _, ok := lo.order[id]; !ok {
		return DefaultLayerID
	}
	return id
}

// Order returns the render order of el's layer.
func (lo LayerOrder) Order(el Element) int {
	return lo.order[lo.layerOf(el)]
}

// Hidden reports whether el sits on a hidden layer.
func (lo LayerOrder) Hidden(el Element) bool {
	return lo.hidden[lo.layerOf(el)]
}

// Sort orders elements bottom to top: layer order, then zIndex, then
// original position. The input slice is not modified.
func (lo LayerOrder) Sort(elements []Element) []Element {
	out := append([]Element(nil), elements...)
	sort.SliceStable(out, func(i, j int) bool {
		li, lj := lo.Order(out[i]), lo.Order(out[j])
		if li != lj {
			return li < lj
		}
		return out[i].Base().ZIndex < out[j].Base().ZIndex
	})
	return out
}
