package model

import (
	"github.com/RoaringBitmap/roaring"
)

// Index resolves element ids and parent back-references. Build it once per
// call; it does not observe later changes to the element list.
type Index struct {
	byID     map[string]Element
	intID    map[string]uint32 // element id -> dense bitmap id
	children map[string][]Element
}

// NewIndex indexes elements. When ids repeat, the first element wins.
func NewIndex(elements []Element) *Index {
	ix := &Index{
		byID:     make(map[string]Element, len(elements)),
		intID:    make(map[string]uint32, len(elements)),
		children: make(map[string][]Element),
	}
	for _, el := range elements {
		b := el.Base()
		if _, dup := ix.byID[b.ID]; dup {
			continue
		}
		ix.byID[b.ID] = el
		ix.intID[b.ID] = uint32(len(ix.intID))
		if b.ParentID != "" {
			ix.children[b.ParentID] = append(ix.children[b.ParentID], el)
		}
	}
	return ix
}

// Get returns the element with the given id.
func (ix *Index) Get(id string) (Element, bool) {
	el, ok := ix.byID[id]
	return el, ok
}

// Children returns the elements whose parent is id, in list order.
func (ix *Index) Children(id string) []Element {
	return ix.children[id]
}

// Resolve expands a window's element ids into the window's full element
// list: every listed element followed by its descendants, depth-first.
// Unknown ids are skipped and no element appears twice, so parent cycles
// terminate.
func (ix *Index) Resolve(ids []string) []Element {
	visited := roaring.New()
	var out []Element
	var stack []Element
	for _, id := range ids {
		el, ok := ix.byID[id]
		if !ok {
			continue
		}
		stack = append(stack[:0], el)
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			n := ix.intID[cur.Base().ID]
			if !visited.CheckedAdd(n) {
				continue
			}
			out = append(out, cur)
			kids := ix.children[cur.Base().ID]
			for i := len(kids) - 1; i >= 0; i-- {
				if !visited.Contains(ix.intID[kids[i].Base().ID]) {
					stack = append(stack, kids[i])
				}
			}
		}
	}
	return out
}

// Forest arranges a resolved element list into a render tree. Siblings are
// ordered by layer, then zIndex, then list position.
type Forest struct {
	roots    []Element
	children map[string][]Element
	pos      map[Element]uint32
}

// NewForest builds the render tree of elements. An element is a root when
// its parent is absent from elements. Members of a parent cycle are
// promoted to roots in list order so every element is rendered once.
func NewForest(elements []Element, layers LayerOrder) *Forest {
	f := &Forest{
		children: make(map[string][]Element),
		pos:      make(map[Element]uint32, len(elements)),
	}
	present := make(map[string]bool, len(elements))
	for i, el := range elements {
		f.pos[el] = uint32(i)
		present[el.Base().ID] = true
	}
	var roots []Element
	for _, el := range elements {
		b := el.Base()
		if b.ParentID == "" || b.ParentID == b.ID || !present[b.ParentID] {
			roots = append(roots, el)
			continue
		}
		f.children[b.ParentID] = append(f.children[b.ParentID], el)
	}
	for id, kids := range f.children {
		f.children[id] = layers.Sort(kids)
	}

	reached := roaring.New()
	for _, r := range roots {
		f.mark(r, reached)
	}
	for _, el := range elements {
		if !reached.Contains(f.pos[el]) {
			roots = append(roots, el)
			f.mark(el, reached)
		}
	}
	f.roots = layers.Sort(roots)
	return f
}

func (f *Forest) mark(root Element, seen *roaring.Bitmap) {
	stack := []Element{root}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !seen.CheckedAdd(f.pos[cur]) {
			continue
		}
		stack = append(stack, f.children[cur.Base().ID]...)
	}
}

// Roots returns the top-level elements in render order.
func (f *Forest) Roots() []Element { return f.roots }

// Walk visits every element once, depth-first in render order. enter runs
// before an element's children and leave after them; leave may be nil.
func (f *Forest) Walk(enter, leave func(el Element, parent Element)) {
	type frame struct {
		el, parent Element
		exit       bool
	}
	visited := roaring.New()
	stack := make([]frame, 0, len(f.roots))
	for i := len(f.roots) - 1; i >= 0; i-- {
		stack = append(stack, frame{el: f.roots[i]})
	}
	for len(stack) > 0 {
		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if fr.exit {
			if leave != nil {
				leave(fr.el, fr.parent)
			}
			continue
		}
		if !visited.CheckedAdd(f.pos[fr.el]) {
			continue
		}
		enter(fr.el, fr.parent)
		stack = append(stack, frame{el: fr.el, parent: fr.parent, exit: true})
		kids := f.children[fr.el.Base().ID]
		for i := len(kids) - 1; i >= 0; i-- {
			if !visited.Contains(f.pos[kids[i]]) {
				stack = append(stack, frame{el: kids[i], parent: fr.el})
			}
		}
	}
}
