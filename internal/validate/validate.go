// Package validate runs the static pre-export checks over a window's
// resolved element list.
package validate

import (
	"fmt"
	"strings"

	"github.com/agentic-research/faceplate/internal/model"
)

// Issue is one finding. ElementID is empty for window-level issues.
type Issue struct {
	ElementID   string `json:"elementId,omitempty"`
	ElementName string `json:"elementName,omitempty"`
	Field       string `json:"field"`
	Message     string `json:"message"`
	// OtherElementID is the element a collision was found against.
	OtherElementID string `json:"otherElementId,omitempty"`
	// Window is the display name of the window the issue belongs to.
	Window string `json:"window,omitempty"`
}

func (i Issue) String() string {
	who := i.ElementName
	if who == "" {
		who = i.ElementID
	}
	if i.Window != "" {
		who = i.Window + "/" + who
	}
	return fmt.Sprintf("%s: %s", who, i.Message)
}

// Result is the outcome of validating one or more windows. Valid is true
// iff Errors is empty; warnings never block.
type Result struct {
	Valid    bool    `json:"valid"`
	Errors   []Issue `json:"errors"`
	Warnings []Issue `json:"warnings"`
}

// Merge appends other's issues into r.
func (r *Result) Merge(other Result) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	r.Valid = len(r.Errors) == 0
}

// Message formats the blocking errors for display. It is empty when the
// result is valid.
func (r Result) Message() string {
	if len(r.Errors) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("Please fix these issues before exporting:")
	for _, e := range r.Errors {
		b.WriteString("\n• ")
		b.WriteString(e.String())
	}
	return b.String()
}

// Elements checks one window's resolved element list. index resolves
// parent references across the whole project.
func Elements(window model.Window, elements []model.Element, index *model.Index) Result {
	res := Result{}
	present := make(map[string]bool, len(elements))
	for _, el := range elements {
		present[el.Base().ID] = true
	}

	seen := make(map[string]model.Element, len(elements))
	for _, el := range elements {
		b := el.Base()
		issue := func(field, msg string) Issue {
			return Issue{ElementID: b.ID, ElementName: b.Name, Field: field, Message: msg, Window: window.Name}
		}

		switch {
		case strings.TrimSpace(b.Name) == "":
			res.Errors = append(res.Errors, issue("name", "element name is required"))
		case model.NormalizeName(b.Name) == "":
			res.Errors = append(res.Errors, issue("name",
				fmt.Sprintf("name %q has no letters or digits to build an identifier from", b.Name)))
		default:
			norm := model.NormalizeName(b.Name)
			if prev, dup := seen[norm]; dup {
				p := prev.Base()
				i := issue("name", fmt.Sprintf("name %q (id %s) collides with %q (id %s); both export as %q",
					b.Name, b.ID, p.Name, p.ID, norm))
				i.OtherElementID = p.ID
				res.Errors = append(res.Errors, i)
			} else {
				seen[norm] = el
			}
		}

		if b.ParentID != "" {
			if _, ok := index.Get(b.ParentID); !ok {
				res.Errors = append(res.Errors, issue("parentId",
					fmt.Sprintf("parent %q does not exist", b.ParentID)))
			} else if !present[b.ParentID] {
				res.Errors = append(res.Errors, issue("parentId",
					fmt.Sprintf("parent %q is not part of this window", b.ParentID)))
			}
		}

		if el.Kind().Bindable() && strings.TrimSpace(b.ParameterID) == "" {
			res.Warnings = append(res.Warnings, issue("parameterId",
				"no parameter id; the normalized name will be used as the host parameter"))
		}
		if b.Width <= 0 || b.Height <= 0 {
			res.Warnings = append(res.Warnings, issue("size",
				fmt.Sprintf("non-positive size %gx%g; the element will not be visible", b.Width, b.Height)))
		}
	}

	res.Errors = append(res.Errors, cycles(window, elements, index)...)
	res.Valid = len(res.Errors) == 0
	return res
}

// cycles reports each element whose parent chain loops back on itself.
func cycles(window model.Window, elements []model.Element, index *model.Index) []Issue {
	var out []Issue
	for _, el := range elements {
		b := el.Base()
		seen := map[string]bool{b.ID: true}
		cur := b.ParentID
		for cur != "" {
			if seen[cur] {
				if cur == b.ID {
					out = append(out, Issue{
						ElementID:   b.ID,
						ElementName: b.Name,
						Field:       "parentId",
						Message:     "parent chain forms a cycle",
						Window:      window.Name,
					})
				}
				break
			}
			seen[cur] = true
			p, ok := index.Get(cur)
			if !ok {
				break
			}
			cur = p.Base().ParentID
		}
	}
	return out
}

// Window resolves and checks one window.
func Window(index *model.Index, window model.Window) Result {
	return Elements(window, index.Resolve(window.ElementIDs), index)
}

// Windows checks every given window and the folder names they export
// under. Folder names matter only when more than one window is exported.
func Windows(index *model.Index, windows []model.Window) Result {
	res := Result{Valid: true}
	folders := make(map[string]string, len(windows))
	for _, w := range windows {
		res.Merge(Window(index, w))
		if len(windows) < 2 {
			continue
		}
		slug := model.NormalizeName(w.Name)
		if slug == "" {
			res.Errors = append(res.Errors, Issue{Field: "window", Window: w.Name, ElementName: w.ID,
				Message: "window name has no letters or digits to build a folder name from"})
			continue
		}
		if prev, dup := folders[slug]; dup {
			res.Errors = append(res.Errors, Issue{Field: "window", Window: w.Name, ElementName: w.ID,
				Message: fmt.Sprintf("window folder %q collides with window %q", slug, prev)})
			continue
		}
		folders[slug] = w.Name
	}
	res.Valid = len(res.Errors) == 0
	return res
}
