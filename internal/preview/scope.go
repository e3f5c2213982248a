package preview

import (
	"context"
	"fmt"
	"sort"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/agentic-research/faceplate/internal/astcheck"
)

// ScopeAttr is the attribute that marks a window's root in a multi-window
// preview.
const ScopeAttr = "data-fp-window"

// ScopeSelector is the attribute selector for one window's root.
func ScopeSelector(slug string) string {
	return `[` + ScopeAttr + `="` + slug + `"]`
}

// ScopedCSS is a stylesheet rewritten to apply under one window root.
type ScopedCSS struct {
	CSS string
	// FontFaces are the @font-face blocks removed from CSS, in source order.
	FontFaces []string
}

type edit struct {
	start, end uint32
	text       string
}

// ScopeCSS prefixes every selector in css with the scope selector for
// slug. Selectors naming the document (html, body, :root) are replaced by
// the scope itself. Rules inside @media and @supports are scoped;
// @keyframes are left alone. @font-face blocks are lifted out so the
// caller can emit them once at the top level.
func ScopeCSS(css, slug string) (ScopedCSS, error) {
	src := []byte(css)
	tree, err := astcheck.Parse(context.Background(), src, "styles.css")
	if err != nil {
		return ScopedCSS{}, err
	}
	root := tree.RootNode()
	if root.HasError() {
		return ScopedCSS{}, fmt.Errorf("scope stylesheet for %s: %w", slug, astcheck.Check(src, "styles.css"))
	}

	prefix := ScopeSelector(slug)
	var out ScopedCSS
	var edits []edit

	var visit func(n *sitter.Node, top bool)
	visit = func(n *sitter.Node, top bool) {
		for i := 0; i < int(n.NamedChildCount()); i++ {
			child := n.NamedChild(i)
			switch child.Type() {
			case "rule_set":
				if sel := firstOfType(child, "selectors"); sel != nil {
					edits = append(edits, edit{sel.StartByte(), sel.EndByte(), scopeSelectors(sel, src, prefix)})
				}
			case "at_rule":
				if top && isFontFace(child, src) {
					out.FontFaces = append(out.FontFaces, child.Content(src))
					end := child.EndByte()
					if int(end) < len(src) && src[end] == '\n' {
						end++
					}
					edits = append(edits, edit{child.StartByte(), end, ""})
				}
			case "media_statement", "supports_statement", "block":
				visit(child, false)
			}
		}
	}
	visit(root, true)

	sort.Slice(edits, func(i, j int) bool { return edits[i].start < edits[j].start })
	var b strings.Builder
	last := uint32(0)
	for _, e := range edits {
		b.Write(src[last:e.start])
		b.WriteString(e.text)
		last = e.end
	}
	b.Write(src[last:])
	out.CSS = b.String()
	return out, nil
}

func firstOfType(n *sitter.Node, typ string) *sitter.Node {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if c := n.NamedChild(i); c.Type() == typ {
			return c
		}
	}
	return nil
}

func isFontFace(n *sitter.Node, src []byte) bool {
	if kw := firstOfType(n, "at_keyword"); kw != nil {
		return strings.EqualFold(kw.Content(src), "@font-face")
	}
	return strings.HasPrefix(strings.ToLower(n.Content(src)), "@font-face")
}

func scopeSelectors(sel *sitter.Node, src []byte, prefix string) string {
	var parts []string
	for i := 0; i < int(sel.NamedChildCount()); i++ {
		text := strings.TrimSpace(sel.NamedChild(i).Content(src))
		if text == "" {
			continue
		}
		parts = append(parts, scopeSelector(text, prefix))
	}
	if len(parts) == 0 {
		return sel.Content(src)
	}
	return strings.Join(parts, ", ")
}

var documentSelectors = []string{"html", "body", ":root"}

func scopeSelector(sel, prefix string) string {
	for _, doc := range documentSelectors {
		if sel == doc {
			return prefix
		}
		if rest, ok := strings.CutPrefix(sel, doc); ok && (rest[0] == ' ' || rest[0] == '>') {
			return prefix + rest
		}
	}
	return prefix + " " + sel
}

// dedupe keeps the first occurrence of each block.
func dedupe(blocks []string) []string {
	seen := make(map[string]bool, len(blocks))
	var out []string
	for _, b := range blocks {
		key := strings.TrimSpace(b)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, key)
	}
	return out
}
