// Package astcheck is the syntax gate for generated bundle files. Each
// artifact is parsed with its tree-sitter grammar before anything is
// delivered.
package astcheck

import (
	"context"
	"fmt"
	"path"
	"sort"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/css"
	"github.com/smacker/go-tree-sitter/html"
	"github.com/smacker/go-tree-sitter/javascript"
)

// SyntaxError locates the first parse error in a generated file.
type SyntaxError struct {
	File    string
	Line    uint32 // 0-indexed
	Column  uint32 // 0-indexed
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.File, e.Line+1, e.Column+1, e.Message)
}

// Language returns the grammar for a bundle file name, or nil for files
// that are not checked (markdown, svg, fonts).
func Language(file string) *sitter.Language {
	switch strings.ToLower(path.Ext(file)) {
	case ".html", ".htm":
		return html.GetLanguage()
	case ".css":
		return css.GetLanguage()
	case ".js", ".mjs":
		return javascript.GetLanguage()
	default:
		return nil
	}
}

// Parse returns the syntax tree of content. Callers own the tree.
func Parse(ctx context.Context, content []byte, file string) (*sitter.Tree, error) {
	lang := Language(file)
	if lang == nil {
		return nil, fmt.Errorf("no grammar for %s", file)
	}
	parser := sitter.NewParser()
	parser.SetLanguage(lang)
	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parse failed for %s: %w", file, err)
	}
	return tree, nil
}

// Check parses content and returns a *SyntaxError if the tree has error
// or missing nodes. Unchecked file types pass.
func Check(content []byte, file string) error {
	if Language(file) == nil {
		return nil
	}
	tree, err := Parse(context.Background(), content, file)
	if err != nil {
		return err
	}
	root := tree.RootNode()
	if root == nil {
		return fmt.Errorf("tree-sitter returned nil root for %s", file)
	}
	if !root.HasError() {
		return nil
	}
	if n := firstError(root); n != nil {
		return &SyntaxError{
			File:    file,
			Line:    n.StartPoint().Row,
			Column:  n.StartPoint().Column,
			Message: describe(n),
		}
	}
	return &SyntaxError{File: file, Message: "syntax tree contains errors"}
}

// CheckAll checks every file in name order and returns the first failure.
func CheckAll(files map[string][]byte) error {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := Check(files[name], name); err != nil {
			return err
		}
	}
	return nil
}

// Errors lists every error or missing node, for diagnostics.
func Errors(content []byte, file string) []SyntaxError {
	if Language(file) == nil {
		return nil
	}
	tree, err := Parse(context.Background(), content, file)
	if err != nil {
		return nil
	}
	root := tree.RootNode()
	if root == nil || !root.HasError() {
		return nil
	}
	var out []SyntaxError
	collect(root, file, &out)
	return out
}

func describe(n *sitter.Node) string {
	if n.IsMissing() {
		return "missing " + n.Type()
	}
	return "syntax error"
}

func broken(n *sitter.Node) bool {
	return n.HasError() || n.IsError() || n.IsMissing()
}

// firstError does a depth-first search for the first ERROR or MISSING node.
func firstError(node *sitter.Node) *sitter.Node {
	if node.IsError() || node.IsMissing() {
		return node
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if broken(child) {
			if found := firstError(child); found != nil {
				return found
			}
		}
	}
	return nil
}

func collect(node *sitter.Node, file string, out *[]SyntaxError) {
	if node.IsError() || node.IsMissing() {
		*out = append(*out, SyntaxError{
			File:    file,
			Line:    node.StartPoint().Row,
			Column:  node.StartPoint().Column,
			Message: describe(node),
		})
		return
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		if child := node.Child(i); broken(child) {
			collect(child, file, out)
		}
	}
}
