// Package preview renders self-contained preview documents from the same
// generators the exporter uses, and serves them to a browser.
package preview

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/agentic-research/faceplate/internal/codegen"
	"github.com/agentic-research/faceplate/internal/model"
	"github.com/agentic-research/faceplate/internal/svgopt"
)

// Options controls preview rendering.
type Options struct {
	Optimize                bool
	Responsive              bool
	IncludeDeveloperWindows bool
}

// DefaultOptions renders optimized, responsive previews of shipping windows.
func DefaultOptions() Options {
	return Options{Optimize: true, Responsive: true}
}

// Document is a rendered preview.
type Document struct {
	Title string
	HTML  string
	// Windows are the window ids in the document, in display order.
	Windows []string
}

// part is one window's generated text.
type part struct {
	window    model.Window
	slug      string
	elements  []model.Element
	body      string
	css       string
	bindings  string
	scrollbar bool
}

func render(snap *model.Snapshot, index *model.Index, w model.Window, opts Options) part {
	elements := index.Resolve(w.ElementIDs)
	gopts := codegen.WindowOptions(w, snap.Layers)
	return part{
		window:    w,
		elements:  elements,
		body:      inlineAssets(codegen.GenerateBody(elements, gopts), elements, opts.Optimize),
		css:       codegen.GenerateCSS(elements, gopts),
		bindings:  codegen.GenerateBindingsJS(elements, gopts),
		scrollbar: codegen.NeedsScrollbar(elements),
	}
}

// RenderWindow renders one window as a standalone document. It does not
// validate; the editor previews work in progress.
func RenderWindow(snap *model.Snapshot, windowID string, opts Options) (Document, error) {
	clone, err := snap.Clone()
	if err != nil {
		return Document{}, err
	}
	w, ok := clone.Window(windowID)
	if !ok {
		return Document{}, fmt.Errorf("window %q not found", windowID)
	}
	var doc Document
	err = codegen.Guard(func() error {
		doc = single(clone, model.NewIndex(clone.Elements), w, opts)
		return nil
	})
	return doc, err
}

// RenderProject renders every previewable window into one document with
// a tab strip. A project with a single window renders like RenderWindow.
func RenderProject(snap *model.Snapshot, opts Options) (Document, error) {
	clone, err := snap.Clone()
	if err != nil {
		return Document{}, err
	}
	windows := clone.ExportWindows(opts.IncludeDeveloperWindows)
	if len(windows) == 0 {
		return Document{}, fmt.Errorf("no windows to preview")
	}
	index := model.NewIndex(clone.Elements)
	var doc Document
	err = codegen.Guard(func() error {
		if len(windows) == 1 {
			doc = single(clone, index, windows[0], opts)
			return nil
		}
		doc, err = multi(clone, index, windows, opts)
		return err
	})
	return doc, err
}

// single substitutes the exported document's external references with
// inline content.
func single(snap *model.Snapshot, index *model.Index, w model.Window, opts Options) Document {
	gopts := codegen.WindowOptions(w, snap.Layers)
	p := render(snap, index, w, opts)
	html := inlineAssets(codegen.GenerateHTML(p.elements, gopts), p.elements, opts.Optimize)

	html = strings.Replace(html, codegen.StylesheetTag, styleTag(p.css), 1)
	html = strings.Replace(html, codegen.ScriptTag(codegen.FileComponents),
		scriptTag(codegen.GenerateMockRelayJS(), "")+"\n"+scriptTag(codegen.GenerateComponentsJS(), ""), 1)
	html = strings.Replace(html, codegen.ScriptTag(codegen.FileBindings), scriptTag(p.bindings, ""), 1)
	html = strings.Replace(html, codegen.ScriptTag(codegen.FileScrollbar), scriptTag(codegen.GenerateScrollbarJS(), ""), 1)
	if opts.Responsive {
		responsive := scriptTag(codegen.GenerateResponsiveJS(codegen.MinScale, codegen.PreviewMaxScale), "") + "\n"
		html = strings.Replace(html, "</body>", responsive+"</body>", 1)
	}
	return Document{Title: w.Name, HTML: html, Windows: []string{w.ID}}
}

func multi(snap *model.Snapshot, index *model.Index, windows []model.Window, opts Options) (Document, error) {
	parts := make([]part, 0, len(windows))
	var fonts []string
	var styles []string
	slugs := scopes(windows)
	for i, w := range windows {
		p := render(snap, index, w, opts)
		p.slug = slugs[i]
		scoped, err := ScopeCSS(p.css, p.slug)
		if err != nil {
			return Document{}, err
		}
		fonts = append(fonts, scoped.FontFaces...)
		styles = append(styles, scoped.CSS)
		parts = append(parts, p)
	}

	title := strings.TrimSpace(snap.Name)
	if title == "" {
		title = "Faceplate preview"
	}
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"UTF-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	b.WriteString("<title>" + escape(title) + "</title>\n")
	css := strings.Join(dedupe(fonts), "\n")
	if css != "" {
		css += "\n"
	}
	css += navCSS + strings.Join(styles, "")
	b.WriteString(styleTag(css) + "\n</head>\n<body>\n")

	b.WriteString("<nav class=\"fp-preview-nav\">\n")
	for i, p := range parts {
		class := "fp-preview-tab"
		if i == 0 {
			class += " active"
		}
		fmt.Fprintf(&b, "<button type=\"button\" class=\"%s\" data-window-id=\"%s\">%s</button>\n",
			class, escape(p.window.ID), escape(p.window.Name))
	}
	b.WriteString("</nav>\n<main class=\"fp-preview-stage\">\n")
	for i, p := range parts {
		hidden := ""
		if i > 0 {
			hidden = " hidden"
		}
		fmt.Fprintf(&b, "<section class=\"fp-preview-window\" %s=\"%s\" data-window-id=\"%s\"%s>\n",
			ScopeAttr, p.slug, escape(p.window.ID), hidden)
		b.WriteString(p.body)
		b.WriteString("</section>\n")
	}
	b.WriteString("</main>\n")

	b.WriteString(scriptTag(codegen.GenerateMockRelayJS(), "") + "\n")
	b.WriteString(scriptTag(codegen.GenerateComponentsJS(), "") + "\n")
	scrollbar := false
	for _, p := range parts {
		b.WriteString(scriptTag(p.bindings, p.slug) + "\n")
		if opts.Responsive {
			b.WriteString(scriptTag(codegen.GenerateResponsiveJS(codegen.MinScale, codegen.PreviewMaxScale), p.slug) + "\n")
		}
		scrollbar = scrollbar || p.scrollbar
	}
	if scrollbar {
		b.WriteString(scriptTag(codegen.GenerateScrollbarJS(), "") + "\n")
	}
	b.WriteString(scriptTag(navJS, "") + "\n</body>\n</html>\n")

	doc := Document{Title: title, HTML: b.String()}
	for _, p := range parts {
		doc.Windows = append(doc.Windows, p.window.ID)
	}
	return doc, nil
}

// scopes returns one distinct, non-empty scope per window. Names that
// normalize alike get -2, -3 suffixes in window order.
func scopes(windows []model.Window) []string {
	used := make(map[string]bool, len(windows))
	out := make([]string, len(windows))
	for i, w := range windows {
		base := model.NormalizeName(w.Name)
		if base == "" {
			base = "window"
		}
		slug := base
		for n := 2; used[slug]; n++ {
			slug = fmt.Sprintf("%s-%d", base, n)
		}
		used[slug] = true
		out[i] = slug
	}
	return out
}

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&#34;", "'", "&#39;")

func escape(s string) string { return htmlEscaper.Replace(s) }

func styleTag(css string) string {
	return "<style>\n" + strings.ReplaceAll(css, "</style", `<\/style`) + "</style>"
}

func scriptTag(js, scope string) string {
	open := "<script>"
	if scope != "" {
		open = `<script data-scope="` + scope + `">`
	}
	return open + "\n" + strings.ReplaceAll(js, "</script", `<\/script`) + "</script>"
}

// inlineAssets swaps asset references for data URIs, since a preview has
// no bundle directory to load them from.
func inlineAssets(html string, elements []model.Element, optimize bool) string {
	for _, el := range elements {
		svg, ok := el.(*model.SVGGraphic)
		if !ok {
			continue
		}
		content := svg.SVGContent
		if optimize {
			res, _ := svgopt.OptimizeOrOriginal(content)
			content = res.SVG
		}
		uri := "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(content))
		html = strings.ReplaceAll(html, `src="`+codegen.AssetPath(svg)+`"`, `src="`+uri+`"`)
	}
	return html
}

const navCSS = `html, body {
  margin: 0;
  width: 100%;
  height: 100%;
  overflow: hidden;
  background: #0b0b0b;
}
.fp-preview-nav {
  position: fixed;
  top: 0;
  left: 0;
  right: 0;
  height: 32px;
  display: flex;
  gap: 4px;
  padding: 4px;
  box-sizing: border-box;
  background: #18181b;
  z-index: 1000;
}
.fp-preview-tab {
  border: 1px solid #3f3f46;
  border-radius: 4px;
  background: transparent;
  color: #d4d4d8;
  font: 12px sans-serif;
  padding: 0 10px;
  cursor: pointer;
}
.fp-preview-tab.active {
  background: #3f3f46;
  color: #ffffff;
}
.fp-preview-stage {
  position: absolute;
  top: 32px;
  left: 0;
  right: 0;
  bottom: 0;
}
.fp-preview-window {
  position: absolute;
  inset: 0;
}
.fp-preview-window[hidden] {
  display: none !important;
}
`

const navJS = `(function () {
  'use strict';
  var windows = Array.prototype.slice.call(document.querySelectorAll('.fp-preview-window'));
  var tabs = Array.prototype.slice.call(document.querySelectorAll('.fp-preview-tab'));

  function show(id) {
    var known = windows.some(function (w) { return w.getAttribute('data-window-id') === id; });
    if (!known) {
      return false;
    }
    windows.forEach(function (w) { w.hidden = w.getAttribute('data-window-id') !== id; });
    tabs.forEach(function (t) { t.classList.toggle('active', t.getAttribute('data-window-id') === id); });
    document.dispatchEvent(new CustomEvent('faceplate:window-shown', { detail: { window: id } }));
    return true;
  }

  tabs.forEach(function (t) {
    t.addEventListener('click', function () { show(t.getAttribute('data-window-id')); });
  });
  document.addEventListener('faceplate:navigate', function (event) {
    if (event.detail && show(event.detail.window)) {
      event.stopPropagation();
    }
  });
  document.addEventListener('click', function (event) {
    var link = event.target.closest && event.target.closest('[data-target-window]');
    if (link) {
      show(link.getAttribute('data-target-window'));
    }
  });
})();
`
