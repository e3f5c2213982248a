package bundle

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/agentic-research/faceplate/internal/astcheck"
	"github.com/agentic-research/faceplate/internal/codegen"
	"github.com/agentic-research/faceplate/internal/model"
	"github.com/agentic-research/faceplate/internal/svgopt"
)

// generator produces bundle files from a cloned snapshot. Generators may
// panic with *codegen.GenerationError; callers run it under codegen.Guard.
type generator struct {
	ctx    context.Context
	snap   *model.Snapshot
	index  *model.Index
	opts   Options
	log    *slog.Logger
	tracer trace.Tracer

	bundle *Bundle
	svgs   []svgopt.Result
}

// windowFiles generates one window's files under prefix ("" or
// "<folder>/") and describes them for INTEGRATION.md.
func (g *generator) windowFiles(w model.Window, prefix string) codegen.IntegrationWindow {
	_, span := g.tracer.Start(g.ctx, "bundle.window", trace.WithAttributes(
		attribute.String("window.id", w.ID),
		attribute.String("window.name", w.Name),
	))
	defer span.End()

	elements := g.index.Resolve(w.ElementIDs)
	gopts := codegen.WindowOptions(w, g.snap.Layers)
	gopts.Responsive = g.opts.Responsive
	gopts.MockRelay = g.opts.IncludeMockRelay

	start := len(g.bundle.Files)
	add := func(name, data string) { g.bundle.add(prefix+name, data) }

	add(codegen.FileHTML, codegen.GenerateHTML(elements, gopts))
	add(codegen.FileCSS, codegen.GenerateCSS(elements, gopts))
	add(codegen.FileComponents, codegen.GenerateComponentsJS())
	add(codegen.FileBindings, codegen.GenerateBindingsJS(elements, gopts))
	if g.opts.Responsive {
		add(codegen.FileResponsive, codegen.GenerateResponsiveJS(codegen.MinScale, codegen.ExportMaxScale))
	}
	if codegen.NeedsScrollbar(elements) {
		add(codegen.FileScrollbar, codegen.GenerateScrollbarJS())
	}
	if g.opts.IncludeMockRelay {
		add(codegen.FileMockRelay, codegen.GenerateMockRelayJS())
	}
	for _, el := range elements {
		svg, ok := el.(*model.SVGGraphic)
		if !ok {
			continue
		}
		add(codegen.AssetPath(svg), g.asset(w, svg))
	}

	g.log.Debug("window generated",
		"window", w.Name, "elements", len(elements), "files", len(g.bundle.Files)-start)
	span.SetAttributes(attribute.Int("window.elements", len(elements)))

	iw := codegen.IntegrationWindow{Name: w.Name, Params: codegen.HostParams(elements)}
	if prefix != "" {
		iw.Folder = prefix[:len(prefix)-1]
	}
	for _, f := range g.bundle.Files[start:] {
		iw.Files = append(iw.Files, f.Path[len(prefix):])
	}
	return iw
}

// asset returns the markup shipped for an svggraphic element. Optimizer
// failures keep the original markup.
func (g *generator) asset(w model.Window, el *model.SVGGraphic) string {
	if !g.opts.Optimize {
		return el.SVGContent
	}
	res, err := svgopt.OptimizeOrOriginal(el.SVGContent)
	if err != nil {
		g.log.Warn("svg optimization failed, shipping original",
			"window", w.Name, "element", el.Name, "error", err)
	}
	g.svgs = append(g.svgs, res)
	return res.SVG
}

// generate builds the whole bundle for windows. A single window is laid
// out at the bundle root; several windows each get a folder named after
// the normalized window name.
func (g *generator) generate(windows []model.Window, project string) *Bundle {
	g.bundle = &Bundle{Windows: len(windows)}
	var docs []codegen.IntegrationWindow
	for _, w := range windows {
		prefix := ""
		if len(windows) > 1 {
			prefix = model.NormalizeName(w.Name) + "/"
		}
		docs = append(docs, g.windowFiles(w, prefix))
	}
	g.bundle.add(codegen.FileIntegration, codegen.GenerateIntegrationDoc(project, docs))
	if g.opts.Optimize && len(g.svgs) > 0 {
		agg := svgopt.Aggregate(g.svgs)
		agg.SVGs = nil
		g.bundle.Optimization = &agg
	}
	return g.bundle
}

// Generate runs the generators for windows of snap without validation or
// delivery. snap must not be shared with concurrent writers; Export
// clones it first.
func Generate(ctx context.Context, snap *model.Snapshot, windows []model.Window, opts Options, log *slog.Logger, tracer trace.Tracer) (b *Bundle, err error) {
	if log == nil {
		log = slog.Default()
	}
	if tracer == nil {
		tracer = defaultTracer()
	}
	g := &generator{
		ctx:    ctx,
		snap:   snap,
		index:  model.NewIndex(snap.Elements),
		opts:   opts,
		log:    log,
		tracer: tracer,
	}
	err = codegen.Guard(func() error {
		b = g.generate(windows, opts.project(snap))
		return nil
	})
	if err != nil {
		return nil, err
	}
	if err := Check(b); err != nil {
		return nil, err
	}
	return b, nil
}

// Check runs the syntax gate over every generated artifact.
func Check(b *Bundle) error {
	files := make(map[string][]byte, len(b.Files))
	for _, f := range b.Files {
		files[f.Path] = f.Data
	}
	if err := astcheck.CheckAll(files); err != nil {
		return fmt.Errorf("generated artifact failed syntax check: %w", err)
	}
	return nil
}
