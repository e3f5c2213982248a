// Package svgopt shrinks SVG documents with conservative, lossless token
// passes. Shapes are never rewritten and ids, viewBox, title and desc
// survive untouched.
package svgopt

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// ErrNotSVG is returned for well-formed XML whose root is not <svg>.
var ErrNotSVG = errors.New("document root is not <svg>")

// Result is the outcome for one document.
type Result struct {
	SVG            string  `json:"svg"`
	OriginalBytes  int     `json:"originalBytes"`
	OptimizedBytes int     `json:"optimizedBytes"`
	SavingsPercent float64 `json:"savingsPercent"`
}

// BatchResult aggregates several documents. SavingsPercent is computed from
// the byte totals, not averaged over documents.
type BatchResult struct {
	SVGs                []string `json:"svgs"`
	TotalOriginalBytes  int      `json:"totalOriginalBytes"`
	TotalOptimizedBytes int      `json:"totalOptimizedBytes"`
	SavingsPercent      float64  `json:"savingsPercent"`
}

// Savings returns (orig-opt)/orig as a percentage, 0 when orig is 0.
func Savings(orig, opt int) float64 {
	if orig <= 0 {
		return 0
	}
	return float64(orig-opt) / float64(orig) * 100
}

// Optimize runs every pass over svg. The output is re-parsed before it is
// returned; any failure yields an error and no result.
func Optimize(svg string) (Result, error) {
	if err := check(svg); err != nil {
		return Result{}, fmt.Errorf("parse svg: %w", err)
	}
	out, err := rewrite(svg)
	if err != nil {
		return Result{}, fmt.Errorf("optimize svg: %w", err)
	}
	if err := check(out); err != nil {
		return Result{}, fmt.Errorf("verify optimized svg: %w", err)
	}
	if len(out) > len(svg) {
		out = svg
	}
	return Result{
		SVG:            out,
		OriginalBytes:  len(svg),
		OptimizedBytes: len(out),
		SavingsPercent: Savings(len(svg), len(out)),
	}, nil
}

// OptimizeOrOriginal is Optimize with the original text substituted on
// failure. The error is returned for logging only; the result is always
// usable.
func OptimizeOrOriginal(svg string) (Result, error) {
	res, err := Optimize(svg)
	if err != nil {
		return Result{SVG: svg, OriginalBytes: len(svg), OptimizedBytes: len(svg)}, err
	}
	return res, nil
}

// Batch optimizes each document with OptimizeOrOriginal. Failures are
// reported per index in the returned map.
func Batch(svgs []string) (BatchResult, map[int]error) {
	results := make([]Result, len(svgs))
	var failed map[int]error
	for i, s := range svgs {
		r, err := OptimizeOrOriginal(s)
		if err != nil {
			if failed == nil {
				failed = map[int]error{}
			}
			failed[i] = err
		}
		results[i] = r
	}
	return Aggregate(results), failed
}

// Aggregate totals per-document results.
func Aggregate(results []Result) BatchResult {
	res := BatchResult{SVGs: make([]string, len(results))}
	for i, r := range results {
		res.SVGs[i] = r.SVG
		res.TotalOriginalBytes += r.OriginalBytes
		res.TotalOptimizedBytes += r.OptimizedBytes
	}
	res.SavingsPercent = Savings(res.TotalOriginalBytes, res.TotalOptimizedBytes)
	return res
}

// check parses svg strictly and requires an <svg> root.
func check(svg string) error {
	dec := xml.NewDecoder(strings.NewReader(svg))
	root := ""
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if se, ok := tok.(xml.StartElement); ok && root == "" {
			root = se.Name.Local
		}
	}
	if root != "svg" {
		return ErrNotSVG
	}
	return nil
}

var editorNamespaces = map[string]bool{
	"http://www.inkscape.org/namespaces/inkscape":        true,
	"http://sodipodi.sourceforge.net/DTD/sodipodi-0.dtd": true,
}

// textual elements keep their whitespace.
var textual = map[string]bool{
	"text": true, "tspan": true, "textPath": true, "title": true, "desc": true, "style": true, "script": true,
}

// rewrite streams raw tokens so prefixes stay as written, dropping what the
// passes remove and writing the rest back.
func rewrite(svg string) (string, error) {
	dec := xml.NewDecoder(strings.NewReader(svg))
	w := &writer{}
	editors := map[string]bool{"inkscape": true, "sodipodi": true}
	skip := 0
	var stack []string

	for {
		tok, err := dec.RawToken()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}
		if skip > 0 {
			switch tok.(type) {
			case xml.StartElement:
				skip++
			case xml.EndElement:
				skip--
			}
			continue
		}

		switch t := tok.(type) {
		case xml.ProcInst:
			if t.Target == "xml" {
				w.procInst(t)
			}
		case xml.Directive, xml.Comment:
		case xml.StartElement:
			for _, a := range t.Attr {
				if a.Name.Space == "xmlns" && editorNamespaces[a.Value] {
					editors[a.Name.Local] = true
				}
			}
			if editors[t.Name.Space] || t.Name.Local == "metadata" {
				skip = 1
				continue
			}
			attrs := t.Attr[:0:0]
			for _, a := range t.Attr {
				if editors[a.Name.Space] || (a.Name.Space == "xmlns" && editors[a.Name.Local]) {
					continue
				}
				a.Value = trimAttr(a.Name.Local, a.Value)
				attrs = append(attrs, a)
			}
			t.Attr = attrs
			w.start(t)
			stack = append(stack, t.Name.Local)
		case xml.EndElement:
			w.end(t)
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			inText := len(stack) > 0 && textual[stack[len(stack)-1]]
			if !inText && len(bytes.TrimSpace(t)) == 0 {
				continue
			}
			w.text(t)
		}
	}
	return w.String(), nil
}

// geometric attributes whose numbers can lose trailing zeros.
var geometric = map[string]bool{
	"x": true, "y": true, "width": true, "height": true, "cx": true, "cy": true, "r": true,
	"rx": true, "ry": true, "x1": true, "y1": true, "x2": true, "y2": true, "d": true,
	"points": true, "stroke-width": true, "opacity": true, "fill-opacity": true,
	"stroke-opacity": true, "offset": true, "font-size": true, "dx": true, "dy": true,
}

var transforms = map[string]bool{"transform": true, "gradientTransform": true, "patternTransform": true}

var (
	decimalRe = regexp.MustCompile(`\d*\.\d+`)
	numberRe  = regexp.MustCompile(`-?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?`)
)

func trimAttr(name, value string) string {
	switch {
	case geometric[name]:
		return trimZeros(value)
	case transforms[name]:
		return boundPrecision(value)
	}
	return value
}

// trimZeros drops trailing fraction zeros: "1.500" becomes "1.5", "2.0"
// becomes "2". A number is left alone when trimming would merge it with
// an adjacent ".5" style number.
func trimZeros(s string) string {
	var b strings.Builder
	last := 0
	for _, loc := range decimalRe.FindAllStringIndex(s, -1) {
		m := s[loc[0]:loc[1]]
		t := strings.TrimSuffix(strings.TrimRight(m, "0"), ".")
		merges := !strings.Contains(t, ".") && loc[1] < len(s) && s[loc[1]] == '.'
		if t == "" || merges {
			t = m
		}
		b.WriteString(s[last:loc[0]])
		b.WriteString(t)
		last = loc[1]
	}
	b.WriteString(s[last:])
	return b.String()
}

// boundPrecision rewrites each number with at most seven significant
// digits, keeping the original when that is not shorter.
func boundPrecision(s string) string {
	return numberRe.ReplaceAllStringFunc(s, func(m string) string {
		v, err := strconv.ParseFloat(m, 64)
		if err != nil {
			return m
		}
		f := strconv.FormatFloat(v, 'g', 7, 64)
		if len(f) < len(m) {
			return f
		}
		return m
	})
}

// writer serializes raw tokens. A start tag stays open until the next
// token so empty elements can self-close.
type writer struct {
	b    strings.Builder
	open bool
}

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", `"`, "&quot;", "\n", "&#xA;", "\t", "&#x9;", "\r", "&#xD;")
)

func qname(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

func (w *writer) flush() {
	if w.open {
		w.b.WriteByte('>')
		w.open = false
	}
}

func (w *writer) procInst(p xml.ProcInst) {
	w.flush()
	w.b.WriteString("<?" + p.Target)
	if inst := strings.TrimSpace(string(p.Inst)); inst != "" {
		w.b.WriteString(" " + inst)
	}
	w.b.WriteString("?>")
}

func (w *writer) start(se xml.StartElement) {
	w.flush()
	w.b.WriteString("<" + qname(se.Name))
	for _, a := range se.Attr {
		w.b.WriteString(" " + qname(a.Name) + `="` + attrEscaper.Replace(a.Value) + `"`)
	}
	w.open = true
}

func (w *writer) end(ee xml.EndElement) {
	if w.open {
		w.b.WriteString("/>")
		w.open = false
		return
	}
	w.b.WriteString("</" + qname(ee.Name) + ">")
}

func (w *writer) text(cd xml.CharData) {
	w.flush()
	w.b.WriteString(textEscaper.Replace(string(cd)))
}

func (w *writer) String() string {
	w.flush()
	return w.b.String()
}
