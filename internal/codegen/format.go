package codegen

import (
	"encoding/json"
	"html"
	"math"
	"strconv"
	"strings"
)

// num formats a float with at most four decimals and no trailing zeros.
// Output is stable across platforms.
func num(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "0"
	}
	f = math.Round(f*1e4) / 1e4
	if f == 0 {
		return "0"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func px(f float64) string { return num(f) + "px" }

func pct(f float64) string { return num(f*100) + "%" }

func esc(s string) string { return html.EscapeString(s) }

// cssValue strips characters that would terminate a declaration.
func cssValue(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ';', '{', '}', '<', '>', '\n', '\r', '"', '\\':
			return -1
		}
		return r
	}, strings.TrimSpace(s))
}

// cssString quotes s as a CSS string literal.
func cssString(s string) string {
	return `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", " ").Replace(s) + `"`
}

// jsString quotes s as a JavaScript string literal.
func jsString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func clamp01(f float64) float64 { return math.Max(0, math.Min(1, f)) }

// ratio maps index i of n positions into [0,1].
func ratio(i, n int) float64 {
	if n < 2 {
		return 0
	}
	return clamp01(float64(i) / float64(n-1))
}

// formatValue renders a readout the same way fpFormatValue does at runtime.
func formatValue(value, normalized float64, format string, decimals int, suffix string) string {
	if decimals < 0 {
		decimals = 0
	}
	fixed := func(v float64) string { return strconv.FormatFloat(v, 'f', decimals, 64) }
	switch format {
	case "percentage":
		return strconv.FormatFloat(normalized*100, 'f', 0, 64) + "%"
	case "db":
		return fixed(value) + " dB"
	case "hz":
		if math.Abs(value) >= 1000 {
			return fixed(value/1000) + " kHz"
		}
		return fixed(value) + " Hz"
	case "custom":
		return fixed(value) + suffix
	default:
		return fixed(value)
	}
}

// decls is an ordered list of CSS declarations.
type decls []string

func (d *decls) add(prop, value string) {
	if value == "" {
		return
	}
	*d = append(*d, prop+": "+value)
}

func (d *decls) color(prop, value string) { d.add(prop, cssValue(value)) }

func (d decls) inline() string {
	if len(d) == 0 {
		return ""
	}
	return strings.Join(d, "; ") + ";"
}

func (d decls) rule(b *strings.Builder, selector string) {
	if len(d) == 0 {
		return
	}
	b.WriteString(selector)
	b.WriteString(" {\n")
	for _, x := range d {
		b.WriteString("  ")
		b.WriteString(x)
		b.WriteString(";\n")
	}
	b.WriteString("}\n")
}
