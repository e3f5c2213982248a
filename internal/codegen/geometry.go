package codegen

import (
	"math"
	"strings"

	"github.com/agentic-research/faceplate/internal/model"
)

type point struct{ X, Y float64 }

// polar converts an angle in degrees, 0 at twelve o'clock, to a point on
// the circle around (cx, cy).
func polar(cx, cy, r, deg float64) point {
	rad := (deg - 90) * math.Pi / 180
	return point{cx + r*math.Cos(rad), cy + r*math.Sin(rad)}
}

// arcPath describes a clockwise arc from start to end degrees. fpArcPath
// in components.js computes the same path.
func arcPath(cx, cy, r, start, end float64) string {
	if end < start {
		start, end = end, start
	}
	if end-start < 0.001 {
		return ""
	}
	if end-start >= 360 {
		end = start + 359.999
	}
	p1 := polar(cx, cy, r, start)
	p2 := polar(cx, cy, r, end)
	large := "0"
	if end-start > 180 {
		large = "1"
	}
	return "M " + num(p1.X) + " " + num(p1.Y) +
		" A " + num(r) + " " + num(r) + " 0 " + large + " 1 " + num(p2.X) + " " + num(p2.Y)
}

func polyline(pts []point) string {
	var b strings.Builder
	for i, p := range pts {
		if i == 0 {
			b.WriteString("M ")
		} else {
			b.WriteString(" L ")
		}
		b.WriteString(num(p.X))
		b.WriteByte(' ')
		b.WriteString(num(p.Y))
	}
	return b.String()
}

// gridPath draws quarter lines across a w x h box.
func gridPath(w, h float64) string {
	var parts []string
	for i := 1; i < 4; i++ {
		x := w * float64(i) / 4
		y := h * float64(i) / 4
		parts = append(parts,
			"M "+num(x)+" 0 L "+num(x)+" "+num(h),
			"M 0 "+num(y)+" L "+num(w)+" "+num(y))
	}
	return strings.Join(parts, " ")
}

const curveSamples = 48

// curvePoints samples the static shape drawn by a curve display.
func curvePoints(el model.Curve, w, h float64) []point {
	pad := 4.0
	iw, ih := math.Max(w-2*pad, 1), math.Max(h-2*pad, 1)
	at := func(fx, fy float64) point {
		return point{pad + clamp01(fx)*iw, pad + (1-clamp01(fy))*ih}
	}
	var pts []point
	switch c := el.(type) {
	case *model.EQCurve:
		bands := math.Max(float64(c.BandCount), 1)
		for i := 0; i <= curveSamples; i++ {
			x := float64(i) / curveSamples
			y := 0.5 + 0.12*math.Sin(x*math.Pi*bands)*math.Exp(-math.Pow(x-0.5, 2)*2)
			pts = append(pts, at(x, y))
		}
	case *model.CompressorCurve:
		ratio := math.Max(c.Ratio, 1)
		for i := 0; i <= curveSamples; i++ {
			in := -60 + 60*float64(i)/curveSamples
			out := in
			if in > c.Threshold {
				out = c.Threshold + (in-c.Threshold)/ratio
			}
			pts = append(pts, at((in+60)/60, (out+60)/60))
		}
	case *model.EnvelopeDisplay:
		total := c.Attack + c.Decay + c.Release + 0.25
		if total <= 0 {
			total = 1
		}
		a := c.Attack / total
		d := a + c.Decay/total
		s := d + 0.25/total
		pts = []point{at(0, 0), at(a, 1), at(d, c.Sustain), at(s, c.Sustain), at(1, 0)}
	case *model.LFODisplay:
		for i := 0; i <= curveSamples; i++ {
			x := float64(i) / curveSamples
			phase := math.Mod(x*2, 1)
			var y float64
			switch c.Shape {
			case "triangle":
				y = 1 - math.Abs(phase*2-1)
			case "saw":
				y = phase
			case "square":
				y = 0
				if phase < 0.5 {
					y = 1
				}
			default:
				y = 0.5 + 0.5*math.Sin(phase*2*math.Pi)
			}
			pts = append(pts, at(x, 0.1+0.8*y))
		}
	case *model.FilterResponse:
		for i := 0; i <= curveSamples; i++ {
			x := float64(i) / curveSamples
			var y float64
			switch c.FilterType {
			case "highpass":
				y = 1 / (1 + math.Exp(-(x-0.4)*14))
			case "bandpass":
				y = math.Exp(-math.Pow((x-0.5)*5, 2))
			case "notch":
				y = 1 - math.Exp(-math.Pow((x-0.5)*9, 2))
			default:
				y = 1 / (1 + math.Exp((x-0.6)*14))
			}
			pts = append(pts, at(x, 0.1+0.7*y))
		}
	default:
		unhandled("html", el)
	}
	return pts
}
