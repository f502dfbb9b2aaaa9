// Package plot renders profile data as a line chart.
//
// Every dependent series of a [profile.Data] is drawn against the independent
// series with round markers, one color per series from [palette.Colors], and
// a legend to the right of the axes. [RenderSVG] builds the SVG directly;
// PNG and PDF are produced from it by rsvg-convert:
//
//	svg, err := plot.RenderSVG(d, plot.Options{Title: "Iteration", XLabel: "block size", YLabel: "s"})
//	png, err := plot.Render(d, plot.FormatPNG, opts)
package plot

import (
	"bytes"
	"fmt"
	"html"
	"math"
	"strings"

	"github.com/matzehuels/strprof/pkg/errors"
	"github.com/matzehuels/strprof/pkg/palette"
	"github.com/matzehuels/strprof/pkg/profile"
)

// Output formats.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
	FormatPDF = "pdf"
)

// ValidFormats lists the formats [Render] accepts.
var ValidFormats = map[string]bool{
	FormatSVG: true,
	FormatPNG: true,
	FormatPDF: true,
}

// Defaults.
const (
	DefaultWidth  = 800.0
	DefaultHeight = 600.0
	DefaultScale  = 2.0
)

const (
	marginLeft   = 80.0
	marginTop    = 50.0
	marginBottom = 60.0
	legendGap    = 20.0
	charWidth    = 7.0
	markerRadius = 3.5
	maxTicks     = 6
	fontFamily   = "Helvetica, Arial, sans-serif"
)

// Options controls chart text and size.
type Options struct {
	Title  string
	XLabel string
	YLabel string
	Width  float64 // pixels; DefaultWidth when zero
	Height float64 // pixels; DefaultHeight when zero
	Scale  float64 // PNG scale factor; DefaultScale when zero
}

// withDefaults fills zero fields and rejects negative sizes.
func (o Options) withDefaults() (Options, error) {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Width < 0 || o.Height < 0 || o.Scale < 0 {
		return o, errors.New(errors.ErrCodeInvalidParameter,
			"width, height and scale must be positive (got %v, %v, %v)", o.Width, o.Height, o.Scale)
	}
	return o, nil
}

// ValidateFormat rejects formats [Render] cannot produce.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q (want svg, png or pdf)", format)
	}
	return nil
}

// Render produces the chart in the requested format.
func Render(d *profile.Data, format string, opts Options) ([]byte, error) {
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}
	svg, err := RenderSVG(d, opts)
	if err != nil {
		return nil, err
	}
	return Convert(svg, format, opts)
}

// Convert turns a chart produced by [RenderSVG] into format. Rendering once
// and converting per format avoids redrawing when several formats are wanted.
func Convert(svg []byte, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatSVG:
		return svg, nil
	case FormatPNG:
		o, err := opts.withDefaults()
		if err != nil {
			return nil, err
		}
		return ToPNG(svg, o.Scale)
	case FormatPDF:
		return ToPDF(svg)
	}
	return nil, ValidateFormat(format)
}

// RenderSVG draws d as an SVG line chart.
func RenderSVG(d *profile.Data, opts Options) ([]byte, error) {
	if d == nil {
		return nil, errors.New(errors.ErrCodeInvalidParameter, "profile data is required")
	}
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}

	labels := d.DependentLabels()
	xs := d.Independent()
	ys := d.Dependent()
	colors := palette.Hex(palette.Colors(len(ys)))

	legendWidth := legendWidthFor(labels)
	plotW := opts.Width - marginLeft - legendWidth
	plotH := opts.Height - marginTop - marginBottom
	if plotW < 10 || plotH < 10 {
		return nil, errors.New(errors.ErrCodeInvalidParameter,
			"chart %vx%v is too small for its legend", opts.Width, opts.Height)
	}

	xMin, xMax := extent(xs)
	yMin, yMax := extent(ys...)
	xAxis := niceAxis(xMin, xMax, maxTicks)
	yAxis := niceAxis(yMin, yMax, maxTicks)
	left, right := marginLeft, marginLeft+plotW
	top, bottom := marginTop, marginTop+plotH

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f" font-family="%s">`+"\n",
		opts.Width, opts.Height, opts.Width, opts.Height, fontFamily)
	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="#ffffff"/>`+"\n", opts.Width, opts.Height)

	renderGrid(&buf, xAxis, yAxis, left, right, top, bottom)
	fmt.Fprintf(&buf, `  <rect class="frame" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="#000000"/>`+"\n",
		left, top, plotW, plotH)
	renderText(&buf, opts, left, right, top, bottom)

	for i, series := range ys {
		renderSeries(&buf, xs, series, colors[i], xAxis, yAxis, left, right, top, bottom)
	}
	renderLegend(&buf, labels, colors, right+legendGap, top+plotH/2)

	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

// extent returns the min and max over all values, or (+Inf, -Inf) when empty.
func extent(series ...[]float64) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range series {
		for _, v := range s {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	return lo, hi
}

func legendWidthFor(labels []string) float64 {
	longest := 0
	for _, l := range labels {
		longest = max(longest, len([]rune(l)))
	}
	if len(labels) == 0 {
		return legendGap
	}
	return legendGap + 40 + float64(longest)*charWidth + 10
}

func renderGrid(buf *bytes.Buffer, x, y axis, left, right, top, bottom float64) {
	for _, v := range x.ticks {
		px := x.scale(v, left, right)
		fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#e5e5e5"/>`+"\n", px, top, px, bottom)
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-size="11" text-anchor="middle">%s</text>`+"\n",
			px, bottom+16, x.label(v))
	}
	for _, v := range y.ticks {
		py := y.scale(v, bottom, top)
		fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#e5e5e5"/>`+"\n", left, py, right, py)
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-size="11" text-anchor="end" dominant-baseline="middle">%s</text>`+"\n",
			left-6, py, y.label(v))
	}
}

func renderText(buf *bytes.Buffer, opts Options, left, right, top, bottom float64) {
	cx := (left + right) / 2
	cy := (top + bottom) / 2
	if opts.Title != "" {
		fmt.Fprintf(buf, `  <text class="title" x="%.1f" y="%.1f" font-size="16" text-anchor="middle">%s</text>`+"\n",
			cx, top-18, html.EscapeString(opts.Title))
	}
	if opts.XLabel != "" {
		fmt.Fprintf(buf, `  <text class="xlabel" x="%.1f" y="%.1f" font-size="13" text-anchor="middle">%s</text>`+"\n",
			cx, bottom+42, html.EscapeString(opts.XLabel))
	}
	if opts.YLabel != "" {
		fmt.Fprintf(buf, `  <text class="ylabel" x="%.1f" y="%.1f" font-size="13" text-anchor="middle" transform="rotate(-90 %.1f %.1f)">%s</text>`+"\n",
			left-56, cy, left-56, cy, html.EscapeString(opts.YLabel))
	}
}

func renderSeries(buf *bytes.Buffer, xs, ys []float64, color string, x, y axis, left, right, top, bottom float64) {
	if len(ys) == 0 {
		return
	}
	points := make([]string, len(ys))
	for i := range ys {
		points[i] = fmt.Sprintf("%.2f,%.2f", x.scale(xs[i], left, right), y.scale(ys[i], bottom, top))
	}

	fmt.Fprintf(buf, `  <g class="series" stroke="%s" fill="%s">`+"\n", color, color)
	fmt.Fprintf(buf, `    <polyline points="%s" fill="none" stroke-width="1.5"/>`+"\n", strings.Join(points, " "))
	for _, p := range points {
		px, py, _ := strings.Cut(p, ",")
		fmt.Fprintf(buf, `    <circle cx="%s" cy="%s" r="%.1f" stroke="none"/>`+"\n", px, py, markerRadius)
	}
	buf.WriteString("  </g>\n")
}

func renderLegend(buf *bytes.Buffer, labels, colors []string, x, cy float64) {
	if len(labels) == 0 {
		return
	}
	const rowHeight = 20.0
	y0 := cy - float64(len(labels))*rowHeight/2

	buf.WriteString(`  <g class="legend">` + "\n")
	for i, label := range labels {
		y := y0 + float64(i)*rowHeight + rowHeight/2
		fmt.Fprintf(buf, `    <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1.5"/>`+"\n",
			x, y, x+30, y, colors[i])
		fmt.Fprintf(buf, `    <circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>`+"\n", x+15, y, markerRadius, colors[i])
		fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f" font-size="12" dominant-baseline="middle">%s</text>`+"\n",
			x+40, y, html.EscapeString(label))
	}
	buf.WriteString("  </g>\n")
}
