package stats

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
)

// Series is one named line of a chart.
type Series struct {
	Name   string
	Values []float64
	// Color is an optional #RRGGBB hex colour; empty falls back to the ANSI palette.
	Color string
	// Fixed pins the vertical range to [Min, Max] instead of the data range.
	Fixed bool
	Min   float64
	Max   float64
}

// PlotOptions controls plot dimensions and colour output.
type PlotOptions struct {
	Width      int
	Height     int
	ForceColor bool
}

const (
	defaultPlotHeight   = 10
	minPlotWidth        = 10
	axisLabelTop        = "100%"
	axisLabelMid        = "50%"
	axisLabelBottom     = "0%"
	axisSeparator       = " │ "
	colorReset          = "\x1b[0m"
	terminalWidthBackup = 80
)

// dashPattern plots a dot when x%period < on.
type dashPattern struct {
	name   string
	period int
	on     int
}

var dashPatterns = []dashPattern{
	{name: "solid", period: 1, on: 1},
	{name: "dashed", period: 6, on: 3},
	{name: "dotted", period: 4, on: 1},
}

func (p dashPattern) keep(x int) bool {
	return p.period <= 1 || abs(x)%p.period < p.on
}

var fallbackColors = []string{
	"\x1b[36m",
	"\x1b[35m",
	"\x1b[33m",
	"\x1b[32m",
}

// PlotSeries renders the series as overlaid braille lines. Each series is
// scaled to its own range; the axis shows the position within that range.
func PlotSeries(w io.Writer, title string, series []Series, opts PlotOptions) error {
	drawn := make([]Series, 0, len(series))
	for _, s := range series {
		if len(s.Values) > 0 {
			drawn = append(drawn, s)
		}
	}
	if len(drawn) == 0 {
		return nil
	}
	height := opts.Height
	if height <= 0 {
		height = defaultPlotHeight
	}
	width := opts.Width
	if width <= 0 {
		width = PlotWidthFor(terminalWidth())
	}
	width = max(width, minPlotWidth)

	layers := make([]*canvas, len(drawn))
	ranges := make([]string, len(drawn))
	for i, s := range drawn {
		lo, hi := seriesRange(s)
		ranges[i] = fmt.Sprintf("%s %s..%s", s.Name, formatBound(lo), formatBound(hi))
		layers[i] = newCanvas(width, height)
		plotLayer(layers[i], resample(s.Values, width), lo, hi, dashPatterns[i%len(dashPatterns)])
	}

	useColor := shouldUseColor(w, opts.ForceColor)
	var b strings.Builder
	if title != "" {
		b.WriteString(title + "\n")
	}
	b.WriteString("Range: " + strings.Join(ranges, "  ") + "\n")
	labelWidth := utf8.RuneCountInString(axisLabelTop)
	for row := 0; row < height; row++ {
		fmt.Fprintf(&b, "%*s%s", labelWidth, axisLabel(row, height), axisSeparator)
		for col := 0; col < width; col++ {
			var mask uint8
			owner := -1
			for i, layer := range layers {
				if m := layer.at(col, row); m != 0 {
					mask |= m
					if owner < 0 {
						owner = i
					}
				}
			}
			if useColor && owner >= 0 {
				b.WriteString(seriesColor(drawn[owner], owner))
				b.WriteRune(brailleRune(mask))
				b.WriteString(colorReset)
				continue
			}
			b.WriteRune(brailleRune(mask))
		}
		b.WriteByte('\n')
	}
	b.WriteString(legend(drawn, useColor) + "\n\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func plotLayer(c *canvas, values []float64, lo, hi float64, pattern dashPattern) {
	bottom := c.dotHeight() - 1
	toY := func(v float64) int {
		pos := (v - lo) / (hi - lo)
		return max(0, min(bottom, int(math.Round((1-pos)*float64(bottom)))))
	}
	prevX, prevY := -1, -1
	for i, v := range values {
		x, y := i*2, toY(v)
		if prevX < 0 {
			c.line(x, y, x, y, pattern.keep)
		} else {
			c.line(prevX, prevY, x, y, pattern.keep)
		}
		prevX, prevY = x, y
	}
}

// seriesRange returns the vertical bounds, widening a flat range so it can be drawn.
func seriesRange(s Series) (float64, float64) {
	if s.Fixed && s.Max > s.Min {
		return s.Min, s.Max
	}
	lo, hi := seriesMinMaxSingle(s.Values)
	if hi-lo < 1e-9 {
		lo--
		hi++
	}
	return lo, hi
}

func seriesMinMaxSingle(values []float64) (float64, float64) {
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func axisLabel(row, height int) string {
	switch {
	case row == 0:
		return axisLabelTop
	case row == height-1:
		return axisLabelBottom
	case height > 2 && row == height/2:
		return axisLabelMid
	}
	return ""
}

// resample maps values onto n columns: bucket means when shrinking,
// linear interpolation when stretching.
func resample(values []float64, n int) []float64 {
	if len(values) == 0 || n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if len(values) >= n {
		for i := range out {
			start := i * len(values) / n
			end := max(start+1, (i+1)*len(values)/n)
			var sum float64
			for _, v := range values[start:end] {
				sum += v
			}
			out[i] = sum / float64(end-start)
		}
		return out
	}
	if len(values) == 1 || n == 1 {
		for i := range out {
			out[i] = values[0]
		}
		return out
	}
	last := len(values) - 1
	for i := range out {
		pos := float64(i) * float64(last) / float64(n-1)
		idx := min(int(pos), last-1)
		frac := pos - float64(idx)
		out[i] = values[idx]*(1-frac) + values[idx+1]*frac
	}
	return out
}

func legend(series []Series, useColor bool) string {
	parts := make([]string, len(series))
	for i, s := range series {
		label := fmt.Sprintf("%c %s (%s)", brailleRune(0x01), s.Name, dashPatterns[i%len(dashPatterns)].name)
		if useColor {
			label = seriesColor(s, i) + label + colorReset
		}
		parts[i] = label
	}
	return "Legend: " + strings.Join(parts, "  ")
}

// seriesColor returns the escape sequence for a series, preferring its hex colour.
func seriesColor(s Series, idx int) string {
	if code, ok := ansiFromHex(s.Color); ok {
		return code
	}
	return fallbackColors[idx%len(fallbackColors)]
}

// ansiFromHex converts #RRGGBB into a 24-bit foreground escape.
func ansiFromHex(hex string) (string, bool) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return "", false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", (v>>16)&0xff, (v>>8)&0xff, v&0xff), true
}

// PlotWidthFor computes a plot width that fits within the total available width.
func PlotWidthFor(totalWidth int) int {
	if totalWidth <= 0 {
		return minPlotWidth
	}
	axisWidth := utf8.RuneCountInString(axisLabelTop) + utf8.RuneCountInString(axisSeparator)
	return max(minPlotWidth, totalWidth-axisWidth)
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}

func shouldUseColor(w io.Writer, force bool) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if force {
		return true
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
