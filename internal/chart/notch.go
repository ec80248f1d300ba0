package chart

import (
	"image/color"

	"github.com/huangsam/qmetrics/core/algo"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Notch draws the median confidence interval of one box as a pair of
// chevrons pinched towards the median line.
type Notch struct {
	Location  float64
	Median    float64
	Low       float64
	High      float64
	Width     vg.Length
	LineStyle draw.LineStyle
}

var (
	_ plot.Plotter    = &Notch{} // Compile-time check
	_ plot.DataRanger = &Notch{} // Compile-time check
)

// NewNotch returns a notch for values drawn at the box location.
func NewNotch(location float64, values []float64, width vg.Length) *Notch {
	lo, hi := notchBounds(values)
	_, median, _ := algo.Quartiles(values)
	return &Notch{
		Location: location,
		Median:   median,
		Low:      lo,
		High:     hi,
		Width:    width,
		LineStyle: draw.LineStyle{
			Color: color.Black,
			Width: vg.Points(1),
		},
	}
}

// Plot implements the plot.Plotter interface.
func (n *Notch) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	x := trX(n.Location)
	half := n.Width / 2
	pinch := half / 2
	lo, med, hi := trY(n.Low), trY(n.Median), trY(n.High)

	left := []vg.Point{{X: x - half, Y: hi}, {X: x - pinch, Y: med}, {X: x - half, Y: lo}}
	right := []vg.Point{{X: x + half, Y: hi}, {X: x + pinch, Y: med}, {X: x + half, Y: lo}}
	c.StrokeLines(n.LineStyle, c.ClipLinesY(left, right)...)
}

// DataRange implements the plot.DataRanger interface.
func (n *Notch) DataRange() (xmin, xmax, ymin, ymax float64) {
	return n.Location, n.Location, n.Low, n.High
}
