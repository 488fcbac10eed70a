package views

import (
	"bufio"
	"errors"
	"fmt"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"trajectory-report/models"
)

// Series colours, matching the single-letter matplotlib codes r, b, g, m, c.
var (
	ColorRed     = color.RGBA{R: 255, A: 255}
	ColorBlue    = color.RGBA{B: 255, A: 255}
	ColorGreen   = color.RGBA{G: 128, A: 255}
	ColorMagenta = color.RGBA{R: 191, B: 191, A: 255}
	ColorCyan    = color.RGBA{G: 191, B: 191, A: 255}
)

const lineWidth = 1.5 // points

var dashPattern = []vg.Length{vg.Points(5.5), vg.Points(2.4)}

// errLengthMismatch means a series was built from columns of different length.
var errLengthMismatch = errors.New("series x/y length mismatch")

// Series is one polyline of a chart.
type Series struct {
	Label  string
	X, Y   []float64
	Color  color.Color
	Dashed bool
}

// LineChart describes a complete chart: every render in the report is one
// LineChart value passed to SaveChart.
type LineChart struct {
	Kind   ChartKind
	Title  string
	XLabel string
	YLabel string
	Series []Series
	Width  vg.Length
	Height vg.Length
	DPI    int
}

// Plot builds a fresh gonum plot for the chart. Series with no points are
// left out, so an empty table yields axes, grid and title only.
func (c LineChart) Plot() (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = c.Title
	p.X.Label.Text = c.XLabel
	p.Y.Label.Text = c.YLabel
	p.Add(plotter.NewGrid())
	p.Legend.Top = true

	lines, err := c.lines()
	if err != nil {
		return nil, err
	}
	for i, l := range lines {
		if l == nil {
			continue
		}
		p.Add(l)
		p.Legend.Add(c.Series[i].Label, l)
	}
	return p, nil
}

// lines builds one styled polyline per series. A series with no points
// yields a nil line at its index; Plot skips it.
func (c LineChart) lines() ([]*plotter.Line, error) {
	lines := make([]*plotter.Line, 0, len(c.Series))
	for _, s := range c.Series {
		if len(s.X) != len(s.Y) {
			return nil, fmt.Errorf("%q: %w (%d != %d)", s.Label, errLengthMismatch, len(s.X), len(s.Y))
		}
		if len(s.X) == 0 {
			lines = append(lines, nil)
			continue
		}
		line, err := plotter.NewLine(xys(s.X, s.Y))
		if err != nil {
			return nil, fmt.Errorf("%q: %w", s.Label, err)
		}
		line.LineStyle.Color = s.Color
		line.LineStyle.Width = vg.Points(lineWidth)
		if s.Dashed {
			line.LineStyle.Dashes = dashPattern
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// SaveChart renders c on its own raster canvas and writes it as PNG to path.
// The canvas lives only for this call and the file is closed on every path.
func SaveChart(c LineChart, path string) error {
	p, err := c.Plot()
	if err != nil {
		return &models.RenderError{Chart: c.Kind.String(), Path: path, Err: err}
	}

	canvas := vgimg.NewWith(
		vgimg.UseWH(c.Width, c.Height),
		vgimg.UseDPI(c.DPI),
	)
	p.Draw(draw.New(canvas))

	if err := writePNG(canvas, path); err != nil {
		return &models.RenderError{Chart: c.Kind.String(), Path: path, Err: err}
	}
	return nil
}

func writePNG(canvas *vgimg.Canvas, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	bw := bufio.NewWriter(f)
	if _, err := (vgimg.PngCanvas{Canvas: canvas}).WriteTo(bw); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return bw.Flush()
}

func xys(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, len(x))
	for i := range pts {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	return pts
}
