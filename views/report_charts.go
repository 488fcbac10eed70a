package views

import (
	"strings"

	"gonum.org/v1/plot/vg"

	"trajectory-report/utils"
)

// Renderer draws the report charts with a shared size and resolution.
type Renderer struct {
	width            vg.Length
	height           vg.Length
	trajectoryHeight vg.Length
	dpi              int
}

// NewRenderer takes figure sizes (inches) and DPI from the report config.
func NewRenderer(cfg *utils.ReportConfig) *Renderer {
	size := cfg.Report.Size
	return &Renderer{
		width:            vg.Length(size.WidthIn) * vg.Inch,
		height:           vg.Length(size.HeightIn) * vg.Inch,
		trajectoryHeight: vg.Length(size.TrajectoryHeightIn) * vg.Inch,
		dpi:              cfg.Report.DPI,
	}
}

// RenderPositionChart plots one coordinate over time: reference dashed red,
// realized solid blue. axisLabel is "X (m)" or "Y (m)".
func (r *Renderer) RenderPositionChart(kind ChartKind, time, reference, realized []float64, axisLabel, title, outputPath string) error {
	axis := axisName(axisLabel)
	return SaveChart(LineChart{
		Kind:   kind,
		Title:  title,
		XLabel: LabelTime,
		YLabel: axisLabel,
		Series: []Series{
			{Label: axis + " de Referência", X: time, Y: reference, Color: ColorRed, Dashed: true},
			{Label: axis + " Real", X: time, Y: realized, Color: ColorBlue},
		},
		Width:  r.width,
		Height: r.height,
		DPI:    r.dpi,
	}, outputPath)
}

// RenderTrajectoryChart plots both paths in the XY plane.
func (r *Renderer) RenderTrajectoryChart(referenceX, referenceY, realizedX, realizedY []float64, outputPath string) error {
	return SaveChart(LineChart{
		Kind:   ChartTrajectoryXY,
		Title:  TitleTrajectoryXY,
		XLabel: LabelX,
		YLabel: LabelY,
		Series: []Series{
			{Label: "Trajetória de Referência", X: referenceX, Y: referenceY, Color: ColorRed, Dashed: true},
			{Label: "Trajetória Real", X: realizedX, Y: realizedY, Color: ColorBlue},
		},
		Width:  r.width,
		Height: r.trajectoryHeight,
		DPI:    r.dpi,
	}, outputPath)
}

// RenderErrorChart plots the per-axis tracking error over time.
func (r *Renderer) RenderErrorChart(time, errorX, errorY []float64, outputPath string) error {
	return SaveChart(LineChart{
		Kind:   ChartTrackingError,
		Title:  TitleTrackingError,
		XLabel: LabelTime,
		YLabel: LabelError,
		Series: []Series{
			{Label: "Erro em X", X: time, Y: errorX, Color: ColorGreen},
			{Label: "Erro em Y", X: time, Y: errorY, Color: ColorMagenta},
		},
		Width:  r.width,
		Height: r.height,
		DPI:    r.dpi,
	}, outputPath)
}

// RenderAngleChart plots the heading angle over time.
func (r *Renderer) RenderAngleChart(time, heading []float64, outputPath string) error {
	return SaveChart(LineChart{
		Kind:   ChartHeading,
		Title:  TitleHeading,
		XLabel: LabelTime,
		YLabel: LabelHeading,
		Series: []Series{
			{Label: "Ângulo θ(t)", X: time, Y: heading, Color: ColorCyan},
		},
		Width:  r.width,
		Height: r.height,
		DPI:    r.dpi,
	}, outputPath)
}

// axisName strips the unit from a label: "X (m)" -> "X".
func axisName(label string) string {
	if f := strings.Fields(label); len(f) > 0 {
		return f[0]
	}
	return label
}
