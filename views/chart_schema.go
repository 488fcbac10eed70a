package views

// ChartSchema fixes the identity of each chart: output file name and texts.
// This file is the single source of truth for what the report emits.

// ChartKind identifies one of the report charts.
type ChartKind int

const (
	ChartPositionX ChartKind = iota
	ChartPositionY
	ChartTrajectoryXY
	ChartTrackingError
	ChartHeading
)

// ReportCharts lists the charts in the order a run renders them.
var ReportCharts = []ChartKind{
	ChartPositionX,
	ChartPositionY,
	ChartTrajectoryXY,
	ChartTrackingError,
	ChartHeading,
}

var chartNames = map[ChartKind]string{
	ChartPositionX:     "position-x",
	ChartPositionY:     "position-y",
	ChartTrajectoryXY:  "trajectory-xy",
	ChartTrackingError: "tracking-error",
	ChartHeading:       "heading",
}

func (k ChartKind) String() string {
	if n, ok := chartNames[k]; ok {
		return n
	}
	return "unknown"
}

// ChartFiles maps each chart to its file name inside the output directory.
var ChartFiles = map[ChartKind]string{
	ChartPositionX:     "posicao_x.png",
	ChartPositionY:     "posicao_y.png",
	ChartTrajectoryXY:  "trajetoria_xy.png",
	ChartTrackingError: "erro_rastreamento.png",
	ChartHeading:       "angulo_theta.png",
}

// Axis labels and titles.
const (
	LabelTime    = "Tempo (s)"
	LabelX       = "X (m)"
	LabelY       = "Y (m)"
	LabelError   = "Erro (m)"
	LabelHeading = "Ângulo (rad)"

	TitlePositionX     = "Componente X ao longo do tempo"
	TitlePositionY     = "Componente Y ao longo do tempo"
	TitleTrajectoryXY  = "Trajetória no Plano XY"
	TitleTrackingError = "Erro de Rastreamento ao longo do tempo"
	TitleHeading       = "Ângulo da Frente do Robô ao longo do tempo"
)
