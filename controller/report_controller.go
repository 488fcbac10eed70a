package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"trajectory-report/models"
	"trajectory-report/services/analysis"
	"trajectory-report/services/ingest"
	"trajectory-report/utils"
	"trajectory-report/views"
)

// ReportController runs the whole report pipeline:
//
//	data/saida.csv ──► ingest.Load ──► analysis.ComputeErrors ──► views.Renderer
//	                                                                   │
//	                                                      five PNG charts in data/
//
// Steps run in order on the calling goroutine and the first failure aborts
// the run. Charts written before the failure stay on disk.
type ReportController struct {
	cfg      *utils.ReportConfig
	renderer *views.Renderer
	out      io.Writer

	written []string
}

// NewReportController prepares a run. The completion line goes to out
// (os.Stdout when nil); diagnostics go through utils.L().
func NewReportController(cfg *utils.ReportConfig, out io.Writer) *ReportController {
	if out == nil {
		out = os.Stdout
	}
	return &ReportController{
		cfg:      cfg,
		renderer: views.NewRenderer(cfg),
		out:      out,
	}
}

// Run loads the trajectory log, derives the tracking error and renders the
// five charts in the fixed order X, Y, XY, error, heading.
func (rc *ReportController) Run(ctx context.Context) error {
	rc.written = rc.written[:0]
	input := rc.cfg.Report.InputPath
	outDir := rc.cfg.Report.OutputDir

	table, err := ingest.Load(input)
	if err != nil {
		return err
	}
	if table.Len() == 0 {
		utils.L().Warn("%s has no data rows; charts will be empty", input)
	}

	errs := analysis.ComputeErrors(table)

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return &models.RenderError{Chart: "output-dir", Path: outDir, Err: err}
	}

	steps := []struct {
		kind   views.ChartKind
		render func(path string) error
	}{
		{views.ChartPositionX, func(p string) error {
			return rc.renderer.RenderPositionChart(views.ChartPositionX,
				table.T, table.XRef, table.X, views.LabelX, views.TitlePositionX, p)
		}},
		{views.ChartPositionY, func(p string) error {
			return rc.renderer.RenderPositionChart(views.ChartPositionY,
				table.T, table.YRef, table.Y, views.LabelY, views.TitlePositionY, p)
		}},
		{views.ChartTrajectoryXY, func(p string) error {
			return rc.renderer.RenderTrajectoryChart(table.XRef, table.YRef, table.X, table.Y, p)
		}},
		{views.ChartTrackingError, func(p string) error {
			return rc.renderer.RenderErrorChart(table.T, errs.X, errs.Y, p)
		}},
		{views.ChartHeading, func(p string) error {
			return rc.renderer.RenderAngleChart(table.T, table.Theta, p)
		}},
	}

	for _, s := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		path := filepath.Join(outDir, views.ChartFiles[s.kind])
		if err := s.render(path); err != nil {
			return err
		}
		rc.written = append(rc.written, path)
		utils.L().Debug("chart written  kind=%s  path=%s", s.kind, path)
	}

	if err := rc.export(table, errs); err != nil {
		return err
	}

	fmt.Fprintf(rc.out, "[INFO] Todos os gráficos foram gerados em %s/\n", filepath.ToSlash(filepath.Clean(outDir)))
	return nil
}

// export writes the optional derived-data files enabled in the config.
func (rc *ReportController) export(table *models.Table, errs models.TrackingError) error {
	exp := rc.cfg.Export
	outDir := rc.cfg.Report.OutputDir

	if exp.ErrorsCSV {
		path := filepath.Join(outDir, "erro_rastreamento.csv")
		if err := views.ExportErrorsCSV(path, exp.BufferSizeKB*1024, analysis.ExportRows(table, errs)); err != nil {
			return err
		}
		rc.written = append(rc.written, path)
		utils.L().Info("tracking error exported to %s", path)
	}

	if exp.SummaryMarkdown {
		path := filepath.Join(outDir, "resumo.md")
		if err := views.ExportSummaryMarkdown(path, rc.cfg.Report.InputPath, analysis.Summarize(errs)); err != nil {
			return err
		}
		rc.written = append(rc.written, path)
		utils.L().Info("summary written to %s", path)
	}
	return nil
}

// Written returns the files produced by the last Run, in write order.
func (rc *ReportController) Written() []string {
	return append([]string(nil), rc.written...)
}
