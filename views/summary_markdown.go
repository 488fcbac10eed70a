package views

import (
	"fmt"
	"os"
	"strconv"

	"github.com/nao1215/markdown"

	"trajectory-report/models"
	"trajectory-report/services/analysis"
)

// ExportSummaryMarkdown writes the tracking error statistics and the list
// of generated charts as a markdown document.
func ExportSummaryMarkdown(path, inputPath string, s analysis.Summary) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return &models.RenderError{Chart: "summary-markdown", Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = &models.RenderError{Chart: "summary-markdown", Path: path, Err: cerr}
		}
	}()

	md := markdown.NewMarkdown(f)
	md.H1("Relatório de Rastreamento")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Propriedade", "Valor"},
		Rows: [][]string{
			{"Arquivo de entrada", "`" + inputPath + "`"},
			{"Amostras", strconv.Itoa(s.Samples)},
		},
	})
	md.PlainText("")

	md.H2("Erro de Rastreamento")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Eixo", "Média (m)", "RMS (m)", "Máx. |erro| (m)"},
		Rows: [][]string{
			statsRow("X", s.X),
			statsRow("Y", s.Y),
		},
	})
	md.PlainText("")

	md.H2("Gráficos")
	md.PlainText("")
	files := make([]string, 0, len(ReportCharts))
	for _, k := range ReportCharts {
		files = append(files, "`"+ChartFiles[k]+"`")
	}
	md.BulletList(files...)

	if err := md.Build(); err != nil {
		return &models.RenderError{Chart: "summary-markdown", Path: path, Err: err}
	}
	return nil
}

func statsRow(axis string, a analysis.AxisStats) []string {
	return []string{
		axis,
		fmt.Sprintf("%.6f", a.Mean),
		fmt.Sprintf("%.6f", a.RMS),
		fmt.Sprintf("%.6f", a.MaxAbs),
	}
}
