package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"trajectory-report/controller"
	"trajectory-report/utils"
)

// NewRootCmd creates the root command. Running it with no flags renders the
// report from data/saida.csv into data/.
func NewRootCmd() *cobra.Command {
	var (
		configPath string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "trajectory-report",
		Short: "Render diagnostic charts of a simulated robot trajectory",
		Long: `trajectory-report reads the simulator log (data/saida.csv) and writes five
PNG charts to data/: X and Y position against the reference, the XY path,
the tracking error and the heading angle.

Settings are read from --config, config/report.yaml or
$XDG_CONFIG_HOME/trajectory-report/report.yaml, in that order.`,
		Version:       getVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReport(cmd, configPath, verbose)
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to report.yaml")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(NewVersionCmd())
	return cmd
}

func runReport(cmd *cobra.Command, configPath string, verbose bool) error {
	cfg, path, err := utils.ResolveReportConfig(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	lvl, _ := utils.ParseLevel(cfg.Log.Level) // checked by Validate
	if verbose {
		lvl = utils.DEBUG
	}
	logger := utils.InitLogger(lvl, os.Stderr, cfg.Log.File)
	logger.SetLevel(lvl)
	defer logger.Close()

	if path != "" {
		logger.Debug("config loaded from %s", path)
	} else {
		logger.Debug("no config file found, using defaults")
	}
	logger.Debug("input=%s  output_dir=%s  dpi=%d",
		cfg.Report.InputPath, cfg.Report.OutputDir, cfg.Report.DPI)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return controller.NewReportController(cfg, cmd.OutOrStdout()).Run(ctx)
}

// Execute runs the root command and exits 1 on any error.
func Execute() {
	if err := NewRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "[ERROR]", err)
		os.Exit(1)
	}
}
