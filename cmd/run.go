package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/carsales-cli/internal/analysis"
	"github.com/KaramelBytes/carsales-cli/internal/dataset"
	"github.com/KaramelBytes/carsales-cli/internal/report"
	"github.com/KaramelBytes/carsales-cli/internal/utils"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Analyze the dataset and write the report and ranked table",
	Args:  cobra.NoArgs,
	RunE:  runAnalysis,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runAnalysis(cmd *cobra.Command, _ []string) error {
	if cfg == nil {
		return fmt.Errorf("configuration not loaded")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	input, base, err := utils.ResolveBase("", cfg.InputPath)
	if err != nil {
		return fmt.Errorf("resolve input: %w", err)
	}
	// Relative output dirs live under the same root the input was found in.
	outDir := utils.Anchor(base, cfg.OutputDir)
	runID := report.NewRunID()
	log := slog.Default().With(slog.String("run_id", runID))
	log.Info("loading dataset", slog.String("path", input))

	ds, err := dataset.Load(input, dataset.Options{Sheet: cfg.SheetName})
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}
	if len(ds.Records) == 0 {
		fmt.Fprintf(out, "%s dataset %s has no rows\n", warnMark("⚠ Warning:"), ds.Name)
	}

	opt := cfg.AnalysisOptions()
	ins, err := analysis.AnalyzeContext(cmd.Context(), ds, opt)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}
	log.Info("analysis complete",
		slog.Int("rows", ins.Rows),
		slog.Int("columns", ins.Columns),
		slog.Int("manufacturers_ranked", len(ins.TopMakers)),
		slog.Int("hp_price_points", ins.HorsepowerPricePoints),
		slog.Int("sales_price_points", ins.SalesPricePoints),
		slog.Int("workers", opt.Workers))

	written, err := report.Write(outDir, ins, report.Manifest{RunID: runID, Input: input})
	if err != nil {
		return err
	}
	log.Info("outputs written", slog.String("dir", outDir))

	fmt.Fprintf(out, "%s Wrote %s\n", okMark("✓"), written.Insights)
	fmt.Fprintf(out, "%s Wrote %s\n", okMark("✓"), written.Table)
	if !quiet {
		fmt.Fprintln(out)
		report.RenderPreview(out, report.RankedTable(ins))
	}
	return nil
}
