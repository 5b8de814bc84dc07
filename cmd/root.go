package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	cfgpkg "github.com/KaramelBytes/carsales-cli/internal/config"
	"github.com/KaramelBytes/carsales-cli/internal/logging"
)

var (
	// Global flags
	cfgFile string
	debug   bool
	quiet   bool
	// Run overrides (override config if set)
	flagInput     string
	flagOutputDir string
	flagSheet     string
	flagTopN      int
	flagWorkers   int

	// Loaded configuration
	cfg *cfgpkg.Global
)

var (
	okMark   = color.New(color.FgGreen).SprintFunc()
	warnMark = color.New(color.FgYellow).SprintFunc()
	errMark  = color.New(color.FgRed).SprintFunc()
)

var rootCmd = &cobra.Command{
	Use:   "carsales",
	Short: "Car sales insights: missing values, top manufacturers, price correlations",
	Long: `carsales reads a vehicle sales dataset (CSV or XLSX), audits missing numeric values,
ranks manufacturers by total sales, averages prices by vehicle type and correlates
horsepower and sales with price. It writes insights.md and top_manufacturers.csv.

Running carsales without a subcommand performs the analysis.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runAnalysis,
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errMark("✗ Error:"), err)
		os.Exit(1)
	}
}

func init() {
	// Config is reloaded on every execution so each run sees current flags and env.
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error { return loadConfig() }

	// Persistent global flags available to all subcommands
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is ~/.carsales/config.yaml)")
	pf.BoolVar(&debug, "debug", false, "enable debug logging")
	pf.BoolVarP(&quiet, "quiet", "q", false, "do not print the ranked table preview")
	pf.StringVarP(&flagInput, "input", "i", "", "dataset path, CSV or XLSX (overrides config)")
	pf.StringVarP(&flagOutputDir, "output-dir", "o", "", "directory for insights.md and top_manufacturers.csv (overrides config)")
	pf.StringVar(&flagSheet, "sheet", "", "XLSX: worksheet name (overrides config)")
	pf.IntVar(&flagTopN, "top", 0, "number of manufacturers to rank (overrides config)")
	pf.IntVar(&flagWorkers, "workers", 0, "parallel workers for the aggregation pass (overrides config)")
}

func loadConfig() error {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		return err
	}

	// Apply CLI overrides if provided
	f := rootCmd.PersistentFlags()
	if f.Changed("input") && flagInput != "" {
		c.InputPath = flagInput
	}
	if f.Changed("output-dir") && flagOutputDir != "" {
		c.OutputDir = flagOutputDir
	}
	if f.Changed("sheet") {
		c.SheetName = flagSheet
	}
	if f.Changed("top") {
		c.TopN = flagTopN
	}
	if f.Changed("workers") {
		c.Workers = flagWorkers
	}
	level := c.LogLevel
	if debug {
		level = "debug"
	}
	logging.Setup(os.Stderr, level, c.LogFormat)
	cfg = c
	return nil
}
