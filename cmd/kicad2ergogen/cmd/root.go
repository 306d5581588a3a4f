package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/OpenTraceLab/kicad2ergogen/pkg/ergogen"
)

var (
	// Global flags
	verbose bool
	outdir  string
)

var rootCmd = &cobra.Command{
	Use:   "kicad2ergogen <file_or_directory>",
	Short: "Convert KiCad footprints to parametric ergogen footprint modules",
	Long: `kicad2ergogen rewrites KiCad .kicad_mod footprint files into parametric
ergogen footprint modules (.js), injecting placeholders for position,
rotation, side, reference designator, and pad nets.

Examples:
  kicad2ergogen switch.kicad_mod              # convert one footprint
  kicad2ergogen footprints/                   # convert a directory tree
  kicad2ergogen footprints/ -o my-footprints  # pick the output directory`,
	Version:      "0.1.0",
	Args:         cobra.ExactArgs(1),
	RunE:         runConvert,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.Flags().StringVarP(&outdir, "outdir", "o", "ergogen", "output directory, created if absent")
}

func runConvert(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(verbose)
	if err != nil {
		return fmt.Errorf("logger setup: %w", err)
	}
	defer logger.Sync()

	// Concurrent batch runs may race on creation, MkdirAll tolerates that
	if err := os.MkdirAll(outdir, 0o755); err != nil {
		return fmt.Errorf("create output directory %s: %w", outdir, err)
	}

	target := args[0]
	info, err := os.Stat(target)
	if err != nil {
		return err
	}

	converter := ergogen.NewConverter(logger)
	if info.IsDir() {
		return converter.ConvertDir(target, outdir)
	}
	return converter.ConvertFile(target, outdir)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}
