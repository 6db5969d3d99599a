package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/lsregkit/internal/config"
	"github.com/joshuapare/lsregkit/internal/dumpfile"
	"github.com/joshuapare/lsregkit/internal/logger"
	"github.com/joshuapare/lsregkit/internal/regdump"
	"github.com/joshuapare/lsregkit/pkg/lsreg"
	"github.com/joshuapare/lsregkit/pkg/printer"
)

// skipConfig marks commands that run without loading configuration.
const skipConfig = "skip-config"

var (
	// Global flags
	verbose    bool
	quiet      bool
	formatFlag string
	cfgFile    string
	inputPath  string
	logFormat  string

	cfg = config.Defaults()
)

var rootCmd = &cobra.Command{
	Use:   "lsreg",
	Short: "Read the Launch Services registry",
	Long: `lsreg parses the database dump printed by lsregister and outputs the
registered bundles, volumes and content handlers as text, XML, JSON or YAML.

The dump is read from lsregister itself unless --input names a saved dump
("-" reads standard input).`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug details about the dump")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Log only errors")
	rootCmd.PersistentFlags().
		StringVarP(&formatFlag, "format", "f", "", "Output format: text, xml, json or yaml (default text)")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default ./.lsreg.yaml or "+config.DefaultPath()+")")
	rootCmd.PersistentFlags().StringVarP(&inputPath, "input", "i", "", "Read a saved dump instead of running lsregister")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: text or json")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig merges defaults, config file, environment and flags into cfg
// and configures logging from the result.
func loadConfig(cmd *cobra.Command, _ []string) error {
	if cmd.Annotations[skipConfig] != "" {
		return nil
	}

	v := config.New()
	_ = v.BindPFlag("format", cmd.Flags().Lookup("format"))
	_ = v.BindPFlag("log.format", cmd.Flags().Lookup("log-format"))

	loaded, err := config.Load(v, cfgFile)
	if err != nil {
		return err
	}
	cfg = loaded
	return initLogging()
}

func initLogging() error {
	level := logger.ParseLevel(cfg.Log.Level)
	switch {
	case quiet:
		level = logger.ParseLevel("error")
	case verbose:
		level = logger.ParseLevel("debug")
	}
	return logger.Init(logger.Options{
		Enabled: true,
		Writer:  os.Stderr,
		LogDir:  cfg.Log.Dir,
		Level:   level,
		JSON:    strings.EqualFold(cfg.Log.Format, "json"),
	})
}

// lsregOptions maps the loaded configuration onto parser options.
func lsregOptions() *lsreg.Options {
	return &lsreg.Options{
		HeaderLines: cfg.HeaderLines,
		Encoding:    cfg.Encoding,
	}
}

// outputFormat returns the format selected by flag or configuration.
func outputFormat() (printer.Format, error) {
	if formatFlag != "" {
		return printer.ParseFormat(formatFlag)
	}
	return printer.ParseFormat(cfg.Format)
}

// openDump returns the dump to parse: the --input file, standard input, or
// the output of lsregister.
func openDump(ctx context.Context) (io.ReadCloser, error) {
	switch inputPath {
	case "":
	case "-":
		return io.NopCloser(os.Stdin), nil
	default:
		printVerbose("Reading dump: %s\n", inputPath)
		return dumpfile.Open(inputPath)
	}

	argv := cfg.Argv()
	if len(argv) == 0 {
		argv = regdump.ResolveCommand()
	}
	printVerbose("Running: %s\n", strings.Join(argv, " "))
	return regdump.Open(ctx, argv)
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message to stderr if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
