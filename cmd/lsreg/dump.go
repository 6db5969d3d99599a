package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/lsregkit/pkg/lsreg"
	"github.com/joshuapare/lsregkit/pkg/printer"
)

var dumpSkipUnknown bool

func init() {
	cmd := newDumpCmd()
	cmd.Flags().BoolVar(&dumpSkipUnknown, "skip-unknown", false, "Omit sections with an unsupported record type")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dump",
		Aliases: []string{"list"},
		Short:   "Output every record in the registry",
		Long: `The dump command parses the whole Launch Services registry and prints
every bundle, volume and handler record.

Example:
  lsreg dump
  lsreg dump --format xml > registry.xml
  lsregister -dump | lsreg dump --input - --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(cmd)
		},
	}
	return cmd
}

func runDump(cmd *cobra.Command) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	src, err := openDump(cmd.Context())
	if err != nil {
		return err
	}

	p := printer.New(os.Stdout, printer.Options{Format: format, SkipUnknown: dumpSkipUnknown})
	if err := p.Begin(); err != nil {
		src.Close()
		return err
	}

	err = lsreg.IterateReader(src, lsregOptions(), p.Print)
	if closeErr := src.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("dump: %w", err)
	}

	if err := p.End(); err != nil {
		return err
	}
	printVerbose("Printed %d records\n", p.Count())
	return nil
}
