package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/lsregkit/pkg/lsreg"
	"github.com/joshuapare/lsregkit/pkg/printer"
	"github.com/joshuapare/lsregkit/pkg/types"
)

func init() {
	rootCmd.AddCommand(newFindCmd())
}

func newFindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find <prefix>",
		Short: "Print bundles whose identifier starts with a prefix",
		Long: `The find command prints the path of every bundle whose identifier
starts with the given prefix. The match ignores case. With --format other
than text the matching bundles are printed in full.

Example:
  lsreg find com.apple.
  lsreg find org.mozilla --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(cmd, args)
		},
	}
	return cmd
}

func runFind(cmd *cobra.Command, args []string) error {
	prefix := args[0]

	format, err := outputFormat()
	if err != nil {
		return err
	}

	src, err := openDump(cmd.Context())
	if err != nil {
		return err
	}

	var p *printer.Printer
	if format != printer.FormatText {
		p = printer.New(os.Stdout, printer.Options{Format: format})
		if err := p.Begin(); err != nil {
			src.Close()
			return err
		}
	}

	matches := 0
	err = lsreg.IterateReader(src, lsregOptions(), func(rec types.Record) error {
		b, ok := rec.(*types.Bundle)
		if !ok || !lsreg.MatchIdentifierPrefix(b, prefix) {
			return nil
		}
		matches++
		if p != nil {
			return p.Print(b)
		}
		_, err := fmt.Fprintln(os.Stdout, types.StringValue(b.Path))
		return err
	})
	if closeErr := src.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("find: %w", err)
	}

	if p != nil {
		if err := p.End(); err != nil {
			return err
		}
	}
	printVerbose("%d bundles match %q\n", matches, prefix)
	return nil
}
