package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/lsregkit/internal/config"
)

var configForce bool

func init() {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the lsreg configuration file",
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a configuration file with default settings",
		Long: `The init command writes the default configuration as YAML. Without a
path the per-user location is used.

Example:
  lsreg config init
  lsreg config init ./.lsreg.yaml --force`,
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{skipConfig: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(args)
		},
	}
	initCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing file")

	configCmd.AddCommand(initCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(args []string) error {
	path := config.DefaultPath()
	if len(args) == 1 {
		path = args[0]
	}
	if err := config.WriteDefault(path, configForce); err != nil {
		return err
	}
	printInfo("Wrote default configuration to %s\n", path)
	return nil
}
