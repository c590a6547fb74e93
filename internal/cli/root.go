package cli

import (
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
}

// NewRootCommand creates the root command for the blogfront CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "blogfront",
		Short: "Server-rendered blog front end over a headless CMS",
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "blogfront.yaml", "path to the config file")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))

	return cmd
}
