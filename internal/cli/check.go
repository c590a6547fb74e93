package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"blogfront/config"
	"blogfront/internal/cms"
)

// NewCheckCommand creates the check command, which probes the content API and
// reports what the site would see.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:          "check",
		Short:        "Probe the content API",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, cmd)
		},
	}
}

func runCheck(opts *RootOptions, cmd *cobra.Command) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	client := cms.New(cfg.CMSBaseURL)
	ctx := cmd.Context()

	posts := client.ListPosts(ctx)
	categories := client.ListCategories(ctx)
	fmt.Fprintf(cmd.OutOrStdout(), "content API at %s: %d posts, %d categories\n",
		cfg.CMSBaseURL, len(posts), len(categories))
	if len(posts) == 0 && len(categories) == 0 {
		return fmt.Errorf("content API at %s returned no data", cfg.CMSBaseURL)
	}
	return nil
}
