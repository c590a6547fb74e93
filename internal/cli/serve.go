package cli

import (
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"blogfront/config"
	"blogfront/internal/cms"
	"blogfront/internal/contact"
	"blogfront/internal/server"
	"blogfront/internal/session"
)

// NewServeCommand creates the serve command, which runs the site.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:          "serve",
		Short:        "Run the blog site",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(rootOpts)
		},
	}
}

func runServe(opts *RootOptions) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	sessions, err := session.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer sessions.Close()

	client := cms.New(cfg.CMSBaseURL)
	contactForm := contact.New(client, cfg.ContactFormID)

	srv, err := server.New(client, sessions, contactForm, cfg.TemplateDir)
	if err != nil {
		return err
	}
	srv.SessionTTL = cfg.SessionTTL()

	log.Printf("listening on %s (content API at %s)", cfg.Addr, cfg.CMSBaseURL)
	return http.ListenAndServe(cfg.Addr, srv)
}
