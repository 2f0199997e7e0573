package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-bundle-composer/internal/config"
	"github.com/MKhiriev/go-bundle-composer/internal/handler"
	"github.com/MKhiriev/go-bundle-composer/internal/report"
	"github.com/MKhiriev/go-bundle-composer/internal/server"
	"github.com/MKhiriev/go-bundle-composer/internal/store"
	"github.com/MKhiriev/go-bundle-composer/models"
)

func (a *App) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "composer",
		Short:         "Compose bundler configurations for development and production",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	a.flags = config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		a.composeCommand(),
		a.describeCommand(),
		a.deliverCommand(),
		a.serveCommand(),
		a.versionCommand(),
	)

	return root
}

func (a *App) composeCommand() *cobra.Command {
	var toClipboard bool

	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Write the composed configuration for the selected profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.setup()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			profile := s.cfg.Profile()
			outPath := s.cfg.Build.OutputPath

			if !toClipboard {
				_, err = s.services.ComposeService.Export(ctx, profile, outPath, s.cfg.Format())
				return err
			}

			var cc models.ComposedConfiguration
			if outPath != "" {
				cc, err = s.services.ComposeService.Export(ctx, profile, outPath, s.cfg.Format())
			} else {
				cc, err = s.services.ComposeService.Compose(ctx, profile)
			}
			if err != nil {
				return err
			}
			data, err := store.Encode(s.cfg.Format(), cc)
			if err != nil {
				return err
			}
			if err = a.copyToClipboard(string(data)); err != nil {
				return fmt.Errorf("copy to clipboard: %w", err)
			}

			s.log.Info().Str("profile", profile.String()).Str("fingerprint", cc.Fingerprint()).
				Msg("composed configuration copied to clipboard")
			return nil
		},
	}

	a.flags.RegisterBuildFlags(cmd.Flags())
	cmd.Flags().BoolVar(&toClipboard, "clipboard", false, "Copy the composed configuration to the clipboard instead of stdout")

	return cmd
}

func (a *App) describeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Print a human-readable summary of the composed configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.setup()
			if err != nil {
				return err
			}

			cc, err := s.services.ComposeService.Compose(cmd.Context(), s.cfg.Profile())
			if err != nil {
				return err
			}

			return report.Describe(a.out, cc)
		},
	}

	a.flags.RegisterBuildFlags(cmd.Flags())
	return cmd
}

func (a *App) deliverCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deliver",
		Short: "Hand the composed configuration to the bundler runtime",
		Long: "Production configurations start a one-off build, development " +
			"configurations start the development server.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.setup()
			if err != nil {
				return err
			}
			if s.cfg.Adapter.HTTPAddress == "" {
				return errRuntimeAddressRequired
			}

			cc, err := s.services.ComposeService.Deliver(cmd.Context(), s.cfg.Profile())
			if err != nil {
				return err
			}

			s.log.Info().
				Str("profile", cc.Profile().String()).
				Str("fingerprint", cc.Fingerprint()).
				Str("runtime", s.cfg.Adapter.HTTPAddress).
				Msg("composed configuration delivered")
			return nil
		},
	}

	a.flags.RegisterBuildFlags(cmd.Flags())
	a.flags.RegisterRuntimeFlags(cmd.Flags())
	return cmd
}

func (a *App) serveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve composed configurations over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.setup()
			if err != nil {
				return err
			}

			handlers, err := handler.NewHandlers(s.services, s.cfg.Server, s.log)
			if err != nil {
				return fmt.Errorf("error creating handlers: %w", err)
			}

			srv, err := server.NewServer(handlers, s.cfg.Server, s.log)
			if err != nil {
				return fmt.Errorf("error creating server: %w", err)
			}

			return srv.RunServer(cmd.Context())
		},
	}

	a.flags.RegisterBuildFlags(cmd.Flags())
	a.flags.RegisterServerFlags(cmd.Flags())
	return cmd
}

func (a *App) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			a.buildInfo.Print(cmd.OutOrStdout())
		},
	}
}
