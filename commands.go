package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rohanthewiz/logger"
	"github.com/spf13/cobra"

	"gostyles/config"
	"gostyles/tui"
	"gostyles/web"
	"gostyles/web/pages/demo"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type rootFlags struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "gostyles",
		Short:         "Styled UI components rendered on the server or in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a YAML config file")

	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newTUICmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// loadConfig reads the config file and sets the log level from it.
func loadConfig(flags *rootFlags) (config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return cfg, err
	}
	logger.SetLogLevel(cfg.Log.Level)
	if cfg.UsesDevSecret() {
		logger.Warn("Session cookies are signed with the development secret; set "+
			config.EnvSessionSecret+" or session.secret", "config", flags.configPath)
	}
	return cfg, nil
}

func variantOf(d config.Demo) demo.Variant {
	return demo.Variant{Palette: d.Palette, Style: d.Style, Size: d.Size, Fixed: d.Fixed}
}

func newServeCmd(flags *rootFlags) *cobra.Command {
	var address string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the component demo over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			if address != "" {
				cfg.Server.Address = address
			}

			srv, err := web.NewServer(cfg)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return web.Run(ctx, srv)
		},
	}

	cmd.Flags().StringVarP(&address, "address", "a", "", "Listen address, overrides the config file")
	return cmd
}

func newTUICmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the component demo in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}

			return tui.Run(cmd.Context(), variantOf(cfg.Demo), os.Stdin, os.Stdout)
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display build information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "gostyles %s\ncommit: %s\nbuilt: %s\n", version, commit, date)
			return nil
		},
	}
}
