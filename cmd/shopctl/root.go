package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/simpleshop/shop-api/internal/app"
)

// cli carries state shared by subcommands once PersistentPreRunE has run.
type cli struct {
	envFile string
	cfg     *app.Config
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:           "shopctl",
		Short:         "Operational tasks for the shop API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(c.envFile)
			if err != nil {
				return err
			}
			c.cfg = cfg
			c.logger = app.NewLogger(cfg)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&c.envFile, "env-file", ".env", "dotenv file loaded before reading the environment")

	root.AddCommand(newMigrateCmd(c))
	root.AddCommand(newSeedCmd(c))
	return root
}
