package main

import (
	"context"
	"time"

	"github.com/deppfellow/recruitly/internal/database"
	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, loggerService, log, err := bootstrap()
			if err != nil {
				return err
			}
			defer loggerService.Shutdown()

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			return database.Migrate(ctx, &log, cfg)
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "maximum time to spend migrating")
	return cmd
}
