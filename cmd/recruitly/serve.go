package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/recruitly/internal/database"
	"github.com/deppfellow/recruitly/internal/handler"
	"github.com/deppfellow/recruitly/internal/lib/cron"
	"github.com/deppfellow/recruitly/internal/middleware"
	"github.com/deppfellow/recruitly/internal/repository"
	"github.com/deppfellow/recruitly/internal/router"
	"github.com/deppfellow/recruitly/internal/server"
	"github.com/deppfellow/recruitly/internal/service"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 30 * time.Second

func newServeCommand() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API, the email workers and the scheduler",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), migrate)
		},
	}

	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply pending migrations before serving")
	return cmd
}

func serve(parent context.Context, migrate bool) error {
	cfg, loggerService, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer loggerService.Shutdown()

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if migrate {
		if err := database.Migrate(ctx, &log, cfg); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	srv, err := server.New(cfg, &log, loggerService)
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	repos := repository.NewRepositories(srv)

	if err := srv.Job.InitHandlers(cfg, &log, repos.Mail); err != nil {
		return fmt.Errorf("failed to initialize job handlers: %w", err)
	}
	if err := srv.Job.Start(); err != nil {
		return fmt.Errorf("failed to start job workers: %w", err)
	}

	services, err := service.NewService(srv, repos)
	if err != nil {
		return fmt.Errorf("failed to create services: %w", err)
	}

	middlewares := middleware.NewMiddlewares(srv, services.User)
	handlers := handler.NewHandlers(srv, services)
	srv.SetupHTTPServer(router.NewRouter(handlers, middlewares))

	scheduler := cron.New(&log, 0)
	if err := services.Reminder.Register(scheduler); err != nil {
		return fmt.Errorf("failed to register scheduled tasks: %w", err)
	}
	scheduler.Start()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Start()
	}()

	var runErr error
	select {
	case runErr = <-serveErr:
		if runErr != nil {
			log.Error().Err(runErr).Msg("server stopped unexpectedly")
		}
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	scheduler.Stop(shutdownCtx)
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info().Msg("server exited properly")
	return runErr
}
