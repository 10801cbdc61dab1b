package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"todo-notify/app/config"
	"todo-notify/app/controllers"
	"todo-notify/app/routes"
	"todo-notify/app/services"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.Load()

	cmd := &cobra.Command{
		Use:           "todo-notify",
		Short:         "In-memory todo API that notifies users when tasks are deleted",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				fmt.Fprintln(os.Stderr, err)
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	cmd.Flags().IntVar(&cfg.Port, "port", cfg.Port, "HTTP listen port")
	cmd.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	cmd.Flags().BoolVar(&cfg.LogJSON, "json", cfg.LogJSON, "output logs in JSON format")
	cmd.Flags().StringVar(&cfg.Notifier, "notifier", cfg.Notifier, "notification backend (log, neo4j, redis)")

	return cmd
}

func run(ctx context.Context, cfg *config.Config) error {
	log := config.NewLogger(cfg)

	notifier, closeNotifier, err := newNotifier(ctx, cfg, log)
	if err != nil {
		log.WithError(err).Error("failed to initialize notifier")
		return err
	}
	defer closeNotifier()

	taskService := services.NewTaskService(log)
	taskController := controllers.NewTaskController(taskService, notifier, log)
	taskController.NotifyTimeout = cfg.NotifyTimeout

	server := &http.Server{
		Addr:    cfg.Address(),
		Handler: routes.NewRouter(taskController, log),
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", server.Addr).Info("server is running")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case err, ok := <-errCh:
		if ok {
			log.WithError(err).Error("server failed")
			return err
		}
		return nil
	case <-stop:
		log.Info("shut down signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("shutdown failed")
		return err
	}

	log.Info("shut down gracefully")
	return nil
}

// newNotifier builds the configured notification backend and its cleanup func.
func newNotifier(ctx context.Context, cfg *config.Config, log *logrus.Logger) (services.NotificationService, func(), error) {
	switch cfg.Notifier {
	case config.NotifierNeo4j:
		driver, err := config.InitNeo4j(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return services.NewNeo4jNotifier(driver), func() { driver.Close(context.Background()) }, nil
	case config.NotifierRedis:
		client, err := config.InitRedis(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return services.NewRedisNotifier(client, cfg.RedisNotifyKey), func() { client.Close() }, nil
	default:
		return services.NewLogNotifier(log), func() {}, nil
	}
}
