package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"crazygenerics/cmd"
	httpadapter "crazygenerics/internal/adapters/in/http"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		log.Fatal(err)
	}
}

func newRootCommand() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "crazygenerics",
		Short:         "Entity collection service built on generic containers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load")

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the collection audit job",
		RunE: func(c *cobra.Command, _ []string) error {
			config, err := cmd.LoadConfig(envFile)
			if err != nil {
				return err
			}
			if err = config.ApplyFlags(c.Flags()); err != nil {
				return err
			}
			if err = config.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			return serveApp(c.Context(), config)
		},
	}
	cmd.RegisterFlags(serve.Flags())

	demo := &cobra.Command{
		Use:   "demo",
		Short: "Print a sample collection and what the collection utilities say about it",
		RunE: func(c *cobra.Command, _ []string) error {
			return cmd.RunDemo(c.Context(), c.OutOrStdout(), time.Now())
		},
	}

	root.AddCommand(serve, demo)
	return root
}

func serveApp(parent context.Context, config cmd.Config) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if _, err := httpadapter.LoadOpenAPI(ctx); err != nil {
		return err
	}

	app, err := cmd.NewCompositionRoot(ctx, config, logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			log.Errorf("Failed to close storage: %v", closeErr)
		}
	}()

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e := httpadapter.NewEcho(app.CreateHTTPServer(), logger)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)); !errors.Is(startErr, http.ErrServerClosed) {
			return startErr
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
