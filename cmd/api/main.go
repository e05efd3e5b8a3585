package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/marcelsud/hookview/capture"
	"github.com/marcelsud/hookview/capture/postgres"
	"github.com/marcelsud/hookview/capture/sqlite"
	"github.com/marcelsud/hookview/config"
	"github.com/marcelsud/hookview/internal/http/chi"
	"github.com/marcelsud/hookview/metrics"
	"github.com/marcelsud/hookview/seed"
	"github.com/marcelsud/hookview/stream"
	"github.com/rs/zerolog"
)

const TIMEOUT = 30 * time.Second

/* main is where the wiring of all packages happens: dependencies are
 * constructed here and handed down. Imports flow one direction only:
 * the application imports the business layer, which imports storage.
 */

func main() {
	cfg, err := config.GetConfig()
	if err != nil {
		fmt.Println(err)
		return
	}
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT,
	)
	defer stop()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	repo, err := newRepository(ctx, cfg)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer repo.Close(ctx)

	hub := stream.NewHub(logger)
	svc := capture.NewService(repo, hub)

	if cfg.EndpointsFile != "" {
		if err := seedEndpoints(ctx, svc, cfg.EndpointsFile); err != nil {
			fmt.Println(err)
			return
		}
	}

	collector := metrics.NewStoreCollector(repo, hub)
	exporter, err := metrics.NewOTelExporter(collector)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer exporter.Shutdown(context.Background())

	r := chi.Handlers(ctx, svc, hub, cfg.WebhookSecret, exporter.Handler())
	srv := &http.Server{
		/* No WriteTimeout: /events connections are long-lived and must
		 * not be cut by the server
		 */
		ReadTimeout: 30 * time.Second,
		Addr:        ":" + cfg.Port,
		Handler:     r,
		/* Deriving request contexts from the signal context makes open
		 * viewer streams unwind during shutdown instead of pinning it
		 */
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	errShutdown := make(chan error, 1)
	go shutdown(srv, ctx, errShutdown)
	fmt.Printf("Listening on port %s\n", cfg.Port)
	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		fmt.Println(err)
		return
	}
	err = <-errShutdown
	if err != nil {
		fmt.Println(err)
		return
	}
}

func newRepository(ctx context.Context, cfg *config.Config) (capture.Repository, error) {
	switch cfg.DBDriver {
	case "postgres":
		repo, err := postgres.NewRepository(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		if err := repo.CreateTables(ctx); err != nil {
			return nil, err
		}
		return repo, nil
	case "sqlite3":
		return sqlite.NewRepository(cfg.DBName)
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER: %s", cfg.DBDriver)
	}
}

// seedEndpoints pre-registers the endpoints listed in endpoints.yaml
func seedEndpoints(ctx context.Context, svc capture.UseCase, path string) error {
	loader := seed.NewLoader()
	if err := loader.Load(path); err != nil {
		return err
	}
	for _, url := range loader.List() {
		if _, err := svc.ResolveEndpoint(ctx, url); err != nil {
			return fmt.Errorf("seeding endpoint %s: %w", url, err)
		}
	}
	return nil
}

func shutdown(server *http.Server, ctxShutdown context.Context, errShutdown chan error) {
	<-ctxShutdown.Done()

	ctxTimeout, stop := context.WithTimeout(context.Background(), TIMEOUT)
	defer stop()

	err := server.Shutdown(ctxTimeout)
	switch err {
	case nil:
		fmt.Printf("\nShutting down server...\n")
		errShutdown <- nil
	case context.DeadlineExceeded:
		errShutdown <- fmt.Errorf("Forcing closing the server")
	default:
		errShutdown <- fmt.Errorf("Forcing closing the server")
	}
}
