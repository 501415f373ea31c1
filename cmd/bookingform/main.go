package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/goliatone/go-bookingform/components/vehicles"
	"github.com/goliatone/go-bookingform/internal/config"
	"github.com/goliatone/go-bookingform/internal/logging"
	"github.com/goliatone/go-bookingform/pkg/booking"
	"github.com/goliatone/go-bookingform/pkg/catalog"
	"github.com/goliatone/go-bookingform/pkg/form"
	"github.com/goliatone/go-bookingform/pkg/storage"
	"github.com/goliatone/go-bookingform/pkg/wizard"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults to ./bookingform.yaml when present)")
	envFile := flag.String("env", ".env", "dotenv file loaded before reading BOOKINGFORM_ variables")
	printOpenAPI := flag.Bool("openapi", false, "print the booking OpenAPI document and exit")
	serve := flag.Bool("serve", false, "serve the vehicle make/model options endpoint")
	catalogPath := flag.String("catalog", "", "product catalog file (JSON or YAML) overriding the embedded one")
	flag.Parse()

	if *printOpenAPI {
		os.Stdout.Write(booking.OpenAPISpec())
		return
	}

	cfg, err := config.Load(config.Options{ConfigFile: *configPath, EnvFile: *envFile})
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *catalogPath != "" {
		cfg.Catalog.Path = *catalogPath
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *serve {
		if err := runServer(ctx, cfg, logger); err != nil {
			logger.Fatal("server stopped", zap.Error(err))
		}
		return
	}

	if err := runWizard(ctx, cfg, logger); err != nil {
		if errors.Is(err, wizard.ErrAborted) || errors.Is(err, wizard.ErrCancelled) {
			fmt.Println("No booking was submitted.")
			return
		}
		logger.Fatal("booking failed", zap.Error(err))
	}
}

func runWizard(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	products, err := loadCatalog(cfg.Catalog.Path)
	if err != nil {
		return err
	}

	store, closeStore, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		return err
	}
	defer func() { _ = closeStore() }()

	bookingForm := booking.NewForm(
		booking.WithStore(store),
		booking.WithLogger(logger),
		booking.WithPayloadCheck(cfg.PayloadCheck),
	)

	options := []wizard.Option{wizard.WithLogger(logger)}
	if table, err := vehicles.DefaultTable(); err == nil {
		options = append(options, wizard.WithVehicles(table))
	} else {
		logger.Warn("vehicle table unavailable", zap.Error(err))
	}
	w := wizard.New(options...)

	state, err := form.Load(ctx, bookingForm, form.New(products, nil))
	if err != nil {
		return err
	}
	if state, err = w.Run(ctx, state); err != nil {
		return err
	}

	for {
		var outcome booking.Outcome
		state, outcome, err = form.Submit(ctx, bookingForm, state)
		if err != nil {
			return err
		}
		if outcome.Submitted {
			summary, err := booking.RenderSummary(outcome.Payload, products)
			if err != nil {
				return err
			}
			fmt.Println(summary)
			return nil
		}
		if state, err = w.Fix(ctx, state); err != nil {
			return err
		}
	}
}

func runServer(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	mux := http.NewServeMux()
	pattern, err := vehicles.New().RegisterRoutes(mux, cfg.Server.BasePath)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("serving vehicle options", zap.String("addr", cfg.Server.Addr), zap.String("path", pattern))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer func() { _ = f.Close() }()
	return catalog.Load(f)
}
