package main

import (
	"civic-sync/coinbase"
	"civic-sync/config"
	"civic-sync/conversion"
	"civic-sync/currency"
	"civic-sync/http"
	"civic-sync/location"
	"civic-sync/project"
	"civic-sync/random"
	"context"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"os"
	"os/signal"
	"syscall"

	nhttp "net/http"
)

func main() {
	w := log.NewSyncWriter(os.Stderr)
	logger := log.NewLogfmtLogger(w)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)

	cfg, err := config.Load()
	if err != nil {
		level.Error(logger).Log("msg", "invalid configuration", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	coinbaseService := coinbase.NewService(cfg.CoinbaseURL)
	coinbaseService = coinbase.NewLoggingService(log.With(logger, "component", "coinbase_rest"), coinbaseService)
	coinbaseService = coinbase.NewCachingService(ctx, cfg.RateRefresh, log.With(logger, "component", "coinbase_cache"), coinbaseService)
	coinbaseService = coinbase.NewLoggingService(log.With(logger, "component", "coinbase_cache"), coinbaseService)

	currencyService := currency.NewService(coinbaseService)
	currencyService = currency.NewLoggingService(log.With(logger, "component", "currency"), currencyService)

	amount := conversion.NewInput(currencyService, log.With(logger, "component", "amount"), conversion.WithDelay(cfg.ConvertDelay))
	defer amount.Stop()

	locations := location.NewDataset(location.Nigeria(), cfg.SearchLatency, random.New(cfg.Seed))
	search := location.NewBox(locations, random.New(cfg.Seed), log.With(logger, "component", "search"), location.WithSearchDelay(cfg.SearchDelay))
	defer search.Close()

	projectService := project.NewService(cfg.BackendURL)
	projectService = project.NewLoggingService(log.With(logger, "component", "projects"), projectService)
	projects := project.NewStore(projectService, log.With(logger, "component", "project_store"))
	go func() {
		_ = projects.Fetch(ctx)
	}()

	handler := http.NewServer(ctx, http.Session{
		Currency:  currencyService,
		Amount:    amount,
		Locations: locations,
		Search:    search,
		Projects:  projects,
	}, log.With(logger, "component", "http"))

	srv := &nhttp.Server{Addr: cfg.Addr, Handler: handler}
	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()

	level.Info(logger).Log("msg", "listening", "addr", cfg.Addr)
	if err := srv.ListenAndServe(); err != nil && err != nhttp.ErrServerClosed {
		level.Error(logger).Log("msg", "server stopped", "err", err)
		os.Exit(1)
	}
}
