package main

import (
	"civic-sync"
	"civic-sync/config"
	"civic-sync/currency"
	"civic-sync/project"
	"context"
	"flag"
	"fmt"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"os"
	"time"
)

func main() {
	var status, search string
	var timeout time.Duration
	flag.StringVar(&status, "status", string(civic.StatusAll), "status filter (all, pending, in-progress, completed)")
	flag.StringVar(&search, "search", "", "case-insensitive match on title, id or location")
	flag.DurationVar(&timeout, "timeout", 10*time.Second, "overall fetch timeout")
	flag.Parse()

	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
	logger = level.NewFilter(logger, level.AllowWarn())

	cfg, err := config.Load()
	if err != nil {
		level.Error(logger).Log("msg", "invalid configuration", "err", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	service := project.NewLoggingService(log.With(logger, "component", "projects"), project.NewService(cfg.BackendURL))
	store := project.NewStore(service, log.With(logger, "component", "project_store"))
	_ = store.Fetch(ctx)

	filter := civic.ParseStatusFilter(status)
	store.UpdateFilters(project.FilterUpdate{Status: &filter, Search: &search})

	if advisory, ok := store.Advisory(); ok {
		fmt.Fprintln(os.Stderr, advisory)
	}
	project.RenderTable(os.Stdout, store.Projects())
	if rate, ok := store.ExchangeRate(); ok {
		fmt.Printf("Exchange rate: %s per ETH\n", currency.FormatNaira(civic.Amount(rate)))
	}
}
