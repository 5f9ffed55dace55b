package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"scholarledger/internal/config"
	"scholarledger/internal/core"
	"scholarledger/internal/db"
	"scholarledger/internal/http/handler"
	"scholarledger/internal/http/handler/middleware"
	"scholarledger/internal/http/payload"
	"scholarledger/internal/http/server"
	"scholarledger/internal/ident"
	"scholarledger/internal/ledger"
	"scholarledger/internal/metrics"
	"scholarledger/internal/units"
	"scholarledger/pkg/log"

	"go.uber.org/zap"
)

func Start() error {
	cfg, err := config.NewApp()
	if err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}

	logger := log.NewZapLogger("scholarledger", log.ParseLevel(cfg.LogLevel))
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	backend, closeBackend, err := openBackend(ctx, cfg)
	if err != nil {
		logger.Errorw("failed to open ledger backend", "backend", cfg.Backend, "error", err)
		return err
	}
	defer func() {
		if err := closeBackend(); err != nil {
			logger.Errorw("failed to close ledger backend", "error", err)
		}
	}()
	logger.Infow("ledger backend ready", "backend", cfg.Backend)

	// metrics
	m := metrics.NewLedger("scholarledger")
	persistOpts := []ledger.Option{ledger.WithPersistErrorHook(m.PersistError)}

	// state
	store := ledger.NewStore(ctx, logger, backend, persistOpts...)
	registry := ledger.NewRegistry(ctx, logger, backend, persistOpts...)

	converter, err := units.NewConverter(cfg.FiatPerCoin)
	if err != nil {
		logger.Errorw("failed to create unit converter", "error", err)
		return err
	}

	// engine
	scheduler := core.NewScheduler(logger)
	engine := core.NewLedger(
		logger,
		store,
		registry,
		ident.NewRandom(),
		converter,
		scheduler,
		m,
		core.WithConfirmWindow(cfg.ConfirmMin, cfg.ConfirmMax),
		core.WithPollInterval(cfg.PollInterval),
		core.WithFailureRate(cfg.FailureRate))

	m.Gauge("block_height", "Number of blocks assigned so far", func() float64 {
		return float64(store.Snapshot().BlockCounter - 1)
	})
	m.Gauge("pending_transactions", "Transactions awaiting confirmation", func() float64 {
		return float64(len(store.Pending()))
	})

	schedDone := make(chan struct{})
	go func() {
		defer close(schedDone)
		scheduler.Run(ctx, engine)
	}()
	defer func() {
		scheduler.Stop()
		<-schedDone
	}()
	engine.ReconcileTokens(ctx)
	engine.Resume(ctx)

	// handler
	ledgerHlr := handler.NewLedgerHandler(
		logger,
		payload.Decoder{},
		engine)

	// register routes
	mux := http.NewServeMux()
	ledgerHlr.Register(mux)
	mux.Handle("GET /metrics", m.Registry().Handler())

	// middleware
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	srv := server.NewHTTP(logger, hdlr, cfg.Port)
	return run(logger, srv)
}

// openBackend connects the configured persistence backend and returns it with
// its close function.
func openBackend(ctx context.Context, cfg config.App) (ledger.Backend, func() error, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return db.NewMemoryDB(), func() error { return nil }, nil
	case config.BackendBadger:
		bdb, err := db.NewBadgerDB(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return bdb, bdb.Close, nil
	case config.BackendPostgres:
		pdb, err := db.NewPostgresDB(cfg.DBConnectionURL)
		if err != nil {
			return nil, nil, err
		}
		if err := pdb.MigrateTable(&db.Record{}); err != nil {
			_ = pdb.Close()
			return nil, nil, fmt.Errorf("failed to migrate tables to database: %w", err)
		}
		return pdb, pdb.Close, nil
	case config.BackendMongo:
		mdb, err := db.NewMongoDB(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, nil, err
		}
		return mdb, func() error { return mdb.Close(context.Background()) }, nil
	default:
		return nil, nil, fmt.Errorf("unknown ledger backend %q", cfg.Backend)
	}
}

func run(logger *zap.SugaredLogger, server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case s := <-sig:
		logger.Infow("shutdown signal received", "signal", s.String())
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
