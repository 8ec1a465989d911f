package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"trendcheck/internal/service/analyzer"
	"trendcheck/internal/usecase"
	"trendcheck/pkg/config"
	xhttp "trendcheck/pkg/http"
	applogger "trendcheck/pkg/logger"
)

// App encapsulates the entire application lifecycle: the background poller,
// the HTTP server and the throttled remote engine.
type App struct {
	cfg        *config.Config
	log        *applogger.Logger
	poller     *usecase.Poller
	handler    xhttp.Handler
	remote     *analyzer.Remote // nil when the remote engine is disabled
	httpServer *xhttp.Server
}

// New creates an App instance with all dependencies.
func New(cfg *config.Config, log *applogger.Logger, poller *usecase.Poller, handler xhttp.Handler, remote *analyzer.Remote) *App {
	return &App{
		cfg:     cfg,
		log:     log,
		poller:  poller,
		handler: handler,
		remote:  remote,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	opts := []xhttp.ServerOption{
		xhttp.WithLogger(a.log),
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
		xhttp.WithCORS(true),
	}
	if a.cfg.Metrics.Enabled {
		opts = append(opts, xhttp.WithMetricsPath(a.cfg.Metrics.Path))
	}
	a.httpServer = xhttp.NewServer(a.handler, opts...)

	go a.poller.Run(ctx)

	if err := a.httpServer.Start(); err != nil {
		a.log.Error("http server start error", applogger.Error(err))
		return err
	}
	a.log.Info("server started",
		applogger.Int("port", a.cfg.Server.Port),
		applogger.String("environment", a.cfg.Environment))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.log.Info("shutdown signal received")
	cancel()
	return a.shutdown()
}

// shutdown gracefully stops all services.
func (a *App) shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.log.Error("http shutdown error", applogger.Error(err))
	}
	if a.remote != nil {
		a.remote.Close()
	}
	a.log.Info("shutdown complete")
	return nil
}
