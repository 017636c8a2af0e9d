package server

import (
	"context"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	xhttp "StockPulse/pkg/http"
	applogger "StockPulse/pkg/logger"
)

type namedCloser struct {
	name string
	c    io.Closer
}

type ticker struct {
	every time.Duration
	fn    func()
}

// App encapsulates the entire application lifecycle.
type App struct {
	httpServer *xhttp.Server
	logger     *applogger.Logger
	closers    []namedCloser
	tickers    []ticker
}

// New creates a new App around the HTTP server.
func New(srv *xhttp.Server, logger *applogger.Logger) *App {
	if logger == nil {
		logger = applogger.Nop()
	}
	return &App{httpServer: srv, logger: logger}
}

// AddCloser registers a resource closed on shutdown, in reverse order of registration.
func (a *App) AddCloser(name string, c io.Closer) {
	a.closers = append(a.closers, namedCloser{name: name, c: c})
}

// OnTick runs fn every interval while the app is running.
func (a *App) OnTick(every time.Duration, fn func()) {
	a.tickers = append(a.tickers, ticker{every: every, fn: fn})
}

// Run starts the application and blocks until SIGINT or SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return a.RunContext(ctx)
}

// RunContext starts the application and blocks until ctx is done.
func (a *App) RunContext(ctx context.Context) error {
	if err := a.httpServer.Start(); err != nil {
		a.logger.Error("http server start error", applogger.Error(err))
		return err
	}

	var wg sync.WaitGroup
	for _, t := range a.tickers {
		wg.Add(1)
		go func(t ticker) {
			defer wg.Done()
			tk := time.NewTicker(t.every)
			defer tk.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-tk.C:
					t.fn()
				}
			}
		}(t)
	}

	<-ctx.Done()
	a.logger.Info("shutdown signal received")
	wg.Wait()
	return a.shutdown()
}

// shutdown gracefully stops all services.
func (a *App) shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.httpServer.ShutdownTimeout())
	defer cancel()

	var firstErr error
	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.logger.Error("http shutdown error", applogger.Error(err))
		firstErr = err
	}

	// Flush collected error logs while the publisher is still open.
	a.logger.RemoveCollector()

	for i := len(a.closers) - 1; i >= 0; i-- {
		nc := a.closers[i]
		if err := nc.c.Close(); err != nil {
			a.logger.Warn("close error", applogger.String("resource", nc.name), applogger.Error(err))
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	a.logger.Info("shutdown complete")
	return firstErr
}
