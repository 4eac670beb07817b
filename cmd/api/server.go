// cmd/api/server.go
// This file contains the serve() method which starts the HTTP server and
// handles graceful shutdown when an OS signal is received.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"
)

// serve builds the HTTP server, starts it, then blocks until it receives a
// SIGINT or SIGTERM signal. In-flight requests are given 20 seconds to
// complete before the server is forcefully stopped.
func (app *applicationDependencies) serve() error {
	apiServer := &http.Server{
		Addr:         net.JoinHostPort(app.config.host, strconv.Itoa(app.config.port)),
		Handler:      app.routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelError),
	}

	shutdownErr := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		s := <-quit
		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()

		shutdownErr <- apiServer.Shutdown(ctx)
	}()

	app.logger.Info("starting server", "address", apiServer.Addr, "environment", app.config.environment)

	// ErrServerClosed means Shutdown was called.
	err := apiServer.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownErr
	if err != nil {
		return err
	}

	app.logger.Info("server stopped", "address", apiServer.Addr, "books", app.models.Books.Len())
	return nil
}
