// Package main is the entry point for the bookshelf API server.
// It wires together configuration, the in-memory book store, and the HTTP router.
package main

import (
	"log/slog"
	"os"

	"github.com/aoideee/bookshelf-api/internal/data"
)

// appVersion is the current version of the API, shown in logs.
const appVersion = "1.0.0"

// applicationDependencies bundles every shared resource that HTTP handlers need.
// A pointer to this struct is passed as the receiver on all handler and route methods.
type applicationDependencies struct {
	config serverConfig // Server configuration loaded from flags and environment
	logger *slog.Logger // Structured logger that writes to stdout
	models data.Models  // Book store shared by all handlers
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	settings, err := loadConfig(os.Args[1:])
	if err != nil {
		logger.Error(err.Error())
		os.Exit(2)
	}

	appInstance := &applicationDependencies{
		config: settings,
		logger: logger,
		models: data.NewModels(),
	}

	logger.Info("book store initialised", "version", appVersion)

	err = appInstance.serve()
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}
