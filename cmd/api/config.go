// cmd/api/config.go
// This file reads flag defaults from the environment. A .env file in the
// working directory, if present, is loaded first.
package main

import (
	"flag"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// serverConfig holds all the values that can be tweaked at startup via
// command-line flags or BOOKSHELF_* environment variables.
type serverConfig struct {
	host        string // Interface the HTTP server binds to (default localhost)
	port        int    // TCP port the HTTP server listens on (default 9000)
	environment string // Runtime environment: development, staging, or production
	limiter     struct {
		rps     float64 // Requests per second allowed per client IP
		burst   int     // Token bucket capacity per client IP
		enabled bool    // Turns the rate limiter on or off (default off)
	}
}

// loadConfig parses args into a serverConfig. Environment variables supply
// the defaults so flags always win.
func loadConfig(args []string) (serverConfig, error) {
	// A missing .env file is not an error; real environment variables still apply.
	_ = godotenv.Load()

	var settings serverConfig

	fs := flag.NewFlagSet("bookshelf-api", flag.ContinueOnError)
	fs.StringVar(&settings.host, "host", envString("BOOKSHELF_HOST", "localhost"), "Server host")
	fs.IntVar(&settings.port, "port", envInt("BOOKSHELF_PORT", 9000), "Server port")
	fs.StringVar(&settings.environment, "env", envString("BOOKSHELF_ENV", "development"), "Environment(development|staging|production)")
	fs.Float64Var(&settings.limiter.rps, "limiter-rps", envFloat("BOOKSHELF_LIMITER_RPS", 2), "Rate limiter maximum requests per second")
	fs.IntVar(&settings.limiter.burst, "limiter-burst", envInt("BOOKSHELF_LIMITER_BURST", 4), "Rate limiter maximum burst")
	fs.BoolVar(&settings.limiter.enabled, "limiter-enabled", envBool("BOOKSHELF_LIMITER_ENABLED", false), "Enable rate limiter")

	if err := fs.Parse(args); err != nil {
		return serverConfig{}, err
	}
	return settings, nil
}

func envString(key, defaultValue string) string {
	if s, ok := os.LookupEnv(key); ok && s != "" {
		return s
	}
	return defaultValue
}

func envInt(key string, defaultValue int) int {
	i, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return i
}

func envFloat(key string, defaultValue float64) float64 {
	f, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return defaultValue
	}
	return f
}

func envBool(key string, defaultValue bool) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return b
}
