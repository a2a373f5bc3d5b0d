// Command tryout fills in a tryout application from the terminal and posts it
// to a running tryout-intake server.
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	"tryout-intake/client"
	"tryout-intake/utils"
)

func main() {
	baseURL := flag.String("url", envOr("TRYOUT_API_URL", "http://localhost:3000"), "base URL of the tryout API")
	logLevel := flag.String("log-level", "warn", "log level")
	flag.Parse()

	log, err := utils.NewLogger(*logLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdin, os.Stdout, client.New(*baseURL)); err != nil && !errors.Is(err, io.EOF) {
		log.Fatalw("❌ application not sent", "error", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
