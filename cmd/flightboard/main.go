package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/five82/flightboard/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional, defaults to ~/.config/flightboard/config.toml)")
	prefsPath := flag.String("prefs", "", "override preferences path (optional)")
	refreshSeconds := flag.Int("refresh", 0, "board refresh interval in seconds (optional, defaults to 60s)")
	serveAddr := flag.String("serve", "", "serve the flights API on this address instead of running the board")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
		Listen:     *serveAddr,
	}
	if secs := *refreshSeconds; secs > 0 {
		opts.RefreshEvery = time.Duration(secs) * time.Second
	}

	var err error
	if *serveAddr != "" {
		err = app.Serve(ctx, opts)
	} else {
		err = app.Run(ctx, opts)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "flightboard: %v\n", err)
		return 1
	}
	return 0
}
