package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"mandelview/internal/server"

	"github.com/BrugadaSyndrome/bslogger"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	logger := bslogger.NewLogger("mandelviewd", bslogger.Normal, nil)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New()
	if err := srv.Run(ctx, *addr); err != nil && !errors.Is(err, context.Canceled) {
		logger.Errorf("server: %s", err)
		os.Exit(1)
	}
	logger.Info("shut down")
}
