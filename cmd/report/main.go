// Package main prints COVID-19 Australia dataset aggregates.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	reportcmd "github.com/louisbranch/covidau/internal/cmd/report"
	"github.com/louisbranch/covidau/internal/platform/config"
)

func main() {
	log.SetPrefix("[REPORT] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := reportcmd.Execute(ctx, os.Args[1:]); err != nil {
		stop()
		config.Exitf("report: %v", err)
	}
}
