package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/bloglist/internal/adapter"
	"github.com/MKhiriev/bloglist/internal/client"
	"github.com/MKhiriev/bloglist/internal/config"
	"github.com/MKhiriev/bloglist/internal/logger"
	"github.com/MKhiriev/bloglist/internal/tui"
	"github.com/MKhiriev/bloglist/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	log := logger.NewCLILogger("bloglist-client")
	if err := logger.SetLevel(os.Getenv("CLIENT_LOG_LEVEL")); err != nil {
		log.Warn().Err(err).Msg("ignoring log level")
	}

	if len(os.Args) > 1 && os.Args[1] == "build-info" {
		fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		return 0
	}

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Err(err).Msg("error getting configs")
		return 1
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(*cfg, log)
	if err != nil {
		log.Err(err).Msg("error creating server adapter")
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(serverAdapter, tui.New(serverAdapter, log), os.Stdout, log)
	if err = app.Run(ctx, os.Args[1:]); err != nil {
		if errors.Is(err, client.ErrUsage) {
			fmt.Fprintln(os.Stderr, err)
			return 2
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}

	return 0
}
