package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-blog-platform/internal/config"
	"github.com/MKhiriev/go-blog-platform/internal/handler"
	"github.com/MKhiriev/go-blog-platform/internal/logger"
	"github.com/MKhiriev/go-blog-platform/internal/notifier"
	"github.com/MKhiriev/go-blog-platform/internal/server"
	"github.com/MKhiriev/go-blog-platform/internal/service"
	"github.com/MKhiriev/go-blog-platform/internal/store"
	"github.com/MKhiriev/go-blog-platform/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-blog-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().Str("driver", cfg.Storage.DB.Driver).Str("address", cfg.Server.HTTPAddress).Msg("received configs")

	db, err := store.NewDB(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	mailer, err := notifier.New(cfg.Notifier, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating notifier")
	}

	repositories := store.NewRepositories(db, log)

	services, err := service.NewServices(repositories, mailer, *cfg, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	writeBuildInfo(os.Stdout)
}

// writeBuildInfo prints the linker-provided build values, showing "N/A" for
// empty ones. The variables themselves stay empty so the version check in
// the services still sees a missing build version.
func writeBuildInfo(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", orNA(buildVersion))
	fmt.Fprintf(w, "Build date: %s\n", orNA(buildDate))
	fmt.Fprintf(w, "Build commit: %s\n", orNA(buildCommit))
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
