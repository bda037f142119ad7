package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/events"
	"github.com/MKhiriev/go-pass-vault/internal/handler"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/metrics"
	"github.com/MKhiriev/go-pass-vault/internal/server"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Println(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("go-pass-vault")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Str("driver", cfg.Storage.DB.Driver).
		Str("administrator", cfg.App.Administrator).
		Msg("received configs")

	// `go-pass-vault [flags] issue-token <address>` prints a caller token and exits.
	if args := flag.Args(); len(args) > 0 {
		if err = runCommand(cfg, args, log); err != nil {
			log.Fatal().Err(err).Msg("command failed")
		}
		return
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	publisher, err := events.NewPublisher(cfg.Events, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating events publisher")
	}
	defer publisher.Close()

	m := metrics.New()

	services, err := service.NewServices(ctx, storages, publisher, m, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, m, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Err(err).Msg("server stopped with error")
	}
}

func runCommand(cfg *config.StructuredConfig, args []string, log *logger.Logger) error {
	switch args[0] {
	case "issue-token":
		if len(args) != 2 {
			return fmt.Errorf("usage: issue-token <address>")
		}
		caller, err := models.ParseAddress(args[1])
		if err != nil {
			return err
		}
		if models.IsNullAddress(caller) {
			return fmt.Errorf("address is required")
		}

		token, err := service.NewAuthService(cfg.App, log).CreateToken(context.Background(), caller)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(os.Stdout, token.String())
		return err
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}
