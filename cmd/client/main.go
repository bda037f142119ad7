package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/client"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/tui"
	"github.com/MKhiriev/go-pass-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("go-pass-vault-client", clientLogPath())
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log.Debug().
		Str("version", build.BuildVersion()).
		Str("date", build.BuildDate()).
		Str("commit", build.BuildCommit()).
		Msg("client build")

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	vault, err := adapter.NewHTTPVaultClient(cfg.Adapter, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	var sealer crypto.Sealer
	if cfg.Adapter.Passphrase != "" {
		if sealer, err = crypto.NewPassphraseSealer(cfg.Adapter.Passphrase); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(vault, sealer, os.Stdout, log, client.WithBrowser(tui.New(vault, sealer, 0, log)))
	if err = app.Run(ctx, flag.Args()); err != nil {
		log.Err(err).Msg("command failed")
		fmt.Fprintln(os.Stderr, err)
		stop()
		if errors.Is(err, client.ErrUsage) || errors.Is(err, client.ErrNoCommand) || errors.Is(err, client.ErrUnknownCommand) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func clientLogPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "go-pass-vault", "client.log")
}
