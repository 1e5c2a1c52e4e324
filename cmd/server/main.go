package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/xmppfed/go-keyhub/internal/config"
	"github.com/xmppfed/go-keyhub/internal/crypto"
	handler "github.com/xmppfed/go-keyhub/internal/handler/http"
	"github.com/xmppfed/go-keyhub/internal/logger"
	"github.com/xmppfed/go-keyhub/internal/server"
	"github.com/xmppfed/go-keyhub/internal/service"
	"github.com/xmppfed/go-keyhub/internal/store"
	"github.com/xmppfed/go-keyhub/internal/workers"
	"github.com/xmppfed/go-keyhub/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.New("keyhub-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	repos := store.NewRepositories(db, log)
	services := service.NewServices(repos, crypto.NewPasswordHasher(), cfg.Auth, log)
	handlers := handler.NewHandler(services, log)

	srv, err := server.NewServer(handlers.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	background := workers.NewWorkers(services, cfg.Workers, log)
	background.Run(ctx)

	srv.Run(ctx)
	background.Wait()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
