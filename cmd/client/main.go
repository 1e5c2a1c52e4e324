package main

import (
	"context"
	"fmt"
	"os"

	"github.com/xmppfed/go-keyhub/internal/adapter"
	"github.com/xmppfed/go-keyhub/internal/client"
	"github.com/xmppfed/go-keyhub/internal/config"
	"github.com/xmppfed/go-keyhub/internal/logger"
	"github.com/xmppfed/go-keyhub/internal/store"
	"github.com/xmppfed/go-keyhub/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClient("keyhub-client")
	cfg, fs, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	db, err := store.NewConnectSQLite(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening local cache")
	}
	defer db.Close()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server adapter")
	}

	app := client.NewApp(serverAdapter, store.NewCacheRepository(db, log), log)
	if err = app.Run(ctx, fs.Args()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
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
