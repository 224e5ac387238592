package main

import (
	"context"
	"os"

	"github.com/dmitrijs2005/careerpath/internal/buildinfo"
	"github.com/dmitrijs2005/careerpath/internal/client/cli"
	"github.com/dmitrijs2005/careerpath/internal/client/client"
	"github.com/dmitrijs2005/careerpath/internal/client/config"
	"github.com/dmitrijs2005/careerpath/internal/client/localdb"
	"github.com/dmitrijs2005/careerpath/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/careerpath/internal/client/session"
	"github.com/dmitrijs2005/careerpath/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()

	cfg := config.LoadConfig()
	log := logging.NewConsoleLogger(os.Stderr, cfg.LogLevel)

	db, err := localdb.Open(ctx, cfg.SessionDBPath)
	if err != nil {
		log.Error(ctx, "error initializing session database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	store := session.NewStore(metadata.NewSQLiteRepository(db))
	api := client.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout, log)

	app := cli.NewApp(cfg, api, store, log, os.Stdin, os.Stdout)
	app.Run(ctx)

}
