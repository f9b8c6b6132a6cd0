package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"ttiring-notification-srv/config"
	"ttiring-notification-srv/config/postgre"
	"ttiring-notification-srv/migrations"
	"ttiring-notification-srv/pkg/log"

	"github.com/pressly/goose/v3"
)

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: migrate <command>")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  up          Migrate to the latest version")
	fmt.Fprintln(os.Stderr, "  up-one      Migrate one version up")
	fmt.Fprintln(os.Stderr, "  down        Roll back one version")
	fmt.Fprintln(os.Stderr, "  status      Show migration status")
	fmt.Fprintln(os.Stderr, "  version     Show current version")
}

func main() {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() == 0 {
		usage()
		os.Exit(1)
	}

	cfg, err := config.LoadDatabase()
	if err != nil {
		fmt.Println("Failed to load config:", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:    cfg.Logger.Level,
		Mode:     cfg.Logger.Mode,
		Encoding: cfg.Logger.Encoding,
	})
	ctx := context.Background()

	db, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Fatalf(ctx, "Failed to connect to PostgreSQL: %v", err)
	}
	defer func() { _ = postgre.Disconnect(db) }()

	if err := migrations.Setup(); err != nil {
		logger.Fatalf(ctx, "Failed to set up migrations: %v", err)
	}

	cmd := flag.Arg(0)
	switch cmd {
	case "up":
		err = goose.Up(db, ".")
	case "up-one":
		err = goose.UpByOne(db, ".")
	case "down":
		err = goose.Down(db, ".")
	case "status":
		err = goose.Status(db, ".")
	case "version":
		err = goose.Version(db, ".")
	default:
		usage()
		os.Exit(1)
	}
	if err != nil {
		logger.Fatalf(ctx, "migrate %s: %v", cmd, err)
	}
	logger.Infof(ctx, "migrate %s: done", cmd)
}
