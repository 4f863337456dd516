package main

import (
	"flag"

	"github.com/Critlist/witskit/internal/config"
	"github.com/Critlist/witskit/internal/db"
)

func runMigrate(args []string) {
	fs := flag.NewFlagSet("migrate", flag.ExitOnError)
	dbPath := fs.String("db", config.DefaultDBPath, "SQLite database path")
	fs.Parse(args)

	db.RunMigrateCommand(fs.Args(), *dbPath)
}
