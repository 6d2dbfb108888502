package main

import (
	"context"
	"flag"
	"log"

	"github.com/uptrace/bun/migrate"

	"github.com/chainsafe/custody-bridge/pkg/config"
	"github.com/chainsafe/custody-bridge/pkg/migrations/ledgerdb"
	"github.com/chainsafe/custody-bridge/pkg/pgutil"
	mghelper "github.com/chainsafe/custody-bridge/pkg/pgutil/migrations"
)

func main() {
	cfgPath := flag.String("config", "config.example.yaml", "Path to configuration file")
	flag.Usage = mghelper.Usage
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("error reading configuration file: %s", err.Error())
	}
	if cfg.Database.Driver != config.StoreDriverPostgres {
		log.Fatalf("database.driver is %q; migrations need %q", cfg.Database.Driver, config.StoreDriverPostgres)
	}

	ctx := context.Background()
	db, err := pgutil.ConnectDB(ctx, &cfg.Database)
	if err != nil {
		log.Fatalf("error connecting to database: %s", err.Error())
	}
	defer db.Close()

	log.Printf("Running migrations for ledger database (%s)...\n", cfg.Database.Database)

	migrator := migrate.NewMigrator(db, ledgerdb.Migrations)
	if err := mghelper.RunMigrations(ctx, migrator, flag.Args()...); err != nil {
		mghelper.Exitf("%s", err.Error())
	}
}
