package ledgerdb

import (
	"context"
	"log"

	mghelper "github.com/chainsafe/custody-bridge/pkg/pgutil/migrations"
	"github.com/chainsafe/custody-bridge/pkg/store/pg"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating ledger_state, relayers and supported_chains tables...")
		return mghelper.CreateSchema(ctx, db, &pg.LedgerStateDao{}, &pg.RelayerDao{}, &pg.SupportedChainDao{})
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping ledger_state, relayers and supported_chains tables...")
		return mghelper.DropTables(ctx, db, &pg.SupportedChainDao{}, &pg.RelayerDao{}, &pg.LedgerStateDao{})
	})
}
