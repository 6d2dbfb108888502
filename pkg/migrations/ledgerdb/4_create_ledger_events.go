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
		log.Println("creating ledger_events table...")
		if err := mghelper.CreateSchema(ctx, db, &pg.EventDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &pg.EventDao{}, "type", "transfer_id")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping ledger_events table...")
		return mghelper.DropTables(ctx, db, &pg.EventDao{})
	})
}
