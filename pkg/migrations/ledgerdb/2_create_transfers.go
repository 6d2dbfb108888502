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
		log.Println("creating transfers table...")
		if err := mghelper.CreateSchema(ctx, db, &pg.TransferDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &pg.TransferDao{}, "depositor", "status")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping transfers table...")
		return mghelper.DropTables(ctx, db, &pg.TransferDao{})
	})
}
