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
		log.Println("creating locked_balances table...")
		return mghelper.CreateSchema(ctx, db, &pg.LockedBalanceDao{})
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping locked_balances table...")
		return mghelper.DropTables(ctx, db, &pg.LockedBalanceDao{})
	})
}
