package migrations

import (
	"context"
	"testing"

	"github.com/uptrace/bun/migrate"

	"github.com/chainsafe/custody-bridge/pkg/migrations/ledgerdb"
	"github.com/chainsafe/custody-bridge/pkg/pgutil"
)

var ledgerTables = []string{
	"ledger_state",
	"relayers",
	"supported_chains",
	"transfers",
	"locked_balances",
	"ledger_events",
	"deposit_proofs",
}

func TestLedgerDBMigrations_Apply(t *testing.T) {
	db := pgutil.SetupTestDB(t)
	ctx := context.Background()

	migrator := migrate.NewMigrator(db, ledgerdb.Migrations)

	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}

	group, err := migrator.Migrate(ctx)
	if err != nil {
		t.Fatalf("Migrate() failed: %v", err)
	}
	if group.IsZero() {
		t.Error("Expected migrations to run, but none were applied")
	}

	for _, table := range append(ledgerTables, "bun_migrations") {
		pgutil.AssertTableExists(t, db, table)
	}

	pgutil.AssertIndexExists(t, db, "idx_transfers_depositor")
	pgutil.AssertIndexExists(t, db, "idx_transfers_status")
	pgutil.AssertIndexExists(t, db, "idx_ledger_events_type")
	pgutil.AssertIndexExists(t, db, "idx_ledger_events_transfer_id")
	pgutil.AssertIndexExists(t, db, "idx_deposit_proofs_transfer_id")

	// a second run has nothing left to apply
	group, err = migrator.Migrate(ctx)
	if err != nil {
		t.Fatalf("second Migrate() failed: %v", err)
	}
	if !group.IsZero() {
		t.Errorf("expected no migrations on second run, got %s", group)
	}
}

func TestLedgerDBMigrations_Rollback(t *testing.T) {
	db := pgutil.SetupTestDB(t)
	ctx := context.Background()

	migrator := migrate.NewMigrator(db, ledgerdb.Migrations)
	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("Migrate() failed: %v", err)
	}

	group, err := migrator.Rollback(ctx)
	if err != nil {
		t.Fatalf("Rollback() failed: %v", err)
	}
	if group.IsZero() {
		t.Fatal("Expected a migration group to roll back")
	}

	for _, table := range ledgerTables {
		pgutil.AssertTableNotExists(t, db, table)
	}
}
