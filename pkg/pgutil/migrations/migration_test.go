package migrations

import (
	"context"
	"testing"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"

	"github.com/chainsafe/custody-bridge/pkg/config"
	"github.com/chainsafe/custody-bridge/pkg/pgutil"
)

type sampleDao struct {
	bun.BaseModel `bun:"table:sample_table"`
	ID            int64  `bun:",pk,autoincrement"`
	Name          string `bun:",notnull,type:varchar(100)"`
	Age           int    `bun:",nullzero"`
}

func TestConnectDB_InvalidHost(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Host:     "invalid-host-that-does-not-exist",
		Port:     5432,
		User:     "test",
		Password: "test",
		Database: "test",
		SSLMode:  "disable",
	}

	db, err := pgutil.ConnectDB(context.Background(), cfg)
	if err == nil {
		_ = db.Close()
		t.Error("ConnectDB() should fail with invalid host")
	}
}

func TestRunMigrations_RejectsUnknownCommand(t *testing.T) {
	ctx := context.Background()
	if err := RunMigrations(ctx, nil); err == nil {
		t.Error("expected an error without a command")
	}
	if err := RunMigrations(ctx, nil, "sideways"); err == nil {
		t.Error("expected an error for an unknown command")
	}
}

func TestSchemaHelpers(t *testing.T) {
	db := pgutil.SetupTestDB(t)
	ctx := context.Background()

	if err := CreateSchema(ctx, db, &sampleDao{}); err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}
	pgutil.AssertTableExists(t, db, "sample_table")

	// idempotent
	if err := CreateSchema(ctx, db, &sampleDao{}); err != nil {
		t.Errorf("CreateSchema() second call failed: %v", err)
	}

	if err := CreateModelIndexes(ctx, db, &sampleDao{}, "name", "age"); err != nil {
		t.Fatalf("CreateModelIndexes() failed: %v", err)
	}
	pgutil.AssertIndexExists(t, db, "idx_sample_table_name")
	pgutil.AssertIndexExists(t, db, "idx_sample_table_age")

	if _, err := db.NewInsert().Model(&sampleDao{Name: "a", Age: 1}).Exec(ctx); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	pgutil.AssertRowCount(t, db, "sample_table", 1)

	if err := TruncateTables(ctx, db, &sampleDao{}); err != nil {
		t.Fatalf("TruncateTables() failed: %v", err)
	}
	pgutil.AssertRowCount(t, db, "sample_table", 0)

	if err := DropTables(ctx, db, &sampleDao{}); err != nil {
		t.Fatalf("DropTables() failed: %v", err)
	}
	pgutil.AssertTableNotExists(t, db, "sample_table")
}

func TestRunMigrations_UpDownStatus(t *testing.T) {
	db := pgutil.SetupTestDB(t)
	ctx := context.Background()

	ms := migrate.NewMigrations()
	ms.Add(migrate.Migration{
		Name: "20240101000000",
		Up: func(ctx context.Context, db *bun.DB) error {
			return CreateSchema(ctx, db, &sampleDao{})
		},
		Down: func(ctx context.Context, db *bun.DB) error {
			return DropTables(ctx, db, &sampleDao{})
		},
	})
	migrator := migrate.NewMigrator(db, ms)

	for _, cmd := range []string{"init", "up", "status"} {
		if err := RunMigrations(ctx, migrator, cmd); err != nil {
			t.Fatalf("%s failed: %v", cmd, err)
		}
	}
	pgutil.AssertTableExists(t, db, "sample_table")

	if err := RunMigrations(ctx, migrator, "down"); err != nil {
		t.Fatalf("down failed: %v", err)
	}
	pgutil.AssertTableNotExists(t, db, "sample_table")
}
