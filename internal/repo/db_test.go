package repo

import (
	"path/filepath"
	"testing"
)

func TestOpenSQLite_CreatesFileAndMigrates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leads.db")

	db, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	if err := AutoMigrate(db); err != nil {
		t.Fatalf("AutoMigrate: %v", err)
	}
	if !db.Migrator().HasTable("applications") {
		t.Fatal("applications table missing after migration")
	}
	for _, idx := range []string{"idx_app_status", "idx_app_type", "idx_app_type_status"} {
		if !db.Migrator().HasIndex("applications", idx) {
			t.Fatalf("expected index %s", idx)
		}
	}
}

func TestOpenSQLite_MissingParentDir(t *testing.T) {
	_, err := OpenSQLite(filepath.Join(t.TempDir(), "no-such-dir", "leads.db"))
	if err == nil {
		t.Fatal("expected error for missing parent directory")
	}
}
