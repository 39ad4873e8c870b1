package migration

import (
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestApplyMigrations(t *testing.T) {
	db := newTestDB(t)
	migFS := fstest.MapFS{
		"001_init.sql": &fstest.MapFile{
			Data: []byte("CREATE TABLE things (id TEXT PRIMARY KEY);"),
		},
		"002_add_name.sql": &fstest.MapFile{
			Data: []byte("ALTER TABLE things ADD COLUMN name TEXT NOT NULL DEFAULT '';"),
		},
	}

	runner := NewRunner(db, migFS)

	count, err := runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("ApplyMigrations() failed: %v", err)
	}
	if count != 2 {
		t.Errorf("ApplyMigrations() applied %d migrations, want 2", count)
	}

	version, err := runner.GetCurrentVersion()
	if err != nil {
		t.Fatalf("GetCurrentVersion() failed: %v", err)
	}
	if version != 2 {
		t.Errorf("GetCurrentVersion() = %d, want 2", version)
	}

	// Both statements must have landed
	if _, err := db.Exec("INSERT INTO things (id, name) VALUES ('x', 'y')"); err != nil {
		t.Errorf("schema incomplete after migrations: %v", err)
	}

	// Re-running is a no-op
	count, err = runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("ApplyMigrations() rerun failed: %v", err)
	}
	if count != 0 {
		t.Errorf("ApplyMigrations() rerun applied %d migrations, want 0", count)
	}
}

func TestApplyMigrationsRollsBackOnFailure(t *testing.T) {
	db := newTestDB(t)
	migFS := fstest.MapFS{
		"001_init.sql": &fstest.MapFile{
			Data: []byte("CREATE TABLE a (id TEXT);"),
		},
		"002_broken.sql": &fstest.MapFile{
			Data: []byte("THIS IS NOT SQL;"),
		},
	}

	runner := NewRunner(db, migFS)

	count, err := runner.ApplyMigrations(nil)
	if err == nil {
		t.Fatal("ApplyMigrations() with broken migration should fail")
	}
	if count != 1 {
		t.Errorf("ApplyMigrations() applied %d migrations before failing, want 1", count)
	}

	// The failed migration must not bump the recorded version
	version, err := runner.GetCurrentVersion()
	if err != nil {
		t.Fatalf("GetCurrentVersion() failed: %v", err)
	}
	if version != 1 {
		t.Errorf("GetCurrentVersion() = %d after failed migration, want 1", version)
	}
}

func TestReadMigrationFiles(t *testing.T) {
	tests := []struct {
		name    string
		files   map[string]string
		wantErr bool
		wantLen int
	}{
		{
			name: "sorted by version",
			files: map[string]string{
				"002_b.sql": "SELECT 2;",
				"001_a.sql": "SELECT 1;",
			},
			wantLen: 2,
		},
		{
			name: "non-sql files ignored",
			files: map[string]string{
				"001_a.sql": "SELECT 1;",
				"README.md": "docs",
			},
			wantLen: 1,
		},
		{
			name: "bad filename rejected",
			files: map[string]string{
				"init.sql": "SELECT 1;",
			},
			wantErr: true,
		},
		{
			name: "version zero rejected",
			files: map[string]string{
				"000_zero.sql": "SELECT 1;",
			},
			wantErr: true,
		},
		{
			name: "duplicate version rejected",
			files: map[string]string{
				"001_a.sql": "SELECT 1;",
				"01_b.sql":  "SELECT 1;",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			migFS := fstest.MapFS{}
			for name, content := range tt.files {
				migFS[name] = &fstest.MapFile{Data: []byte(content)}
			}
			runner := NewRunner(nil, migFS)

			migrations, err := runner.ReadMigrationFiles()
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadMigrationFiles() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if len(migrations) != tt.wantLen {
				t.Fatalf("ReadMigrationFiles() returned %d migrations, want %d", len(migrations), tt.wantLen)
			}
			for i := 1; i < len(migrations); i++ {
				if migrations[i].Version <= migrations[i-1].Version {
					t.Errorf("migrations not sorted: %d before %d", migrations[i-1].Version, migrations[i].Version)
				}
			}
		})
	}
}

func TestValidateVersion(t *testing.T) {
	db := newTestDB(t)
	migFS := fstest.MapFS{
		"001_init.sql": &fstest.MapFile{
			Data: []byte("CREATE TABLE a (id TEXT);"),
		},
	}
	runner := NewRunner(db, migFS)

	if _, err := runner.ApplyMigrations(nil); err != nil {
		t.Fatalf("ApplyMigrations() failed: %v", err)
	}
	if err := runner.ValidateVersion(); err != nil {
		t.Errorf("ValidateVersion() on up-to-date schema failed: %v", err)
	}

	// Simulate a database written by a newer release
	if _, err := db.Exec("UPDATE schema_version SET version = 99"); err != nil {
		t.Fatalf("failed to bump version: %v", err)
	}
	if err := runner.ValidateVersion(); err == nil {
		t.Error("ValidateVersion() should reject a newer-than-supported schema")
	}
}
