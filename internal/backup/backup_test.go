package backup

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

// newTestDB creates a real sqlite file with one row so restores are verifiable
func newTestDB(t *testing.T, dir, marker string) string {
	t.Helper()
	dbPath := filepath.Join(dir, "lifeos.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec("CREATE TABLE IF NOT EXISTS marker (value TEXT)"); err != nil {
		t.Fatalf("failed to create table: %v", err)
	}
	if _, err := db.Exec("DELETE FROM marker"); err != nil {
		t.Fatalf("failed to clear marker: %v", err)
	}
	if _, err := db.Exec("INSERT INTO marker (value) VALUES (?)", marker); err != nil {
		t.Fatalf("failed to insert marker: %v", err)
	}
	return dbPath
}

func readMarker(t *testing.T, dbPath string) string {
	t.Helper()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	var value string
	if err := db.QueryRow("SELECT value FROM marker").Scan(&value); err != nil {
		t.Fatalf("failed to read marker: %v", err)
	}
	return value
}

func TestCreateAndListBackups(t *testing.T) {
	dir := t.TempDir()
	dbPath := newTestDB(t, dir, "v1")
	mgr := NewManager(dbPath)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup() failed: %v", err)
	}
	if _, err := os.Stat(backupPath); err != nil {
		t.Fatalf("backup file missing: %v", err)
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups() failed: %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("ListBackups() returned %d backups, want 1", len(backups))
	}
	if backups[0].Size == 0 {
		t.Error("backup file is empty")
	}
}

func TestCreateBackupMissingDatabase(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "nope.db"))
	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("CreateBackup() without a database should fail")
	}
}

func TestListBackupsEmptyDir(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "lifeos.db"))
	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups() failed: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("ListBackups() on fresh dir returned %d backups", len(backups))
	}
}

func TestRestoreBackup(t *testing.T) {
	dir := t.TempDir()
	dbPath := newTestDB(t, dir, "original")
	mgr := NewManager(dbPath)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup() failed: %v", err)
	}

	// Mutate the live database, then restore the snapshot
	newTestDB(t, dir, "mutated")
	if got := readMarker(t, dbPath); got != "mutated" {
		t.Fatalf("marker = %q before restore, want mutated", got)
	}

	if err := mgr.RestoreBackup(backupPath); err != nil {
		t.Fatalf("RestoreBackup() failed: %v", err)
	}
	if got := readMarker(t, dbPath); got != "original" {
		t.Errorf("marker = %q after restore, want original", got)
	}

	// Restore creates a safety backup of the pre-restore state
	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups() failed: %v", err)
	}
	if len(backups) < 2 {
		t.Errorf("ListBackups() returned %d backups after restore, want at least 2", len(backups))
	}
}

func TestRestoreBackupMissingFile(t *testing.T) {
	dir := t.TempDir()
	dbPath := newTestDB(t, dir, "v1")
	mgr := NewManager(dbPath)

	if err := mgr.RestoreBackup(filepath.Join(dir, "ghost.db")); err == nil {
		t.Error("RestoreBackup() with missing file should fail")
	}
}

func TestRestoreBackupRejectsCorruptFile(t *testing.T) {
	dir := t.TempDir()
	dbPath := newTestDB(t, dir, "v1")
	mgr := NewManager(dbPath)

	corrupt := filepath.Join(dir, "corrupt.db")
	if err := os.WriteFile(corrupt, []byte("not a database"), 0600); err != nil {
		t.Fatalf("failed to write corrupt file: %v", err)
	}

	if err := mgr.RestoreBackup(corrupt); err == nil {
		t.Error("RestoreBackup() with corrupt file should fail")
	}
	if got := readMarker(t, dbPath); got != "v1" {
		t.Errorf("database changed after failed restore: marker = %q", got)
	}
}
