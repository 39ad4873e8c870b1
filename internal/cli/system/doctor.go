package system

import (
	"database/sql"
	"fmt"
	"io/fs"
	"strings"
	"time"

	ps "github.com/mitchellh/go-ps"

	"github.com/lifeos-app/lifeos/internal/backup"
	"github.com/lifeos-app/lifeos/internal/cli"
	"github.com/lifeos-app/lifeos/internal/keyring"
	"github.com/lifeos-app/lifeos/internal/migration"
	"github.com/lifeos-app/lifeos/internal/storage/sqlite"
	"github.com/lifeos-app/lifeos/migrations"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	dbReachable := false

	// Check 1: DB reachable
	if err := checkDBReachable(ctx); err != nil {
		fmt.Printf("❌ Database reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Database reachable: OK\n")
		dbReachable = true
	}

	// Check 2: Schema version valid (only if DB is reachable)
	if dbReachable {
		if err := checkSchemaVersion(ctx); err != nil {
			fmt.Printf("❌ Schema version: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Schema version: OK\n")
		}
	} else {
		fmt.Printf("⊘ Schema version: SKIPPED (database not reachable)\n")
	}

	// Check 3: Migrations complete (only if DB is reachable)
	if dbReachable {
		if err := checkMigrationsComplete(ctx); err != nil {
			fmt.Printf("❌ Migrations complete: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Migrations complete: OK\n")
		}
	} else {
		fmt.Printf("⊘ Migrations complete: SKIPPED (database not reachable)\n")
	}

	// Check 4: Backups present (warning only, sqlite only)
	if ctx.UsingSQLite() {
		if err := checkBackupsPresent(ctx); err != nil {
			fmt.Printf("⚠ Backups present: WARNING\n")
			fmt.Printf("   %v\n", err)
		} else {
			fmt.Printf("✓ Backups present: OK\n")
		}
	} else {
		fmt.Printf("⊘ Backups present: SKIPPED (postgres storage)\n")
	}

	// Check 5: Keyring available
	if keyring.IsAvailable() {
		fmt.Printf("✓ OS keyring: OK\n")
	} else {
		fmt.Printf("⚠ OS keyring: WARNING\n")
		fmt.Printf("   keyring unavailable - sessions and stored credentials will not work\n")
	}

	// Check 6: Clock/timezone sanity
	if err := checkClockTimezone(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	// Check 7: Check-in integrity (only if DB is reachable)
	if dbReachable {
		if err := checkCheckinIntegrity(ctx); err != nil {
			fmt.Printf("❌ Check-in integrity: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Check-in integrity: OK\n")
		}
	} else {
		fmt.Printf("⊘ Check-in integrity: SKIPPED (database not reachable)\n")
	}

	// Check 8: Date formats (only if DB is reachable)
	if dbReachable {
		if err := checkDateFormats(ctx); err != nil {
			fmt.Printf("❌ Date formats: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Date formats: OK\n")
		}
	} else {
		fmt.Printf("⊘ Date formats: SKIPPED (database not reachable)\n")
	}

	// Check 9: Rating range integrity (only if DB is reachable)
	if dbReachable {
		if err := checkRatingRanges(ctx); err != nil {
			fmt.Printf("❌ Rating ranges: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Rating ranges: OK\n")
		}
	} else {
		fmt.Printf("⊘ Rating ranges: SKIPPED (database not reachable)\n")
	}

	// Check 10: Concurrent processes (warning only)
	if err := checkConcurrentProcesses(); err != nil {
		fmt.Printf("⚠ Concurrent processes: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Concurrent processes: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}

	db := sqliteDB(ctx)
	if db != nil {
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}

	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	runner, err := sqliteRunner(ctx)
	if err != nil || runner == nil {
		return err
	}

	currentVersion, err := runner.GetCurrentVersion()
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}

	latestVersion, err := runner.GetLatestVersion()
	if err != nil {
		return fmt.Errorf("failed to get latest schema version: %w", err)
	}

	if currentVersion > latestVersion {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", currentVersion, latestVersion)
	}

	return nil
}

func checkMigrationsComplete(ctx *cli.Context) error {
	runner, err := sqliteRunner(ctx)
	if err != nil || runner == nil {
		return err
	}

	currentVersion, err := runner.GetCurrentVersion()
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}

	latestVersion, err := runner.GetLatestVersion()
	if err != nil {
		return fmt.Errorf("failed to get latest schema version: %w", err)
	}

	if currentVersion < latestVersion {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d (run 'lifeos migrate')", currentVersion, latestVersion)
	}

	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'lifeos backup create'")
	}

	return nil
}

func checkClockTimezone() error {
	now := time.Now()

	// A clock outside this window breaks streaks and week math
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}

	return nil
}

func checkCheckinIntegrity(ctx *cli.Context) error {
	db := sqliteDB(ctx)
	if db == nil {
		return nil // Not sqlite, skip
	}

	// Check for check-ins referencing non-existent habits
	var orphanedCount int
	err := db.QueryRow(`
		SELECT COUNT(*)
		FROM habit_checkins c
		LEFT JOIN habits h ON c.habit_id = h.id
		WHERE h.id IS NULL
	`).Scan(&orphanedCount)
	if err != nil {
		return fmt.Errorf("failed to check orphaned check-ins: %w", err)
	}
	if orphanedCount > 0 {
		return fmt.Errorf("found %d check-ins referencing non-existent habits", orphanedCount)
	}

	// Duplicates should be impossible with the unique index; verify anyway
	var duplicateCount int
	err = db.QueryRow(`
		SELECT COUNT(*)
		FROM (
			SELECT habit_id, checked_at, COUNT(*) as cnt
			FROM habit_checkins
			GROUP BY habit_id, checked_at
			HAVING cnt > 1
		)
	`).Scan(&duplicateCount)
	if err != nil {
		return fmt.Errorf("failed to check duplicate check-ins: %w", err)
	}
	if duplicateCount > 0 {
		return fmt.Errorf("found %d habit+day combinations with duplicate check-ins", duplicateCount)
	}

	return nil
}

func checkDateFormats(ctx *cli.Context) error {
	db := sqliteDB(ctx)
	if db == nil {
		return nil // Not sqlite, skip
	}

	var invalidCount int
	err := db.QueryRow(`
		SELECT COUNT(*)
		FROM habit_checkins
		WHERE checked_at NOT GLOB '[0-9][0-9][0-9][0-9]-[0-9][0-9]-[0-9][0-9]'
	`).Scan(&invalidCount)
	if err != nil {
		return fmt.Errorf("failed to check check-in dates: %w", err)
	}
	if invalidCount > 0 {
		return fmt.Errorf("found %d check-ins with invalid date format", invalidCount)
	}

	err = db.QueryRow(`
		SELECT COUNT(*)
		FROM weekly_reviews
		WHERE week_start NOT GLOB '[0-9][0-9][0-9][0-9]-[0-9][0-9]-[0-9][0-9]'
	`).Scan(&invalidCount)
	if err != nil {
		return fmt.Errorf("failed to check review week dates: %w", err)
	}
	if invalidCount > 0 {
		return fmt.Errorf("found %d weekly reviews with invalid week start format", invalidCount)
	}

	return nil
}

func checkRatingRanges(ctx *cli.Context) error {
	db := sqliteDB(ctx)
	if db == nil {
		return nil // Not sqlite, skip
	}

	var outOfRange int
	err := db.QueryRow(`
		SELECT COUNT(*)
		FROM skill_ratings
		WHERE rating < 1 OR rating > 10
	`).Scan(&outOfRange)
	if err != nil {
		return fmt.Errorf("failed to check rating ranges: %w", err)
	}
	if outOfRange > 0 {
		return fmt.Errorf("found %d skill ratings outside the 1-10 range", outOfRange)
	}

	return nil
}

func checkConcurrentProcesses() error {
	procs, err := ps.Processes()
	if err != nil {
		return fmt.Errorf("failed to list processes: %w", err)
	}

	count := 0
	for _, p := range procs {
		if strings.HasPrefix(p.Executable(), "lifeos") {
			count++
		}
	}

	// This process counts as one
	if count > 1 {
		return fmt.Errorf("found %d other running lifeos process(es) - concurrent writes to the sqlite file may conflict", count-1)
	}

	return nil
}

func sqliteDB(ctx *cli.Context) *sql.DB {
	sqliteStore, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		return nil
	}
	return sqliteStore.GetDB()
}

func sqliteRunner(ctx *cli.Context) (*migration.Runner, error) {
	db := sqliteDB(ctx)
	if db == nil {
		return nil, nil // Postgres validates schema version on load
	}

	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return nil, fmt.Errorf("failed to access sqlite migrations: %w", err)
	}

	return migration.NewRunner(db, subFS), nil
}
