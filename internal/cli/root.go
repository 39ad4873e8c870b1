package cli

import (
	"github.com/lifeos-app/lifeos/internal/backup"
	"github.com/lifeos-app/lifeos/internal/logger"
	"github.com/lifeos-app/lifeos/internal/models"
	"github.com/lifeos-app/lifeos/internal/session"
	"github.com/lifeos-app/lifeos/internal/storage"
)

type Context struct {
	Store storage.Provider
}

// RequireUser resolves the logged-in profile. Data commands call this before
// touching entity data so an unauthenticated run fails fast.
func (c *Context) RequireUser() (models.Profile, error) {
	return session.CurrentUser(c.Store)
}

// UsingSQLite reports whether the store is backed by a local sqlite file.
// File backups only make sense for that backend.
func (c *Context) UsingSQLite() bool {
	return c.Store.GetConfigPath() != "postgresql"
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	if !c.UsingSQLite() {
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// OutcomeSymbol renders a decision outcome as a single status glyph
func OutcomeSymbol(o models.Outcome) string {
	switch o {
	case models.OutcomeSuccessful:
		return "✓"
	case models.OutcomeFailed:
		return "✗"
	case models.OutcomeNeutral:
		return "~"
	default:
		return "?"
	}
}
