package storage

import (
	"strings"

	"github.com/lifeos-app/lifeos/internal/storage/postgres"
	"github.com/lifeos-app/lifeos/internal/storage/sqlite"
)

// IsPostgresTarget reports whether the config string names a postgres
// database rather than a sqlite file path.
func IsPostgresTarget(target string) bool {
	return strings.HasPrefix(target, "postgres://") || strings.HasPrefix(target, "postgresql://")
}

// New selects a backend from the config string: postgres:// or postgresql://
// prefixes get the postgres store, anything else is treated as a sqlite file
// path. Postgres connection strings must not embed a password; callers should
// run postgres.ValidateConnString first and source credentials from the
// keyring or environment.
func New(target string) Provider {
	if IsPostgresTarget(target) {
		return postgres.New(target)
	}
	return sqlite.NewStore(target)
}
