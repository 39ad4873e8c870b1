package constants

const (
	// AppName is used for the config directory, the postgres schema, and keyring entries
	AppName = "lifeos"

	// DefaultConfigPath is the default SQLite database location
	DefaultConfigPath = "~/.config/lifeos/lifeos.db"

	// KeyringSessionUser is the keyring account under which the active user id is stored
	KeyringSessionUser = "session"
	// KeyringConnectionUser is the keyring account for the postgres connection string
	KeyringConnectionUser = "connection-string"

	// EnvDBConnection is the environment variable for the database connection string
	EnvDBConnection = "LIFEOS_DB_CONNECTION"
)

const (
	// StreakLookbackDays caps the backward scan when computing streaks
	StreakLookbackDays = 365
	// ConsistencyWindowDays is the trailing window for consistency percentages
	ConsistencyWindowDays = 30
	// RecentCheckinDays is the width of the recent checkin grid shown in the TUI and habit log
	RecentCheckinDays = 7
)
