package constants

const (
	// DateFormat is the calendar-date layout used for checkins, ratings, and week starts
	DateFormat = "2006-01-02"
	// TimestampFormat is the layout used for persisted created_at/updated_at columns
	TimestampFormat = "2006-01-02T15:04:05Z07:00"
)
