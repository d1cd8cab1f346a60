package config

// Default paths for databases
const (
	// DefaultDatabasePath is the default path for the history database
	DefaultDatabasePath = "./bookforge.db"
)
