package config

// Config holds all application configuration loaded from environment
// variables (and a .env file in the working directory, if present).
//
// Command-line flags take precedence over these values; see cmd/root.go.
type Config struct {
	// DBPath is the journal database. Empty means the XDG data default.
	DBPath string `env:"SHINYPATH_DB"`

	// CatalogPath points at an external lesson catalog. Empty means the
	// built-in catalog.
	CatalogPath string `env:"SHINYPATH_CATALOG"`

	MaxLives int  `env:"SHINYPATH_MAX_LIVES" envDefault:"3"`
	Sound    bool `env:"SHINYPATH_SOUND" envDefault:"true"`

	LogLevel string `env:"SHINYPATH_LOG_LEVEL" envDefault:"info"`
	// LogFile is where logs go while the TUI owns the terminal. Empty
	// means the XDG state default.
	LogFile       string `env:"SHINYPATH_LOG_FILE"`
	LogMaxSizeMB  int    `env:"SHINYPATH_LOG_MAX_SIZE_MB" envDefault:"10"`
	LogMaxBackups int    `env:"SHINYPATH_LOG_MAX_BACKUPS" envDefault:"3"`
}
