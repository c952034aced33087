package spool

// Backends a spool tree can be read from.
const (
	BackendLocal   = "local"
	BackendStorage = "storage"
)

// Config holds configuration for the spool tree and its sites.
type Config struct {
	// Root is the spool root holding one directory per site.
	Root string `mapstructure:"root" default:"/var/spool/uucp"`
	// Sites lists the UUCP names to reconcile (comma separated in the environment).
	Sites []string `mapstructure:"sites" default:""`
	// Backend selects where the spool tree lives (local, storage).
	Backend string `mapstructure:"backend" default:"local"`
}

// IsValidBackend checks if the configured backend is known.
func (c Config) IsValidBackend() bool {
	switch c.Backend {
	case BackendLocal, BackendStorage:
		return true
	default:
		return false
	}
}
