package source

// Config selects where input documents are read from.
type Config struct {
	// Backend is "local" (a directory) or "bucket" (object storage).
	Backend string `mapstructure:"backend" default:"local"`
	// Root is the directory, or the key prefix inside the bucket.
	Root string `mapstructure:"root" default:"."`
	// Expansions is the name of the expansion catalog document.
	Expansions string `mapstructure:"expansions" default:"expansions.json"`
	// Collection is the name of the collection export document.
	Collection string `mapstructure:"collection" default:"collection.json"`
	// XWingData is the root of the xwing-data2 checkout.
	XWingData string `mapstructure:"xwing_data" default:"xwing-data2"`
}

const (
	BackendLocal  = "local"
	BackendBucket = "bucket"
)

// IsValidBackend checks if the configured backend is known.
func (c Config) IsValidBackend() bool {
	switch c.Backend {
	case BackendLocal, BackendBucket:
		return true
	default:
		return false
	}
}
