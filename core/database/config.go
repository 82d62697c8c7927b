package database

// Config holds configuration for the snapshot database connection.
type Config struct {
	// Driver is mysql or sqlite.
	Driver string `mapstructure:"driver" default:"sqlite"`
	Host   string `mapstructure:"host" default:"localhost"`
	Port   int    `mapstructure:"port" default:"3306"`
	User   string `mapstructure:"user" default:"root"`
	// Password is URL-encoded into the DSN, so special characters are allowed.
	Password string `mapstructure:"password" default:""`
	// Name is the schema name, or the file path for sqlite.
	Name string `mapstructure:"name" default:"xwing_inventory.db"`
	// TimeoutSeconds bounds connection setup, I/O and the initial ping.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)
