package config

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"xwing-inventory/core/database"
	"xwing-inventory/core/logger"
	"xwing-inventory/core/reconcile"
	"xwing-inventory/core/server"
	"xwing-inventory/core/source"
	"xwing-inventory/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Server   server.Config   `mapstructure:"server"`
	Storage  storage.Config  `mapstructure:"storage"`
	Log      logger.Config   `mapstructure:"log"`
	Database database.Config `mapstructure:"database"`
	// Sources locates the expansion catalog, the collection and xwing-data2.
	Sources   source.Config   `mapstructure:"sources"`
	Reconcile ReconcileConfig `mapstructure:"reconcile"`
	Export    ExportConfig    `mapstructure:"export"`
}

// ReconcileConfig tunes collection resolution.
type ReconcileConfig struct {
	// DuplicatePolicy is "first" or "sum".
	DuplicatePolicy string `mapstructure:"duplicate_policy" default:"first"`
	// CacheTTLSeconds is how long the server reuses a built report. 0 rebuilds on every request.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"300"`
}

// Policy parses DuplicatePolicy.
func (c ReconcileConfig) Policy() (reconcile.DuplicatePolicy, error) {
	return reconcile.ParseDuplicatePolicy(c.DuplicatePolicy)
}

// CacheTTL returns CacheTTLSeconds as a duration.
func (c ReconcileConfig) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

// ExportConfig holds the default output locations of the inventory command.
type ExportConfig struct {
	JSONPath string `mapstructure:"json_path" default:"inventory.json"`
	XLSXPath string `mapstructure:"xlsx_path" default:"XWingTMG2_Inventory.xlsx"`
	// UploadPrefix is the key prefix of exports uploaded to the storage bucket.
	UploadPrefix string `mapstructure:"upload_prefix" default:"exports"`
}

// Validate checks values that cannot be expressed as defaults.
func (c *Config) Validate() error {
	if !c.Sources.IsValidBackend() {
		return fmt.Errorf("invalid sources backend %q", c.Sources.Backend)
	}
	if _, err := c.Reconcile.Policy(); err != nil {
		return err
	}
	if c.Reconcile.CacheTTLSeconds < 0 {
		return fmt.Errorf("reconcile cache ttl must not be negative")
	}
	return nil
}

// LoadConfig reads path/.env, if present, then the environment.
func LoadConfig(path string) (*Config, error) {
	// A missing .env is fine; the environment may carry everything.
	_ = godotenv.Overload(filepath.Join(path, ".env"))

	v := viper.New()
	bindValues(v, reflect.TypeOf(Config{}), "")

	// SOURCES_XWING_DATA -> sources.xwing_data
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues registers every tagged field of t under its dotted key, with the
// value of its default tag. Registering empty defaults too is what lets
// AutomaticEnv pick the key up.
func bindValues(v *viper.Viper, t reflect.Type, prefix string) {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, field.Type, key)
			continue
		}
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
