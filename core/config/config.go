package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"ghost-storage-gcs/core/logger"
	"ghost-storage-gcs/core/server"
	"ghost-storage-gcs/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// StorageConfig mirrors the host's storage block: the active adapter name and its settings.
type StorageConfig struct {
	// Active is the name of the storage adapter in use.
	Active string `mapstructure:"active" default:"gcs"`
	// GCS holds the Cloud Storage adapter settings.
	GCS storage.Config `mapstructure:"gcs"`
}

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds the storage adapter block.
	Storage StorageConfig `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// ConfigFileEnv names the environment variable holding the host JSON config file path.
const ConfigFileEnv = "GHOST_CONFIG"

// LoadConfig loads configuration from defaults, an optional host JSON config file,
// a .env file in dir and environment variables, in increasing order of precedence.
// file may be empty; GHOST_CONFIG is used then.
func LoadConfig(dir, file string) (*Config, error) {
	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(filepath.Join(dir, ".env"))

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	if file == "" {
		file = os.Getenv(ConfigFileEnv)
	}
	if file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	}

	// Map environment variables to nested keys (e.g. STORAGE_GCS_BUCKET -> storage.gcs.bucket)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	// The storage.gcs block goes through the adapter's own option decoding so the
	// CLI, the HTTP host and any raw JSON block share one set of conversion rules.
	gcs, err := storage.ParseOptions(subMap(v.AllSettings(), "storage", "gcs"))
	if err != nil {
		return nil, fmt.Errorf("failed to decode storage.gcs: %w", err)
	}
	config.Storage.GCS = gcs

	return &config, nil
}

// subMap walks nested settings maps and returns the map at path, or nil when absent.
func subMap(settings map[string]any, path ...string) map[string]any {
	current := settings
	for _, key := range path {
		next, ok := current[key].(map[string]any)
		if !ok {
			return nil
		}
		current = next
	}
	return current
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

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
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
