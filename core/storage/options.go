package storage

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// ParseOptions builds a Config from the raw storage block handed over by the host.
// It decodes with the same weak typing viper applies to the rest of the configuration:
// numeric strings become ints, "true"/"1" become bools, and values that cannot be
// converted ("yes", "60.5") are reported. Defaults are not applied here.
func ParseOptions(raw map[string]any) (Config, error) {
	var cfg Config
	if err := mapstructure.WeakDecode(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("invalid storage options: %w", err)
	}
	return cfg, nil
}
