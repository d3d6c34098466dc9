package adapter

import (
	"errors"
	"fmt"
)

// ErrMissingBucket is matched by the ConfigurationError returned when no bucket is configured.
var ErrMissingBucket = errors.New("bucket is required")

// ConfigurationError reports an adapter configuration that cannot be used.
type ConfigurationError struct {
	Field string
	Err   error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid storage configuration: %s: %v", e.Field, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
