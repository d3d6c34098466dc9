package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables the check.
	ApiKey string `mapstructure:"api_key" default:""`
	// ImagesPath is the route prefix the host serves stored images under.
	ImagesPath string `mapstructure:"images_path" default:"/content/images"`
	// UploadLimitMB caps the request body size in megabytes.
	UploadLimitMB int `mapstructure:"upload_limit_mb" default:"50"`
}

// BodyLimit returns the request body limit in bytes.
func (c Config) BodyLimit() int {
	if c.UploadLimitMB <= 0 {
		return 50 * 1024 * 1024
	}
	return c.UploadLimitMB * 1024 * 1024
}

// AuthEnabled reports whether requests must carry the API key.
func (c Config) AuthEnabled() bool {
	return c.ApiKey != ""
}
