package storage

const (
	// DriverGCS talks to the Cloud Storage JSON API through the official client.
	DriverGCS = "gcs"
	// DriverInterop talks to the Cloud Storage XML API through S3 interoperability (HMAC keys).
	DriverInterop = "interop"

	// DefaultMaxAge is the Cache-Control max-age applied to uploads when none is configured (31 days).
	DefaultMaxAge = 2678400
	// DefaultDomainSuffix is appended to the bucket name when no asset domain is configured.
	DefaultDomainSuffix = "storage.googleapis.com"
)

// Config holds the storage provider block, as found under storage.gcs in the host configuration.
type Config struct {
	// Bucket is the name of the bucket assets are stored in. Required.
	Bucket string `mapstructure:"bucket" default:""`
	// Key is the path to a service account key file.
	Key string `mapstructure:"key" default:""`
	// ProjectID is the Google Cloud project billed for requests.
	ProjectID string `mapstructure:"projectId" default:""`
	// AssetDomain replaces <bucket>.storage.googleapis.com in generated URLs.
	AssetDomain string `mapstructure:"assetDomain" default:""`
	// Insecure generates http:// URLs instead of https://.
	Insecure bool `mapstructure:"insecure" default:"false"`
	// MaxAge is the Cache-Control max-age in seconds.
	MaxAge int `mapstructure:"maxAge" default:"2678400"`
	// UniformBucketLevelAccess disables per-object ACLs on upload.
	UniformBucketLevelAccess bool `mapstructure:"uniformBucketLevelAccess" default:"false"`

	// Driver selects the client implementation (gcs, interop).
	Driver string `mapstructure:"driver" default:"gcs"`
	// Endpoint overrides the storage API endpoint (emulators, interop host).
	Endpoint string `mapstructure:"endpoint" default:""`
	// AccessKey is the HMAC access id used by the interop driver.
	AccessKey string `mapstructure:"accessKey" default:""`
	// SecretKey is the HMAC secret used by the interop driver.
	SecretKey string `mapstructure:"secretKey" default:""`
	// TimeoutSeconds is the connection timeout in seconds for the interop driver.
	TimeoutSeconds int `mapstructure:"timeoutSeconds" default:"30"`
}

// WithDefaults returns a copy of the configuration with unset optional fields filled in.
func (c Config) WithDefaults() Config {
	if c.MaxAge <= 0 {
		c.MaxAge = DefaultMaxAge
	}
	if c.Driver == "" {
		c.Driver = DriverGCS
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 30
	}
	return c
}
