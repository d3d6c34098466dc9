// Package config provides configuration management for the storage adapter host.
//
// It utilizes Viper for loading configuration from struct-tag defaults, the host's
// JSON config file (config.production.json and friends), a .env file and
// environment variables.
//
// # Configuration Structure
//
//   - Server: HTTP server settings (port, API key)
//   - Storage: the host storage block; storage.gcs holds bucket, key, projectId,
//     assetDomain, insecure, maxAge and uniformBucketLevelAccess
//   - Log: Logging level and format
//
// Environment variables map onto nested keys with underscores, for example
// STORAGE_GCS_BUCKET or STORAGE_GCS_ASSETDOMAIN.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".", "config.production.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Storage.GCS.Bucket)
package config
