// Package storage provides the bucket handle the adapter delegates to.
//
// A Bucket is scoped to one remote bucket and exposes exactly the calls the adapter
// needs: upload a local file, check existence, stream an object and delete it.
//
// # Drivers
//
//   - gcs: the official Cloud Storage client (JSON API). Authenticates with the
//     configured key file or Application Default Credentials.
//   - interop: the MinIO client against the Cloud Storage XML API using HMAC keys,
//     for deployments that only hold S3-style credentials.
//
// Both drivers report a missing object from Exists as (false, nil) and pass every
// other error through untouched.
//
// # Usage
//
//	bucket, err := storage.NewBucket(ctx, cfg.Storage.GCS)
//	ok, err := bucket.Exists(ctx, "2024/01/photo.jpg")
package storage
