package storage

import (
	"errors"

	gcs "cloud.google.com/go/storage"
	"github.com/minio/minio-go/v7"
)

// IsNotExist reports whether an error returned by NewReader or Delete means the object
// does not exist, for either driver.
func IsNotExist(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gcs.ErrObjectNotExist) {
		return true
	}
	return minio.ToErrorResponse(err).Code == "NoSuchKey"
}
