package ghost

import (
	"context"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Asset describes an uploaded file waiting to be stored.
type Asset struct {
	// Path is the local path of the uploaded file.
	Path string `json:"path"`
	// Name is the original file name as sent by the client.
	Name string `json:"name"`
	// Type is the MIME type of the file.
	Type string `json:"type"`
}

// ReadOptions identifies the object to fetch.
type ReadOptions struct {
	// Path is the object path inside the bucket.
	Path string `json:"path"`
}

// Base is the part of the host's storage plugin contract that adapters reuse
// instead of implementing: directory bucketing and collision-free naming.
type Base interface {
	// GetTargetDir returns the directory new uploads go to, optionally below baseDir.
	GetTargetDir(baseDir string) string
	// GetUniqueFileName returns a path inside targetDir that does not exist yet.
	GetUniqueFileName(ctx context.Context, asset Asset, targetDir string) (string, error)
}

// ExistsFunc reports whether filename exists in dir.
type ExistsFunc func(ctx context.Context, filename, dir string) (bool, error)

var unsafeChars = regexp.MustCompile(`[^\w@.]`)

// SanitizeFileName replaces every character outside [A-Za-z0-9_@.] with '-'.
func SanitizeFileName(name string) string {
	return unsafeChars.ReplaceAllString(name, "-")
}

// StorageBase is the default Base: year/month directories and -N suffixes on collision.
type StorageBase struct {
	exists ExistsFunc
	now    func() time.Time
}

// NewStorageBase creates a StorageBase that checks candidates for collisions with exists.
func NewStorageBase(exists ExistsFunc) *StorageBase {
	return &StorageBase{exists: exists, now: time.Now}
}

// WithClock returns a copy of the base that reads the current time from now.
func (b *StorageBase) WithClock(now func() time.Time) *StorageBase {
	return &StorageBase{exists: b.exists, now: now}
}

// GetTargetDir returns baseDir/YYYY/MM, or YYYY/MM when baseDir is empty.
func (b *StorageBase) GetTargetDir(baseDir string) string {
	t := b.now()
	year := t.Format("2006")
	month := t.Format("01")
	if baseDir == "" {
		return filepath.Join(year, month)
	}
	return filepath.Join(baseDir, year, month)
}

// GetUniqueFileName sanitizes the asset name and appends -1, -2, ... until exists reports
// the candidate free. The returned path is joined with targetDir.
func (b *StorageBase) GetUniqueFileName(ctx context.Context, asset Asset, targetDir string) (string, error) {
	ext := filepath.Ext(asset.Name)
	name := SanitizeFileName(strings.TrimSuffix(filepath.Base(asset.Name), ext))

	for i := 0; ; i++ {
		candidate := name
		if i > 0 {
			candidate += "-" + strconv.Itoa(i)
		}
		candidate += ext

		taken, err := b.exists(ctx, candidate, targetDir)
		if err != nil {
			return "", err
		}
		if !taken {
			return filepath.Join(targetDir, candidate), nil
		}
		if err := ctx.Err(); err != nil {
			return "", err
		}
	}
}
