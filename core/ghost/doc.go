// Package ghost holds the host-side types of the storage plugin contract.
//
// The host hands adapters an Asset to save and a ReadOptions to read, and supplies
// the naming helpers every adapter shares through the Base interface:
//
//   - GetTargetDir: date-bucketed directory ("2024/01") for new uploads.
//   - GetUniqueFileName: sanitized file name with a -N suffix when the name is taken.
//
// StorageBase is the stock Base. It needs an ExistsFunc, normally the adapter's own
// Exists, to check for collisions.
package ghost
