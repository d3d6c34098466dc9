// Package assets exposes the storage adapter to HTTP clients, playing the part of the
// host application: it receives uploads, hands them to the adapter and returns the
// resulting URLs.
//
// # HTTP Endpoints
//
//   - POST /assets : multipart upload (field "file"), returns {"url": ...}.
//   - GET /assets/exists?filename=&dir= : returns {"exists": bool}.
//   - GET /assets/read?path= : returns the raw object content.
//   - DELETE /assets?filename=&dir= : returns {"deleted": true}.
//   - GET <images_path>/* : passes through the adapter's Serve middleware and
//     redirects to the absolute asset URL.
package assets
