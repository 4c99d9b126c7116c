// Package publish mirrors the embedded asset bundle into an object storage bucket.
//
// It is an operator tool behind the `publish` command. The HTTP server never
// reads from the bucket; the mirror exists so the same files can be fronted by a
// CDN.
//
// # Flow
//
//  1. Verify the bucket exists (optionally create it).
//  2. For each asset, compute its SHA-256 and skip it when the manifest already
//     records that digest for the object key.
//  3. Upload the rest with their MIME type as Content-Type and record them.
//  4. With Prune, delete objects under the prefix that no longer exist in the bundle.
//
// Failures on individual assets do not stop the run; they are combined with
// multierr and returned alongside the report.
//
// # Manifest
//
// The manifest is an optional database table (published_assets) managed through
// GORM. Without it every run uploads every asset.
package publish
