// Package tasks runs long library operations with real-time progress reporting.
//
// # Bulk Export
//
// [ExportEngine.BulkExport] translates every playlist of a library and writes one file per playlist:
//   - A worker pool translates and writes playlists concurrently
//   - An optional rate limit throttles job dispatch
//   - Failures are recorded per playlist and never abort the batch
//   - An export_manifest.json summarizes the run
//
// # Progress Reporting
//
// All operations use non-blocking channels for progress updates.
//
// The [ProgressUpdate] struct contains phase, step counters, messages, and optional data for advanced UI rendering.
// Updates use select with default to prevent blocking.
package tasks
