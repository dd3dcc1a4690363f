// Package fileops provides the core file-management operations for fmx.
//
// This package contains the fundamental building blocks the CLI commands are
// presentation wrappers around: metadata snapshots, streaming file digests,
// directory listing and tree walking, recursive analysis, copy/move/delete
// mutators, and the zip/tar archive codec.
//
// Key Components:
//
// Metadata:
//   - Entry snapshots of single filesystem nodes, with a degraded variant
//     carrying only a name and error description when stat fails
//   - Content-type detection via mimetype sniffing
//
// Digests:
//   - Closed Algorithm set (MD5, SHA-1, SHA-256, SHA-512) behind a fixed
//     dispatch table
//   - Fixed-size chunked reads so memory stays bounded for any file size
//
// Traversal:
//   - Single-level directory listings with selectable sort keys
//   - Depth-bounded tree construction as pure owned values
//   - Unbounded-depth analysis with extension histograms and largest-file
//     ranking
//
// Mutation and Archives:
//   - Per-item batch deletes that never abort sibling operations
//   - Staged file copies that cannot leave truncated destinations behind
//   - zip, tar, and tar.gz creation, listing, and extraction with path
//     escape guards
//
// Read-only traversal favors best-effort reporting: entries that fail to
// stat are skipped or reported as markers instead of aborting the walk.
// Mutators never silently swallow a failure affecting the requested path.
package fileops
