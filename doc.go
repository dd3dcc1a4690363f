// Package main provides the fmx command-line interface.
//
// fmx is a terminal file manager: it lists, inspects, copies, moves,
// deletes, hashes, archives, extracts, and analyzes files and directories,
// rendering results as styled tables, trees, and panels.
//
// The main binary supports multiple subcommands:
//   - list, tree, view, analyze: read-only inspection of files and directories
//   - copy, move, delete: filesystem mutations with confirmation prompts
//   - hash, archive, extract: digests and zip/tar archive handling
package main
