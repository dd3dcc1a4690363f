// Package cmd provides the command-line interface implementation for fmx.
//
// This package contains all the subcommand implementations for the fmx CLI
// tool. It uses the Cobra library for command structure, Fang for styled
// execution, and Lipgloss for tables, trees, and panels.
//
// The package is organized into the following commands:
//   - list, tree, view, analyze: read-only inspection commands
//   - copy, move, delete: filesystem mutations with confirmation prompts
//   - hash, archive, extract: digests and archive handling
//
// Each command is implemented as a separate file with its own constructor
// function that returns a *cobra.Command. The root command coordinates all
// subcommands and groups them for help output.
//
// All rendering flows through the command's own output writer rather than a
// package-level console, so tests and callers can capture it. The package
// leverages the fileops package for all core operations; nothing in fileops
// depends on this package.
package cmd
