// Package version provides version information and build metadata for fmx.
//
// Version, Commit, and Date may be injected at build time with
//
//	go build -ldflags "-X github.com/fmx-dev/fmx/version.Version=v1.0.0"
//
// and fall back to the values Go records in debug.ReadBuildInfo (module
// version, vcs.revision, vcs.time) for builds without flags. The root
// command surfaces GetFullVersion through --version.
package version
