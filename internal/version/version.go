// Package version provides centralized version information for the ensure
// library and the ensurectl CLI.
// All versions follow semantic versioning (semver) conventions.

package version

// EnsureVersion holds the current ensure library version.
// Format: major.minor.patch[-prerelease][+build]
const EnsureVersion = "0.1.0-dev"

// EnsurectlVersion holds the current ensurectl CLI version.
// Format: major.minor.patch[-prerelease][+build]
const EnsurectlVersion = "0.1.0-dev"
