package birdnest

import "github.com/pikaos/birdnest/pkg/core"

// Re-export the error taxonomy so callers can match outcomes without
// importing pkg/core.
var (
	// ErrNoBackendFound indicates neither pikman nor apt is installed.
	ErrNoBackendFound = core.ErrNoBackendFound

	// ErrFlatpakUnavailable indicates flatpak is absent or disabled.
	ErrFlatpakUnavailable = core.ErrFlatpakUnavailable

	// ErrCancelled indicates the user declined the confirmation prompt.
	ErrCancelled = core.ErrCancelled
)

type (
	// SpawnError reports that an external tool could not be launched.
	SpawnError = core.SpawnError

	// CommandError reports that an external tool exited non-zero.
	CommandError = core.CommandError

	// ConfigError reports a malformed persisted configuration.
	ConfigError = core.ConfigError
)
