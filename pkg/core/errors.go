package core

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoBackendFound indicates neither pikman nor apt is installed.
	ErrNoBackendFound = errors.New("no supported package manager found (pikman or apt)")

	// ErrFlatpakUnavailable indicates flatpak is absent or disabled in the
	// configuration.
	ErrFlatpakUnavailable = errors.New("flatpak support is unavailable")

	// ErrCancelled indicates the user declined the confirmation prompt.
	// It is a benign outcome, not a failure.
	ErrCancelled = errors.New("cancelled by user")

	// ErrNoTargets indicates an operation that requires package names
	// was given none.
	ErrNoTargets = errors.New("no packages specified")
)

// SpawnError reports that an external tool could not be located or
// launched. A tool that launched and exited non-zero is a CommandError
// instead.
type SpawnError struct {
	Command string
	Err     error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("spawning %s: %v", e.Command, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// CommandError reports that an external tool ran and exited non-zero.
// The exit code is preserved so the CLI can mirror it.
type CommandError struct {
	Command  string
	ExitCode int
	Stderr   string
}

func (e *CommandError) Error() string {
	if s := strings.TrimSpace(e.Stderr); s != "" {
		return fmt.Sprintf("%s exited with code %d: %s", e.Command, e.ExitCode, s)
	}
	return fmt.Sprintf("%s exited with code %d", e.Command, e.ExitCode)
}

// ConfigError reports a malformed persisted configuration. Fatal at
// startup; a broken config is never silently ignored.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("loading config %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }
