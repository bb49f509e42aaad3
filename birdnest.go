// Package birdnest unifies pikman, apt and flatpak behind one set of
// package-management verbs. The heavy lifting lives in the pkg
// subpackages; this facade re-exports the pieces an embedding
// application needs.
package birdnest

import (
	"log"

	"github.com/pikaos/birdnest/pkg/core"
	"github.com/pikaos/birdnest/pkg/detect"
	"github.com/pikaos/birdnest/pkg/dispatch"
	"github.com/pikaos/birdnest/pkg/executor"
)

// Version is the birdnest release version.
const Version = "0.2.0"

// Re-export the core types for convenience.
type (
	Config        = core.Config
	Operation     = core.Operation
	PackageRecord = core.PackageRecord
	BackendKind   = core.BackendKind
	Verb          = core.Verb
	Distro        = core.Distro
	Outcome       = dispatch.Outcome
)

// Re-export the backend kinds.
const (
	KindPikman = core.KindPikman
	KindApt    = core.KindApt
	KindAuto   = core.KindAuto
)

// DefaultConfig returns the configuration written on first run.
func DefaultConfig() Config { return core.DefaultConfig() }

// LoadConfig loads the persisted configuration; an empty path means the
// per-user default location.
func LoadConfig(path string) (Config, error) { return core.LoadConfig(path) }

// New assembles a dispatcher over the real process executor. The
// backend kind is resolved lazily on first use and never changes for
// the process lifetime.
func New(cfg Config, confirm dispatch.Confirmer, logger *log.Logger) *dispatch.Dispatcher {
	run := executor.New()
	det := detect.New(run, core.BackendKind(cfg.PackageManager))
	return dispatch.New(cfg, det, run, confirm, logger)
}
