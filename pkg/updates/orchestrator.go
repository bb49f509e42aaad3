// Package updates composes "what can be upgraded" across the system and
// sandboxed-app backends.
package updates

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/pikaos/birdnest/pkg/core"
)

// SystemBackend is the slice of the system package backend the
// orchestrator needs.
type SystemBackend interface {
	Update(ctx context.Context) error
	ListUpgradable(ctx context.Context) ([]core.PackageRecord, error)
	Upgrade(ctx context.Context, targets []string, yes bool) error
}

// AppBackend is the slice of the sandboxed-app backend the orchestrator
// needs.
type AppBackend interface {
	ListUpgradable(ctx context.Context) ([]core.PackageRecord, error)
}

// Report is the outcome of an update check. Refreshed is false when the
// index refresh failed and the listing came from stale indices.
type Report struct {
	Refreshed  bool
	Upgradable []core.PackageRecord
}

// Orchestrator runs the refresh-then-list sequence. apps may be nil
// when flatpak support is disabled or absent.
type Orchestrator struct {
	sys    SystemBackend
	apps   AppBackend
	logger *log.Logger
}

// New returns an Orchestrator over the given backends.
func New(sys SystemBackend, apps AppBackend, logger *log.Logger) *Orchestrator {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Orchestrator{sys: sys, apps: apps, logger: logger}
}

// Check refreshes the package indices and reports pending upgrades. A
// failed refresh degrades to a stale listing rather than failing the
// whole check; a stale-but-present list beats none. A successful query
// is never discarded because the refresh failed.
func (o *Orchestrator) Check(ctx context.Context) (*Report, error) {
	rep := &Report{Refreshed: true}
	if err := o.sys.Update(ctx); err != nil {
		o.logger.Printf("index refresh failed, listing from stale indices: %v", err)
		rep.Refreshed = false
	}

	recs, err := o.sys.ListUpgradable(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing upgradable packages: %w", err)
	}
	rep.Upgradable = recs

	if o.apps != nil {
		appRecs, err := o.apps.ListUpgradable(ctx)
		if err != nil {
			o.logger.Printf("flatpak update check failed: %v", err)
		} else {
			rep.Upgradable = append(rep.Upgradable, appRecs...)
		}
	}

	return rep, nil
}

// Apply upgrades the given targets, or everything when targets is
// empty, through the system backend.
func (o *Orchestrator) Apply(ctx context.Context, targets []string, yes bool) error {
	return o.sys.Upgrade(ctx, targets, yes)
}
