// Package detect probes the host for available package-management
// backends. Probing is presence-only: executables are looked up on PATH
// but never invoked.
package detect

import (
	"fmt"
	"sync"

	"github.com/pikaos/birdnest/pkg/core"
	"github.com/pikaos/birdnest/pkg/executor"
)

// systemOrder is the fixed preference list for the system backend.
// pikman is the distribution-native tool and wins when both are present.
var systemOrder = []core.BackendKind{core.KindPikman, core.KindApt}

// Detector resolves which backends exist on this host. The system
// backend is resolved at most once and never changes for the process
// lifetime.
type Detector struct {
	run    executor.Runner
	forced core.BackendKind

	once sync.Once
	kind core.BackendKind
	err  error
}

// New returns a Detector. A forced kind other than KindAuto skips the
// preference list but still verifies the tool is present.
func New(run executor.Runner, forced core.BackendKind) *Detector {
	if forced == "" {
		forced = core.KindAuto
	}
	return &Detector{run: run, forced: forced}
}

// System resolves the system package backend, memoized for the process
// lifetime. Two calls within one invocation always agree.
func (d *Detector) System() (core.BackendKind, error) {
	d.once.Do(func() {
		d.kind, d.err = d.probe()
	})
	return d.kind, d.err
}

func (d *Detector) probe() (core.BackendKind, error) {
	if d.forced != core.KindAuto {
		if _, err := d.run.LookPath(string(d.forced)); err != nil {
			return "", fmt.Errorf("configured backend %q is not installed: %w", d.forced, core.ErrNoBackendFound)
		}
		return d.forced, nil
	}

	for _, kind := range systemOrder {
		if _, err := d.run.LookPath(string(kind)); err == nil {
			return kind, nil
		}
	}
	return "", core.ErrNoBackendFound
}

// Flatpak checks for the sandboxed-app tool. The check is independent of
// the system backend and only performed when a command asks for flatpak
// mode.
func (d *Detector) Flatpak() error {
	if _, err := d.run.LookPath("flatpak"); err != nil {
		return fmt.Errorf("flatpak is not installed: %w", core.ErrFlatpakUnavailable)
	}
	return nil
}
