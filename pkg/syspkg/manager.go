// Package syspkg is the system package backend. It translates the
// unified verbs into pikman or apt invocations and normalizes their
// output; it never resolves dependencies or touches package payloads
// itself.
package syspkg

import (
	"context"
	"io"
	"log"
	"strings"

	"github.com/pikaos/birdnest/pkg/core"
	"github.com/pikaos/birdnest/pkg/executor"
)

// Manager drives the resolved system backend. The kind is fixed at
// construction and never changes mid-operation.
type Manager struct {
	kind   core.BackendKind
	run    executor.Runner
	logger *log.Logger
}

// NewManager returns a Manager bound to the detected backend kind.
func NewManager(kind core.BackendKind, run executor.Runner, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Manager{kind: kind, run: run, logger: logger}
}

// Kind returns the backend kind this manager drives.
func (m *Manager) Kind() core.BackendKind { return m.kind }

// Capabilities returns the capability flags of the bound kind.
func (m *Manager) Capabilities() core.Capabilities { return Caps(m.kind) }

// InstallOptions configure an install operation.
type InstallOptions struct {
	Yes    bool
	Distro core.Distro
}

// Install installs the given packages.
func (m *Manager) Install(ctx context.Context, targets []string, opts InstallOptions) error {
	_, err := m.do(ctx, core.Operation{
		Verb:    core.VerbInstall,
		Targets: targets,
		Yes:     opts.Yes,
		Distro:  opts.Distro,
	})
	return err
}

// RemoveOptions configure a remove operation.
type RemoveOptions struct {
	Yes        bool
	Autoremove bool
}

// Remove removes the given packages.
func (m *Manager) Remove(ctx context.Context, targets []string, opts RemoveOptions) error {
	_, err := m.do(ctx, core.Operation{
		Verb:       core.VerbRemove,
		Targets:    targets,
		Yes:        opts.Yes,
		Autoremove: opts.Autoremove,
	})
	return err
}

// Search queries the backend's repositories.
func (m *Manager) Search(ctx context.Context, query string) ([]core.PackageRecord, error) {
	res, err := m.do(ctx, core.Operation{Verb: core.VerbSearch, Targets: []string{query}})
	if err != nil {
		return nil, err
	}
	return ParseSearch(res.Stdout), nil
}

// Update refreshes the package indices. It never mutates installed
// packages.
func (m *Manager) Update(ctx context.Context) error {
	_, err := m.do(ctx, core.Operation{Verb: core.VerbUpdate})
	return err
}

// ListUpgradable reports which installed packages have pending
// upgrades. It is a read-only query and never refreshes indices.
func (m *Manager) ListUpgradable(ctx context.Context) ([]core.PackageRecord, error) {
	return m.List(ctx, true)
}

// Upgrade upgrades the given packages, or everything when targets is
// empty.
func (m *Manager) Upgrade(ctx context.Context, targets []string, yes bool) error {
	_, err := m.do(ctx, core.Operation{Verb: core.VerbUpgrade, Targets: targets, Yes: yes})
	return err
}

// List reports installed packages, or only upgradable ones.
func (m *Manager) List(ctx context.Context, upgradable bool) ([]core.PackageRecord, error) {
	res, err := m.do(ctx, core.Operation{Verb: core.VerbList, Upgradable: upgradable})
	if err != nil {
		return nil, err
	}
	if m.kind == core.KindPikman {
		return ParsePikmanList(res.Stdout), nil
	}
	if upgradable {
		return ParseAptList(res.Stdout), nil
	}
	return ParseDpkgList(res.Stdout), nil
}

// Show returns the backend's detail text for one package.
func (m *Manager) Show(ctx context.Context, target string) (string, error) {
	res, err := m.do(ctx, core.Operation{Verb: core.VerbShow, Targets: []string{target}})
	if err != nil {
		return "", err
	}
	return res.Stdout, nil
}

// Clean clears the backend's package caches.
func (m *Manager) Clean(ctx context.Context) error {
	_, err := m.do(ctx, core.Operation{Verb: core.VerbClean})
	return err
}

// do plans the operation and executes the resulting commands in order,
// stopping at the first failure. The last result is returned for
// callers that parse captured output.
func (m *Manager) do(ctx context.Context, op core.Operation) (*executor.Result, error) {
	cmds, err := Plan(m.kind, op)
	if err != nil {
		return nil, err
	}
	return m.exec(ctx, cmds)
}

func (m *Manager) exec(ctx context.Context, cmds []Command) (*executor.Result, error) {
	var last *executor.Result
	for _, c := range cmds {
		m.logger.Printf("exec: %s %s", c.Tool, strings.Join(c.Args, " "))
		res, err := m.run.Run(ctx, c.Tool, c.Args, executor.Options{
			Stream: c.Stream,
			Sudo:   c.Sudo,
		})
		if err != nil {
			return nil, err
		}
		if !res.Success {
			return res, &core.CommandError{
				Command:  c.Tool,
				ExitCode: res.ExitCode,
				Stderr:   res.Stderr,
			}
		}
		last = res
	}
	return last, nil
}
