// Package flatpak is the sandboxed-application backend. It mirrors the
// system backend's contract but operates on application IDs and is only
// active when flatpak support is both enabled in the configuration and
// present on the host.
package flatpak

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/pikaos/birdnest/pkg/core"
	"github.com/pikaos/birdnest/pkg/detect"
	"github.com/pikaos/birdnest/pkg/executor"
)

const tool = "flatpak"

// Column selections keep the output machine-parseable regardless of
// terminal width.
const (
	listColumns   = "application,version"
	searchColumns = "application,version,description"
)

// Manager drives the flatpak tool. NewManager performs the availability
// gate, so holding a Manager means every operation may spawn.
type Manager struct {
	run    executor.Runner
	logger *log.Logger
}

// NewManager gates on configuration and tool presence before anything
// can be executed. Both checks happen here, never via a failed spawn.
func NewManager(det *detect.Detector, cfg core.Config, run executor.Runner, logger *log.Logger) (*Manager, error) {
	if !cfg.FlatpakEnabled {
		return nil, fmt.Errorf("flatpak is disabled in the configuration: %w", core.ErrFlatpakUnavailable)
	}
	if err := det.Flatpak(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Manager{run: run, logger: logger}, nil
}

// Install installs the given application IDs.
func (m *Manager) Install(ctx context.Context, targets []string) error {
	if len(targets) == 0 {
		return core.ErrNoTargets
	}
	args := append([]string{"install", "-y"}, targets...)
	_, err := m.exec(ctx, args, true)
	return err
}

// Remove uninstalls the given application IDs.
func (m *Manager) Remove(ctx context.Context, targets []string) error {
	if len(targets) == 0 {
		return core.ErrNoTargets
	}
	args := append([]string{"uninstall", "-y"}, targets...)
	_, err := m.exec(ctx, args, true)
	return err
}

// Search queries the configured remotes.
func (m *Manager) Search(ctx context.Context, query string) ([]core.PackageRecord, error) {
	res, err := m.exec(ctx, []string{"search", "--columns=" + searchColumns, query}, false)
	if err != nil {
		return nil, err
	}
	return ParseColumns(res.Stdout, false), nil
}

// Update refreshes the remote metadata without touching installed apps.
func (m *Manager) Update(ctx context.Context) error {
	_, err := m.exec(ctx, []string{"update", "--appstream", "--noninteractive"}, true)
	return err
}

// ListUpgradable reports installed applications with pending updates.
func (m *Manager) ListUpgradable(ctx context.Context) ([]core.PackageRecord, error) {
	res, err := m.exec(ctx, []string{"remote-ls", "--updates", "--app", "--columns=" + listColumns}, false)
	if err != nil {
		return nil, err
	}
	return ParseColumns(res.Stdout, true), nil
}

// Upgrade updates the given applications, or everything when targets is
// empty.
func (m *Manager) Upgrade(ctx context.Context, targets []string) error {
	args := []string{"update", "-y"}
	args = append(args, targets...)
	_, err := m.exec(ctx, args, true)
	return err
}

// List reports installed applications, or only upgradable ones.
func (m *Manager) List(ctx context.Context, upgradable bool) ([]core.PackageRecord, error) {
	if upgradable {
		return m.ListUpgradable(ctx)
	}
	res, err := m.exec(ctx, []string{"list", "--app", "--columns=" + listColumns}, false)
	if err != nil {
		return nil, err
	}
	return ParseColumns(res.Stdout, false), nil
}

// Show returns flatpak's detail text for one application.
func (m *Manager) Show(ctx context.Context, target string) (string, error) {
	res, err := m.exec(ctx, []string{"info", target}, false)
	if err != nil {
		return "", err
	}
	return res.Stdout, nil
}

// Clean removes unused runtimes and extensions.
func (m *Manager) Clean(ctx context.Context) error {
	_, err := m.exec(ctx, []string{"uninstall", "--unused", "-y"}, true)
	return err
}

func (m *Manager) exec(ctx context.Context, args []string, stream bool) (*executor.Result, error) {
	m.logger.Printf("exec: %s %s", tool, strings.Join(args, " "))
	res, err := m.run.Run(ctx, tool, args, executor.Options{Stream: stream})
	if err != nil {
		return nil, err
	}
	if !res.Success {
		return res, &core.CommandError{
			Command:  tool,
			ExitCode: res.ExitCode,
			Stderr:   res.Stderr,
		}
	}
	return res, nil
}
