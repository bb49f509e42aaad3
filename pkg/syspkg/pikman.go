package syspkg

import (
	"context"
	"errors"
	"fmt"

	"github.com/pikaos/birdnest/pkg/core"
)

// ErrPikmanRequired indicates a container command was issued while the
// resolved backend is plain apt.
var ErrPikmanRequired = errors.New("this command requires pikman")

// Container pass-throughs for pikman's managed distribution containers.
// These have no apt equivalent and are rejected on that kind.

func (m *Manager) requirePikman() error {
	if m.kind != core.KindPikman {
		return fmt.Errorf("resolved backend is %s: %w", m.kind, ErrPikmanRequired)
	}
	return nil
}

// Autoremove removes all unused packages.
func (m *Manager) Autoremove(ctx context.Context, yes bool) error {
	if err := m.requirePikman(); err != nil {
		return err
	}
	args := []string{"autoremove"}
	if yes {
		args = append(args, "-y")
	}
	_, err := m.exec(ctx, []Command{{Tool: toolPikman, Args: args, Stream: true}})
	return err
}

// Purge fully purges packages including their configuration.
func (m *Manager) Purge(ctx context.Context, targets []string, yes bool) error {
	if err := m.requirePikman(); err != nil {
		return err
	}
	if len(targets) == 0 {
		return core.ErrNoTargets
	}
	args := append([]string{"purge"}, targets...)
	if yes {
		args = append(args, "-y")
	}
	_, err := m.exec(ctx, []Command{{Tool: toolPikman, Args: args, Stream: true}})
	return err
}

// Enter opens an interactive shell in a managed container.
func (m *Manager) Enter(ctx context.Context, name string) error {
	if err := m.requirePikman(); err != nil {
		return err
	}
	_, err := m.exec(ctx, []Command{{Tool: toolPikman, Args: []string{"enter", name}, Stream: true}})
	return err
}

// RunIn runs a command inside a managed container.
func (m *Manager) RunIn(ctx context.Context, name string, command []string) error {
	if err := m.requirePikman(); err != nil {
		return err
	}
	if len(command) == 0 {
		return fmt.Errorf("no command specified")
	}
	args := append([]string{"run", name}, command...)
	_, err := m.exec(ctx, []Command{{Tool: toolPikman, Args: args, Stream: true}})
	return err
}

// InitContainer initializes a managed container, optionally with a
// specific package manager type (arch, fedora, alpine).
func (m *Manager) InitContainer(ctx context.Context, name, manager string) error {
	if err := m.requirePikman(); err != nil {
		return err
	}
	args := []string{"init", name}
	if manager != "" {
		args = append(args, "--manager", manager)
	}
	_, err := m.exec(ctx, []Command{{Tool: toolPikman, Args: args, Stream: true}})
	return err
}

// Export creates or recreates a program's desktop entry from its
// container.
func (m *Manager) Export(ctx context.Context, pkg, container string) error {
	if err := m.requirePikman(); err != nil {
		return err
	}
	args := []string{"export", pkg}
	if container != "" {
		args = append(args, "--name", container)
	}
	_, err := m.exec(ctx, []Command{{Tool: toolPikman, Args: args, Stream: true}})
	return err
}

// Unexport removes a program's desktop entry.
func (m *Manager) Unexport(ctx context.Context, pkg, container string) error {
	if err := m.requirePikman(); err != nil {
		return err
	}
	args := []string{"unexport", pkg}
	if container != "" {
		args = append(args, "--name", container)
	}
	_, err := m.exec(ctx, []Command{{Tool: toolPikman, Args: args, Stream: true}})
	return err
}

// Log returns pikman's operation log.
func (m *Manager) Log(ctx context.Context) (string, error) {
	if err := m.requirePikman(); err != nil {
		return "", err
	}
	res, err := m.exec(ctx, []Command{{Tool: toolPikman, Args: []string{"log"}}})
	if err != nil {
		return "", err
	}
	return res.Stdout, nil
}

// Upgrades returns pikman's raw listing of available upgrades.
func (m *Manager) Upgrades(ctx context.Context) (string, error) {
	if err := m.requirePikman(); err != nil {
		return "", err
	}
	res, err := m.exec(ctx, []Command{{Tool: toolPikman, Args: []string{"upgrades"}}})
	if err != nil {
		return "", err
	}
	return res.Stdout, nil
}
