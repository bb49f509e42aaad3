package flatpak

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pikaos/birdnest/pkg/core"
	"github.com/pikaos/birdnest/pkg/detect"
	"github.com/pikaos/birdnest/pkg/executor"
)

type fakeRunner struct {
	present bool
	result  *executor.Result
	calls   [][]string
}

func (f *fakeRunner) Run(ctx context.Context, name string, args []string, opts executor.Options) (*executor.Result, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	if f.result != nil {
		return f.result, nil
	}
	return &executor.Result{Success: true}, nil
}

func (f *fakeRunner) LookPath(name string) (string, error) {
	if name == "flatpak" && f.present {
		return "/usr/bin/flatpak", nil
	}
	return "", fmt.Errorf("%s: executable file not found in $PATH", name)
}

func enabledConfig() core.Config {
	cfg := core.DefaultConfig()
	cfg.FlatpakEnabled = true
	return cfg
}

func TestNewManagerGatesOnPresence(t *testing.T) {
	run := &fakeRunner{present: false}
	det := detect.New(run, core.KindAuto)

	_, err := NewManager(det, enabledConfig(), run, nil)
	require.ErrorIs(t, err, core.ErrFlatpakUnavailable)
	assert.Empty(t, run.calls, "the gate must fail before any spawn attempt")
}

func TestNewManagerGatesOnConfig(t *testing.T) {
	run := &fakeRunner{present: true}
	det := detect.New(run, core.KindAuto)

	cfg := enabledConfig()
	cfg.FlatpakEnabled = false
	_, err := NewManager(det, cfg, run, nil)
	require.ErrorIs(t, err, core.ErrFlatpakUnavailable)
}

func TestInstallArgs(t *testing.T) {
	run := &fakeRunner{present: true}
	mgr, err := NewManager(detect.New(run, core.KindAuto), enabledConfig(), run, nil)
	require.NoError(t, err)

	require.NoError(t, mgr.Install(context.Background(), []string{"org.mozilla.firefox"}))
	require.Len(t, run.calls, 1)
	assert.Equal(t, []string{"flatpak", "install", "-y", "org.mozilla.firefox"}, run.calls[0])
}

func TestRemoveMapsToUninstall(t *testing.T) {
	run := &fakeRunner{present: true}
	mgr, err := NewManager(detect.New(run, core.KindAuto), enabledConfig(), run, nil)
	require.NoError(t, err)

	require.NoError(t, mgr.Remove(context.Background(), []string{"org.mozilla.firefox"}))
	require.Len(t, run.calls, 1)
	assert.Equal(t, []string{"flatpak", "uninstall", "-y", "org.mozilla.firefox"}, run.calls[0])
}

func TestListUpgradable(t *testing.T) {
	run := &fakeRunner{
		present: true,
		result:  &executor.Result{Success: true, Stdout: "org.mozilla.firefox\t121.0\n"},
	}
	mgr, err := NewManager(detect.New(run, core.KindAuto), enabledConfig(), run, nil)
	require.NoError(t, err)

	recs, err := mgr.ListUpgradable(context.Background())
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "org.mozilla.firefox", recs[0].Name)
	assert.Equal(t, "121.0", recs[0].NewVersion)
	assert.True(t, recs[0].Upgradable)
}

func TestCommandFailureKeepsExitCode(t *testing.T) {
	run := &fakeRunner{
		present: true,
		result:  &executor.Result{Success: false, ExitCode: 1, Stderr: "error: app not installed"},
	}
	mgr, err := NewManager(detect.New(run, core.KindAuto), enabledConfig(), run, nil)
	require.NoError(t, err)

	err = mgr.Clean(context.Background())
	var cmdErr *core.CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, 1, cmdErr.ExitCode)
}
