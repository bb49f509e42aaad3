package detect

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pikaos/birdnest/pkg/core"
	"github.com/pikaos/birdnest/pkg/executor"
)

// fakeRunner only implements LookPath; detection must never invoke
// anything.
type fakeRunner struct {
	present map[string]bool
	runs    int
}

func (f *fakeRunner) Run(ctx context.Context, name string, args []string, opts executor.Options) (*executor.Result, error) {
	f.runs++
	return &executor.Result{Success: true}, nil
}

func (f *fakeRunner) LookPath(name string) (string, error) {
	if f.present[name] {
		return "/usr/bin/" + name, nil
	}
	return "", fmt.Errorf("%s: executable file not found in $PATH", name)
}

func TestSystemPrefersPikman(t *testing.T) {
	run := &fakeRunner{present: map[string]bool{"pikman": true, "apt": true}}

	kind, err := New(run, core.KindAuto).System()
	require.NoError(t, err)
	assert.Equal(t, core.KindPikman, kind)
	assert.Zero(t, run.runs, "probing must not invoke anything")
}

func TestSystemFallsBackToApt(t *testing.T) {
	run := &fakeRunner{present: map[string]bool{"apt": true}}

	kind, err := New(run, core.KindAuto).System()
	require.NoError(t, err)
	assert.Equal(t, core.KindApt, kind)
}

func TestSystemNoBackendFound(t *testing.T) {
	run := &fakeRunner{present: map[string]bool{}}

	_, err := New(run, core.KindAuto).System()
	require.ErrorIs(t, err, core.ErrNoBackendFound)
}

func TestSystemIsMemoized(t *testing.T) {
	run := &fakeRunner{present: map[string]bool{"apt": true}}
	det := New(run, core.KindAuto)

	first, err := det.System()
	require.NoError(t, err)

	// Even if the host changes underneath us the resolved kind must
	// not flip mid-process.
	run.present["pikman"] = true
	second, err := det.System()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSystemForcedKind(t *testing.T) {
	run := &fakeRunner{present: map[string]bool{"pikman": true, "apt": true}}

	kind, err := New(run, core.KindApt).System()
	require.NoError(t, err)
	assert.Equal(t, core.KindApt, kind)
}

func TestSystemForcedKindMissing(t *testing.T) {
	run := &fakeRunner{present: map[string]bool{"apt": true}}

	_, err := New(run, core.KindPikman).System()
	require.ErrorIs(t, err, core.ErrNoBackendFound)
}

func TestFlatpakIndependentOfSystem(t *testing.T) {
	run := &fakeRunner{present: map[string]bool{"flatpak": true}}
	det := New(run, core.KindAuto)

	require.NoError(t, det.Flatpak())

	_, err := det.System()
	assert.ErrorIs(t, err, core.ErrNoBackendFound)
}

func TestFlatpakAbsent(t *testing.T) {
	run := &fakeRunner{present: map[string]bool{"pikman": true}}

	err := New(run, core.KindAuto).Flatpak()
	require.ErrorIs(t, err, core.ErrFlatpakUnavailable)
}
