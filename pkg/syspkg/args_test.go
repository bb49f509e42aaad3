package syspkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pikaos/birdnest/pkg/core"
)

func TestPlanMappingTable(t *testing.T) {
	tests := []struct {
		name string
		kind core.BackendKind
		op   core.Operation
		want []Command
	}{
		{
			name: "pikman install",
			kind: core.KindPikman,
			op:   core.Operation{Verb: core.VerbInstall, Targets: []string{"vim", "htop"}},
			want: []Command{{Tool: "pikman", Args: []string{"install", "vim", "htop"}, Stream: true}},
		},
		{
			name: "pikman install confirmed",
			kind: core.KindPikman,
			op:   core.Operation{Verb: core.VerbInstall, Targets: []string{"vim"}, Yes: true},
			want: []Command{{Tool: "pikman", Args: []string{"install", "vim", "-y"}, Stream: true}},
		},
		{
			name: "pikman install aur",
			kind: core.KindPikman,
			op:   core.Operation{Verb: core.VerbInstall, Targets: []string{"paru"}, Distro: core.DistroAUR, Yes: true},
			want: []Command{{Tool: "pikman", Args: []string{"install", "--aur", "paru", "-y"}, Stream: true}},
		},
		{
			name: "apt install is non-interactive under sudo",
			kind: core.KindApt,
			op:   core.Operation{Verb: core.VerbInstall, Targets: []string{"vim"}},
			want: []Command{{Tool: "apt", Args: []string{"install", "-y", "vim"}, Sudo: true, Stream: true}},
		},
		{
			name: "pikman remove with autoremove",
			kind: core.KindPikman,
			op:   core.Operation{Verb: core.VerbRemove, Targets: []string{"vim"}, Yes: true, Autoremove: true},
			want: []Command{{Tool: "pikman", Args: []string{"remove", "vim", "-y", "--autoremove"}, Stream: true}},
		},
		{
			name: "apt remove with autoremove",
			kind: core.KindApt,
			op:   core.Operation{Verb: core.VerbRemove, Targets: []string{"vim"}, Autoremove: true},
			want: []Command{{Tool: "apt", Args: []string{"remove", "-y", "vim", "--autoremove"}, Sudo: true, Stream: true}},
		},
		{
			name: "pikman search",
			kind: core.KindPikman,
			op:   core.Operation{Verb: core.VerbSearch, Targets: []string{"editor"}},
			want: []Command{{Tool: "pikman", Args: []string{"search", "editor"}}},
		},
		{
			name: "apt search",
			kind: core.KindApt,
			op:   core.Operation{Verb: core.VerbSearch, Targets: []string{"editor"}},
			want: []Command{{Tool: "apt", Args: []string{"search", "editor"}}},
		},
		{
			name: "pikman update refreshes indices only",
			kind: core.KindPikman,
			op:   core.Operation{Verb: core.VerbUpdate},
			want: []Command{{Tool: "pikman", Args: []string{"update"}, Stream: true}},
		},
		{
			name: "apt update refreshes indices only",
			kind: core.KindApt,
			op:   core.Operation{Verb: core.VerbUpdate},
			want: []Command{{Tool: "apt", Args: []string{"update"}, Sudo: true, Stream: true}},
		},
		{
			name: "pikman upgrade everything",
			kind: core.KindPikman,
			op:   core.Operation{Verb: core.VerbUpgrade, Yes: true},
			want: []Command{{Tool: "pikman", Args: []string{"upgrade", "-y"}, Stream: true}},
		},
		{
			name: "apt upgrade everything",
			kind: core.KindApt,
			op:   core.Operation{Verb: core.VerbUpgrade},
			want: []Command{{Tool: "apt", Args: []string{"upgrade", "-y"}, Sudo: true, Stream: true}},
		},
		{
			name: "apt targeted upgrade is a pinned install",
			kind: core.KindApt,
			op:   core.Operation{Verb: core.VerbUpgrade, Targets: []string{"vim"}},
			want: []Command{{Tool: "apt", Args: []string{"install", "--upgrade", "-y", "vim"}, Sudo: true, Stream: true}},
		},
		{
			name: "pikman list upgradable",
			kind: core.KindPikman,
			op:   core.Operation{Verb: core.VerbList, Upgradable: true},
			want: []Command{{Tool: "pikman", Args: []string{"list", "--upgradable"}}},
		},
		{
			name: "apt list upgradable",
			kind: core.KindApt,
			op:   core.Operation{Verb: core.VerbList, Upgradable: true},
			want: []Command{{Tool: "apt", Args: []string{"list", "--upgradable"}}},
		},
		{
			name: "pikman list installed",
			kind: core.KindPikman,
			op:   core.Operation{Verb: core.VerbList},
			want: []Command{{Tool: "pikman", Args: []string{"list", "--installed"}}},
		},
		{
			name: "apt list installed goes through dpkg",
			kind: core.KindApt,
			op:   core.Operation{Verb: core.VerbList},
			want: []Command{{Tool: "dpkg", Args: []string{"-l"}}},
		},
		{
			name: "show",
			kind: core.KindApt,
			op:   core.Operation{Verb: core.VerbShow, Targets: []string{"vim"}},
			want: []Command{{Tool: "apt", Args: []string{"show", "vim"}}},
		},
		{
			name: "pikman clean",
			kind: core.KindPikman,
			op:   core.Operation{Verb: core.VerbClean},
			want: []Command{{Tool: "pikman", Args: []string{"clean"}, Stream: true}},
		},
		{
			name: "apt clean also autocleans",
			kind: core.KindApt,
			op:   core.Operation{Verb: core.VerbClean},
			want: []Command{
				{Tool: "apt", Args: []string{"clean"}, Sudo: true, Stream: true},
				{Tool: "apt", Args: []string{"autoclean"}, Sudo: true, Stream: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Plan(tt.kind, tt.op)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			// Same operation and kind always produce the same plan.
			again, err := Plan(tt.kind, tt.op)
			require.NoError(t, err)
			assert.Equal(t, got, again)
		})
	}
}

func TestPlanErrors(t *testing.T) {
	_, err := Plan(core.KindApt, core.Operation{Verb: core.VerbInstall})
	assert.ErrorIs(t, err, core.ErrNoTargets)

	_, err = Plan(core.KindApt, core.Operation{Verb: core.VerbInstall, Targets: []string{"paru"}, Distro: core.DistroAUR})
	assert.Error(t, err, "distro routing is pikman-only")

	_, err = Plan(core.KindApt, core.Operation{Verb: core.VerbSearch})
	assert.Error(t, err)

	_, err = Plan("zypper", core.Operation{Verb: core.VerbUpdate})
	assert.Error(t, err)
}
