package syspkg

import "github.com/pikaos/birdnest/pkg/core"

// External tool names.
const (
	toolPikman = "pikman"
	toolApt    = "apt"
	toolDpkg   = "dpkg"
)

// capabilities per backend kind. apt has no container routing; both
// tools support the remaining unified verbs.
var capabilities = map[core.BackendKind]core.Capabilities{
	core.KindPikman: {
		Search:         true,
		Autoremove:     true,
		ListUpgradable: true,
		DistroRouting:  true,
	},
	core.KindApt: {
		Search:         true,
		Autoremove:     true,
		ListUpgradable: true,
		DistroRouting:  false,
	},
}

// Caps returns the capability flags for a backend kind.
func Caps(kind core.BackendKind) core.Capabilities {
	return capabilities[kind]
}

// distroFlags maps a Distro to pikman's routing flag.
var distroFlags = map[core.Distro]string{
	core.DistroAUR:    "--aur",
	core.DistroFedora: "--fedora",
	core.DistroAlpine: "--alpine",
}
