package core

// BackendKind identifies which system package tool an operation targets.
type BackendKind string

const (
	// KindPikman is the PikaOS-native package manager.
	KindPikman BackendKind = "pikman"
	// KindApt is the generic Debian tool used when pikman is absent.
	KindApt BackendKind = "apt"
	// KindAuto selects the backend by probing the host.
	KindAuto BackendKind = "auto"
)

// Valid reports whether k names a known backend selection.
func (k BackendKind) Valid() bool {
	switch k {
	case KindPikman, KindApt, KindAuto:
		return true
	}
	return false
}

// Verb is one of the unified package-management commands.
type Verb string

const (
	VerbInstall Verb = "install"
	VerbRemove  Verb = "remove"
	VerbSearch  Verb = "search"
	VerbUpdate  Verb = "update"
	VerbUpgrade Verb = "upgrade"
	VerbList    Verb = "list"
	VerbShow    Verb = "show"
	VerbClean   Verb = "clean"
	VerbStatus  Verb = "status"
)

// Distro selects which distribution pikman should install from.
// Only meaningful on the pikman backend.
type Distro string

const (
	DistroNone   Distro = ""
	DistroAUR    Distro = "aur"
	DistroFedora Distro = "fedora"
	DistroAlpine Distro = "alpine"
)

// Operation is a backend-agnostic description of one user command.
// Targets are opaque package identifiers passed through to the backend
// unmodified.
type Operation struct {
	Verb    Verb
	Targets []string

	// Flatpak routes the operation to the sandboxed-app backend
	// instead of the system one.
	Flatpak bool

	// Yes skips the confirmation gate for this invocation.
	Yes bool

	// Autoremove also removes unused dependencies (remove only).
	Autoremove bool

	// Upgradable restricts list output to packages with pending
	// upgrades (list only).
	Upgradable bool

	// Distro routes an install through one of pikman's foreign
	// distribution containers.
	Distro Distro
}

// Mutating reports whether the operation changes system state and must
// therefore pass the confirmation gate.
func (o Operation) Mutating() bool {
	switch o.Verb {
	case VerbInstall, VerbRemove, VerbUpgrade, VerbClean:
		return true
	}
	return false
}

// PackageRecord is the normalized shape backend output is parsed into.
// For upgradable entries Version holds the installed version and
// NewVersion the candidate.
type PackageRecord struct {
	Name        string
	Version     string
	NewVersion  string
	Upgradable  bool
	Description string
}

// Capabilities describes what a backend kind supports beyond the
// common verb set.
type Capabilities struct {
	Search         bool
	Autoremove     bool
	ListUpgradable bool
	DistroRouting  bool
}
