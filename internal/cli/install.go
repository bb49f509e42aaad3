package cli

import (
	"github.com/spf13/cobra"

	"github.com/pikaos/birdnest/pkg/core"
)

var (
	installFlatpak bool
	installYes     bool
	installAUR     bool
	installFedora  bool
	installAlpine  bool
)

var installCmd = &cobra.Command{
	Use:   "install [package...]",
	Short: "Install packages",
	Long: `Install packages using the detected system backend, or flatpak.

Examples:
  birdnest install vim
  birdnest install vim htop -y
  birdnest install paru --aur
  birdnest install org.mozilla.firefox --flatpak`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInstall,
}

func init() {
	installCmd.Flags().BoolVarP(&installFlatpak, "flatpak", "f", false, "use flatpak instead of the system package manager")
	installCmd.Flags().BoolVarP(&installYes, "yes", "y", false, "don't ask for confirmation")
	installCmd.Flags().BoolVar(&installAUR, "aur", false, "install Arch packages (including the AUR) via pikman")
	installCmd.Flags().BoolVar(&installFedora, "fedora", false, "install Fedora packages via pikman")
	installCmd.Flags().BoolVar(&installAlpine, "alpine", false, "install Alpine packages via pikman")
	installCmd.MarkFlagsMutuallyExclusive("aur", "fedora", "alpine")
	installCmd.MarkFlagsMutuallyExclusive("flatpak", "aur")
	installCmd.MarkFlagsMutuallyExclusive("flatpak", "fedora")
	installCmd.MarkFlagsMutuallyExclusive("flatpak", "alpine")
}

func runInstall(cmd *cobra.Command, args []string) error {
	distro := core.DistroNone
	switch {
	case installAUR:
		distro = core.DistroAUR
	case installFedora:
		distro = core.DistroFedora
	case installAlpine:
		distro = core.DistroAlpine
	}

	return runOperation(core.Operation{
		Verb:    core.VerbInstall,
		Targets: args,
		Flatpak: installFlatpak,
		Yes:     installYes,
		Distro:  distro,
	})
}
