package cli

import (
	"github.com/spf13/cobra"

	"github.com/pikaos/birdnest/pkg/core"
)

var (
	upgradeFlatpak bool
	upgradeYes     bool
)

var upgradeCmd = &cobra.Command{
	Use:   "upgrade [package...]",
	Short: "Upgrade installed packages",
	Long:  `Upgrade the named packages, or everything when no packages are given.`,
	RunE:  runUpgrade,
}

func init() {
	upgradeCmd.Flags().BoolVarP(&upgradeFlatpak, "flatpak", "f", false, "use flatpak instead of the system package manager")
	upgradeCmd.Flags().BoolVarP(&upgradeYes, "yes", "y", false, "don't ask for confirmation")
}

func runUpgrade(cmd *cobra.Command, args []string) error {
	return runOperation(core.Operation{
		Verb:    core.VerbUpgrade,
		Targets: args,
		Flatpak: upgradeFlatpak,
		Yes:     upgradeYes,
	})
}
