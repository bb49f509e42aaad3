package cli

import (
	"github.com/spf13/cobra"

	"github.com/pikaos/birdnest/pkg/core"
)

var (
	removeFlatpak    bool
	removeYes        bool
	removeAutoremove bool
)

var removeCmd = &cobra.Command{
	Use:   "remove [package...]",
	Short: "Remove packages",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRemove,
}

func init() {
	removeCmd.Flags().BoolVarP(&removeFlatpak, "flatpak", "f", false, "use flatpak instead of the system package manager")
	removeCmd.Flags().BoolVarP(&removeYes, "yes", "y", false, "don't ask for confirmation")
	removeCmd.Flags().BoolVarP(&removeAutoremove, "autoremove", "a", false, "also remove unused dependencies")
}

func runRemove(cmd *cobra.Command, args []string) error {
	return runOperation(core.Operation{
		Verb:       core.VerbRemove,
		Targets:    args,
		Flatpak:    removeFlatpak,
		Yes:        removeYes,
		Autoremove: removeAutoremove,
	})
}
