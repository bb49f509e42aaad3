package cli

import (
	"github.com/spf13/cobra"

	"github.com/pikaos/birdnest/pkg/core"
)

var updateFlatpak bool

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update package lists",
	Long:  `Refresh the package indices. This never changes installed packages; use upgrade for that.`,
	Args:  cobra.NoArgs,
	RunE:  runUpdate,
}

func init() {
	updateCmd.Flags().BoolVarP(&updateFlatpak, "flatpak", "f", false, "update flatpak remote metadata")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	return runOperation(core.Operation{
		Verb:    core.VerbUpdate,
		Flatpak: updateFlatpak,
	})
}
