package cli

import (
	"github.com/spf13/cobra"

	"github.com/pikaos/birdnest/pkg/core"
)

var (
	listFlatpak    bool
	listUpgradable bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed packages",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVarP(&listFlatpak, "flatpak", "f", false, "list flatpak applications")
	listCmd.Flags().BoolVarP(&listUpgradable, "upgradable", "u", false, "show only packages with pending upgrades")
}

func runList(cmd *cobra.Command, args []string) error {
	return runOperation(core.Operation{
		Verb:       core.VerbList,
		Flatpak:    listFlatpak,
		Upgradable: listUpgradable,
	})
}
