package cli

import (
	"github.com/spf13/cobra"

	"github.com/pikaos/birdnest/pkg/core"
)

var searchFlatpak bool

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search for packages",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().BoolVarP(&searchFlatpak, "flatpak", "f", false, "search in flatpak remotes")
}

func runSearch(cmd *cobra.Command, args []string) error {
	return runOperation(core.Operation{
		Verb:    core.VerbSearch,
		Targets: args,
		Flatpak: searchFlatpak,
	})
}
