package cli

import (
	"github.com/spf13/cobra"

	"github.com/pikaos/birdnest/pkg/core"
)

var (
	cleanFlatpak bool
	cleanYes     bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Clean the package cache",
	Args:  cobra.NoArgs,
	RunE:  runClean,
}

func init() {
	cleanCmd.Flags().BoolVarP(&cleanFlatpak, "flatpak", "f", false, "remove unused flatpak runtimes")
	cleanCmd.Flags().BoolVarP(&cleanYes, "yes", "y", false, "don't ask for confirmation")
}

func runClean(cmd *cobra.Command, args []string) error {
	return runOperation(core.Operation{
		Verb:    core.VerbClean,
		Flatpak: cleanFlatpak,
		Yes:     cleanYes,
	})
}
