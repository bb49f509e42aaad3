package cli

import (
	"github.com/spf13/cobra"

	"github.com/pikaos/birdnest/pkg/core"
)

var showFlatpak bool

var showCmd = &cobra.Command{
	Use:   "show [package]",
	Short: "Show package information",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().BoolVarP(&showFlatpak, "flatpak", "f", false, "show a flatpak application")
}

func runShow(cmd *cobra.Command, args []string) error {
	return runOperation(core.Operation{
		Verb:    core.VerbShow,
		Targets: args,
		Flatpak: showFlatpak,
	})
}
