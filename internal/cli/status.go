package cli

import (
	"github.com/spf13/cobra"

	"github.com/pikaos/birdnest/pkg/core"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show package manager status and pending upgrades",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	return runOperation(core.Operation{Verb: core.VerbStatus})
}
