package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pikaos/birdnest"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("birdnest version %s\n", birdnest.Version)
		fmt.Println("A unified package manager for PikaOS")
	},
}
