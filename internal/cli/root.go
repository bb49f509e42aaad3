package cli

import (
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/pikaos/birdnest"
	"github.com/pikaos/birdnest/pkg/core"
	"github.com/pikaos/birdnest/pkg/dispatch"
	"github.com/pikaos/birdnest/pkg/ui"
)

var (
	cfgFile string
	debug   bool

	cfg      core.Config
	logger   *log.Logger
	exitCode int
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "birdnest",
	Short: "A unified package manager for PikaOS",
	Long: `birdnest - unified package management for PikaOS

One set of verbs across pikman, apt and flatpak. System packages go
through pikman when it is installed and fall back to apt; pass
--flatpak to target sandboxed applications instead.`,
	Version: birdnest.Version,
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		return dispatch.ExitFailure
	}
	return exitCode
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/birdnest/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(upgradeCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(pikmanCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	cfg, err = core.LoadConfig(cfgFile)
	if err != nil {
		// A broken config is fatal; running with silently ignored
		// settings would bypass the confirmation policy.
		ui.Error("%v", err)
		os.Exit(dispatch.ExitFailure)
	}

	logger = log.New(io.Discard, "", 0)
	if debug {
		logger = log.New(os.Stderr, "[birdnest] ", log.LstdFlags)
	}
}

func newDispatcher() *dispatch.Dispatcher {
	return birdnest.New(cfg, dispatch.ConfirmerFunc(ui.Confirm), logger)
}
