package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pikaos/birdnest/pkg/core"
	"github.com/pikaos/birdnest/pkg/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change the birdnest configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("package_manager: %s\n", cfg.PackageManager)
		fmt.Printf("auto_confirm: %t\n", cfg.AutoConfirm)
		fmt.Printf("flatpak_enabled: %t\n", cfg.FlatpakEnabled)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a configuration value",
	Long: `Change a configuration value and persist it.

Keys:
  package_manager   auto, pikman or apt
  auto_confirm      true or false
  flatpak_enabled   true or false`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	switch key {
	case "package_manager":
		if !core.BackendKind(value).Valid() {
			return fmt.Errorf("invalid package_manager %q (want auto, pikman or apt)", value)
		}
		cfg.PackageManager = value
	case "auto_confirm", "flatpak_enabled":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value %q for %s (want true or false)", value, key)
		}
		if key == "auto_confirm" {
			cfg.AutoConfirm = b
		} else {
			cfg.FlatpakEnabled = b
		}
	default:
		return fmt.Errorf("unknown config key %q", key)
	}

	if err := core.SaveConfig(cfg, cfgFile); err != nil {
		return err
	}
	ui.Success("Set %s = %s", key, value)
	return nil
}
