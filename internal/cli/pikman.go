package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pikaos/birdnest/pkg/dispatch"
	"github.com/pikaos/birdnest/pkg/syspkg"
	"github.com/pikaos/birdnest/pkg/ui"
)

// Pass-throughs to pikman's container-level commands. These only exist
// on the pikman backend; the managers reject them on plain apt.

var (
	pikmanYes       bool
	pikmanContainer string
	pikmanManager   string
)

var pikmanCmd = &cobra.Command{
	Use:   "pikman",
	Short: "Pikman container commands",
	Long:  `Container-level pikman commands: autoremove, enter, export, init, log, purge, run, upgrades, unexport.`,
}

var pikmanAutoremoveCmd = &cobra.Command{
	Use:   "autoremove",
	Short: "Remove all unused packages",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		runPikman("Remove all unused packages?", pikmanYes, "Unused packages removed",
			func(ctx context.Context, mgr *syspkg.Manager) error {
				return mgr.Autoremove(ctx, pikmanYes || cfg.AutoConfirm)
			})
		return nil
	},
}

var pikmanPurgeCmd = &cobra.Command{
	Use:   "purge [package...]",
	Short: "Fully purge packages",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prompt := fmt.Sprintf("Fully purge %d package(s)?", len(args))
		runPikman(prompt, pikmanYes, fmt.Sprintf("Successfully purged %d package(s)", len(args)),
			func(ctx context.Context, mgr *syspkg.Manager) error {
				return mgr.Purge(ctx, args, pikmanYes || cfg.AutoConfirm)
			})
		return nil
	},
}

var pikmanEnterCmd = &cobra.Command{
	Use:   "enter [name]",
	Short: "Enter a managed container",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		runPikman("", false, "", func(ctx context.Context, mgr *syspkg.Manager) error {
			return mgr.Enter(ctx, args[0])
		})
		return nil
	},
}

var pikmanRunCmd = &cobra.Command{
	Use:   "run [name] [command...]",
	Short: "Run a command inside a managed container",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		runPikman("", false, "", func(ctx context.Context, mgr *syspkg.Manager) error {
			return mgr.RunIn(ctx, args[0], args[1:])
		})
		return nil
	},
}

var pikmanInitCmd = &cobra.Command{
	Use:   "init [name]",
	Short: "Initialize a managed container",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		runPikman("", false, fmt.Sprintf("Container %s initialized", args[0]),
			func(ctx context.Context, mgr *syspkg.Manager) error {
				return mgr.InitContainer(ctx, args[0], pikmanManager)
			})
		return nil
	},
}

var pikmanExportCmd = &cobra.Command{
	Use:   "export [package]",
	Short: "Export a program's desktop entry from its container",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		runPikman("", false, fmt.Sprintf("Desktop entry exported for %s", args[0]),
			func(ctx context.Context, mgr *syspkg.Manager) error {
				return mgr.Export(ctx, args[0], pikmanContainer)
			})
		return nil
	},
}

var pikmanUnexportCmd = &cobra.Command{
	Use:   "unexport [package]",
	Short: "Remove a program's desktop entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		runPikman("", false, fmt.Sprintf("Desktop entry removed for %s", args[0]),
			func(ctx context.Context, mgr *syspkg.Manager) error {
				return mgr.Unexport(ctx, args[0], pikmanContainer)
			})
		return nil
	},
}

var pikmanLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Show pikman's operation log",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		runPikman("", false, "", func(ctx context.Context, mgr *syspkg.Manager) error {
			out, err := mgr.Log(ctx)
			if err != nil {
				return err
			}
			fmt.Print(out)
			return nil
		})
		return nil
	},
}

var pikmanUpgradesCmd = &cobra.Command{
	Use:   "upgrades",
	Short: "List the available upgrades",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		runPikman("", false, "", func(ctx context.Context, mgr *syspkg.Manager) error {
			out, err := mgr.Upgrades(ctx)
			if err != nil {
				return err
			}
			fmt.Print(out)
			return nil
		})
		return nil
	},
}

func init() {
	pikmanAutoremoveCmd.Flags().BoolVarP(&pikmanYes, "yes", "y", false, "don't ask for confirmation")
	pikmanPurgeCmd.Flags().BoolVarP(&pikmanYes, "yes", "y", false, "don't ask for confirmation")
	pikmanInitCmd.Flags().StringVarP(&pikmanManager, "manager", "m", "", "package manager type (arch, fedora, alpine)")
	pikmanExportCmd.Flags().StringVarP(&pikmanContainer, "name", "n", "", "container name")
	pikmanUnexportCmd.Flags().StringVarP(&pikmanContainer, "name", "n", "", "container name")

	pikmanCmd.AddCommand(pikmanAutoremoveCmd)
	pikmanCmd.AddCommand(pikmanPurgeCmd)
	pikmanCmd.AddCommand(pikmanEnterCmd)
	pikmanCmd.AddCommand(pikmanRunCmd)
	pikmanCmd.AddCommand(pikmanInitCmd)
	pikmanCmd.AddCommand(pikmanExportCmd)
	pikmanCmd.AddCommand(pikmanUnexportCmd)
	pikmanCmd.AddCommand(pikmanLogCmd)
	pikmanCmd.AddCommand(pikmanUpgradesCmd)
}

// runPikman resolves the system backend, applies the confirmation gate
// when prompt is non-empty, runs fn and renders the outcome.
func runPikman(prompt string, yes bool, success string, fn func(context.Context, *syspkg.Manager) error) {
	d := newDispatcher()
	mgr, err := d.SystemManager()
	if err != nil {
		finish(d.Report(err))
		return
	}

	if prompt != "" {
		if proceed, out := d.Gate(prompt, yes); !proceed {
			finish(out)
			return
		}
	}

	out := d.Report(fn(context.Background(), mgr))
	if out.Status == dispatch.StatusOK && success != "" {
		ui.Success("%s", success)
	}
	finish(out)
}
