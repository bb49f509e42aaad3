package cli

import (
	"context"
	"fmt"

	"github.com/pikaos/birdnest/pkg/core"
	"github.com/pikaos/birdnest/pkg/dispatch"
	"github.com/pikaos/birdnest/pkg/ui"
)

// runOperation dispatches one unified operation and renders its
// outcome. The process exit code is carried in the package-level
// exitCode so cobra never mistakes a backend failure for a usage error.
func runOperation(op core.Operation) error {
	out := newDispatcher().Dispatch(context.Background(), op)
	renderOutcome(op, out)
	exitCode = out.Code
	return nil
}

func renderOutcome(op core.Operation, out dispatch.Outcome) {
	switch out.Status {
	case dispatch.StatusCancelled:
		ui.Info("%s", cancelMessage(op.Verb))
		return
	case dispatch.StatusError:
		ui.Error("%v", out.Err)
		return
	}

	switch op.Verb {
	case core.VerbSearch:
		if len(out.Records) == 0 {
			ui.Info("No results")
			return
		}
		printRecords(out.Records)
	case core.VerbList:
		if len(out.Records) == 0 {
			if op.Upgradable {
				ui.Success("All packages are up to date")
			} else {
				ui.Info("No packages installed")
			}
			return
		}
		printRecords(out.Records)
	case core.VerbShow:
		fmt.Print(out.Detail)
	case core.VerbStatus:
		renderStatus(out)
	default:
		ui.Success("%s", successMessage(op))
	}
}

func renderStatus(out dispatch.Outcome) {
	fmt.Printf("Package manager: %s\n", out.Backend)
	if out.Report == nil {
		return
	}
	if !out.Report.Refreshed {
		ui.Warn("Index refresh failed, showing stale results")
	}
	if len(out.Report.Upgradable) == 0 {
		ui.Success("All packages are up to date")
		return
	}
	fmt.Printf("\nUpgradable packages:\n")
	printRecords(out.Report.Upgradable)
}

func printRecords(records []core.PackageRecord) {
	for _, rec := range records {
		switch {
		case rec.Upgradable:
			fmt.Printf("%s %s -> %s\n", rec.Name, rec.Version, rec.NewVersion)
		case rec.Description != "":
			fmt.Printf("%s %s - %s\n", rec.Name, rec.Version, rec.Description)
		default:
			fmt.Printf("%s %s\n", rec.Name, rec.Version)
		}
	}
}

func successMessage(op core.Operation) string {
	noun := "package(s)"
	if op.Flatpak {
		noun = "flatpak(s)"
	}

	switch op.Verb {
	case core.VerbInstall:
		return fmt.Sprintf("Successfully installed %d %s", len(op.Targets), noun)
	case core.VerbRemove:
		return fmt.Sprintf("Successfully removed %d %s", len(op.Targets), noun)
	case core.VerbUpdate:
		return "Package lists updated"
	case core.VerbUpgrade:
		return "Packages upgraded"
	case core.VerbClean:
		return "Cache cleaned"
	}
	return "Done"
}

func cancelMessage(verb core.Verb) string {
	switch verb {
	case core.VerbInstall:
		return "Installation cancelled"
	case core.VerbRemove:
		return "Removal cancelled"
	case core.VerbUpgrade:
		return "Upgrade cancelled"
	case core.VerbClean:
		return "Clean cancelled"
	}
	return "Cancelled"
}

// finish renders a bare outcome (no verb context) and records its exit
// code. Used by the pikman pass-through commands.
func finish(out dispatch.Outcome) {
	switch out.Status {
	case dispatch.StatusCancelled:
		ui.Info("Cancelled")
	case dispatch.StatusError:
		ui.Error("%v", out.Err)
	}
	exitCode = out.Code
}
