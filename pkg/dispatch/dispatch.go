// Package dispatch routes unified operations onto the detected backends
// and owns the confirmation and exit-code policy. It is the single
// place where errors become user-facing outcomes.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/pikaos/birdnest/pkg/core"
	"github.com/pikaos/birdnest/pkg/detect"
	"github.com/pikaos/birdnest/pkg/executor"
	"github.com/pikaos/birdnest/pkg/flatpak"
	"github.com/pikaos/birdnest/pkg/syspkg"
	"github.com/pikaos/birdnest/pkg/updates"
)

// Process exit codes. Cancellation is benign and distinct from failure;
// command failures reuse the underlying tool's code when it has one.
const (
	ExitOK        = 0
	ExitFailure   = 1
	ExitNoBackend = 3
	ExitCancelled = 4
)

// Status classifies a terminal outcome.
type Status int

const (
	StatusOK Status = iota
	StatusCancelled
	StatusError
)

// Outcome is the terminal state of a dispatched operation.
type Outcome struct {
	Status  Status
	Code    int
	Err     error
	Records []core.PackageRecord
	Detail  string
	Report  *updates.Report
	Backend string
}

// Confirmer answers the interactive confirmation prompt.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(prompt string) (bool, error)

// Confirm implements Confirmer.
func (f ConfirmerFunc) Confirm(prompt string) (bool, error) { return f(prompt) }

// Dispatcher maps parsed operations onto backends. The config is an
// immutable snapshot taken at process start.
type Dispatcher struct {
	cfg     core.Config
	det     *detect.Detector
	run     executor.Runner
	confirm Confirmer
	logger  *log.Logger
}

// New assembles a Dispatcher.
func New(cfg core.Config, det *detect.Detector, run executor.Runner, confirm Confirmer, logger *log.Logger) *Dispatcher {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Dispatcher{cfg: cfg, det: det, run: run, confirm: confirm, logger: logger}
}

// Dispatch walks one operation through backend resolution, the
// confirmation gate, execution and reporting.
func (d *Dispatcher) Dispatch(ctx context.Context, op core.Operation) Outcome {
	if op.Verb == core.VerbStatus {
		return d.dispatchStatus(ctx)
	}
	if op.Flatpak {
		return d.dispatchFlatpak(ctx, op)
	}
	return d.dispatchSystem(ctx, op)
}

func (d *Dispatcher) dispatchSystem(ctx context.Context, op core.Operation) Outcome {
	mgr, err := d.SystemManager()
	if err != nil {
		return d.Report(err)
	}

	if op.Distro != core.DistroNone && !mgr.Capabilities().DistroRouting {
		return d.Report(fmt.Errorf("distro flags (--aur, --fedora, --alpine) only work with pikman"))
	}
	if err := validateTargets(op); err != nil {
		return d.Report(err)
	}

	proceed, out := d.Gate(gatePrompt(op), op.Yes)
	if !proceed {
		return out
	}
	yes := op.Yes || d.cfg.AutoConfirm

	var (
		records []core.PackageRecord
		detail  string
	)
	switch op.Verb {
	case core.VerbInstall:
		err = mgr.Install(ctx, op.Targets, syspkg.InstallOptions{Yes: yes, Distro: op.Distro})
	case core.VerbRemove:
		err = mgr.Remove(ctx, op.Targets, syspkg.RemoveOptions{Yes: yes, Autoremove: op.Autoremove})
	case core.VerbSearch:
		records, err = mgr.Search(ctx, firstTarget(op))
	case core.VerbUpdate:
		err = mgr.Update(ctx)
	case core.VerbUpgrade:
		err = mgr.Upgrade(ctx, op.Targets, yes)
	case core.VerbList:
		records, err = mgr.List(ctx, op.Upgradable)
	case core.VerbShow:
		detail, err = mgr.Show(ctx, firstTarget(op))
	case core.VerbClean:
		err = mgr.Clean(ctx)
	default:
		err = fmt.Errorf("unknown verb %q", op.Verb)
	}

	out = d.Report(err)
	out.Records = records
	out.Detail = detail
	out.Backend = string(mgr.Kind())
	return out
}

func (d *Dispatcher) dispatchFlatpak(ctx context.Context, op core.Operation) Outcome {
	// Availability is checked here, before the gate and before any
	// spawn attempt.
	mgr, err := flatpak.NewManager(d.det, d.cfg, d.run, d.logger)
	if err != nil {
		return d.Report(err)
	}
	if err := validateTargets(op); err != nil {
		return d.Report(err)
	}

	proceed, out := d.Gate(gatePrompt(op), op.Yes)
	if !proceed {
		return out
	}

	var (
		records []core.PackageRecord
		detail  string
	)
	switch op.Verb {
	case core.VerbInstall:
		err = mgr.Install(ctx, op.Targets)
	case core.VerbRemove:
		err = mgr.Remove(ctx, op.Targets)
	case core.VerbSearch:
		records, err = mgr.Search(ctx, firstTarget(op))
	case core.VerbUpdate:
		err = mgr.Update(ctx)
	case core.VerbUpgrade:
		err = mgr.Upgrade(ctx, op.Targets)
	case core.VerbList:
		records, err = mgr.List(ctx, op.Upgradable)
	case core.VerbShow:
		detail, err = mgr.Show(ctx, firstTarget(op))
	case core.VerbClean:
		err = mgr.Clean(ctx)
	default:
		err = fmt.Errorf("unknown verb %q", op.Verb)
	}

	out = d.Report(err)
	out.Records = records
	out.Detail = detail
	out.Backend = "flatpak"
	return out
}

func (d *Dispatcher) dispatchStatus(ctx context.Context) Outcome {
	mgr, err := d.SystemManager()
	if err != nil {
		return d.Report(err)
	}

	var apps updates.AppBackend
	if fp, err := flatpak.NewManager(d.det, d.cfg, d.run, d.logger); err == nil {
		apps = fp
	}

	rep, err := updates.New(mgr, apps, d.logger).Check(ctx)
	out := d.Report(err)
	out.Report = rep
	out.Backend = string(mgr.Kind())
	return out
}

// SystemManager resolves the system backend and returns a manager bound
// to it. The resolution is memoized by the detector, so the kind can
// never flip mid-process.
func (d *Dispatcher) SystemManager() (*syspkg.Manager, error) {
	kind, err := d.det.System()
	if err != nil {
		return nil, err
	}
	return syspkg.NewManager(kind, d.run, d.logger), nil
}

// Gate applies the confirmation policy to a mutating action: the prompt
// is skipped when the invocation passed -y or auto_confirm is set. An
// empty prompt means the action needs no confirmation. The returned
// Outcome is only meaningful when proceed is false.
func (d *Dispatcher) Gate(prompt string, yes bool) (bool, Outcome) {
	if prompt == "" || yes || d.cfg.AutoConfirm {
		return true, Outcome{}
	}

	ok, err := d.confirm.Confirm(prompt)
	if err != nil {
		return false, d.Report(fmt.Errorf("reading confirmation: %w", err))
	}
	if !ok {
		return false, Outcome{
			Status: StatusCancelled,
			Code:   ExitCancelled,
			Err:    core.ErrCancelled,
		}
	}
	return true, Outcome{}
}

// Report translates an error into a terminal outcome with its exit
// code. nil reports success.
func (d *Dispatcher) Report(err error) Outcome {
	if err == nil {
		return Outcome{Status: StatusOK, Code: ExitOK}
	}

	if errors.Is(err, core.ErrCancelled) {
		return Outcome{Status: StatusCancelled, Code: ExitCancelled, Err: err}
	}
	if errors.Is(err, core.ErrNoBackendFound) || errors.Is(err, core.ErrFlatpakUnavailable) {
		return Outcome{Status: StatusError, Code: ExitNoBackend, Err: err}
	}

	var cmdErr *core.CommandError
	if errors.As(err, &cmdErr) && cmdErr.ExitCode > 0 {
		return Outcome{Status: StatusError, Code: cmdErr.ExitCode, Err: err}
	}
	return Outcome{Status: StatusError, Code: ExitFailure, Err: err}
}

// gatePrompt builds the confirmation summary for a mutating operation,
// or "" when the verb is read-only.
func gatePrompt(op core.Operation) string {
	if !op.Mutating() {
		return ""
	}

	noun := "package(s)"
	if op.Flatpak {
		noun = "flatpak(s)"
	}

	switch op.Verb {
	case core.VerbInstall:
		return fmt.Sprintf("Install %d %s (%s)?", len(op.Targets), noun, strings.Join(op.Targets, ", "))
	case core.VerbRemove:
		return fmt.Sprintf("Remove %d %s (%s)?", len(op.Targets), noun, strings.Join(op.Targets, ", "))
	case core.VerbUpgrade:
		if len(op.Targets) == 0 {
			return fmt.Sprintf("Upgrade all %s?", noun)
		}
		return fmt.Sprintf("Upgrade %d %s (%s)?", len(op.Targets), noun, strings.Join(op.Targets, ", "))
	case core.VerbClean:
		return "Clean the package cache?"
	}
	return ""
}

// validateTargets rejects target-less mutating operations before the
// confirmation gate can even be presented.
func validateTargets(op core.Operation) error {
	switch op.Verb {
	case core.VerbInstall, core.VerbRemove:
		if len(op.Targets) == 0 {
			return core.ErrNoTargets
		}
	}
	return nil
}

func firstTarget(op core.Operation) string {
	if len(op.Targets) == 0 {
		return ""
	}
	return op.Targets[0]
}
