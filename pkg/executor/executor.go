// Package executor runs the external package-management tools and
// captures their outcome. It has no knowledge of any particular backend.
package executor

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	"github.com/pikaos/birdnest/pkg/core"
)

// Result holds the outcome of a completed command. A non-zero exit from
// the child is a normal Result with Success false, never an error.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Success  bool
}

// Options configures a single command invocation.
type Options struct {
	// Stream connects the child to the real stdout/stderr/stdin instead
	// of capturing, so long-running operations show live progress.
	Stream bool

	// Dir is the working directory; empty means inherit.
	Dir string

	// Sudo escalates via sudo unless the process is already root.
	Sudo bool
}

// Runner abstracts command execution so backends can be exercised in
// tests without touching the host.
type Runner interface {
	Run(ctx context.Context, name string, args []string, opts Options) (*Result, error)
	LookPath(name string) (string, error)
}

// Exec is the Runner used in production, backed by os/exec.
type Exec struct{}

// New returns a Runner that executes real processes.
func New() *Exec { return &Exec{} }

// LookPath searches for an executable on PATH.
func (e *Exec) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Run executes name with args. Spawn-level failures (missing binary,
// unlaunchable executable) return a *core.SpawnError; everything the
// child itself does is reported through the Result.
func (e *Exec) Run(ctx context.Context, name string, args []string, opts Options) (*Result, error) {
	if opts.Sudo && os.Geteuid() != 0 {
		if _, err := exec.LookPath("sudo"); err != nil {
			return nil, &core.SpawnError{
				Command: name,
				Err:     errors.New("sudo is not available; install sudo or run as root"),
			}
		}
		args = append([]string{name}, args...)
		name = "sudo"
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = opts.Dir

	var stdout, stderr strings.Builder
	if opts.Stream {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		cmd.Stdin = os.Stdin
	} else {
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
	}

	err := cmd.Run()
	res := &Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err == nil {
		res.Success = true
		return res, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	}
	return nil, &core.SpawnError{Command: name, Err: err}
}
