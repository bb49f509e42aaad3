package syspkg

import (
	"fmt"

	"github.com/pikaos/birdnest/pkg/core"
)

// Command is one external tool invocation produced by the translation
// table. Plans are pure data so the verb-to-argv mapping can be tested
// without spawning anything.
type Command struct {
	Tool   string
	Args   []string
	Sudo   bool
	Stream bool
}

// Plan translates a unified operation into the invocation sequence for
// the given backend kind. The same operation and kind always produce
// the same plan.
//
// The flag spellings differ between the tools: apt is always driven
// non-interactively (-y, under sudo) because birdnest owns the
// confirmation gate, while pikman manages its own privileges and is
// only passed -y once the gate has been answered.
func Plan(kind core.BackendKind, op core.Operation) ([]Command, error) {
	switch kind {
	case core.KindPikman, core.KindApt:
	default:
		return nil, fmt.Errorf("unsupported backend kind %q", kind)
	}

	switch op.Verb {
	case core.VerbInstall:
		return planInstall(kind, op)
	case core.VerbRemove:
		return planRemove(kind, op)
	case core.VerbSearch:
		return planSearch(kind, op)
	case core.VerbUpdate:
		return planUpdate(kind)
	case core.VerbUpgrade:
		return planUpgrade(kind, op)
	case core.VerbList:
		return planList(kind, op)
	case core.VerbShow:
		return planShow(kind, op)
	case core.VerbClean:
		return planClean(kind)
	}
	return nil, fmt.Errorf("no plan for verb %q", op.Verb)
}

func planInstall(kind core.BackendKind, op core.Operation) ([]Command, error) {
	if len(op.Targets) == 0 {
		return nil, core.ErrNoTargets
	}
	if op.Distro != core.DistroNone && !Caps(kind).DistroRouting {
		return nil, fmt.Errorf("distro flags (--aur, --fedora, --alpine) only work with pikman")
	}

	if kind == core.KindPikman {
		args := []string{"install"}
		if flag, ok := distroFlags[op.Distro]; ok {
			args = append(args, flag)
		}
		args = append(args, op.Targets...)
		if op.Yes {
			args = append(args, "-y")
		}
		return []Command{{Tool: toolPikman, Args: args, Stream: true}}, nil
	}

	args := append([]string{"install", "-y"}, op.Targets...)
	return []Command{{Tool: toolApt, Args: args, Sudo: true, Stream: true}}, nil
}

func planRemove(kind core.BackendKind, op core.Operation) ([]Command, error) {
	if len(op.Targets) == 0 {
		return nil, core.ErrNoTargets
	}

	if kind == core.KindPikman {
		args := append([]string{"remove"}, op.Targets...)
		if op.Yes {
			args = append(args, "-y")
		}
		if op.Autoremove {
			args = append(args, "--autoremove")
		}
		return []Command{{Tool: toolPikman, Args: args, Stream: true}}, nil
	}

	args := append([]string{"remove", "-y"}, op.Targets...)
	if op.Autoremove {
		args = append(args, "--autoremove")
	}
	return []Command{{Tool: toolApt, Args: args, Sudo: true, Stream: true}}, nil
}

func planSearch(kind core.BackendKind, op core.Operation) ([]Command, error) {
	if len(op.Targets) != 1 {
		return nil, fmt.Errorf("search takes exactly one query")
	}
	tool := toolApt
	if kind == core.KindPikman {
		tool = toolPikman
	}
	return []Command{{Tool: tool, Args: []string{"search", op.Targets[0]}}}, nil
}

// planUpdate refreshes the package indices. It never mutates installed
// packages; listing what is upgradable is a separate read-only plan.
func planUpdate(kind core.BackendKind) ([]Command, error) {
	if kind == core.KindPikman {
		return []Command{{Tool: toolPikman, Args: []string{"update"}, Stream: true}}, nil
	}
	return []Command{{Tool: toolApt, Args: []string{"update"}, Sudo: true, Stream: true}}, nil
}

func planUpgrade(kind core.BackendKind, op core.Operation) ([]Command, error) {
	if kind == core.KindPikman {
		args := []string{"upgrade"}
		args = append(args, op.Targets...)
		if op.Yes {
			args = append(args, "-y")
		}
		return []Command{{Tool: toolPikman, Args: args, Stream: true}}, nil
	}

	// No targets means upgrade everything; with targets apt spells a
	// targeted upgrade as a pinned install.
	if len(op.Targets) == 0 {
		return []Command{{Tool: toolApt, Args: []string{"upgrade", "-y"}, Sudo: true, Stream: true}}, nil
	}
	args := append([]string{"install", "--upgrade", "-y"}, op.Targets...)
	return []Command{{Tool: toolApt, Args: args, Sudo: true, Stream: true}}, nil
}

func planList(kind core.BackendKind, op core.Operation) ([]Command, error) {
	if kind == core.KindPikman {
		if op.Upgradable {
			return []Command{{Tool: toolPikman, Args: []string{"list", "--upgradable"}}}, nil
		}
		return []Command{{Tool: toolPikman, Args: []string{"list", "--installed"}}}, nil
	}

	if op.Upgradable {
		return []Command{{Tool: toolApt, Args: []string{"list", "--upgradable"}}}, nil
	}
	// Plain apt has no clean installed listing; dpkg is authoritative.
	return []Command{{Tool: toolDpkg, Args: []string{"-l"}}}, nil
}

func planShow(kind core.BackendKind, op core.Operation) ([]Command, error) {
	if len(op.Targets) != 1 {
		return nil, fmt.Errorf("show takes exactly one package")
	}
	tool := toolApt
	if kind == core.KindPikman {
		tool = toolPikman
	}
	return []Command{{Tool: tool, Args: []string{"show", op.Targets[0]}}}, nil
}

func planClean(kind core.BackendKind) ([]Command, error) {
	if kind == core.KindPikman {
		return []Command{{Tool: toolPikman, Args: []string{"clean"}, Stream: true}}, nil
	}
	return []Command{
		{Tool: toolApt, Args: []string{"clean"}, Sudo: true, Stream: true},
		{Tool: toolApt, Args: []string{"autoclean"}, Sudo: true, Stream: true},
	}, nil
}
