/*
Package rust locates and verifies Rust compiler toolchains on the host
system. It registers the "rust" toolchain family.

Probing works by compiling fixed, trivial source snippets with each
candidate configuration: a library crate to check that a flag set is
accepted, and an executable crate that is also run when the produced
binary can execute on the current platform.
*/
package rust

import (
	"context"
	"os/exec"

	"github.com/tmaxmax/rustprobe/pkg/toolchain"
)

// FamilyName is the name this package registers itself under.
const FamilyName = "rust"

var defaultCandidates = []toolchain.Candidate{
	{DisplayName: "Rust reference compiler", Invocation: "rustc"},
	{DisplayName: "LCCC Rust front-end", Invocation: "lccc-rustc"},
	{DisplayName: "GCC Rust front-end", Invocation: "gccrs"},
}

// DefaultCandidates returns the executable search list used when the
// caller does not supply one: the reference compiler first, then the
// known alternate front-ends.
func DefaultCandidates() []toolchain.Candidate {
	return append([]toolchain.Candidate(nil), defaultCandidates...)
}

// A Locator probes for Rust compilers. The zero value is ready to use;
// the fields exist so tests can substitute the process-level
// operations.
type Locator struct {
	// Exec launches an external process. Defaults to
	// exec.CommandContext.
	Exec func(ctx context.Context, name string, args ...string) *exec.Cmd
	// LookPath searches the executable search path for a candidate
	// name. Defaults to exec.LookPath.
	LookPath func(name string) (string, error)
}

var _ toolchain.Locator = (*Locator)(nil)

// New returns a Locator using the real process primitives.
func New() *Locator {
	return &Locator{}
}

func (l *Locator) command(ctx context.Context, name string, args ...string) *exec.Cmd {
	if l.Exec != nil {
		return l.Exec(ctx, name, args...)
	}
	return exec.CommandContext(ctx, name, args...)
}

func (l *Locator) lookPath(name string) (string, error) {
	if l.LookPath != nil {
		return l.LookPath(name)
	}
	return exec.LookPath(name)
}

func init() {
	toolchain.RegisterLocator(FamilyName, func() toolchain.Locator {
		return New()
	})
}
