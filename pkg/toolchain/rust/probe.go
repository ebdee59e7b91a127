package rust

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/tmaxmax/rustprobe/pkg/toolchain"
)

// crateKind selects what a probe asks the compiler to produce.
type crateKind string

const (
	// crateLib is a library without a main function, used to check
	// that a flag set is accepted without needing a runnable artifact.
	crateLib crateKind = "lib"
	// crateBin is an executable with a main function, used for the
	// full verification.
	crateBin crateKind = "bin"
)

// The source snippets fed to probes. They are fixed and never carry
// user data.
const (
	probeCrateName = "rustprobe"
	libSource      = ""
	binSource      = "fn main() {}\n"
)

// probeSettings carries the invocation-independent knobs threaded
// through every probe step.
type probeSettings struct {
	log       *toolchain.Log
	timeout   time.Duration
	exeSuffix string
}

func settings(opts toolchain.BuildOptions) probeSettings {
	suffix := opts.ExeSuffix
	if suffix == "" && runtime.GOOS == "windows" {
		suffix = ".exe"
	}
	return probeSettings{log: opts.Log, timeout: opts.Timeout, exeSuffix: suffix}
}

// run invokes an external command, records the attempt in the log and
// reports whether the process exited successfully. A non-zero exit is
// a normal failed outcome, not an error; only failures to invoke the
// process at all are errors.
func (l *Locator) run(ctx context.Context, ps probeSettings, name string, args ...string) (ok bool, output []byte, err error) {
	if ps.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, ps.timeout)
		defer cancel()
	}

	start := time.Now()
	cmd := l.command(ctx, name, args...)
	output, err = cmd.CombinedOutput()
	ps.log.Attempt(append([]string{name}, args...), time.Since(start), output)

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return false, output, nil
		}
		return false, output, fmt.Errorf("rust: failed to invoke %s: %w", name, err)
	}
	return true, output, nil
}

// compileIn writes the probe source for the given crate kind into dir
// and invokes the compiler with the rendered flags. It returns the
// path of the artifact the compiler was asked to produce and whether
// the compiler accepted the invocation. The caller owns dir and its
// removal.
func (l *Locator) compileIn(ctx context.Context, dir, compiler string, flags *toolchain.Flags, kind crateKind, ps probeSettings) (artifact string, ok bool, err error) {
	source := libSource
	if kind == crateBin {
		source = binSource
	}

	src := filepath.Join(dir, probeCrateName+".rs")
	if err := os.WriteFile(src, []byte(source), 0o600); err != nil {
		return "", false, fmt.Errorf("rust: failed to write probe source: %w", err)
	}

	artifact = filepath.Join(dir, probeCrateName+ps.exeSuffix)

	flags = flags.Clone()
	flags.Set("crate-type", string(kind))
	flags.Set("crate-name", probeCrateName)
	flags.Set("o", artifact)

	ok, _, err = l.run(ctx, ps, compiler, append(flagArgs(flags), src)...)
	return artifact, ok, err
}

// tryCompile reports whether the compiler accepts the given flags for
// a trivial crate of the given kind. The scratch source and any
// produced artifact live in a directory owned by this call and are
// removed on every path.
func (l *Locator) tryCompile(ctx context.Context, compiler string, flags *toolchain.Flags, kind crateKind, ps probeSettings) (bool, error) {
	dir, err := os.MkdirTemp("", "rustprobe")
	if err != nil {
		return false, fmt.Errorf("rust: failed to create scratch directory: %w", err)
	}
	defer os.RemoveAll(dir)

	_, ok, err := l.compileIn(ctx, dir, compiler, flags, kind, ps)
	return ok, err
}

// verify checks that the compiler can build a trivial executable with
// the final flags and, when runBinary is set, that the produced binary
// actually runs. Scratch files are removed unconditionally.
func (l *Locator) verify(ctx context.Context, compiler string, flags *toolchain.Flags, runBinary bool, ps probeSettings) error {
	dir, err := os.MkdirTemp("", "rustprobe")
	if err != nil {
		return fmt.Errorf("rust: failed to create scratch directory: %w", err)
	}
	defer os.RemoveAll(dir)

	artifact, ok, err := l.compileIn(ctx, dir, compiler, flags, crateBin, ps)
	if err != nil {
		return err
	}
	if !ok {
		return &toolchain.NonfunctionalError{Path: compiler, Stage: "compile", Diagnostics: ps.log.String()}
	}

	if !runBinary {
		// The binary targets a platform this process cannot run on.
		return nil
	}

	ok, _, err = l.run(ctx, ps, artifact)
	if err != nil {
		// The artifact cannot be invoked at all, which counts as the
		// compiler's output failing to run, not as a probe error.
		ps.log.Note("%v", err)
		ok = false
	}
	if !ok {
		return &toolchain.NonfunctionalError{Path: compiler, Stage: "run", Diagnostics: ps.log.String()}
	}
	return nil
}

// queryVersion asks the compiler for its version report and classifies
// it.
func (l *Locator) queryVersion(ctx context.Context, compiler string, ps probeSettings) (toolchain.Version, bool, error) {
	ok, output, err := l.run(ctx, ps, compiler, "--version")
	if err != nil {
		return toolchain.Version{}, false, err
	}
	if !ok {
		return toolchain.Version{}, false, &toolchain.NonfunctionalError{Path: compiler, Stage: "version", Diagnostics: ps.log.String()}
	}

	version, err := toolchain.ParseVersion(string(output))
	if err != nil {
		return toolchain.Version{}, false, err
	}

	return version, toolchain.AlternateImplementation(version.Name), nil
}

// flagArgs renders flags the way rustc expects them: single-letter
// flags with one dash and a separate value argument, everything else
// with two dashes. Raw passthrough arguments come last.
func flagArgs(f *toolchain.Flags) []string {
	var out []string
	f.Range(func(flag string, values []string, isToggle bool) {
		prefix := "--"
		if len(flag) == 1 {
			prefix = "-"
		}
		if isToggle {
			out = append(out, prefix+flag)
			return
		}
		for _, value := range values {
			out = append(out, prefix+flag, value)
		}
	})
	return append(out, f.RawArgs()...)
}
