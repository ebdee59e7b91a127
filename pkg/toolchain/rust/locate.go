package rust

import (
	"context"
	"path/filepath"

	"github.com/tmaxmax/rustprobe/pkg/toolchain"
)

// searchOrder arranges the candidate list for a path search. When
// cross-compiling, a host-prefixed variant of every candidate is tried
// first: a prefixed executable is assumed to already target the host
// without needing an explicit target selection.
func searchOrder(candidates []toolchain.Candidate, host string, cross bool) []toolchain.Candidate {
	if !cross {
		return candidates
	}

	ordered := make([]toolchain.Candidate, 0, 2*len(candidates))
	for _, candidate := range candidates {
		ordered = append(ordered, toolchain.Candidate{
			DisplayName: candidate.DisplayName + " (host-prefixed)",
			Invocation:  host + "-" + candidate.Invocation,
		})
	}
	return append(ordered, candidates...)
}

// findCompiler returns the path and invocation name of the first
// candidate present on the search path.
func (l *Locator) findCompiler(candidates []toolchain.Candidate) (path, invocation string, err error) {
	tried := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		tried = append(tried, candidate.Invocation)
		if path, err := l.lookPath(candidate.Invocation); err == nil {
			return path, candidate.Invocation, nil
		}
	}
	return "", "", &toolchain.NoCompilerError{Candidates: tried}
}

// Host implements toolchain.Locator. It locates a compiler able to
// target opts.Host, resolving a cross-compilation target when the
// selected executable does not already target the host, verifies that
// the final configuration compiles a trivial program - and runs it,
// when not cross-compiling - and classifies the compiler's version.
func (l *Locator) Host(ctx context.Context, opts toolchain.HostOptions) (*toolchain.Result, error) {
	cross := opts.Host != opts.Build
	host := opts.Host.String()

	base := toolchain.NewFlags()
	base.Raw(opts.Flags...)

	path, invocation := opts.Path, ""
	if path != "" {
		// User override: no candidate search, but verification and
		// target resolution still apply.
		invocation = filepath.Base(path)
	} else {
		candidates := opts.Candidates
		if len(candidates) == 0 {
			candidates = DefaultCandidates()
		}

		var err error
		path, invocation, err = l.findCompiler(searchOrder(candidates, host, cross))
		if err != nil {
			return nil, err
		}
	}

	ps := settings(opts.BuildOptions)
	flags := base
	result := &toolchain.Result{Path: path}

	if cross && !opts.Policy.SelfTargets(invocation, host, opts.HostAlias) {
		target, err := l.resolveTarget(ctx, path, base, opts.Host, opts.HostAlias, ps)
		if err != nil {
			return nil, err
		}
		result.Target = target

		flags = base.Clone()
		flags.Set("target", target.Target)
	}

	if err := l.verify(ctx, path, flags, !cross, ps); err != nil {
		return nil, err
	}

	version, alternate, err := l.queryVersion(ctx, path, ps)
	if err != nil {
		return nil, err
	}

	result.Flags = flagArgs(flags)
	result.Version = version
	result.Alternate = alternate
	return result, nil
}

// Build implements toolchain.Locator. Build-platform compilers always
// target themselves, so no target is ever resolved and the produced
// verification binary is always executed.
func (l *Locator) Build(ctx context.Context, opts toolchain.BuildOptions) (*toolchain.Result, error) {
	base := toolchain.NewFlags()
	base.Raw(opts.Flags...)

	path := opts.Path
	if path == "" {
		candidates := opts.Candidates
		if len(candidates) == 0 {
			candidates = DefaultCandidates()
		}

		var err error
		path, _, err = l.findCompiler(candidates)
		if err != nil {
			return nil, err
		}
	}

	ps := settings(opts)
	if err := l.verify(ctx, path, base, true, ps); err != nil {
		return nil, err
	}

	version, alternate, err := l.queryVersion(ctx, path, ps)
	if err != nil {
		return nil, err
	}

	return &toolchain.Result{
		Path:      path,
		Flags:     flagArgs(base),
		Version:   version,
		Alternate: alternate,
	}, nil
}
