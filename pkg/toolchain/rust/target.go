package rust

import (
	"context"

	"github.com/tmaxmax/rustprobe/pkg/platform"
	"github.com/tmaxmax/rustprobe/pkg/toolchain"
)

// TargetCandidates returns the target identifiers to try for the given
// host, in priority order: the host triple exactly as given, its alias
// spelling if the platform detection supplied a distinct one, and the
// vendor-normalized fallback for the architecture families that have
// one.
func TargetCandidates(host platform.Triple, alias string) []string {
	exact := host.String()
	candidates := []string{exact}

	if alias != "" && alias != exact {
		candidates = append(candidates, alias)
	}

	if normalized, ok := host.NormalizeVendor(); ok {
		fallback := normalized.String()
		if fallback != exact && fallback != alias {
			candidates = append(candidates, fallback)
		}
	}

	return candidates
}

// resolveTarget finds the first candidate target identifier the
// compiler accepts, testing each with a trivial library compile. Every
// attempt starts from a fresh copy of the base flags, so a rejected
// target never leaks into the next attempt.
func (l *Locator) resolveTarget(ctx context.Context, compiler string, base *toolchain.Flags, host platform.Triple, alias string, ps probeSettings) (*toolchain.ResolvedTarget, error) {
	candidates := TargetCandidates(host, alias)
	attempted := make([]string, 0, len(candidates))

	for _, target := range candidates {
		flags := base.Clone()
		flags.Set("target", target)

		attempted = append(attempted, target)

		ok, err := l.tryCompile(ctx, compiler, flags, crateLib, ps)
		if err != nil {
			return nil, err
		}
		if ok {
			return &toolchain.ResolvedTarget{Target: target, Flags: flagArgs(flags)}, nil
		}
	}

	return nil, &toolchain.UnresolvableTargetError{Host: host.String(), Attempted: attempted}
}
