package toolchain

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tmaxmax/rustprobe/pkg/platform"
)

// BuildOptions configures probing for a compiler that runs on and
// targets the build platform itself.
type BuildOptions struct {
	// Candidates overrides the family's default executable search
	// list. Order defines priority; the first name found wins.
	Candidates []Candidate
	// Path, when non-empty, bypasses candidate search and uses the
	// given executable directly. It still goes through every
	// verification step.
	Path string
	// Flags are caller-supplied arguments passed verbatim on every
	// compiler invocation.
	Flags []string
	// ExeSuffix is the operating system's executable filename suffix,
	// used to name the runnable verification binary. Empty means the
	// convention of the system this process runs on.
	ExeSuffix string
	// Log receives diagnostics for every probe attempt. May be nil.
	Log *Log
	// Timeout bounds each external-process invocation. Zero means no
	// timeout, matching the original behavior of waiting for the
	// compiler indefinitely.
	Timeout time.Duration
}

// HostOptions configures probing for a compiler able to target the
// host platform, which may differ from the build platform when
// cross-compiling.
type HostOptions struct {
	BuildOptions

	// Host is the platform compiled programs must run on.
	Host platform.Triple
	// HostAlias is an alternate spelling of the host triple supplied
	// by the platform-detection collaborator, if it has one.
	HostAlias string
	// Build is the platform the compiler itself runs on.
	Build platform.Triple
	// Policy decides when an executable name is treated as already
	// targeting the host. Nil means the default policy.
	Policy *Policy
}

// A Locator finds and verifies a working compiler toolchain for one
// source-language family.
type Locator interface {
	// Host locates a compiler able to target the host platform,
	// resolving a cross-compilation target when needed. The trivial
	// verification program is executed only when host and build
	// platforms coincide.
	Host(ctx context.Context, opts HostOptions) (*Result, error)
	// Build locates a compiler for the build platform itself. No
	// target is ever resolved and the verification program is always
	// executed, since the build platform can run its own output.
	Build(ctx context.Context, opts BuildOptions) (*Result, error)
}

// LocatorConstructor constructs the Locator for a registered family.
type LocatorConstructor func() Locator

var (
	locators      = map[string]LocatorConstructor{}
	locatorNames  []string // provide ordered iteration for the map
	locatorsMutex sync.RWMutex
)

// RegisterLocator adds a toolchain family for usage. If a family with
// the same name already exists, the name has path separators or path
// list separators, or the constructor is nil, this function panics.
func RegisterLocator(name string, constructor LocatorConstructor) {
	locatorsMutex.Lock()
	defer locatorsMutex.Unlock()

	if !isValidFamilyName(name) {
		panic(fmt.Sprintf("toolchain: family name %q has invalid characters", name))
	}

	if locators[name] != nil {
		panic(fmt.Sprintf("toolchain: family %q is already registered", name))
	}

	if constructor == nil {
		panic(fmt.Sprintf("toolchain: constructor provided for family %q is nil", name))
	}

	locators[name] = constructor
	locatorNames = append(locatorNames, name)
}

// NewLocator initializes the locator registered under the given family
// name.
func NewLocator(name string) (Locator, error) {
	locatorsMutex.RLock()
	constructor := locators[name]
	locatorsMutex.RUnlock()

	if constructor == nil {
		return nil, fmt.Errorf("toolchain: missing toolchain family %q, forgotten import?", name)
	}

	return constructor(), nil
}

// DetectToolchains probes every registered family for a working
// build-platform toolchain and returns the ones found, in registration
// order. Families are probed concurrently; this is safe because every
// probe owns its scratch files. Families whose probe fails are simply
// absent from the result.
func DetectToolchains(ctx context.Context, opts BuildOptions) []*Result {
	locatorsMutex.RLock()
	names := append([]string(nil), locatorNames...)
	constructors := make([]LocatorConstructor, len(names))
	for i, name := range names {
		constructors[i] = locators[name]
	}
	locatorsMutex.RUnlock()

	results := make([]*Result, len(names))
	g, gctx := errgroup.WithContext(ctx)

	for i := range names {
		i := i
		g.Go(func() error {
			result, err := constructors[i]().Build(gctx, opts)
			if err != nil {
				return nil // absence of a toolchain is not an error here
			}
			results[i] = result
			return nil
		})
	}

	// The goroutines only ever return nil.
	_ = g.Wait()

	found := results[:0]
	for _, result := range results {
		if result != nil {
			found = append(found, result)
		}
	}
	return found
}
