package toolchain

import (
	"fmt"
	"strings"
)

// NoCompilerError is returned when no candidate executable could be
// located on the search path.
type NoCompilerError struct {
	// Candidates lists every invocation name tried, in search order.
	Candidates []string
}

func (e *NoCompilerError) Error() string {
	return fmt.Sprintf("toolchain: no compiler found, tried %s", strings.Join(e.Candidates, ", "))
}

// NonfunctionalError is returned when a compiler was found but
// rejected a baseline compile, failed to run its own output, or could
// not report its version.
type NonfunctionalError struct {
	// Path of the rejected compiler executable.
	Path string
	// Stage names the verification step that failed: "compile", "run"
	// or "version".
	Stage string
	// Diagnostics is the accumulated probe log at the time of failure.
	Diagnostics string
}

func (e *NonfunctionalError) Error() string {
	return fmt.Sprintf("toolchain: compiler %s is not functional: %s check failed", e.Path, e.Stage)
}

// UnresolvableTargetError is returned when the compiler rejected every
// candidate cross-compilation target.
type UnresolvableTargetError struct {
	// Host is the host triple targets were resolved for.
	Host string
	// Attempted lists every target identifier tried, in order.
	Attempted []string
}

func (e *UnresolvableTargetError) Error() string {
	return fmt.Sprintf("toolchain: no usable target for host %s, tried %s", e.Host, strings.Join(e.Attempted, ", "))
}
