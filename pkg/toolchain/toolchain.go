package toolchain

import (
	"os"
	"strings"
)

// A Candidate names a compiler executable to search for. Candidates
// are tried in the order they are listed; the first one found on the
// search path wins.
type Candidate struct {
	// DisplayName is a human-readable name for diagnostics.
	DisplayName string
	// Invocation is the executable name looked up on the search path.
	Invocation string
}

// ResolvedTarget is the cross-compilation target identifier a compiler
// accepted, together with the full flag set that selects it.
type ResolvedTarget struct {
	// Target is the accepted target identifier.
	Target string
	// Flags is the final flag set including the target selection.
	Flags []string
}

// Result describes a verified toolchain. It is only ever produced
// whole, after every verification step has succeeded, and is not
// modified afterwards.
type Result struct {
	// Path of the compiler executable.
	Path string
	// Flags to pass on every invocation, including any target
	// selection.
	Flags []string
	// Target holds the resolved cross-compilation target. It is nil
	// when the host and build platforms coincide or when the selected
	// executable already targets the host.
	Target *ResolvedTarget
	// Version is the compiler's self-reported version, classified.
	Version Version
	// Alternate reports whether the compiler is a known alternate
	// implementation of the language front-end. Alternate
	// implementations may not distinguish release channels, so a
	// stable Version.Channel from such a compiler is not proof it is
	// the stable release train.
	Alternate bool
}

func isValidFamilyName(name string) bool {
	return name != "" && !strings.ContainsAny(name, string([]rune{os.PathSeparator, os.PathListSeparator}))
}
