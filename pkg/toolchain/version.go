package toolchain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	goversion "github.com/hashicorp/go-version"
)

// Channel identifies the release train a compiler version belongs to.
type Channel int

const (
	// ChannelStable is the default channel, assumed when the version
	// carries no suffix.
	ChannelStable Channel = iota
	ChannelBeta
	ChannelNightly
	// ChannelNamed marks a channel word this package does not
	// recognize. The verbatim word is kept in Version.ChannelLabel;
	// alternate compiler implementations mint their own suffix
	// vocabulary and rejecting it would lock them out.
	ChannelNamed
)

func (c Channel) String() string {
	switch c {
	case ChannelStable:
		return "stable"
	case ChannelBeta:
		return "beta"
	case ChannelNightly:
		return "nightly"
	default:
		return "named"
	}
}

// ErrMalformedVersion is returned by ParseVersion when the numeric
// major.minor.patch prefix cannot be isolated at all.
var ErrMalformedVersion = errors.New("toolchain: malformed version")

// Version is the structured form of a compiler's self-reported
// version.
type Version struct {
	// Raw is the first line of the compiler's version report,
	// unmodified.
	Raw string
	// Name is the compiler's self-reported name, e.g. "rustc".
	Name string
	// Major, Minor and Patch are the non-negative components of the
	// dot-separated numeric prefix.
	Major, Minor, Patch int
	// Channel classifies the release train.
	Channel Channel
	// ChannelLabel is the verbatim channel word from the version
	// suffix. It is empty for stable versions.
	ChannelLabel string
}

// ParseVersion parses a raw version report such as "rustc 1.38.0" into
// a structured record. The suffix grammar, in priority order:
//
//	name M.N.P-beta.K    -> beta
//	name M.N.P-X-Y       -> channel Y, verbatim
//	name M.N.P           -> stable
//
// Any other single trailing token after the numeric triple is kept as
// an opaque channel label rather than rejected. ParseVersion fails,
// wrapping ErrMalformedVersion, only when no numeric triple can be
// found.
func ParseVersion(raw string) (Version, error) {
	line := raw
	if i := strings.IndexAny(line, "\r\n"); i != -1 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)

	fields := strings.Fields(line)
	numberAt := -1
	for i, field := range fields {
		if field[0] >= '0' && field[0] <= '9' {
			numberAt = i
			break
		}
	}
	if numberAt == -1 {
		return Version{}, fmt.Errorf("%w: no version number in %q", ErrMalformedVersion, line)
	}

	number, suffix, _ := strings.Cut(fields[numberAt], "-")
	major, minor, patch, err := parseNumericTriple(number)
	if err != nil {
		return Version{}, fmt.Errorf("%w: %q: %v", ErrMalformedVersion, line, err)
	}

	v := Version{
		Raw:   line,
		Name:  strings.Join(fields[:numberAt], " "),
		Major: major,
		Minor: minor,
		Patch: patch,
	}

	switch {
	case suffix == "":
		v.Channel = ChannelStable
	case suffix == "beta" || (strings.HasPrefix(suffix, "beta.") && !strings.Contains(suffix, "-")):
		// A further dash means the suffix is patch metadata followed
		// by a channel word, which takes priority over the beta rule.
		v.Channel = ChannelBeta
		v.ChannelLabel = "beta"
	default:
		// The channel word is the last dash-delimited token; anything
		// before it is build metadata attached to the patch component.
		label := suffix[strings.LastIndexByte(suffix, '-')+1:]
		v.ChannelLabel = label
		switch label {
		case "nightly":
			v.Channel = ChannelNightly
		case "beta":
			v.Channel = ChannelBeta
		default:
			v.Channel = ChannelNamed
		}
	}

	return v, nil
}

func parseNumericTriple(number string) (major, minor, patch int, err error) {
	parts := strings.Split(number, ".")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("expected major.minor.patch, got %q", number)
	}

	components := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return 0, 0, 0, fmt.Errorf("invalid version component %q", part)
		}
		components[i] = n
	}

	return components[0], components[1], components[2], nil
}

// Core returns the numeric triple as a comparable version value,
// disregarding channel information.
func (v Version) Core() *goversion.Version {
	core, err := goversion.NewVersion(fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch))
	if err != nil {
		// The components are non-negative integers, so this never
		// happens.
		panic(err)
	}
	return core
}

// AtLeast reports whether the numeric triple is at least the given
// minimum version, e.g. "1.38.0". Channel information is not
// considered.
func (v Version) AtLeast(min string) (bool, error) {
	m, err := goversion.NewVersion(min)
	if err != nil {
		return false, fmt.Errorf("toolchain: invalid minimum version %q: %w", min, err)
	}
	return v.Core().GreaterThanOrEqual(m), nil
}

// Alternate language front-end implementations, identified by the name
// they report in their version output.
var alternatePrefixes = []string{"lccc", "mrustc", "gccrs"}

// AlternateImplementation reports whether the compiler name belongs to
// a known alternate implementation of the language front-end. Callers
// must not treat a missing channel suffix from such a compiler as
// proof it is the stable release train.
func AlternateImplementation(name string) bool {
	for _, prefix := range alternatePrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}
