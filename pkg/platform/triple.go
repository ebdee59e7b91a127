/*
Package platform models the architecture-vendor-kernel-environment
tuples used to name compilation platforms, such as x86_64-pc-linux-gnu.
It parses the canonical hyphen-delimited forms and provides the
normalizations needed when probing cross-compilation targets.
*/
package platform

import (
	"fmt"
	"strings"
)

// A Triple identifies a compilation platform. Vendor and Env may be
// empty when the canonical form omits them. Triples are immutable once
// constructed; all normalizations return copies.
type Triple struct {
	// Arch is the processor architecture, e.g. "x86_64" or "i686".
	Arch string
	// Vendor is the platform vendor, e.g. "pc", "apple" or "unknown".
	Vendor string
	// Kernel is the operating system or kernel, e.g. "linux" or "darwin".
	Kernel string
	// Env is the runtime environment or ABI, e.g. "gnu" or "msvc".
	Env string
}

// VendorUnknown is the generic placeholder vendor used by normalized
// target names.
const VendorUnknown = "unknown"

// Vendors with a conventional spelling in canonical tuples. Anything
// else in the vendor position is not recognized as a vendor, which is
// what disambiguates arch-vendor-kernel from arch-kernel-env.
var knownVendors = map[string]bool{
	VendorUnknown: true,
	"pc":          true,
	"apple":       true,
	"amd":         true,
	"csr":         true,
	"fsl":         true,
	"ibm":         true,
	"img":         true,
	"mesa":        true,
	"mti":         true,
	"myriad":      true,
	"nvidia":      true,
	"oe":          true,
	"scei":        true,
	"snes":        true,
	"suse":        true,
	"wdc":         true,
	"w64":         true,
}

// Parse interprets a canonical hyphen-delimited platform tuple.
// Two components are read as arch-kernel, four as
// arch-vendor-kernel-env, and three as arch-vendor-kernel when the
// middle component is a recognized vendor, arch-kernel-env otherwise.
func Parse(s string) (Triple, error) {
	parts := strings.Split(s, "-")
	for _, part := range parts {
		if part == "" {
			return Triple{}, fmt.Errorf("platform: invalid triple %q: empty component", s)
		}
	}

	switch len(parts) {
	case 2:
		return Triple{Arch: parts[0], Kernel: parts[1]}, nil
	case 3:
		if knownVendors[parts[1]] {
			return Triple{Arch: parts[0], Vendor: parts[1], Kernel: parts[2]}, nil
		}
		return Triple{Arch: parts[0], Kernel: parts[1], Env: parts[2]}, nil
	case 4:
		return Triple{Arch: parts[0], Vendor: parts[1], Kernel: parts[2], Env: parts[3]}, nil
	default:
		return Triple{}, fmt.Errorf("platform: invalid triple %q: expected 2 to 4 components, got %d", s, len(parts))
	}
}

// String joins the non-empty components back into the canonical
// hyphen-delimited form.
func (t Triple) String() string {
	parts := make([]string, 0, 4)
	for _, part := range []string{t.Arch, t.Vendor, t.Kernel, t.Env} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, "-")
}

// IsZero reports whether the triple carries no components at all.
func (t Triple) IsZero() bool {
	return t == Triple{}
}

// X86Family reports whether the architecture belongs to the x86 family,
// either a 32-bit i?86 variant or one of the x86_64 spellings.
func (t Triple) X86Family() bool {
	return isX86_32(t.Arch) || isX86_64(t.Arch)
}

func isX86_32(arch string) bool {
	// i386 through i986.
	return len(arch) == 4 && arch[0] == 'i' && arch[1] >= '3' && arch[1] <= '9' && arch[2] == '8' && arch[3] == '6'
}

func isX86_64(arch string) bool {
	switch arch {
	case "x86_64", "x86_64h", "amd64":
		return true
	}
	return false
}

// NormalizeVendor returns a copy of the triple with the vendor
// rewritten to the generic "unknown" placeholder, and whether the
// rewrite applies. Only x86-family triples using the "pc" vendor
// convention are rewritten; other architecture families keep their
// vendor as-is.
func (t Triple) NormalizeVendor() (Triple, bool) {
	if t.Vendor != "pc" || !t.X86Family() {
		return t, false
	}
	t.Vendor = VendorUnknown
	return t, true
}
