package toolchain

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Policy decides when an executable's invocation name marks it as
// already targeting the host platform, in which case target resolution
// is skipped entirely. The exact matching rule varies between build
// environments, so it is configuration rather than a hard-coded
// pattern. A nil *Policy behaves like the default policy: a name
// self-targets iff it begins with "<host triple>-".
type Policy struct {
	// HostPrefixes lists additional name prefixes, beyond
	// "<host triple>-", that mark an executable as self-targeting.
	HostPrefixes []string `yaml:"host_prefixes"`
	// MatchAlias additionally treats "<host alias>-" as a
	// self-targeting prefix.
	MatchAlias bool `yaml:"match_alias"`
}

// LoadPolicy reads a probe policy from a YAML file.
func LoadPolicy(path string) (*Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("toolchain: failed to read policy: %w", err)
	}

	policy := &Policy{}
	if err := yaml.Unmarshal(data, policy); err != nil {
		return nil, fmt.Errorf("toolchain: failed to parse policy %s: %w", path, err)
	}

	return policy, nil
}

// SelfTargets reports whether the invocation name is treated as
// already targeting the host platform named by the given triple and
// optional alias.
func (p *Policy) SelfTargets(invocation, host, alias string) bool {
	prefixes := []string{host + "-"}
	if p != nil {
		if p.MatchAlias && alias != "" {
			prefixes = append(prefixes, alias+"-")
		}
		prefixes = append(prefixes, p.HostPrefixes...)
	}

	for _, prefix := range prefixes {
		if prefix != "-" && strings.HasPrefix(invocation, prefix) {
			return true
		}
	}
	return false
}
