package toolchain_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tmaxmax/rustprobe/pkg/toolchain"
)

func TestParseVersion(t *testing.T) {
	type test struct {
		name      string
		input     string
		expect    toolchain.Version
		expectErr bool
	}

	tests := []test{
		{
			name:  "Stable",
			input: "rustc 1.38.0",
			expect: toolchain.Version{
				Raw:     "rustc 1.38.0",
				Name:    "rustc",
				Major:   1,
				Minor:   38,
				Channel: toolchain.ChannelStable,
			},
		},
		{
			name:  "StableWithBuildInfo",
			input: "rustc 1.38.0 (625451e37 2019-09-23)",
			expect: toolchain.Version{
				Raw:     "rustc 1.38.0 (625451e37 2019-09-23)",
				Name:    "rustc",
				Major:   1,
				Minor:   38,
				Channel: toolchain.ChannelStable,
			},
		},
		{
			name:  "MultiLine",
			input: "rustc 1.52.1\nbinary: rustc\ncommit-hash: unknown",
			expect: toolchain.Version{
				Raw:     "rustc 1.52.1",
				Name:    "rustc",
				Major:   1,
				Minor:   52,
				Patch:   1,
				Channel: toolchain.ChannelStable,
			},
		},
		{
			name:  "Beta",
			input: "rustc 1.40.0-beta.3 (9d7f1bacb 2019-11-06)",
			expect: toolchain.Version{
				Raw:          "rustc 1.40.0-beta.3 (9d7f1bacb 2019-11-06)",
				Name:         "rustc",
				Major:        1,
				Minor:        40,
				Channel:      toolchain.ChannelBeta,
				ChannelLabel: "beta",
			},
		},
		{
			name:  "BareBetaSuffix",
			input: "rustc 1.40.0-beta",
			expect: toolchain.Version{
				Raw:          "rustc 1.40.0-beta",
				Name:         "rustc",
				Major:        1,
				Minor:        40,
				Channel:      toolchain.ChannelBeta,
				ChannelLabel: "beta",
			},
		},
		{
			name:  "BetaMetadataWithChannelWord",
			input: "rustc 1.40.0-beta.2-nightly",
			expect: toolchain.Version{
				Raw:          "rustc 1.40.0-beta.2-nightly",
				Name:         "rustc",
				Major:        1,
				Minor:        40,
				Channel:      toolchain.ChannelNightly,
				ChannelLabel: "nightly",
			},
		},
		{
			name:  "NightlyWithPatchMetadata",
			input: "rustc 1.50.0-dev.1234-nightly",
			expect: toolchain.Version{
				Raw:          "rustc 1.50.0-dev.1234-nightly",
				Name:         "rustc",
				Major:        1,
				Minor:        50,
				Channel:      toolchain.ChannelNightly,
				ChannelLabel: "nightly",
			},
		},
		{
			name:  "PlainNightly",
			input: "rustc 1.41.0-nightly (25d8a9494 2019-11-29)",
			expect: toolchain.Version{
				Raw:          "rustc 1.41.0-nightly (25d8a9494 2019-11-29)",
				Name:         "rustc",
				Major:        1,
				Minor:        41,
				Channel:      toolchain.ChannelNightly,
				ChannelLabel: "nightly",
			},
		},
		{
			name:  "OpaqueChannelWord",
			input: "lccc 0.1.0-pl.3-experimental",
			expect: toolchain.Version{
				Raw:          "lccc 0.1.0-pl.3-experimental",
				Name:         "lccc",
				Minor:        1,
				Channel:      toolchain.ChannelNamed,
				ChannelLabel: "experimental",
			},
		},
		{
			name:  "SingleOpaqueSuffix",
			input: "mrustc 0.10.0-rc1",
			expect: toolchain.Version{
				Raw:          "mrustc 0.10.0-rc1",
				Name:         "mrustc",
				Minor:        10,
				Channel:      toolchain.ChannelNamed,
				ChannelLabel: "rc1",
			},
		},
		{
			name:      "NoNumber",
			input:     "rustc",
			expectErr: true,
		},
		{
			name:      "Empty",
			input:     "",
			expectErr: true,
		},
		{
			name:      "TwoComponents",
			input:     "rustc 1.38",
			expectErr: true,
		},
		{
			name:      "NonNumericComponent",
			input:     "rustc 1.x.0",
			expectErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := toolchain.ParseVersion(test.input)
			if test.expectErr {
				require.ErrorIs(t, err, toolchain.ErrMalformedVersion)
				return
			}
			require.NoError(t, err)
			require.Equal(t, test.expect, got)
		})
	}
}

func TestVersion_AtLeast(t *testing.T) {
	v, err := toolchain.ParseVersion("rustc 1.38.0")
	require.NoError(t, err)

	ok, err := v.AtLeast("1.38.0")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = v.AtLeast("1.39.0")
	require.NoError(t, err)
	require.False(t, ok)

	_, err = v.AtLeast("not a version")
	require.Error(t, err)
}

func TestAlternateImplementation(t *testing.T) {
	for name, expect := range map[string]bool{
		"rustc":      false,
		"lccc":       true,
		"lccc-rustc": true,
		"mrustc":     true,
		"gccrs":      true,
		"gcc":        false,
		"":           false,
	} {
		require.Equal(t, expect, toolchain.AlternateImplementation(name), "name %q", name)
	}
}
