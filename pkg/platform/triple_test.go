package platform_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tmaxmax/rustprobe/pkg/platform"
)

func TestParse(t *testing.T) {
	type test struct {
		name      string
		input     string
		expect    platform.Triple
		expectErr bool
	}

	tests := []test{
		{
			name:  "FourComponents",
			input: "x86_64-pc-linux-gnu",
			expect: platform.Triple{
				Arch:   "x86_64",
				Vendor: "pc",
				Kernel: "linux",
				Env:    "gnu",
			},
		},
		{
			name:  "ThreeComponentsWithVendor",
			input: "x86_64-apple-darwin",
			expect: platform.Triple{
				Arch:   "x86_64",
				Vendor: "apple",
				Kernel: "darwin",
			},
		},
		{
			name:  "ThreeComponentsWithEnv",
			input: "x86_64-linux-gnu",
			expect: platform.Triple{
				Arch:   "x86_64",
				Kernel: "linux",
				Env:    "gnu",
			},
		},
		{
			name:  "ThreeComponentsUnknownVendor",
			input: "i686-unknown-linux",
			expect: platform.Triple{
				Arch:   "i686",
				Vendor: "unknown",
				Kernel: "linux",
			},
		},
		{
			name:  "TwoComponents",
			input: "wasm32-wasi",
			expect: platform.Triple{
				Arch:   "wasm32",
				Kernel: "wasi",
			},
		},
		{
			name:      "SingleComponent",
			input:     "x86_64",
			expectErr: true,
		},
		{
			name:      "EmptyComponent",
			input:     "x86_64--linux-gnu",
			expectErr: true,
		},
		{
			name:      "TooManyComponents",
			input:     "a-b-c-d-e",
			expectErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := platform.Parse(test.input)
			if test.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, test.expect, got)
			require.Equal(t, test.input, got.String())
		})
	}
}

func TestTriple_NormalizeVendor(t *testing.T) {
	type test struct {
		name       string
		input      string
		expect     string
		normalized bool
	}

	tests := []test{
		{
			name:       "I686PC",
			input:      "i686-pc-linux-gnu",
			expect:     "i686-unknown-linux-gnu",
			normalized: true,
		},
		{
			name:       "X8664PC",
			input:      "x86_64-pc-windows-msvc",
			expect:     "x86_64-unknown-windows-msvc",
			normalized: true,
		},
		{
			name:   "AlreadyUnknown",
			input:  "x86_64-unknown-linux-gnu",
			expect: "x86_64-unknown-linux-gnu",
		},
		{
			name:   "NonX86Family",
			input:  "aarch64-pc-linux-gnu",
			expect: "aarch64-pc-linux-gnu",
		},
		{
			name:   "NonPCVendor",
			input:  "x86_64-apple-darwin",
			expect: "x86_64-apple-darwin",
		},
		{
			name:   "NoVendor",
			input:  "i686-linux-gnu",
			expect: "i686-linux-gnu",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			triple, err := platform.Parse(test.input)
			require.NoError(t, err)

			got, ok := triple.NormalizeVendor()
			require.Equal(t, test.normalized, ok)
			require.Equal(t, test.expect, got.String())
		})
	}
}

func TestTriple_X86Family(t *testing.T) {
	for arch, expect := range map[string]bool{
		"i386":    true,
		"i686":    true,
		"i986":    true,
		"x86_64":  true,
		"x86_64h": true,
		"amd64":   true,
		"i286":    false,
		"ia64":    false,
		"aarch64": false,
		"riscv64": false,
	} {
		require.Equal(t, expect, platform.Triple{Arch: arch}.X86Family(), "arch %s", arch)
	}
}
