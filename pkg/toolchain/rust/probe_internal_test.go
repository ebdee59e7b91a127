package rust

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tmaxmax/rustprobe/pkg/toolchain"
)

func TestFlagArgs(t *testing.T) {
	f := toolchain.NewFlags()
	f.Set("target", "i686-unknown-linux-gnu")
	f.Set("crate-type", "lib")
	f.Set("o", "/tmp/out")
	f.Toggle("v")
	f.Raw("-C", "opt-level=2")

	require.Equal(t, []string{
		"--target", "i686-unknown-linux-gnu",
		"--crate-type", "lib",
		"-o", "/tmp/out",
		"-v",
		"-C", "opt-level=2",
	}, flagArgs(f))
}

func TestSearchOrder(t *testing.T) {
	candidates := []toolchain.Candidate{
		{DisplayName: "Rust reference compiler", Invocation: "rustc"},
		{DisplayName: "GCC Rust front-end", Invocation: "gccrs"},
	}

	require.Equal(t, candidates, searchOrder(candidates, "x86_64-pc-windows-msvc", false))

	ordered := searchOrder(candidates, "x86_64-pc-windows-msvc", true)
	invocations := make([]string, len(ordered))
	for i, candidate := range ordered {
		invocations[i] = candidate.Invocation
	}
	require.Equal(t, []string{
		"x86_64-pc-windows-msvc-rustc",
		"x86_64-pc-windows-msvc-gccrs",
		"rustc",
		"gccrs",
	}, invocations)
}
