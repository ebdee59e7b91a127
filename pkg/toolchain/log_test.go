package toolchain_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tmaxmax/rustprobe/pkg/toolchain"
)

func TestLog(t *testing.T) {
	lg := &toolchain.Log{}

	lg.Attempt([]string{"rustc", "--target", "i686-pc-linux-gnu"}, time.Second, []byte("error: unknown target"))
	lg.Note("falling back to %s", "i686-unknown-linux-gnu")
	lg.Attempt([]string{"rustc"}, time.Second, nil)

	out := lg.String()
	require.Contains(t, out, "$ rustc --target i686-pc-linux-gnu")
	require.Contains(t, out, "error: unknown target\n")
	require.Contains(t, out, "falling back to i686-unknown-linux-gnu\n")

	// Appending never discards earlier entries.
	lg.Note("more")
	require.Contains(t, lg.String(), out)
}

func TestLog_Nil(t *testing.T) {
	var lg *toolchain.Log

	// A nil log discards silently.
	lg.Attempt([]string{"rustc"}, 0, nil)
	lg.Note("ignored")
	require.Empty(t, lg.String())
}

func TestLog_Concurrent(t *testing.T) {
	lg := &toolchain.Log{}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			lg.Attempt([]string{"rustc", "--version"}, time.Millisecond, []byte("rustc 1.38.0"))
		}()
	}
	wg.Wait()

	require.Contains(t, lg.String(), "rustc 1.38.0")
}
