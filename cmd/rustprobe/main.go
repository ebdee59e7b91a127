package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tmaxmax/rustprobe/pkg/platform"
	"github.com/tmaxmax/rustprobe/pkg/toolchain"
	"github.com/tmaxmax/rustprobe/pkg/toolchain/rust"
)

var (
	flagHost      string
	flagHostAlias string
	flagBuild     string
	flagCompiler  string
	flagFlags     string
	flagPolicy    string
	flagTimeout   time.Duration
	flagVerbose   bool
)

func main() {
	root := &cobra.Command{
		Use:           "rustprobe",
		Short:         "Locate and verify Rust compiler toolchains",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagCompiler, "rustc", "", "compiler executable to use instead of searching the path")
	root.PersistentFlags().StringVar(&flagFlags, "rustflags", "", "extra flags passed on every compiler invocation")
	root.PersistentFlags().DurationVar(&flagTimeout, "timeout", 0, "timeout per compiler invocation (0 means none)")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "print the probe log even on success")

	locate := &cobra.Command{
		Use:   "locate",
		Short: "Locate a compiler able to target the host platform",
		Args:  cobra.NoArgs,
		RunE:  runLocate,
	}
	locate.Flags().StringVar(&flagHost, "host", "", "host platform triple (required)")
	locate.Flags().StringVar(&flagHostAlias, "host-alias", "", "alternate spelling of the host triple")
	locate.Flags().StringVar(&flagBuild, "build", "", "build platform triple (required)")
	locate.Flags().StringVar(&flagPolicy, "policy", "", "YAML file with the host-prefix probe policy")
	_ = locate.MarkFlagRequired("host")
	_ = locate.MarkFlagRequired("build")

	buildLocate := &cobra.Command{
		Use:   "build-locate",
		Short: "Locate a compiler for the build platform itself",
		Args:  cobra.NoArgs,
		RunE:  runBuildLocate,
	}

	version := &cobra.Command{
		Use:   "version RAW",
		Short: "Parse and classify a compiler version report",
		Args:  cobra.ExactArgs(1),
		RunE:  runVersion,
	}

	targets := &cobra.Command{
		Use:   "targets",
		Short: "Print the candidate target identifiers for a host triple",
		Args:  cobra.NoArgs,
		RunE:  runTargets,
	}
	targets.Flags().StringVar(&flagHost, "host", "", "host platform triple (required)")
	targets.Flags().StringVar(&flagHostAlias, "host-alias", "", "alternate spelling of the host triple")
	_ = targets.MarkFlagRequired("host")

	detect := &cobra.Command{
		Use:   "detect",
		Short: "Probe every known toolchain family on the build platform",
		Args:  cobra.NoArgs,
		RunE:  runDetect,
	}

	root.AddCommand(locate, buildLocate, version, targets, detect)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildOptions(lg *toolchain.Log) toolchain.BuildOptions {
	return toolchain.BuildOptions{
		Path:    flagCompiler,
		Flags:   strings.Fields(flagFlags),
		Log:     lg,
		Timeout: flagTimeout,
	}
}

func runLocate(cmd *cobra.Command, args []string) error {
	host, err := platform.Parse(flagHost)
	if err != nil {
		return err
	}
	build, err := platform.Parse(flagBuild)
	if err != nil {
		return err
	}

	var policy *toolchain.Policy
	if flagPolicy != "" {
		if policy, err = toolchain.LoadPolicy(flagPolicy); err != nil {
			return err
		}
	}

	locator, err := toolchain.NewLocator(rust.FamilyName)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	lg := &toolchain.Log{}
	result, err := locator.Host(ctx, toolchain.HostOptions{
		BuildOptions: buildOptions(lg),
		Host:         host,
		HostAlias:    flagHostAlias,
		Build:        build,
		Policy:       policy,
	})
	if err != nil {
		fmt.Fprint(os.Stderr, lg.String())
		return err
	}

	printResult(result)
	if flagVerbose {
		fmt.Fprint(os.Stderr, lg.String())
	}
	return nil
}

func runBuildLocate(cmd *cobra.Command, args []string) error {
	locator, err := toolchain.NewLocator(rust.FamilyName)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	lg := &toolchain.Log{}
	result, err := locator.Build(ctx, buildOptions(lg))
	if err != nil {
		fmt.Fprint(os.Stderr, lg.String())
		return err
	}

	printResult(result)
	if flagVerbose {
		fmt.Fprint(os.Stderr, lg.String())
	}
	return nil
}

func runVersion(cmd *cobra.Command, args []string) error {
	version, err := toolchain.ParseVersion(args[0])
	if err != nil {
		return err
	}

	printVersion(version)
	fmt.Printf("alternate: %t\n", toolchain.AlternateImplementation(version.Name))
	return nil
}

func runTargets(cmd *cobra.Command, args []string) error {
	host, err := platform.Parse(flagHost)
	if err != nil {
		return err
	}

	for _, target := range rust.TargetCandidates(host, flagHostAlias) {
		fmt.Println(target)
	}
	return nil
}

func runDetect(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	lg := &toolchain.Log{}
	results := toolchain.DetectToolchains(ctx, buildOptions(lg))
	if len(results) == 0 {
		fmt.Fprint(os.Stderr, lg.String())
		return fmt.Errorf("no working toolchain found")
	}

	for i, result := range results {
		if i > 0 {
			fmt.Println()
		}
		printResult(result)
	}
	if flagVerbose {
		fmt.Fprint(os.Stderr, lg.String())
	}
	return nil
}

// Each value is printed on its own line so later configuration steps
// can pick them up separately.
func printResult(result *toolchain.Result) {
	fmt.Printf("compiler: %s\n", result.Path)
	fmt.Printf("flags: %s\n", strings.Join(result.Flags, " "))
	if result.Target != nil {
		fmt.Printf("target: %s\n", result.Target.Target)
	}
	printVersion(result.Version)
	fmt.Printf("alternate: %t\n", result.Alternate)
}

func printVersion(version toolchain.Version) {
	fmt.Printf("version: %s\n", version.Raw)
	fmt.Printf("version-number: %d.%d.%d\n", version.Major, version.Minor, version.Patch)
	channel := version.Channel.String()
	if version.Channel == toolchain.ChannelNamed {
		channel = version.ChannelLabel
	}
	fmt.Printf("channel: %s\n", channel)
}
