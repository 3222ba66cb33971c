package main

import (
	"fmt"
	"runtime"
	"text/tabwriter"

	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/spf13/cobra"
)

var simdLevels = []cpu.SIMDLevel{
	cpu.SIMDAVX512,
	cpu.SIMDAVX2,
	cpu.SIMDAVX,
	cpu.SIMDSSE2,
	cpu.SIMDNEON,
}

// simdLevel returns the most capable SIMD level the vector kernels can use.
func simdLevel(f cpu.Features) cpu.SIMDLevel {
	for _, level := range simdLevels {
		if cpu.Supports(f, level) {
			return level
		}
	}
	return cpu.SIMDNone
}

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print version and CPU capabilities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := cpu.DetectFeatures()
			a.log.Debug("cpu features", "sse2", f.HasSSE2, "avx", f.HasAVX, "avx2", f.HasAVX2, "avx512", f.HasAVX512, "neon", f.HasNEON)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "version\t%s\n", version)
			fmt.Fprintf(tw, "go\t%s\n", runtime.Version())
			fmt.Fprintf(tw, "arch\t%s\n", f.Architecture)
			fmt.Fprintf(tw, "simd\t%s\n", simdLevel(f))
			fmt.Fprintf(tw, "generic\t%t\n", f.ForceGeneric)
			return tw.Flush()
		},
	}
}
