// boxstats reads newline-separated numbers and describes them the way
// a box plot and a violin plot would: quartiles, whiskers, outliers
// and a kernel density estimate.
//
// Each file argument is summarized as its own series; with no
// arguments, boxstats reads stdin.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type options struct {
	points      int
	bandwidth   float64
	kernel      string
	json        bool
	skipInvalid bool
	debug       bool
}

func newRootCommand() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:           "boxstats [FILE...]",
		Short:         "Summarize samples for box and violin plots",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logrus.SetOutput(cmd.ErrOrStderr())
			if opts.debug {
				logrus.SetLevel(logrus.DebugLevel)
			}
			return run(cmd, args, opts, logrus.StandardLogger())
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&opts.points, "points", "p", 100, "number of intervals to sample the density at")
	flags.Float64VarP(&opts.bandwidth, "bandwidth", "b", 0, "kernel bandwidth (0 selects one from the data)")
	flags.StringVarP(&opts.kernel, "kernel", "k", "gaussian", "density kernel: gaussian, epanechnikov, uniform or triangular")
	flags.BoolVar(&opts.json, "json", false, "print JSON instead of text")
	flags.BoolVar(&opts.skipInvalid, "skip-invalid", false, "skip lines that are not numbers instead of failing")
	flags.BoolVarP(&opts.debug, "debug", "D", false, "enable debug logging")
	return cmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
