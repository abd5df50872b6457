package main

import (
	"io"
	"math"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/go-boxstats/boxstats/stats"
	"github.com/go-boxstats/boxstats/summary"
)

var kernels = map[string]stats.KDEKernel{
	"gaussian":     stats.GaussianKernel,
	"epanechnikov": stats.EpanechnikovKernel,
	"uniform":      stats.UniformKernel,
	"triangular":   stats.TriangularKernel,
}

func kernelName(k stats.KDEKernel) string {
	return strings.ToLower(strings.TrimSuffix(k.String(), "Kernel"))
}

// series is one summarized input.
type series struct {
	name      string
	sample    *stats.Sample
	box       *summary.BoxPlot
	violin    *summary.Violin
	density   summary.Density
	kernel    stats.KDEKernel
	bandwidth float64
}

func run(cmd *cobra.Command, args []string, opts options, log logrus.FieldLogger) error {
	kernel, ok := kernels[strings.ToLower(opts.kernel)]
	if !ok {
		return errors.Errorf("unknown kernel %q", opts.kernel)
	}
	if opts.bandwidth < 0 || math.IsNaN(opts.bandwidth) || math.IsInf(opts.bandwidth, 1) {
		return errors.Errorf("invalid bandwidth %v", opts.bandwidth)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}

	var cache summary.Cache
	all := make([]*series, 0, len(args))
	values := make([]summary.Value, 0, len(args))
	for _, name := range args {
		s, err := readSeries(cmd.InOrStdin(), name, opts, log)
		if err != nil {
			return err
		}
		all = append(all, summarize(&cache, name, s, opts, kernel))
		values = append(values, summary.FromSample(s))
	}
	lo, hi, ok := cache.Limits(values, summary.FieldMin, summary.FieldMax)
	log.WithFields(logrus.Fields{"series": len(all), "min": lo, "max": hi}).Debug("summarized input")

	if opts.json {
		return writeJSON(cmd.OutOrStdout(), all, lo, hi, ok)
	}
	return writeText(cmd.OutOrStdout(), all, lo, hi, ok)
}

func readSeries(stdin io.Reader, name string, opts options, log logrus.FieldLogger) (*stats.Sample, error) {
	r := stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, errors.Wrap(err, "opening input")
		}
		defer f.Close()
		r = f
	}
	s, err := readInput(r, opts.skipInvalid, log.WithField("input", name))
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	return &s, nil
}

// summarize computes the box plot before the violin, so the violin
// carries the box plot's mean and quartiles.
func summarize(cache *summary.Cache, name string, s *stats.Sample, opts options, kernel stats.KDEKernel) *series {
	sr := &series{
		name:      name,
		sample:    s,
		box:       cache.BoxPlot(s),
		violin:    cache.Violin(s),
		kernel:    kernel,
		bandwidth: math.NaN(),
	}
	if sr.violin.KDE == nil {
		sr.density = sr.violin.Density(opts.points)
		return sr
	}

	// The cached violin is shared; evaluate a reconfigured copy.
	view := *sr.violin
	kde := view.KDE.WithKernel(kernel).WithBandwidth(opts.bandwidth)
	view.KDE = &kde
	sr.density = view.Density(opts.points)
	sr.bandwidth = kde.EffectiveBandwidth()
	return sr
}
