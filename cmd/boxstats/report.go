package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"

	"github.com/go-boxstats/boxstats/stats"
	"github.com/go-boxstats/boxstats/summary"
)

// densityWidth is the width of the widest density bar in text output.
const densityWidth = 50

func writeText(w io.Writer, all []*series, lo, hi float64, ok bool) error {
	bw := bufio.NewWriter(w)
	for i, s := range all {
		if i > 0 {
			fmt.Fprintln(bw)
		}
		if len(all) > 1 {
			fmt.Fprintf(bw, "== %s\n", s.name)
		}

		b := s.box
		xs := stats.Clean(s.sample.Xs)
		fmt.Fprintf(bw, "N %d  mean %.6g  std dev %.6g  variance %.6g\n", b.Total, b.Mean, stats.StdDev(xs), stats.Variance(xs))
		fmt.Fprintln(bw)

		for _, row := range []struct {
			label string
			value float64
		}{
			{"min", b.Min},
			{"whisker", b.WhiskerMin},
			{"q1", b.Q1},
			{"median", b.Median},
			{"q3", b.Q3},
			{"whisker", b.WhiskerMax},
			{"max", b.Max},
		} {
			fmt.Fprintf(bw, "%8s %.6g\n", row.label, row.value)
		}
		if b.Total > 0 {
			fmt.Fprintf(bw, "%8s %d (%.3g%%)\n", "outliers", len(b.Outliers), 100*b.OutlierFraction())
		}
		if len(b.Outliers) > 0 {
			fmt.Fprintf(bw, "%8s %s\n", "", formatFloats(b.Outliers))
		}

		if len(s.density.Coords) > 0 {
			fmt.Fprintln(bw)
			fmt.Fprintf(bw, "density (%s kernel, bandwidth %.6g)\n", kernelName(s.kernel), s.bandwidth)
			fprintDensity(bw, s.density)
		}
	}
	if ok && len(all) > 1 {
		fmt.Fprintln(bw)
		fmt.Fprintf(bw, "range %.6g .. %.6g\n", lo, hi)
	}
	return errors.Wrap(bw.Flush(), "writing output")
}

func formatFloats(xs []float64) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprintf("%.6g", x)
	}
	return strings.Join(parts, " ")
}

func fprintDensity(w io.Writer, d summary.Density) {
	for _, c := range d.Coords {
		bar := 0
		if d.MaxEstimate > 0 {
			bar = int(math.Round(densityWidth * c.Estimate / d.MaxEstimate))
		}
		fmt.Fprintf(w, "%12.6g %-12.6g %s\n", c.V, c.Estimate, strings.Repeat("#", bar))
	}
}

// JSON has no NaN or infinities; num maps them to null.
func num(x float64) *float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil
	}
	return &x
}

func nums(xs []float64) []*float64 {
	out := make([]*float64, len(xs))
	for i, x := range xs {
		out[i] = num(x)
	}
	return out
}

type jsonReport struct {
	Series []jsonSeries `json:"series"`
	Min    *float64     `json:"min"`
	Max    *float64     `json:"max"`
}

type jsonSeries struct {
	Name        string      `json:"name"`
	Total       int         `json:"total"`
	Min         *float64    `json:"min"`
	Max         *float64    `json:"max"`
	Mean        *float64    `json:"mean"`
	Median      *float64    `json:"median"`
	Q1          *float64    `json:"q1"`
	Q3          *float64    `json:"q3"`
	WhiskerMin  *float64    `json:"whiskerMin"`
	WhiskerMax  *float64    `json:"whiskerMax"`
	Outliers    []*float64  `json:"outliers"`
	Kernel      string      `json:"kernel"`
	Bandwidth   *float64    `json:"bandwidth"`
	Density     []jsonCoord `json:"density"`
	MaxEstimate *float64    `json:"maxEstimate"`
}

type jsonCoord struct {
	V        *float64 `json:"v"`
	Estimate *float64 `json:"estimate"`
}

func newJSONReport(all []*series, lo, hi float64, ok bool) jsonReport {
	r := jsonReport{Series: make([]jsonSeries, len(all))}
	if ok {
		r.Min, r.Max = num(lo), num(hi)
	}
	for i, s := range all {
		b := s.box
		js := jsonSeries{
			Name:        s.name,
			Total:       b.Total,
			Min:         num(b.Min),
			Max:         num(b.Max),
			Mean:        num(b.Mean),
			Median:      num(b.Median),
			Q1:          num(b.Q1),
			Q3:          num(b.Q3),
			WhiskerMin:  num(b.WhiskerMin),
			WhiskerMax:  num(b.WhiskerMax),
			Outliers:    nums(b.Outliers),
			Kernel:      kernelName(s.kernel),
			Bandwidth:   num(s.bandwidth),
			Density:     make([]jsonCoord, len(s.density.Coords)),
			MaxEstimate: num(s.density.MaxEstimate),
		}
		for j, c := range s.density.Coords {
			js.Density[j] = jsonCoord{num(c.V), num(c.Estimate)}
		}
		r.Series[i] = js
	}
	return r
}

func writeJSON(w io.Writer, all []*series, lo, hi float64, ok bool) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(newJSONReport(all, lo, hi, ok)), "encoding JSON")
}
