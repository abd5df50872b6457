package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/go-boxstats/boxstats/stats"
)

// readInput reads one number per line from r. Blank lines are
// ignored. A line that is not a number is an error unless skipInvalid
// is set, in which case it is logged and skipped.
func readInput(r io.Reader, skipInvalid bool, log logrus.FieldLogger) (sample stats.Sample, err error) {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		l := strings.TrimSpace(scanner.Text())
		if l == "" {
			continue
		}
		value, err := strconv.ParseFloat(l, 64)
		if err != nil {
			if !skipInvalid {
				return stats.Sample{}, errors.Wrapf(err, "line %d", line)
			}
			log.WithFields(logrus.Fields{"line": line, "text": l}).Warn("skipping non-numeric input")
			continue
		}

		sample.Xs = append(sample.Xs, value)
	}
	if err := scanner.Err(); err != nil {
		return stats.Sample{}, errors.Wrap(err, "reading input")
	}
	log.WithField("values", len(sample.Xs)).Debug("read sample")
	return sample, nil
}
