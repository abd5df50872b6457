package main

import (
	"math"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestReadInput(t *testing.T) {
	log, hook := logtest.NewNullLogger()
	s, err := readInput(strings.NewReader("1\n 2.5 \n\n-3e2\nNaN\n"), false, log)
	assert.NilError(t, err)
	assert.Assert(t, is.Len(s.Xs, 4))
	assert.DeepEqual(t, s.Xs[:3], []float64{1, 2.5, -300})
	assert.Check(t, math.IsNaN(s.Xs[3]))
	assert.Check(t, is.Len(hook.AllEntries(), 0))
}

func TestReadInputInvalid(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	_, err := readInput(strings.NewReader("1\n2\nthree\n4\n"), false, log)
	assert.ErrorContains(t, err, "line 3")
	assert.ErrorContains(t, err, "three")
}

func TestReadInputSkipInvalid(t *testing.T) {
	log, hook := logtest.NewNullLogger()
	s, err := readInput(strings.NewReader("1\nthree\n4\n"), true, log)
	assert.NilError(t, err)
	assert.DeepEqual(t, s.Xs, []float64{1, 4})

	entries := hook.AllEntries()
	assert.Assert(t, is.Len(entries, 1))
	assert.Equal(t, entries[0].Level, logrus.WarnLevel)
	assert.Equal(t, entries[0].Data["line"], 2)
	assert.Equal(t, entries[0].Data["text"], "three")
}
