package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coldregions/hffplots/pkg/frame"
)

func writeCooling(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cooling.csv")
	body := "step,cooling rate\n0,-0.01\n1,\n2,-0.01\n3,-0.02\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestRunWritesChart(t *testing.T) {
	path := writeCooling(t)

	var out bytes.Buffer
	require.NoError(t, run([]string{"-kind", "parcels", "-o", "svg", "-temp", "3", path}, &out))
	assert.Contains(t, out.String(), "<svg")

	out.Reset()
	require.NoError(t, run([]string{"-kind", "coolingrate", path}, &out))
	assert.True(t, bytes.HasPrefix(out.Bytes(), []byte("\x89PNG")))
}

func TestRunErrors(t *testing.T) {
	path := writeCooling(t)

	table := []struct {
		name string
		args []string
		want error
	}{
		{"no table", []string{"-kind", "parcels"}, errUsage},
		{"missing file", []string{filepath.Join(t.TempDir(), "nope.csv")}, os.ErrNotExist},
		{"missing column", []string{"-kind", "coolingrate", "-column", "rate", path}, frame.ErrMissingColumn},
		{"met without met columns", []string{"-kind", "met", path}, frame.ErrMissingColumn},
	}
	for _, tc := range table {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			err := run(tc.args, &out)
			if !errors.Is(err, tc.want) {
				t.Errorf("got %v, wanted %v", err, tc.want)
			}
			assert.Zero(t, out.Len())
		})
	}
}
