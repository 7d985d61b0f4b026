package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/mlprep/pkg/errors"
	"github.com/YuminosukeSato/mlprep/pkg/log"
)

func writeCSV(t *testing.T, lines []string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600))
	return path
}

func TestRunSummary(t *testing.T) {
	defer log.SetLogger(nil)

	var lines []string
	for i := 0; i < 20; i++ {
		lines = append(lines, []string{"0.1,0.2,10", "0.8,0.9,1"}[i%2])
	}
	input := writeCSV(t, lines)

	var stdout, stderr bytes.Buffer
	err := run([]string{"-input", input, "-seed", "3", "-test", "0.2", "-train", "0.5", "-log-level", "error"}, &stdout, &stderr)
	require.NoError(t, err)

	out := stdout.String()
	assert.Contains(t, out, "Loaded 20 dataPoints")
	assert.Contains(t, out, "0 10 dataPoints")
	assert.Contains(t, out, "Training set: 10 dataPoints")
	assert.Contains(t, out, "Test set: 4 dataPoints")
	assert.Contains(t, out, "Classes: [0 1]")
	assert.Contains(t, out, "Design matrix: 10x3, label matrix: 10x2")
}

func TestRunRenders(t *testing.T) {
	defer log.SetLogger(nil)

	var lines []string
	for i := 0; i < 10; i++ {
		lines = append(lines, "0.1,0.2,0.3,0.4,a", "0.9,0.8,0.7,0.6,b")
	}
	input := writeCSV(t, lines)
	dir := t.TempDir()
	scatter := filepath.Join(dir, "scatter.png")
	mosaic := filepath.Join(dir, "mosaic.png")

	var stdout, stderr bytes.Buffer
	err := run([]string{
		"-input", input, "-seed", "1", "-log-level", "error",
		"-scatter", scatter, "-mosaic", mosaic, "-samples", "4", "-side", "2",
	}, &stdout, &stderr)
	require.NoError(t, err)

	assert.FileExists(t, scatter)
	assert.FileExists(t, mosaic)
	assert.Contains(t, stdout.String(), "Sample of 4 dataPoints")
}

func TestRunErrors(t *testing.T) {
	defer log.SetLogger(nil)
	var stdout, stderr bytes.Buffer

	err := run(nil, &stdout, &stderr)
	var ve *errors.ValidationError
	assert.True(t, errors.As(err, &ve))

	err = run([]string{"-input", filepath.Join(t.TempDir(), "missing.csv"), "-log-level", "error"}, &stdout, &stderr)
	var nf *errors.NotFoundError
	assert.True(t, errors.As(err, &nf))

	input := writeCSV(t, []string{"1,red,a"})
	err = run([]string{"-input", input, "-nominal", "reject", "-log-level", "error"}, &stdout, &stderr)
	var pe *errors.ParseError
	assert.True(t, errors.As(err, &pe))

	err = run([]string{"-input", input, "-test", "2", "-log-level", "error"}, &stdout, &stderr)
	assert.True(t, errors.As(err, &ve))
}
