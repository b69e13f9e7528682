package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command in an isolated environment.
func run(t *testing.T, in string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	var out bytes.Buffer
	cmd := newRootCmd(strings.NewReader(in), &out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func TestArgsMode(t *testing.T) {
	hist := filepath.Join(t.TempDir(), "history")
	out, err := run(t, "", "--history", hist, "2", "+", "3", "*", "4")
	require.NoError(t, err)
	assert.Equal(t, "14\n", out)
	assert.Equal(t, "2 + 3 * 4\n", readFile(t, hist))
}

func TestArgsModeNegative(t *testing.T) {
	hist := filepath.Join(t.TempDir(), "history")
	out, err := run(t, "", "--history", hist, "--", "-5+3")
	require.NoError(t, err)
	assert.Equal(t, "-2\n", out)
}

func TestArgsModeError(t *testing.T) {
	hist := filepath.Join(t.TempDir(), "history")
	out, err := run(t, "", "--history", hist, "5/0")
	assert.ErrorIs(t, err, errEval)
	assert.Equal(t, "error: 2: division by zero\n", out)
	// Failed expressions are recorded too.
	assert.Equal(t, "5/0\n", readFile(t, hist))
}

func TestEcho(t *testing.T) {
	hist := filepath.Join(t.TempDir(), "history")
	out, err := run(t, "", "--history", hist, "--echo", "(1+2)*3")
	require.NoError(t, err)
	assert.Equal(t, "1 2 + 3 * : 9\n", out)
}

func TestFileMode(t *testing.T) {
	dir := t.TempDir()
	hist := filepath.Join(dir, "history")
	in := filepath.Join(dir, "exprs")
	require.NoError(t, os.WriteFile(in, []byte("1+1\n\n  2*3  \nfoo(1)\n0.1+0.2\n"), 0o600))
	out, err := run(t, "", "--history", hist, "--in", in)
	assert.ErrorIs(t, err, errEval)
	assert.Equal(t, "2\n6\nerror: 1: unknown function \"foo\"\n0.3\n", out)
	assert.Equal(t, "1+1\n2*3\nfoo(1)\n0.1+0.2\n", readFile(t, hist))
}

func TestFileModeMissing(t *testing.T) {
	_, err := run(t, "", "--history", "", "--in", filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, errEval)
}

func TestStdinMode(t *testing.T) {
	hist := filepath.Join(t.TempDir(), "history")
	out, err := run(t, "1/4\nsqrt(16)\n", "--history", hist, "--in", "-")
	require.NoError(t, err)
	assert.Equal(t, "0.25\n4\n", out)
}

func TestHistoryAppends(t *testing.T) {
	hist := filepath.Join(t.TempDir(), "history")
	_, err := run(t, "", "--history", hist, "1")
	require.NoError(t, err)
	_, err = run(t, "", "--history", hist, "2")
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n", readFile(t, hist))
	info, err := os.Stat(hist)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestHistoryDisabled(t *testing.T) {
	hist := filepath.Join(t.TempDir(), "history")
	t.Setenv("CALC_HISTORY", hist)
	out, err := run(t, "", "--history", "", "1+1")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)
	assert.NoFileExists(t, hist)
}

func TestEnvConfig(t *testing.T) {
	hist := filepath.Join(t.TempDir(), "history")
	t.Setenv("CALC_HISTORY", hist)
	_, err := run(t, "", "3^2")
	require.NoError(t, err)
	assert.Equal(t, "3^2\n", readFile(t, hist))
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	hist := filepath.Join(dir, "from-config")
	cfg := filepath.Join(dir, "calc.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("history: "+hist+"\nlog_level: error\n"), 0o600))
	out, err := run(t, "", "--config", cfg, "ln(1)")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)
	assert.Equal(t, "ln(1)\n", readFile(t, hist))
}

func TestConfigFileMissing(t *testing.T) {
	_, err := run(t, "", "--config", filepath.Join(t.TempDir(), "calc.yaml"), "1")
	assert.Error(t, err)
}

func TestBadLogLevel(t *testing.T) {
	_, err := run(t, "", "--history", "", "--log-level", "loud", "1")
	assert.ErrorContains(t, err, "invalid log level")
}

func TestFuncsCmd(t *testing.T) {
	out, err := run(t, "", "--history", "", "funcs")
	require.NoError(t, err)
	assert.Equal(t, "cos\nln\nlog\nsin\nsqrt\ntan\n", out)
}

func TestHistoryCmd(t *testing.T) {
	hist := filepath.Join(t.TempDir(), "history")
	out, err := run(t, "", "--history", hist, "history")
	require.NoError(t, err)
	assert.Empty(t, out)

	require.NoError(t, os.WriteFile(hist, []byte("1+1\n2*2\n"), 0o600))
	out, err = run(t, "", "--history", hist, "history")
	require.NoError(t, err)
	assert.Equal(t, "1+1\n2*2\n", out)
}
