package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/g-m-twostay/truetree/Trees"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newBaseCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestDumpCmd(t *testing.T) {
	out, _, err := run(t, "dump", "10", "20", "30", "50", "40")
	require.NoError(t, err)
	require.Equal(t, "[20,[10,null,null],[40,[30,null,null],[50,null,null]]]\n", out)
}

func TestDumpCmd_Pretty(t *testing.T) {
	out, _, err := run(t, "dump", "--pretty", "2", "1")
	require.NoError(t, err)
	require.Equal(t, "[\n   2,\n   [\n      1,\n      null,\n      null\n   ],\n   null\n]\n", out)
}

func TestDumpCmd_Remove(t *testing.T) {
	out, _, err := run(t, "dump", "--remove", "3", "2", "1", "3")
	require.NoError(t, err)
	require.Equal(t, "[2,[1,null,null],null]\n", out)

	_, _, err = run(t, "dump", "--remove", "7", "2", "1", "3")
	require.ErrorIs(t, err, Trees.ErrNotFound)

	_, _, err = run(t, "dump", "--remove", "1", "1")
	require.ErrorIs(t, err, Trees.ErrEmptyTree)
}

func TestDumpCmd_Strings(t *testing.T) {
	out, _, err := run(t, "dump", "--strings", "b", "a", "c")
	require.NoError(t, err)
	require.Equal(t, `["b",["a",null,null],["c",null,null]]`+"\n", out)
}

func TestDumpCmd_BadInput(t *testing.T) {
	_, _, err := run(t, "dump", "1", "x")
	require.ErrorContains(t, err, `invalid value "x"`)
	_, _, err = run(t, "dump")
	require.Error(t, err)
	_, _, err = run(t, "--log-level", "loud", "dump", "1")
	require.ErrorContains(t, err, "failed to parse log level")
}

func TestMeasureCmd(t *testing.T) {
	out, _, err := run(t, "measure", "--size", "256", "--steps", "4", "--seed", "3")
	require.NoError(t, err)
	require.Contains(t, out, "steps: 4\n")
	require.Contains(t, out, "count: 768\n")
}

func TestMeasureCmd_Config(t *testing.T) {
	path := filepath.Join(t.TempDir(), "measure.yaml")
	require.NoError(t, os.WriteFile(path, []byte("size: 100\nsteps: 3\nremove_ratio: 0.5\n"), 0o600))

	out, errOut, err := run(t, "--log-level", "debug", "measure", "--config", path)
	require.NoError(t, err)
	require.Contains(t, out, "count: 150\n")
	require.Equal(t, 3, strings.Count(errOut, "measured"))

	// flags win over the file
	out, _, err = run(t, "measure", "--config", path, "--remove-ratio", "0")
	require.NoError(t, err)
	require.Contains(t, out, "count: 300\n")
}

func TestMeasureCmd_Invalid(t *testing.T) {
	_, _, err := run(t, "measure", "--steps", "0", "--remove-ratio", "2")
	require.ErrorContains(t, err, "steps must be positive")
	require.ErrorContains(t, err, "remove_ratio must be within")

	_, _, err = run(t, "measure", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("size: [1"), 0o600))
	_, _, err = run(t, "measure", "--config", path)
	require.ErrorContains(t, err, "failed to parse config")
}

func TestMeasure(t *testing.T) {
	s, err := measure(measureConfig{Size: 1000, Steps: 8, Seed: 1, RemoveRatio: 0.25}, zerolog.Nop())
	require.NoError(t, err)
	require.Equal(t, 8, s.Steps)
	require.EqualValues(t, 6000, s.Count)
	require.LessOrEqual(t, float64(s.Height), heightBound(s.Count))
	require.Greater(t, s.Mean, 0.0)
	require.LessOrEqual(t, s.Mean, 1.0)
	require.GreaterOrEqual(t, s.StdDev, 0.0)
}

func TestLoadMeasureConfig(t *testing.T) {
	c, err := loadMeasureConfig("")
	require.NoError(t, err)
	require.Equal(t, defaultMeasureConfig, c)

	path := filepath.Join(t.TempDir(), "m.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 9\n"), 0o600))
	c, err = loadMeasureConfig(path)
	require.NoError(t, err)
	require.EqualValues(t, 9, c.Seed)
	require.Equal(t, defaultMeasureConfig.Size, c.Size)
	require.NoError(t, c.validate())
}
