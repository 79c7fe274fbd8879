package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
)

// run executes the root command with args and stdin, returning stdout and the log output.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	root := NewRootCommand(&logs)
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&logs)
	root.SetIn(strings.NewReader(stdin))
	err := root.Execute()
	return out.String(), logs.String(), err
}

func writeInput(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestNewLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)
	logger.Debug("hidden")
	require.Zero(t, buf.Len())
	logger.Info("shown")
	require.Contains(t, buf.String(), "shown")
}

func TestLoopCommand(t *testing.T) {
	in := "..F7.\n.FJ|.\nSJ.L7\n|F--J\nLJ...\n"
	out, logs, err := run(t, in, "loop")
	require.NoError(t, err)
	require.Equal(t, "part 1: 8\npart 2: 1\n", out)
	require.Contains(t, logs, "loop solved")
}

func TestDigCommand(t *testing.T) {
	p := writeInput(t, "plan.txt", "R 2 (#000000)\nD 2 (#000000)\nL 2 (#000000)\nU 2 (#000000)\n")
	out, logs, err := run(t, "", "--verbose", "dig", p)
	require.NoError(t, err)
	require.Equal(t, "part 1: 9\n", out)
	require.Contains(t, logs, "dug trench")

	_, _, err = run(t, "R 2\nD 2\n", "dig")
	require.Error(t, err)
}

func TestBeamCommand(t *testing.T) {
	p := writeInput(t, "beam.txt", ".\\.\n...\n.-/\n")
	out, _, err := run(t, "", "beam", p)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "part 1: 8\n"), out)
}

func TestCrucibleCommand(t *testing.T) {
	p := writeInput(t, "city.txt", "111111111111\n999999999991\n999999999991\n999999999991\n999999999991\n")
	out, logs, err := run(t, "", "--verbose", "crucible", p)
	require.NoError(t, err)
	require.Equal(t, "part 1: 59\npart 2: 71\n", out)
	require.Contains(t, logs, "route found")
}

func TestGardenCommand_ConfigAndFlag(t *testing.T) {
	garden := "...........\n.....###.#.\n.###.##..#.\n..#.#...#..\n....#.#....\n.##..S####.\n.##..#...#.\n.......##..\n.##.#.####.\n.##..##.##.\n...........\n"
	cfg := writeInput(t, "cfg.yaml", "garden:\n  steps: 6\n")

	out, _, err := run(t, garden, "--config", cfg, "garden")
	require.NoError(t, err)
	require.Equal(t, "part 1: 16\n", out)

	out, _, err = run(t, garden, "garden", "-n", "2")
	require.NoError(t, err)
	require.Equal(t, "part 1: 4\n", out)
}

func TestCommandErrors(t *testing.T) {
	_, _, err := run(t, "S-7\n|.\n", "loop")
	require.Error(t, err)

	_, _, err = run(t, "", "beam", filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)

	bad := writeInput(t, "bad.yaml", "crucible:\n  normal:\n    max_run: 0\n")
	_, _, err = run(t, "1\n", "--config", bad, "crucible")
	require.Error(t, err)
}
