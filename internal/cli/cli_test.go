package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mwis/instance"
)

// run executes the CLI with args and returns its output and log streams.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

// solveYAML runs solve with args and decodes the report.
func solveYAML(t *testing.T, args ...string) solveReport {
	t.Helper()
	out, _, err := run(t, append([]string{"solve"}, args...)...)
	require.NoError(t, err)
	var rep solveReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &rep))
	return rep
}

// pathInstance writes a 5-vertex path with weights 1,2,4,8,16.
func pathInstance(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "path.yaml")
	_, _, err := run(t, "gen", "path", "-n", "5", "--weights", "geometric", "--min-weight", "1", "--ratio", "2", "-o", path)
	require.NoError(t, err)
	return path
}

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("test") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("test") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("test") }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			assert.Equal(t, tt.wantLog, buf.Len() > 0)
		})
	}
}

func TestLoggerFromContext(t *testing.T) {
	assert.Same(t, log.Default(), loggerFromContext(context.Background()))

	l := newLogger(&bytes.Buffer{}, log.InfoLevel)
	assert.Same(t, l, loggerFromContext(withLogger(context.Background(), l)))
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	newProgress(newLogger(&buf, log.InfoLevel)).done("Solved demo", "size", 3)
	assert.Contains(t, buf.String(), "Solved demo (")
	assert.Contains(t, buf.String(), "size=3")
}

func TestGen_WritesInstance(t *testing.T) {
	path := pathInstance(t)
	in, err := instance.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "path", in.Name)
	assert.Equal(t, []float64{1, 2, 4, 8, 16}, in.Weights)
	assert.Equal(t, [][]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}}, in.Edges)
}

func TestGen_Compressed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.yaml"+instance.CompressedSuffix)
	_, _, err := run(t, "gen", "grid", "--rows", "2", "--cols", "3", "--name", "tiny", "-o", path)
	require.NoError(t, err)

	g, in, err := instance.LoadGraph(path)
	require.NoError(t, err)
	assert.Equal(t, "tiny", in.Name)
	assert.Equal(t, 6, g.Order())
	assert.Equal(t, 7, g.Size())
	for _, w := range in.Weights {
		assert.GreaterOrEqual(t, w, 1.0)
		assert.Less(t, w, 10.0)
	}
}

func TestGen_Errors(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "x.yaml")

	_, _, err := run(t, "gen", "hypercube", "-o", out)
	require.ErrorContains(t, err, `unknown kind "hypercube"`)

	_, _, err = run(t, "gen", "path", "--weights", "zipf", "-o", out)
	require.ErrorContains(t, err, "unknown weight distribution")

	_, _, err = run(t, "gen", "path", "--min-weight", "5", "--max-weight", "1", "-o", out)
	require.ErrorContains(t, err, "min-weight")

	_, _, err = run(t, "gen", "random", "-p", "1.5", "-o", out)
	require.Error(t, err)

	_, _, err = run(t, "gen", "path")
	require.ErrorContains(t, err, "output")

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestSolve_LocalReport(t *testing.T) {
	rep := solveYAML(t, pathInstance(t))

	_, err := uuid.Parse(rep.RunID)
	require.NoError(t, err)
	assert.Equal(t, "path", rep.Instance)
	assert.Equal(t, "local", rep.Algorithm)
	assert.Equal(t, 5, rep.Vertices)
	assert.Equal(t, 4, rep.Edges)
	assert.Equal(t, []int{0, 2, 4}, rep.Set)
	assert.Equal(t, 3, rep.Size)
	assert.Equal(t, 21.0, rep.Weight)
	assert.True(t, rep.Converged)
	assert.Equal(t, 3, rep.Rounds)
	assert.Empty(t, rep.Remaining)
	assert.Nil(t, rep.Params)
	assert.NotEmpty(t, rep.Elapsed)
}

func TestSolve_MaxRoundsLeavesRemaining(t *testing.T) {
	rep := solveYAML(t, "--max-rounds", "1", pathInstance(t))
	assert.False(t, rep.Converged)
	assert.Equal(t, 1, rep.Rounds)
	assert.Equal(t, []int{4}, rep.Set)
	assert.Equal(t, []int{0, 1, 2}, rep.Remaining)
}

func TestSolve_RelaxedParams(t *testing.T) {
	rep := solveYAML(t, "--algo", "Relaxed", "--epsilon", "0.3", pathInstance(t))
	assert.Equal(t, "relaxed", rep.Algorithm)
	require.NotNil(t, rep.Params)
	assert.Equal(t, 0.3, rep.Params.Epsilon)
	assert.InDelta(t, 1.1, rep.Params.Alpha, 1e-12)
	assert.InDelta(t, 10.0, rep.Params.Beta, 1e-12)
}

func TestSolve_ConfigAndOverride(t *testing.T) {
	inst := pathInstance(t)
	cfgPath := filepath.Join(t.TempDir(), "solver.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("algorithm = \"greedy\"\n\n[anneal]\nsteps = 16\n"), 0o644))

	rep := solveYAML(t, "--config", cfgPath, inst)
	assert.Equal(t, "greedy", rep.Algorithm)
	assert.Equal(t, []int{0, 2, 4}, rep.Set)

	rep = solveYAML(t, "--config", cfgPath, "--algo", "anneal", "--seed", "3", inst)
	assert.Equal(t, "anneal", rep.Algorithm)
	assert.Equal(t, 16, rep.Rounds)
	require.NotNil(t, rep.Params)
	assert.Equal(t, 5.0, rep.Params.Penalty)
}

func TestSolve_Errors(t *testing.T) {
	inst := pathInstance(t)

	_, _, err := run(t, "solve", "--algo", "quantum", inst)
	require.Error(t, err)

	_, _, err = run(t, "solve", "--algo", "relaxed", "--epsilon", "1.5", inst)
	require.Error(t, err)

	_, _, err = run(t, "solve", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("colour = \"blue\"\n"), 0o644))
	_, _, err = run(t, "solve", "--config", bad, inst)
	require.ErrorContains(t, err, "unknown keys")
}

func TestSolve_Metrics(t *testing.T) {
	inst := pathInstance(t)
	file := filepath.Join(t.TempDir(), "metrics.prom")

	_, _, err := run(t, "solve", "--metrics", file, inst)
	require.NoError(t, err)
	body, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(body), `mwis_solver_runs_total{algorithm="local"} 1`)
	assert.Contains(t, string(body), `mwis_solver_set_weight{algorithm="local"} 21`)

	_, errOut, err := run(t, "solve", "--metrics", "-", inst)
	require.NoError(t, err)
	assert.Contains(t, errOut, "mwis_solver_messages_total")
}

func TestSolve_VerboseLogs(t *testing.T) {
	_, errOut, err := run(t, "-v", "solve", pathInstance(t))
	require.NoError(t, err)
	assert.Contains(t, errOut, "Loaded instance")
	assert.Contains(t, errOut, "Solved path")
}

func TestBench_Table(t *testing.T) {
	out, _, err := run(t, "bench", "--trials", "3", "--seed", "9", pathInstance(t))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "ALGORITHM")
	assert.Contains(t, lines[0], "STDDEV")
	for i, name := range []string{"local", "relaxed", "anneal", "greedy"} {
		assert.Equal(t, name, strings.Fields(lines[i+1])[0])
	}
	assert.Equal(t, "3", strings.Fields(lines[3])[1])
	assert.Contains(t, lines[1], "21.0000")
}

func TestBench_RejectsTrials(t *testing.T) {
	_, _, err := run(t, "bench", "--trials", "0", pathInstance(t))
	require.ErrorContains(t, err, "trials")
}
