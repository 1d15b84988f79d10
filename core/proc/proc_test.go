package proc

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shPath(t *testing.T) string {
	t.Helper()

	path, err := exec.LookPath("sh")
	require.NoError(t, err, "sh is required for proc tests")
	return path
}

func sleepPath(t *testing.T) string {
	t.Helper()

	path, err := exec.LookPath("sleep")
	require.NoError(t, err, "sleep is required for proc tests")
	return path
}

func TestSpawnInvalidConfig(t *testing.T) {
	cases := []struct {
		name string
		cfg  SpawnConfig
	}{
		{"empty", SpawnConfig{}},
		{"no argv", SpawnConfig{Path: "/bin/sh"}},
		{"no path", SpawnConfig{Argv: []string{"sh"}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Spawn(tc.cfg)
			assert.ErrorIs(t, err, os.ErrInvalid)
		})
	}
}

func TestSpawnMissingProgram(t *testing.T) {
	_, err := Spawn(SpawnConfig{
		Path: "/definitely/not/a/real/program",
		Argv: []string{"nope"},
	})
	assert.Error(t, err)
}

func TestWaitExitCodes(t *testing.T) {
	cases := []struct {
		script string
		code   int
	}{
		{"exit 0", 0},
		{"exit 1", 1},
		{"exit 7", 7},
	}

	for _, tc := range cases {
		t.Run(tc.script, func(t *testing.T) {
			h, err := Spawn(SpawnConfig{
				Path:                shPath(t),
				Argv:                []string{"sh", "-c", tc.script},
				ForegroundInterrupt: true,
			})
			require.NoError(t, err)

			outcome, err := h.Wait()
			require.NoError(t, err)
			assert.Equal(t, Exited, outcome.State)
			assert.Equal(t, tc.code, outcome.Code)
		})
	}
}

func TestWaitSignaled(t *testing.T) {
	h, err := Spawn(SpawnConfig{
		Path: shPath(t),
		Argv: []string{"sh", "-c", "kill -9 $$"},
	})
	require.NoError(t, err)

	outcome, err := h.Wait()
	require.NoError(t, err)
	assert.Equal(t, Signaled, outcome.State)
	assert.Equal(t, syscall.SIGKILL, outcome.Signal)
	assert.Equal(t, "signal: killed", outcome.String())
}

func TestArgvPassedVerbatim(t *testing.T) {
	var stdout bytes.Buffer
	h, err := Spawn(SpawnConfig{
		Path:   shPath(t),
		Argv:   []string{"sh", "-c", `echo "$0:$1:$2"`, "zero", "one", "two"},
		Stdout: &stdout,
	})
	require.NoError(t, err)

	outcome, err := h.Wait()
	require.NoError(t, err)
	assert.Equal(t, Exited, outcome.State)
	assert.Equal(t, 0, outcome.Code)
	assert.Equal(t, "zero:one:two\n", stdout.String())
}

func TestSpawnDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "marker"), []byte("x"), 0600))

	t.Run("set", func(t *testing.T) {
		h, err := Spawn(SpawnConfig{
			Path: shPath(t),
			Argv: []string{"sh", "-c", "test -f marker"},
			Dir:  dir,
		})
		require.NoError(t, err)

		outcome, err := h.Wait()
		require.NoError(t, err)
		assert.Equal(t, 0, outcome.Code)
	})

	t.Run("inherited", func(t *testing.T) {
		h, err := Spawn(SpawnConfig{
			Path: shPath(t),
			Argv: []string{"sh", "-c", "test -f marker"},
		})
		require.NoError(t, err)

		outcome, err := h.Wait()
		require.NoError(t, err)
		assert.NotEqual(t, 0, outcome.Code)
	})
}

func TestWaitIgnoresStopped(t *testing.T) {
	h, err := Spawn(SpawnConfig{
		Path: sleepPath(t),
		Argv: []string{"sleep", "30"},
	})
	require.NoError(t, err)

	waited := make(chan Outcome, 1)
	go func() {
		outcome, err := h.Wait()
		if err == nil {
			waited <- outcome
		}
	}()

	// A stopped child is not terminal, so Wait must keep blocking.
	require.NoError(t, syscall.Kill(h.PID(), syscall.SIGSTOP))
	select {
	case outcome := <-waited:
		t.Fatalf("Wait returned %v for a stopped child", outcome)
	case <-time.After(200 * time.Millisecond):
	}

	require.NoError(t, syscall.Kill(h.PID(), syscall.SIGKILL))
	select {
	case outcome := <-waited:
		assert.Equal(t, Signaled, outcome.State)
		assert.Equal(t, syscall.SIGKILL, outcome.Signal)
	case <-time.After(5 * time.Second):
		t.Fatal("Wait did not return after SIGKILL")
	}
}

func TestOutcomeString(t *testing.T) {
	cases := []struct {
		outcome  Outcome
		expected string
	}{
		{Outcome{State: Exited, Code: 0}, "exit status 0"},
		{Outcome{State: Exited, Code: 42}, "exit status 42"},
		{Outcome{State: Signaled, Signal: syscall.SIGINT}, "signal: interrupt"},
	}

	for _, tc := range cases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.outcome.String())
		})
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "exited", Exited.String())
	assert.Equal(t, "signaled", Signaled.String())
	assert.Equal(t, "state(99)", State(99).String())
}
