package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

// silenceExit keeps cli.Exit from terminating the test process.
func silenceExit(t *testing.T) {
	t.Helper()
	prev := cli.OsExiter
	cli.OsExiter = func(int) {}
	t.Cleanup(func() { cli.OsExiter = prev })
}

func writeTemp(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCheckCommand(t *testing.T) {
	silenceExit(t)
	content := "今天是星期天，天气晴，今天晚上我要去看电影。"

	t.Run("writes the score for a valid pair", func(t *testing.T) {
		dir := t.TempDir()
		orig := writeTemp(t, dir, "orig.txt", content)
		cand := writeTemp(t, dir, "cand.txt", content)
		out := filepath.Join(dir, "ans.txt")

		err := newApp().Run([]string{"papercheck", orig, cand, out})
		require.NoError(t, err)

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Equal(t, "1.00", string(data))
	})

	t.Run("rejects wrong argument count", func(t *testing.T) {
		err := newApp().Run([]string{"papercheck", "only-one.txt"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "three arguments")
	})

	t.Run("missing input is a file error with fallback output", func(t *testing.T) {
		dir := t.TempDir()
		cand := writeTemp(t, dir, "cand.txt", content)
		out := filepath.Join(dir, "ans.txt")

		err := newApp().Run([]string{"papercheck", filepath.Join(dir, "missing.txt"), cand, out})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "file error")

		data, readErr := os.ReadFile(out)
		require.NoError(t, readErr)
		assert.Equal(t, "0.00", string(data))
	})

	t.Run("rejects invalid log level", func(t *testing.T) {
		err := newApp().Run([]string{"papercheck", "--log-level", "loud", "a", "b", "c"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}

func TestBatchCommand(t *testing.T) {
	silenceExit(t)
	content := "今天是星期天，天气晴，今天晚上我要去看电影。"

	t.Run("writes one answer file per candidate", func(t *testing.T) {
		dir := t.TempDir()
		outDir := filepath.Join(dir, "answers")
		orig := writeTemp(t, dir, "orig.txt", content)
		candA := writeTemp(t, dir, "a.txt", content)
		candB := writeTemp(t, dir, "b.txt", "明天是星期一，天气雨，我打算在家休息。")

		err := newApp().Run([]string{"papercheck", "batch", orig, outDir, candA, candB})
		require.NoError(t, err)

		dataA, err := os.ReadFile(filepath.Join(outDir, "a.ans.txt"))
		require.NoError(t, err)
		assert.Equal(t, "1.00", string(dataA))

		_, err = os.Stat(filepath.Join(outDir, "b.ans.txt"))
		assert.NoError(t, err)
	})

	t.Run("requires an original, output directory, and candidates", func(t *testing.T) {
		err := newApp().Run([]string{"papercheck", "batch", "orig.txt"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least one candidate")
	})
}
