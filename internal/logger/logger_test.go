package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2026, 3, 14, 9, 26, 53, 589_000_000, time.Local)
}

func TestFileLogger_LineFormat(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf, nil)
	l.now = fixedClock

	l.Info("Health check: %s - %s", "api", "HEALTHY")

	assert.Equal(t, "[2026-03-14T09:26:53.589] Health check: api - HEALTHY\n", buf.String())
}

func TestFileLogger_AllLevelsWriteSameShape(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf, nil)
	l.now = fixedClock

	l.Info("one")
	l.Warn("two")
	l.Error("three")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	for i, want := range []string{"one", "two", "three"} {
		assert.Equal(t, "[2026-03-14T09:26:53.589] "+want, lines[i])
	}
}

func TestFileLogger_Debug(t *testing.T) {
	tests := []struct {
		name      string
		envValue  string
		expectLog bool
	}{
		{name: "logs when debug env is set", envValue: "1", expectLog: true},
		{name: "does not log when debug env is empty", envValue: "", expectLog: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(DebugEnv, tt.envValue)

			var buf bytes.Buffer
			l := NewWriter(&buf, nil)
			l.Debug("debug %s", "arg")

			if tt.expectLog {
				assert.Contains(t, buf.String(), "debug arg")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestFileLogger_Mirror(t *testing.T) {
	var buf bytes.Buffer
	mirror := NewBufferLogger()
	l := NewWriter(&buf, mirror)

	l.Info("Loaded %d service(s)", 3)
	l.Error("boom")

	msgs := mirror.Snapshot()
	require.Len(t, msgs, 2)
	assert.Equal(t, LogMessage{Level: "info", Message: "Loaded 3 service(s)"}, msgs[0])
	assert.Equal(t, LogMessage{Level: "error", Message: "boom"}, msgs[1])
}

func TestOpenFile_Appends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "panic.log")

	first, err := OpenFile(path, nil)
	require.NoError(t, err)
	first.Info("first")
	require.NoError(t, first.Close())

	second, err := OpenFile(path, nil)
	require.NoError(t, err)
	second.Info("second")
	require.NoError(t, second.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], "] first"))
	assert.True(t, strings.HasSuffix(lines[1], "] second"))
}

func TestFileLogger_CloseTwice(t *testing.T) {
	l, err := OpenFile(filepath.Join(t.TempDir(), "panic.log"), nil)
	require.NoError(t, err)

	assert.NoError(t, l.Close())
	assert.NoError(t, l.Close())
}

func TestFileLogger_WritesAfterCloseOnlyReachMirror(t *testing.T) {
	path := filepath.Join(t.TempDir(), "panic.log")
	mirror := NewBufferLogger()
	l, err := OpenFile(path, mirror)
	require.NoError(t, err)

	l.Info("before close")
	require.NoError(t, l.Close())

	stderr := captureStderr(t, func() {
		l.Info("Health check: api - HEALTHY (200) - 4ms")
		l.Warn("Health check timeout: db")
	})

	assert.Empty(t, stderr)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(string(data)), "] before close"))
	assert.Equal(t, 1, strings.Count(string(data), "\n"))
	assert.True(t, mirror.Contains("Health check: api - HEALTHY (200) - 4ms"))
	assert.True(t, mirror.Contains("Health check timeout: db"))
}

func TestFileLogger_CloseWithoutFileStopsWrites(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf, nil)

	require.NoError(t, l.Close())
	l.Info("dropped")

	assert.Empty(t, buf.String())
}

func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	orig := os.Stderr
	os.Stderr = w
	defer func() { os.Stderr = orig }()

	fn()

	require.NoError(t, w.Close())
	var out bytes.Buffer
	_, err = out.ReadFrom(r)
	require.NoError(t, err)
	return out.String()
}

func TestFileLogger_ConcurrentWritesKeepLinesWhole(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf, nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			l.Info("check %d done", i)
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 50)
	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, "["), line)
		assert.Contains(t, line, "] check ")
	}
}

func TestConsoleLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewConsole(&buf)

	l.Info("info message %d", 42)
	l.Warn("careful")

	out := buf.String()
	assert.Contains(t, out, "info message 42")
	assert.Contains(t, out, "careful")
}

func TestNoopLogger(t *testing.T) {
	l := Noop()
	l.Debug("debug")
	l.Info("info")
	l.Warn("warn")
	l.Error("error")
}

func TestBufferLogger(t *testing.T) {
	l := NewBufferLogger()

	l.Debug("debug %s", "msg")
	l.Info("info %s", "msg")
	l.Warn("warn %s", "msg")
	l.Error("error %s", "msg")

	require.Len(t, l.Messages, 4)
	assert.Equal(t, "debug", l.Messages[0].Level)
	assert.Equal(t, "debug msg", l.Messages[0].Message)
	assert.Equal(t, "error", l.Messages[3].Level)

	assert.True(t, l.HasLevel("warn"))
	assert.True(t, l.Contains("info m"))
	assert.False(t, l.Contains("nope"))

	l.Clear()
	assert.Empty(t, l.Messages)
}

func TestLoggerInterface(t *testing.T) {
	var _ Logger = NewConsole(&bytes.Buffer{})
	var _ Logger = NewWriter(&bytes.Buffer{}, nil)
	var _ Logger = Noop()
	var _ Logger = NewBufferLogger()
}
