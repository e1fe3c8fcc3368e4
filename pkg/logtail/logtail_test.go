package logtail

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/core-tools/hsu-sjw/pkg/domain"
	"github.com/core-tools/hsu-sjw/pkg/errors"
	"github.com/core-tools/hsu-sjw/pkg/logging"
	"github.com/core-tools/hsu-sjw/pkg/servicemanager"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJournalLine(t *testing.T) {
	line := `{"__CURSOR":"s=abc;i=1","__REALTIME_TIMESTAMP":"1700000000123456","PRIORITY":"3","MESSAGE":"worker crashed","_SYSTEMD_UNIT":"app.service"}`

	entry, err := parseJournalLine("app", []byte(line))
	require.NoError(t, err)
	assert.Equal(t, "app", entry.UnitID)
	assert.Equal(t, "s=abc;i=1", entry.Cursor)
	assert.Equal(t, 3, entry.Priority)
	assert.Equal(t, "worker crashed", entry.Message)
	assert.Equal(t, time.UnixMicro(1700000000123456).UTC(), entry.Timestamp)
}

func TestParseJournalLine_BinaryMessageAndDefaults(t *testing.T) {
	entry, err := parseJournalLine("app", []byte(`{"MESSAGE":[104,105]}`))
	require.NoError(t, err)
	assert.Equal(t, "hi", entry.Message)
	assert.Equal(t, defaultPriority, entry.Priority)
	assert.True(t, entry.Timestamp.IsZero())

	_, err = parseJournalLine("app", []byte(`not json`))
	assert.Error(t, err)

	_, err = parseJournalLine("app", []byte(`{"__REALTIME_TIMESTAMP":"soon"}`))
	assert.Error(t, err)
}

func TestJournalStreamer_Args(t *testing.T) {
	j := NewJournalStreamer(Config{}, logging.NewNopLogger())
	since := time.Unix(1700000000, 0)

	assert.Equal(t,
		[]string{"-u", "nginx.service", "-f", "-o", "json", "--no-pager", "--since", "@1700000000"},
		j.args("nginx.service", since))
	assert.NotContains(t, j.args("nginx.service", time.Time{}), "--since")
}

func writeFakeJournalctl(t *testing.T) (path string, argsFile string) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script stub requires a POSIX shell")
	}
	dir := t.TempDir()
	argsFile = filepath.Join(dir, "args")
	path = filepath.Join(dir, "journalctl")
	script := fmt.Sprintf(`#!/bin/sh
echo "$@" > %s
echo '{"__CURSOR":"c1","__REALTIME_TIMESTAMP":"1700000000000000","PRIORITY":"6","MESSAGE":"started"}'
echo 'garbage'
echo '{"__CURSOR":"c2","__REALTIME_TIMESTAMP":"1700000001000000","PRIORITY":"4","MESSAGE":"warming up"}'
exec sleep 30
`, argsFile)
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path, argsFile
}

func TestJournalStreamer_Stream(t *testing.T) {
	path, argsFile := writeFakeJournalctl(t)
	j := NewJournalStreamer(Config{JournalctlPath: path, OpenTimeout: 5 * time.Second}, logging.NewNopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	entries, err := j.StreamUnit(ctx, "web", "nginx.service", time.Unix(1700000000, 0))
	require.NoError(t, err)

	first := <-entries
	second := <-entries
	assert.Equal(t, "started", first.Message)
	assert.Equal(t, "c2", second.Cursor)
	assert.Equal(t, 4, second.Priority)
	assert.Equal(t, "web", second.UnitID)

	cancel()
	for range entries {
	}

	args, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	assert.Equal(t, "-u nginx.service -f -o json --no-pager --since @1700000000", strings.TrimSpace(string(args)))
}

func TestJournalStreamer_MissingBinary(t *testing.T) {
	j := NewJournalStreamer(Config{JournalctlPath: filepath.Join(t.TempDir(), "missing")}, logging.NewNopLogger())

	_, err := j.StreamUnit(context.Background(), "web", "nginx.service", time.Now())
	require.Error(t, err)
	assert.True(t, errors.IsIOError(err))
}

func TestFileStreamer_FollowsFromEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, os.WriteFile(path, []byte("old line\n"), 0o644))

	f := NewFileStreamer(Config{Poll: true}, logging.NewNopLogger())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	entries, err := f.StreamFile(ctx, "app", path)
	require.NoError(t, err)

	file, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	defer file.Close()

	var entry domain.LogEntry
	deadline := time.After(10 * time.Second)
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	for n := 0; entry.Message == ""; n++ {
		select {
		case entry = <-entries:
		case <-ticker.C:
			_, err := fmt.Fprintf(file, "new line %d\n", n)
			require.NoError(t, err)
		case <-deadline:
			t.Fatal("no line tailed")
		}
	}

	assert.True(t, strings.HasPrefix(entry.Message, "new line"), entry.Message)
	assert.Equal(t, "app", entry.UnitID)

	cancel()
	for range entries {
	}
}

func TestRouter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	catalog, err := servicemanager.NewCatalog([]servicemanager.UnitSpec{
		{ID: "app", Name: "app.service", LogFile: path},
	}, nil)
	require.NoError(t, err)

	router := NewRouter(Config{Poll: true}, catalog, logging.NewNopLogger())

	_, err = router.Stream(context.Background(), "missing", time.Now())
	assert.True(t, errors.IsNotFoundError(err))

	ctx, cancel := context.WithCancel(context.Background())
	entries, err := router.Stream(ctx, "app", time.Now())
	require.NoError(t, err)
	cancel()
	for range entries {
	}
}

func TestOpenWithTimeout(t *testing.T) {
	block := make(chan struct{})
	abandoned := make(chan struct{})

	err := openWithTimeout(context.Background(), 10*time.Millisecond, func() error {
		<-block
		return nil
	}, func() { close(abandoned) })
	assert.True(t, errors.IsTimeoutError(err))

	// The late open is released once it completes
	close(block)
	select {
	case <-abandoned:
	case <-time.After(5 * time.Second):
		t.Fatal("late open was not released")
	}

	err = openWithTimeout(context.Background(), time.Second, func() error { return nil }, func() {
		t.Error("successful open must not be released")
	})
	assert.NoError(t, err)
}

func TestOpenWithTimeout_LateFailureIsNotReleased(t *testing.T) {
	block := make(chan struct{})
	finished := make(chan struct{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := openWithTimeout(ctx, time.Second, func() error {
		defer close(finished)
		<-block
		return fmt.Errorf("open failed")
	}, func() {
		t.Error("failed open must not be released")
	})
	assert.True(t, errors.IsCancelledError(err))

	close(block)
	<-finished
	time.Sleep(10 * time.Millisecond)
}
