package logtail

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"time"

	"github.com/core-tools/hsu-sjw/pkg/domain"
	"github.com/core-tools/hsu-sjw/pkg/errors"
	"github.com/core-tools/hsu-sjw/pkg/logging"
	"github.com/core-tools/hsu-sjw/pkg/metrics"
)

const (
	backendJournal = "journal"

	// syslog "info"
	defaultPriority = 6

	maxLineSize = 1024 * 1024
)

// JournalStreamer follows journald through journalctl's JSON output.
type JournalStreamer struct {
	config Config
	logger logging.Logger
}

func NewJournalStreamer(config Config, logger logging.Logger) *JournalStreamer {
	return &JournalStreamer{
		config: config.withDefaults(),
		logger: logger,
	}
}

func (j *JournalStreamer) args(unitName string, since time.Time) []string {
	args := []string{"-u", unitName, "-f", "-o", "json", "--no-pager"}
	if !since.IsZero() {
		args = append(args, "--since", fmt.Sprintf("@%d", since.Unix()))
	}
	return args
}

func (j *JournalStreamer) StreamUnit(ctx context.Context, id, unitName string, since time.Time) (<-chan domain.LogEntry, error) {
	streamCtx, cancel := context.WithCancel(ctx)

	cmd := exec.CommandContext(streamCtx, j.config.JournalctlPath, j.args(unitName, since)...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		cancel()
		return nil, errors.NewIOError("failed to create journalctl pipe", err)
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	reap := func() {
		_ = cmd.Wait()
	}
	if err := openWithTimeout(ctx, j.config.OpenTimeout, cmd.Start, reap); err != nil {
		// Kills a late starting journalctl; reap collects it
		cancel()
		if errors.TypeOf(err) == "" {
			err = errors.NewIOError("failed to start journalctl", err).WithContext("path", j.config.JournalctlPath)
		}
		return nil, err
	}

	j.logger.Debugf("Streaming journal of %s (%s) since %v, pid: %d", id, unitName, since, cmd.Process.Pid)
	metrics.AddLogStreams(backendJournal, 1)

	out := make(chan domain.LogEntry, j.config.Buffer)
	go func() {
		defer close(out)
		defer metrics.AddLogStreams(backendJournal, -1)
		defer cancel()

		scanner := bufio.NewScanner(stdout)
		scanner.Buffer(make([]byte, 64*1024), maxLineSize)
		for scanner.Scan() {
			entry, err := parseJournalLine(id, scanner.Bytes())
			if err != nil {
				j.logger.Debugf("Skipping journal line of %s: %v", id, err)
				continue
			}
			select {
			case out <- entry:
			case <-streamCtx.Done():
				_ = cmd.Wait()
				return
			}
		}

		if err := cmd.Wait(); err != nil && streamCtx.Err() == nil {
			j.logger.Warnf("journalctl for %s exited: %v, stderr: %s", id, err, bytes.TrimSpace(stderr.Bytes()))
		}
	}()

	return out, nil
}

type journalRecord struct {
	RealtimeTimestamp string          `json:"__REALTIME_TIMESTAMP"`
	Cursor            string          `json:"__CURSOR"`
	Priority          string          `json:"PRIORITY"`
	Message           json.RawMessage `json:"MESSAGE"`
}

// parseJournalLine decodes one line of journalctl -o json output.
func parseJournalLine(id string, line []byte) (domain.LogEntry, error) {
	var record journalRecord
	if err := json.Unmarshal(line, &record); err != nil {
		return domain.LogEntry{}, err
	}

	entry := domain.LogEntry{
		UnitID:   id,
		Cursor:   record.Cursor,
		Priority: defaultPriority,
		Message:  decodeMessage(record.Message),
	}

	if record.RealtimeTimestamp != "" {
		micros, err := strconv.ParseInt(record.RealtimeTimestamp, 10, 64)
		if err != nil {
			return domain.LogEntry{}, fmt.Errorf("invalid __REALTIME_TIMESTAMP %q: %w", record.RealtimeTimestamp, err)
		}
		entry.Timestamp = time.UnixMicro(micros).UTC()
	}
	if record.Priority != "" {
		if priority, err := strconv.Atoi(record.Priority); err == nil {
			entry.Priority = priority
		}
	}
	return entry, nil
}

// decodeMessage handles both string messages and the byte array form
// journalctl uses for non-UTF-8 payloads.
func decodeMessage(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return text
	}
	var ints []int
	if err := json.Unmarshal(raw, &ints); err == nil {
		data := make([]byte, 0, len(ints))
		for _, b := range ints {
			data = append(data, byte(b))
		}
		return string(data)
	}
	return string(raw)
}
