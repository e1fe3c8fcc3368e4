package logtail

import (
	"context"
	"io"

	"github.com/core-tools/hsu-sjw/pkg/domain"
	"github.com/core-tools/hsu-sjw/pkg/errors"
	"github.com/core-tools/hsu-sjw/pkg/logging"
	"github.com/core-tools/hsu-sjw/pkg/metrics"

	"github.com/hpcloud/tail"
)

const backendFile = "file"

// FileStreamer follows a plain log file from its current end.
type FileStreamer struct {
	config Config
	logger logging.Logger
}

func NewFileStreamer(config Config, logger logging.Logger) *FileStreamer {
	return &FileStreamer{
		config: config.withDefaults(),
		logger: logger,
	}
}

func (f *FileStreamer) StreamFile(ctx context.Context, id, path string) (<-chan domain.LogEntry, error) {
	var tailer *tail.Tail
	open := func() error {
		var err error
		tailer, err = tail.TailFile(path, tail.Config{
			Follow:    true,
			ReOpen:    true,
			MustExist: false,
			Poll:      f.config.Poll,
			Location:  &tail.SeekInfo{Offset: 0, Whence: io.SeekEnd},
			Logger:    tail.DiscardingLogger,
		})
		return err
	}
	release := func() {
		_ = tailer.Stop()
		tailer.Cleanup()
	}
	if err := openWithTimeout(ctx, f.config.OpenTimeout, open, release); err != nil {
		if errors.TypeOf(err) == "" {
			err = errors.NewIOError("failed to tail log file", err).WithContext("path", path)
		}
		return nil, err
	}

	f.logger.Debugf("Tailing %s for unit %s", path, id)
	metrics.AddLogStreams(backendFile, 1)

	out := make(chan domain.LogEntry, f.config.Buffer)
	go func() {
		defer close(out)
		defer metrics.AddLogStreams(backendFile, -1)
		defer tailer.Cleanup()
		defer func() {
			_ = tailer.Stop()
		}()

		for {
			select {
			case line, ok := <-tailer.Lines:
				if !ok {
					return
				}
				if line.Err != nil {
					f.logger.Warnf("Tail of %s: %v", path, line.Err)
					continue
				}
				entry := domain.LogEntry{
					UnitID:    id,
					Timestamp: line.Time,
					Priority:  defaultPriority,
					Message:   line.Text,
				}
				select {
				case out <- entry:
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}
