package logtail

import (
	"context"
	"time"

	"github.com/core-tools/hsu-sjw/pkg/domain"
	"github.com/core-tools/hsu-sjw/pkg/errors"
	"github.com/core-tools/hsu-sjw/pkg/logging"
	"github.com/core-tools/hsu-sjw/pkg/servicemanager"
)

type Config struct {
	JournalctlPath string        `yaml:"journalctl_path"`
	OpenTimeout    time.Duration `yaml:"open_timeout"`
	Buffer         int           `yaml:"buffer"`
	Poll           bool          `yaml:"poll"` // poll log files instead of inotify
}

func DefaultConfig() Config {
	return Config{
		JournalctlPath: "journalctl",
		OpenTimeout:    5 * time.Second,
		Buffer:         256,
	}
}

func (c Config) withDefaults() Config {
	defaults := DefaultConfig()
	if c.JournalctlPath == "" {
		c.JournalctlPath = defaults.JournalctlPath
	}
	if c.OpenTimeout <= 0 {
		c.OpenTimeout = defaults.OpenTimeout
	}
	if c.Buffer <= 0 {
		c.Buffer = defaults.Buffer
	}
	return c
}

// Streamer streams the log of a unit from since until ctx is done. The
// channel is closed when the stream ends; a stream is not restartable
// without a new since.
type Streamer interface {
	Stream(ctx context.Context, id string, since time.Time) (<-chan domain.LogEntry, error)
}

// Router sends units with a configured log file to the file tailer and
// everything else to journald.
type Router struct {
	catalog *servicemanager.Catalog
	journal *JournalStreamer
	files   *FileStreamer
}

func NewRouter(config Config, catalog *servicemanager.Catalog, logger logging.Logger) *Router {
	config = config.withDefaults()
	return &Router{
		catalog: catalog,
		journal: NewJournalStreamer(config, logger),
		files:   NewFileStreamer(config, logger),
	}
}

func (r *Router) Stream(ctx context.Context, id string, since time.Time) (<-chan domain.LogEntry, error) {
	spec, ok := r.catalog.Resolve(id)
	if !ok {
		return nil, errors.NewNotFoundError("unit not managed", nil).WithContext("unit_id", id)
	}
	if spec.LogFile != "" {
		return r.files.StreamFile(ctx, id, spec.LogFile)
	}
	return r.journal.StreamUnit(ctx, id, spec.Name, since)
}

// openWithTimeout runs open bounded by timeout and ctx. When the caller gives
// up first and open still succeeds later, abandon releases what it opened.
func openWithTimeout(ctx context.Context, timeout time.Duration, open func() error, abandon func()) error {
	done := make(chan error, 1)
	go func() {
		done <- open()
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	var err error
	select {
	case err := <-done:
		return err
	case <-timer.C:
		err = errors.NewTimeoutError("opening log stream", nil).WithContext("timeout", timeout.String())
	case <-ctx.Done():
		err = errors.NewCancelledError("opening log stream", ctx.Err())
	}

	go func() {
		if <-done == nil {
			abandon()
		}
	}()
	return err
}
