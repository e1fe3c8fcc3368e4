package unitwatch

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/core-tools/hsu-sjw/pkg/errors"
	"github.com/core-tools/hsu-sjw/pkg/logging"
	"github.com/core-tools/hsu-sjw/pkg/metrics"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"
	"vawter.tech/stopper"
)

// Unit file suffixes that can change what the service manager lists.
var unitSuffixes = map[string]bool{
	".service": true,
	".socket":  true,
	".timer":   true,
	".target":  true,
	".mount":   true,
	".path":    true,
	".slice":   true,
	".d":       true,
}

type Config struct {
	Dirs        []string
	Debounce    time.Duration
	MinInterval time.Duration
}

type Rescanner interface {
	Rescan()
}

// Watcher turns changes in unit-file directories into coalesced, rate
// limited rescans.
type Watcher struct {
	config    Config
	rescanner Rescanner
	limiter   *rate.Limiter
	logger    logging.Logger
}

func NewWatcher(config Config, rescanner Rescanner, logger logging.Logger) *Watcher {
	if config.Debounce <= 0 {
		config.Debounce = 200 * time.Millisecond
	}
	if config.MinInterval <= 0 {
		config.MinInterval = time.Second
	}
	return &Watcher{
		config:    config,
		rescanner: rescanner,
		limiter:   rate.NewLimiter(rate.Every(config.MinInterval), 1),
		logger:    logger,
	}
}

// Run watches until ctx is done. Missing directories are skipped; with no
// directory to watch Run just waits for ctx.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.NewIOError("failed to create unit directory watcher", err)
	}

	watched := 0
	for _, dir := range w.config.Dirs {
		if _, err := os.Stat(dir); err != nil {
			w.logger.Warnf("Unit directory %s not watched: %v", dir, err)
			continue
		}
		if err := watcher.Add(dir); err != nil {
			_ = watcher.Close()
			return errors.NewIOError("failed to watch unit directory", err).WithContext("dir", dir)
		}
		watched++
	}
	w.logger.Infof("Watching %d unit directories", watched)

	sctx := stopper.WithContext(ctx)
	sctx.Defer(func() {
		_ = watcher.Close()
	})

	sctx.Go(func(sctx *stopper.Context) error {
		return w.loop(ctx, sctx, watcher)
	})

	<-ctx.Done()
	sctx.Stop(100 * time.Millisecond)
	return sctx.Wait()
}

func (w *Watcher) loop(ctx context.Context, sctx *stopper.Context, watcher *fsnotify.Watcher) error {
	debounce := time.NewTimer(w.config.Debounce)
	if !debounce.Stop() {
		<-debounce.C
	}
	defer debounce.Stop()
	armed := false

	for !sctx.IsStopping() {
		select {
		case <-sctx.Stopping():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}
			w.logger.Debugf("Unit directory change: %s %s", event.Op, event.Name)
			if armed && !debounce.Stop() {
				<-debounce.C
			}
			debounce.Reset(w.config.Debounce)
			armed = true

		case <-debounce.C:
			armed = false
			if !w.limiter.Allow() {
				metrics.RecordRescan("delayed")
				if err := w.limiter.Wait(ctx); err != nil {
					return nil
				}
			}
			metrics.RecordRescan("requested")
			w.rescanner.Rescan()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warnf("Unit directory watcher error: %v", err)
		}
	}
	return nil
}

func relevant(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	return unitSuffixes[filepath.Ext(event.Name)]
}
