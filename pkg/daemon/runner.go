package daemon

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	coreLogging "github.com/core-tools/hsu-core/pkg/logging"
	"github.com/core-tools/hsu-sjw/pkg/errors"
	"github.com/core-tools/hsu-sjw/pkg/logging"
)

// Run starts the daemon from an already loaded configuration and blocks until
// a termination signal arrives or runDuration (seconds, 0 = forever) passes.
func Run(runDuration int, config *DaemonConfig, coreLogger coreLogging.Logger, daemonLogger logging.Logger) error {
	daemonLogger.Infof("Daemon runner starting...")

	ctx := context.Background()
	if runDuration > 0 {
		duration := time.Duration(runDuration) * time.Second
		daemonLogger.Infof("Using RUN DURATION of %v", duration)
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, duration)
		defer cancel()
	}

	daemonLogger.Infof("Daemon port: %d, backend: %s, units: %d, patterns: %d",
		config.Server.Port, config.ServiceManager.Backend, len(config.Units), len(config.UnitPatterns))

	daemon, err := NewDaemon(ctx, config, DaemonOptions{}, coreLogger, daemonLogger)
	if err != nil {
		return errors.NewInternalError("failed to create daemon", err)
	}

	if err := daemon.Start(ctx); err != nil {
		return errors.NewInternalError("failed to start daemon", err)
	}

	daemonLogger.Infof("Enabling signal handling...")

	sig := make(chan os.Signal, 1)
	if runtime.GOOS == "windows" {
		signal.Notify(sig) // Unix signals not implemented on Windows
	} else {
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	}
	defer signal.Stop(sig)

	daemonLogger.Infof("Daemon is fully operational")

	select {
	case receivedSignal := <-sig:
		daemonLogger.Infof("Daemon runner received signal: %v", receivedSignal)
	case <-ctx.Done():
		daemonLogger.Infof("Daemon runner timed out")
	}

	// Reset context to background to enable graceful shutdown
	daemon.Stop(context.Background())

	daemonLogger.Infof("Daemon runner stopped")

	return nil
}
