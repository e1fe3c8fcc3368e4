package daemon

import (
	"context"
	stderrors "errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	corecontrol "github.com/core-tools/hsu-core/pkg/control"
	coredomain "github.com/core-tools/hsu-core/pkg/domain"
	corelogging "github.com/core-tools/hsu-core/pkg/logging"
	"github.com/core-tools/hsu-sjw/pkg/control"
	"github.com/core-tools/hsu-sjw/pkg/detector"
	"github.com/core-tools/hsu-sjw/pkg/dispatcher"
	"github.com/core-tools/hsu-sjw/pkg/distributor"
	"github.com/core-tools/hsu-sjw/pkg/domain"
	"github.com/core-tools/hsu-sjw/pkg/errors"
	"github.com/core-tools/hsu-sjw/pkg/logging"
	"github.com/core-tools/hsu-sjw/pkg/logtail"
	"github.com/core-tools/hsu-sjw/pkg/metrics"
	"github.com/core-tools/hsu-sjw/pkg/registry"
	"github.com/core-tools/hsu-sjw/pkg/servicemanager"
	"github.com/core-tools/hsu-sjw/pkg/servicemanager/memory"
	"github.com/core-tools/hsu-sjw/pkg/servicemanager/systemd"
	"github.com/core-tools/hsu-sjw/pkg/unitwatch"

	"github.com/juju/clock"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// DaemonState represents the current state of the daemon
type DaemonState string

const (
	// DaemonStateNotStarted is the initial state before Start() is called
	DaemonStateNotStarted DaemonState = "not_started"

	// DaemonStateRunning means the daemon serves clients and observes units
	DaemonStateRunning DaemonState = "running"

	// DaemonStateStopping means the daemon is shutting down
	DaemonStateStopping DaemonState = "stopping"

	// DaemonStateStopped means the daemon has stopped
	DaemonStateStopped DaemonState = "stopped"
)

const unitServiceName = "sjw.UnitService"

type DaemonOptions struct {
	// Adapter replaces the adapter selected by service_manager.backend.
	Adapter servicemanager.Adapter
	Clock   clock.Clock
}

type Daemon struct {
	config      *DaemonConfig
	server      corecontrol.Server
	health      *health.Server
	adapter     servicemanager.Adapter
	registry    *registry.Registry
	detector    *detector.Detector
	distributor *distributor.Distributor
	dispatcher  *dispatcher.Dispatcher
	handler     *UnitHandler
	watcher     *unitwatch.Watcher
	metrics     *http.Server
	tracing     *tracing
	logger      logging.Logger

	state  DaemonState
	cancel context.CancelFunc
	group  *errgroup.Group
	mutex  sync.Mutex
}

func NewDaemon(ctx context.Context, config *DaemonConfig, options DaemonOptions, coreLogger corelogging.Logger, logger logging.Logger) (*Daemon, error) {
	if err := ValidateConfig(config); err != nil {
		return nil, err
	}

	catalog, err := servicemanager.NewCatalog(config.Units, config.UnitPatterns)
	if err != nil {
		return nil, err
	}

	clk := options.Clock
	if clk == nil {
		clk = clock.WallClock
	}

	d := &Daemon{
		config:      config,
		registry:    registry.NewRegistry(),
		distributor: distributor.NewDistributor(config.Distributor, logging.NewChildLogger(logger, "distributor: ")),
		logger:      logger,
		state:       DaemonStateNotStarted,
	}

	if config.Tracing.Enabled {
		d.tracing, err = startTracing(config.Tracing)
		if err != nil {
			return nil, errors.NewInternalError("failed to start tracing", err)
		}
	}

	d.adapter = options.Adapter
	if d.adapter == nil {
		d.adapter, err = d.createAdapter(ctx, catalog, clk)
		if err != nil {
			d.shutdownTracing(context.Background())
			return nil, err
		}
	}

	d.detector = detector.NewDetector(config.Detector.Config, d.adapter, d.registry, d.distributor, clk,
		logging.NewChildLogger(logger, "detector: "))
	d.dispatcher = dispatcher.NewDispatcher(config.Dispatcher, d.registry, d.adapter, d.detector,
		dispatcher.Options{Clock: clk}, logging.NewChildLogger(logger, "dispatcher: "))
	d.handler = NewUnitHandler(d.registry, d.dispatcher, d.distributor,
		logtail.NewRouter(config.LogTail, catalog, logging.NewChildLogger(logger, "logtail: ")), logger)

	if *config.ServiceManager.WatchSignals && len(config.ServiceManager.UnitDirs) > 0 {
		d.watcher = unitwatch.NewWatcher(unitwatch.Config{Dirs: config.ServiceManager.UnitDirs}, d.detector,
			logging.NewChildLogger(logger, "unitwatch: "))
	}

	if config.Metrics.Enabled {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		d.metrics = &http.Server{
			Addr:              config.Metrics.Address,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
	}

	// Create gRPC server
	serverOptions := corecontrol.ServerOptions{
		Port: config.Server.Port,
	}
	d.server, err = corecontrol.NewServer(serverOptions, coreLogger)
	if err != nil {
		_ = d.adapter.Close()
		d.shutdownTracing(context.Background())
		return nil, errors.NewInternalError("failed to create server", err).WithContext("port", config.Server.Port)
	}

	// Register core services
	coreHandler := coredomain.NewDefaultHandler(coreLogger)
	corecontrol.RegisterGRPCServerHandler(d.server.GRPC(), coreHandler, coreLogger)

	// Register business logic services
	control.RegisterGRPCServerHandler(d.server.GRPC(), d.handler, logging.NewChildLogger(logger, "control: "))

	d.health = health.NewServer()
	healthpb.RegisterHealthServer(d.server.GRPC(), d.health)
	d.health.SetServingStatus(unitServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	return d, nil
}

func (d *Daemon) createAdapter(ctx context.Context, catalog *servicemanager.Catalog, clk clock.Clock) (servicemanager.Adapter, error) {
	config := d.config.ServiceManager
	switch config.Backend {
	case BackendMemory:
		d.logger.Infof("Using in-memory service manager with %d units", len(catalog.Configured()))
		return memory.NewAdapterFromCatalog(catalog), nil
	case BackendSystemd:
		options := systemd.Options{
			UserBus:         config.UserBus,
			ConnectAttempts: config.ConnectAttempts,
			ConnectDelay:    config.ConnectDelay,
			Clock:           clk,
			OnReconnect: func() {
				// The detector exists before the adapter is ever used
				d.detector.Rescan()
			},
		}
		return systemd.New(ctx, catalog, options, logging.NewChildLogger(d.logger, "systemd: "))
	default:
		return nil, errors.NewValidationError(fmt.Sprintf("unsupported service manager backend: %s", config.Backend), nil)
	}
}

// Start populates the registry with a first poll cycle, then runs the
// background workers and starts serving.
func (d *Daemon) Start(ctx context.Context) error {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.state != DaemonStateNotStarted {
		return errors.NewValidationError(
			fmt.Sprintf("daemon cannot be started in state %s", d.state), nil)
	}

	d.logger.Infof("Starting daemon...")

	var metricsListener net.Listener
	if d.metrics != nil {
		var err error
		metricsListener, err = net.Listen("tcp", d.metrics.Addr)
		if err != nil {
			return errors.NewIOError("failed to bind metrics address", err).WithContext("address", d.metrics.Addr)
		}
	}

	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	d.detector.PollNow(runCtx)
	d.logger.Infof("Initial poll done, units: %d", d.registry.Len())

	group, groupCtx := errgroup.WithContext(runCtx)
	d.group = group

	group.Go(func() error {
		return d.detector.Run(groupCtx)
	})

	if *d.config.ServiceManager.WatchSignals {
		updates, err := d.adapter.Watch(groupCtx)
		if err != nil {
			d.logger.Warnf("Sub-state signals unavailable, relying on polling: %v", err)
		} else {
			group.Go(func() error {
				return d.pumpSignals(groupCtx, updates)
			})
		}
	}

	if d.watcher != nil {
		group.Go(func() error {
			if err := d.watcher.Run(groupCtx); err != nil {
				d.logger.Warnf("Unit directory watcher stopped: %v", err)
			}
			return nil
		})
	}

	if metricsListener != nil {
		group.Go(func() error {
			d.logger.Infof("Serving metrics on %s", d.metrics.Addr)
			if err := d.metrics.Serve(metricsListener); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
				d.logger.Errorf("Metrics server failed: %v", err)
			}
			return nil
		})
		group.Go(func() error {
			<-groupCtx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			return d.metrics.Shutdown(shutdownCtx)
		})
	}

	// Start the server
	d.server.Start(runCtx)
	d.health.SetServingStatus(unitServiceName, healthpb.HealthCheckResponse_SERVING)

	d.state = DaemonStateRunning
	d.logger.Infof("Daemon started, port: %d", d.config.Server.Port)

	return nil
}

// pumpSignals turns sub-state change hints into re-checks.
func (d *Daemon) pumpSignals(ctx context.Context, updates <-chan string) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case id, ok := <-updates:
			if !ok {
				d.logger.Warnf("Sub-state signal stream closed, relying on polling")
				return nil
			}
			d.detector.Notify(id)
		}
	}
}

func (d *Daemon) Stop(ctx context.Context) {
	d.mutex.Lock()
	if d.state != DaemonStateRunning {
		d.mutex.Unlock()
		return
	}
	d.state = DaemonStateStopping
	d.mutex.Unlock()

	d.logger.Infof("Stopping daemon...")

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, d.config.Server.ForceShutdownTimeout)
	defer cancel()

	d.health.Shutdown()

	// Release streaming clients so the server can drain
	d.distributor.Close()
	d.handler.Close()

	d.server.Shutdown(ctx)

	d.cancel()
	if err := d.group.Wait(); err != nil {
		d.logger.Warnf("Background worker failed: %v", err)
	}

	if err := d.adapter.Close(); err != nil {
		d.logger.Warnf("Failed to close service manager adapter: %v", err)
	}

	d.shutdownTracing(ctx)

	d.mutex.Lock()
	d.state = DaemonStateStopped
	d.mutex.Unlock()

	d.logger.Infof("Daemon stopped")
}

func (d *Daemon) shutdownTracing(ctx context.Context) {
	if d.tracing == nil {
		return
	}
	if err := d.tracing.Shutdown(ctx); err != nil {
		d.logger.Warnf("Failed to flush traces: %v", err)
	}
}

func (d *Daemon) State() DaemonState {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	return d.state
}

// Handler exposes the client contract served by the daemon.
func (d *Daemon) Handler() domain.Contract {
	return d.handler
}
