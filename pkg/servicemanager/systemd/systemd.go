package systemd

import (
	"context"
	stderrors "errors"
	"sync"
	"time"

	"github.com/core-tools/hsu-sjw/pkg/domain"
	"github.com/core-tools/hsu-sjw/pkg/errors"
	"github.com/core-tools/hsu-sjw/pkg/logging"
	"github.com/core-tools/hsu-sjw/pkg/servicemanager"

	sdbus "github.com/coreos/go-systemd/v22/dbus"
	godbus "github.com/godbus/dbus/v5"
	"github.com/juju/clock"
	"github.com/juju/retry"
)

const (
	// jobModeReplace queues the job and replaces conflicting pending jobs.
	jobModeReplace = "replace"

	jobResultDone = "done"

	loadStateNotFound = "not-found"

	errNoSuchUnit = "org.freedesktop.systemd1.NoSuchUnit"
)

// dbusConn is the subset of *sdbus.Conn used by the adapter.
type dbusConn interface {
	Close()
	ListUnitsContext(ctx context.Context) ([]sdbus.UnitStatus, error)
	ListUnitsByNamesContext(ctx context.Context, units []string) ([]sdbus.UnitStatus, error)
	GetUnitPropertiesContext(ctx context.Context, unit string) (map[string]interface{}, error)
	StartUnitContext(ctx context.Context, name string, mode string, ch chan<- string) (int, error)
	StopUnitContext(ctx context.Context, name string, mode string, ch chan<- string) (int, error)
	RestartUnitContext(ctx context.Context, name string, mode string, ch chan<- string) (int, error)
	EnableUnitFilesContext(ctx context.Context, files []string, runtime bool, force bool) (bool, []sdbus.EnableUnitFileChange, error)
	DisableUnitFilesContext(ctx context.Context, files []string, runtime bool) ([]sdbus.DisableUnitFileChange, error)
	ReloadContext(ctx context.Context) error
	Subscribe() error
	SetSubStateSubscriber(updateCh chan<- *sdbus.SubStateUpdate, errCh chan<- error)
}

type dialFunc func(ctx context.Context) (dbusConn, error)

type jobFunc func(ctx context.Context, name string, mode string, ch chan<- string) (int, error)

type Options struct {
	UserBus         bool
	ConnectAttempts int
	ConnectDelay    time.Duration
	WatchBuffer     int
	Clock           clock.Clock

	// OnReconnect is called after the bus connection was re-established.
	OnReconnect func()
}

type Adapter struct {
	catalog  *servicemanager.Catalog
	options  Options
	dial     dialFunc
	logger   logging.Logger
	conn     dbusConn
	watching bool
	mutex    sync.Mutex
}

// New connects to the system bus, or the user bus when options.UserBus is
// set, retrying per options.
func New(ctx context.Context, catalog *servicemanager.Catalog, options Options, logger logging.Logger) (*Adapter, error) {
	dial := func(ctx context.Context) (dbusConn, error) {
		if options.UserBus {
			return sdbus.NewUserConnectionContext(ctx)
		}
		return sdbus.NewWithContext(ctx)
	}
	return newAdapter(ctx, catalog, options, dial, logger)
}

func newAdapter(ctx context.Context, catalog *servicemanager.Catalog, options Options, dial dialFunc, logger logging.Logger) (*Adapter, error) {
	if options.ConnectAttempts <= 0 {
		options.ConnectAttempts = 1
	}
	if options.ConnectDelay <= 0 {
		options.ConnectDelay = time.Second
	}
	if options.WatchBuffer <= 0 {
		options.WatchBuffer = 256
	}
	if options.Clock == nil {
		options.Clock = clock.WallClock
	}

	a := &Adapter{
		catalog: catalog,
		options: options,
		dial:    dial,
		logger:  logger,
	}

	conn, err := a.connect(ctx)
	if err != nil {
		return nil, err
	}
	a.conn = conn
	return a, nil
}

func (a *Adapter) connect(ctx context.Context) (dbusConn, error) {
	var conn dbusConn
	err := retry.Call(retry.CallArgs{
		Func: func() error {
			var err error
			conn, err = a.dial(ctx)
			return err
		},
		NotifyFunc: func(lastErr error, attempt int) {
			a.logger.Warnf("D-Bus connect attempt %d failed: %v", attempt, lastErr)
		},
		Attempts: a.options.ConnectAttempts,
		Delay:    a.options.ConnectDelay,
		Clock:    a.options.Clock,
		Stop:     ctx.Done(),
	})
	if err != nil {
		return nil, errors.NewAdapterFailureError("failed to connect to service manager", retry.LastError(err)).
			WithContext("user_bus", a.options.UserBus).
			WithContext("attempts", a.options.ConnectAttempts)
	}
	a.logger.Infof("Connected to service manager, user_bus: %t", a.options.UserBus)
	return conn, nil
}

// withConn runs fn on the current connection and reconnects once when the
// bus reports the connection closed.
func (a *Adapter) withConn(ctx context.Context, fn func(conn dbusConn) error) error {
	a.mutex.Lock()
	conn := a.conn
	a.mutex.Unlock()

	if conn == nil {
		return errors.NewAdapterFailureError("adapter is closed", nil)
	}

	err := fn(conn)
	if err == nil || !stderrors.Is(err, godbus.ErrClosed) {
		return err
	}

	a.logger.Warnf("D-Bus connection closed, reconnecting")
	fresh, connectErr := a.connect(ctx)
	if connectErr != nil {
		return connectErr
	}

	a.mutex.Lock()
	if a.conn == nil {
		// Closed meanwhile
		a.mutex.Unlock()
		fresh.Close()
		return errors.NewAdapterFailureError("adapter is closed", nil)
	}
	a.conn = fresh
	a.mutex.Unlock()
	conn.Close()

	if a.options.OnReconnect != nil {
		a.options.OnReconnect()
	}
	return fn(fresh)
}

func (a *Adapter) List(ctx context.Context) ([]servicemanager.UnitInfo, error) {
	configured := a.catalog.Configured()
	names := make([]string, 0, len(configured))
	for _, spec := range configured {
		names = append(names, spec.Name)
	}

	infos := make([]servicemanager.UnitInfo, 0, len(names))
	err := a.withConn(ctx, func(conn dbusConn) error {
		infos = infos[:0]

		// Loads configured units even when inactive
		if len(names) > 0 {
			statuses, err := conn.ListUnitsByNamesContext(ctx, names)
			if err != nil {
				return err
			}
			for _, status := range statuses {
				if status.LoadState == loadStateNotFound {
					continue
				}
				if id, ok := a.catalog.IDForName(status.Name); ok {
					infos = append(infos, unitInfo(id, status))
				}
			}
		}

		if !a.catalog.HasPatterns() {
			return nil
		}

		statuses, err := conn.ListUnitsContext(ctx)
		if err != nil {
			return err
		}
		byName := make(map[string]sdbus.UnitStatus, len(statuses))
		all := make([]string, 0, len(statuses))
		for _, status := range statuses {
			if status.LoadState == loadStateNotFound {
				continue
			}
			byName[status.Name] = status
			all = append(all, status.Name)
		}
		for _, id := range a.catalog.Discover(all) {
			spec, _ := a.catalog.Resolve(id)
			infos = append(infos, unitInfo(id, byName[spec.Name]))
		}
		return nil
	})
	if err != nil {
		return nil, a.wrapError("list units", "", err)
	}
	return infos, nil
}

func unitInfo(id string, status sdbus.UnitStatus) servicemanager.UnitInfo {
	return servicemanager.UnitInfo{
		ID: id,
		Observation: domain.Observation{
			Name:        status.Name,
			Description: status.Description,
			Status: domain.Status{
				State:    servicemanager.MapActiveState(status.ActiveState),
				SubState: status.SubState,
			},
		},
	}
}

func (a *Adapter) Query(ctx context.Context, id string) (domain.Observation, error) {
	spec, ok := a.catalog.Resolve(id)
	if !ok {
		return domain.Observation{}, errors.NewNotFoundError("unit not managed", nil).WithContext("unit_id", id)
	}

	var props map[string]interface{}
	err := a.withConn(ctx, func(conn dbusConn) error {
		var err error
		props, err = conn.GetUnitPropertiesContext(ctx, spec.Name)
		return err
	})
	if err != nil {
		return domain.Observation{}, a.wrapError("query unit", id, err)
	}

	if stringProperty(props, "LoadState") == loadStateNotFound {
		return domain.Observation{}, errors.NewNotFoundError("unit not loaded", nil).
			WithContext("unit_id", id).
			WithContext("unit_name", spec.Name)
	}

	unitFileState := stringProperty(props, "UnitFileState")
	return domain.Observation{
		Name:        spec.Name,
		Description: stringProperty(props, "Description"),
		Status: domain.Status{
			State:         servicemanager.MapActiveState(stringProperty(props, "ActiveState")),
			SubState:      stringProperty(props, "SubState"),
			Enabled:       servicemanager.IsEnabled(unitFileState),
			UnitFileState: unitFileState,
		},
	}, nil
}

func stringProperty(props map[string]interface{}, key string) string {
	switch value := props[key].(type) {
	case string:
		return value
	case godbus.Variant:
		if s, ok := value.Value().(string); ok {
			return s
		}
	}
	return ""
}

func (a *Adapter) Mutate(ctx context.Context, id string, op domain.Operation) error {
	spec, ok := a.catalog.Resolve(id)
	if !ok {
		return errors.NewNotFoundError("unit not managed", nil).WithContext("unit_id", id)
	}

	a.logger.Infof("Running %s on unit %s (%s)", op, id, spec.Name)

	err := a.withConn(ctx, func(conn dbusConn) error {
		switch op {
		case domain.OperationStart:
			return a.runJob(ctx, conn.StartUnitContext, spec.Name)
		case domain.OperationStop:
			return a.runJob(ctx, conn.StopUnitContext, spec.Name)
		case domain.OperationRestart:
			return a.runJob(ctx, conn.RestartUnitContext, spec.Name)
		case domain.OperationEnable:
			if _, _, err := conn.EnableUnitFilesContext(ctx, []string{spec.Name}, false, true); err != nil {
				return err
			}
			return conn.ReloadContext(ctx)
		case domain.OperationDisable:
			if _, err := conn.DisableUnitFilesContext(ctx, []string{spec.Name}, false); err != nil {
				return err
			}
			return conn.ReloadContext(ctx)
		default:
			return errors.NewValidationError("unsupported operation", nil).WithContext("operation", string(op))
		}
	})
	if err != nil {
		return a.wrapError(string(op)+" unit", id, err)
	}
	return nil
}

// runJob enqueues a job and waits for systemd to report its result.
func (a *Adapter) runJob(ctx context.Context, job jobFunc, name string) error {
	// Buffered so the bus signal handler never blocks on an abandoned wait
	resultCh := make(chan string, 1)

	if _, err := job(ctx, name, jobModeReplace, resultCh); err != nil {
		return err
	}

	select {
	case result := <-resultCh:
		if result != jobResultDone {
			return errors.NewAdapterFailureError("job did not complete", nil).
				WithContext("unit_name", name).
				WithContext("result", result)
		}
		return nil
	case <-ctx.Done():
		return errors.NewTimeoutError("waiting for job result", ctx.Err()).WithContext("unit_name", name)
	}
}

// Watch subscribes to systemd unit signals and reports IDs of managed units
// whose sub-state changed. Only one watch may be active.
func (a *Adapter) Watch(ctx context.Context) (<-chan string, error) {
	a.mutex.Lock()
	conn := a.conn
	if conn == nil {
		a.mutex.Unlock()
		return nil, errors.NewAdapterFailureError("adapter is closed", nil)
	}
	if a.watching {
		a.mutex.Unlock()
		return nil, errors.NewValidationError("watch already active", nil)
	}
	a.watching = true
	a.mutex.Unlock()

	if err := conn.Subscribe(); err != nil {
		a.mutex.Lock()
		a.watching = false
		a.mutex.Unlock()
		return nil, a.wrapError("subscribe to unit signals", "", err)
	}

	updates := make(chan *sdbus.SubStateUpdate, a.options.WatchBuffer)
	errCh := make(chan error, 16)
	conn.SetSubStateSubscriber(updates, errCh)

	out := make(chan string, a.options.WatchBuffer)
	go func() {
		defer close(out)
		defer func() {
			a.mutex.Lock()
			a.watching = false
			a.mutex.Unlock()
		}()

		for {
			select {
			case update := <-updates:
				a.forward(update, out)
			case err := <-errCh:
				a.logger.Debugf("Sub-state subscriber error: %v", err)
			case <-ctx.Done():
				a.unsubscribe(conn, updates, errCh)
				return
			}
		}
	}()

	return out, nil
}

func (a *Adapter) forward(update *sdbus.SubStateUpdate, out chan<- string) {
	if update == nil {
		return
	}
	id, ok := a.catalog.IDForName(update.UnitName)
	if !ok {
		if !a.catalog.Matches(update.UnitName) {
			return
		}
		// Not discovered yet, the next cycle will pick it up
		id = update.UnitName
	}
	select {
	case out <- id:
	default:
		a.logger.Debugf("Watch channel full, dropping update for %s", id)
	}
}

// unsubscribe detaches the sub-state subscriber. The bus goroutine sends
// while holding the subscriber lock, so keep draining until it lets go.
func (a *Adapter) unsubscribe(conn dbusConn, updates <-chan *sdbus.SubStateUpdate, errCh <-chan error) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		conn.SetSubStateSubscriber(nil, nil)
	}()
	for {
		select {
		case <-updates:
		case <-errCh:
		case <-done:
			return
		}
	}
}

func (a *Adapter) Close() error {
	a.mutex.Lock()
	conn := a.conn
	a.conn = nil
	a.mutex.Unlock()

	if conn != nil {
		conn.Close()
	}
	return nil
}

func (a *Adapter) wrapError(action, id string, err error) error {
	var domainErr *errors.DomainError
	if stderrors.As(err, &domainErr) {
		return err
	}
	if isNoSuchUnit(err) {
		return errors.NewNotFoundError(action, err).WithContext("unit_id", id)
	}
	if stderrors.Is(err, context.DeadlineExceeded) {
		return errors.NewTimeoutError(action, err).WithContext("unit_id", id)
	}
	if stderrors.Is(err, context.Canceled) {
		return errors.NewCancelledError(action, err).WithContext("unit_id", id)
	}
	return errors.NewAdapterFailureError(action, err).WithContext("unit_id", id)
}

func isNoSuchUnit(err error) bool {
	var dbusErr godbus.Error
	if stderrors.As(err, &dbusErr) {
		return dbusErr.Name == errNoSuchUnit
	}
	var dbusErrPtr *godbus.Error
	if stderrors.As(err, &dbusErrPtr) {
		return dbusErrPtr.Name == errNoSuchUnit
	}
	return false
}
