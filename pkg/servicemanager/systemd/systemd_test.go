package systemd

import (
	"context"
	"testing"
	"time"

	"github.com/core-tools/hsu-sjw/pkg/domain"
	"github.com/core-tools/hsu-sjw/pkg/errors"
	"github.com/core-tools/hsu-sjw/pkg/logging"
	"github.com/core-tools/hsu-sjw/pkg/servicemanager"

	sdbus "github.com/coreos/go-systemd/v22/dbus"
	godbus "github.com/godbus/dbus/v5"
	"github.com/juju/clock/testclock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// stubConn is a mock implementation of dbusConn
type stubConn struct {
	mock.Mock
}

func (s *stubConn) Close() {
	s.Called()
}

func (s *stubConn) ListUnitsContext(ctx context.Context) ([]sdbus.UnitStatus, error) {
	args := s.Called(ctx)
	return args.Get(0).([]sdbus.UnitStatus), args.Error(1)
}

func (s *stubConn) ListUnitsByNamesContext(ctx context.Context, units []string) ([]sdbus.UnitStatus, error) {
	args := s.Called(ctx, units)
	return args.Get(0).([]sdbus.UnitStatus), args.Error(1)
}

func (s *stubConn) GetUnitPropertiesContext(ctx context.Context, unit string) (map[string]interface{}, error) {
	args := s.Called(ctx, unit)
	props, _ := args.Get(0).(map[string]interface{})
	return props, args.Error(1)
}

func (s *stubConn) StartUnitContext(ctx context.Context, name string, mode string, ch chan<- string) (int, error) {
	args := s.Called(ctx, name, mode, ch)
	return args.Int(0), args.Error(1)
}

func (s *stubConn) StopUnitContext(ctx context.Context, name string, mode string, ch chan<- string) (int, error) {
	args := s.Called(ctx, name, mode, ch)
	return args.Int(0), args.Error(1)
}

func (s *stubConn) RestartUnitContext(ctx context.Context, name string, mode string, ch chan<- string) (int, error) {
	args := s.Called(ctx, name, mode, ch)
	return args.Int(0), args.Error(1)
}

func (s *stubConn) EnableUnitFilesContext(ctx context.Context, files []string, runtime bool, force bool) (bool, []sdbus.EnableUnitFileChange, error) {
	args := s.Called(ctx, files, runtime, force)
	return args.Bool(0), nil, args.Error(1)
}

func (s *stubConn) DisableUnitFilesContext(ctx context.Context, files []string, runtime bool) ([]sdbus.DisableUnitFileChange, error) {
	args := s.Called(ctx, files, runtime)
	return nil, args.Error(0)
}

func (s *stubConn) ReloadContext(ctx context.Context) error {
	return s.Called(ctx).Error(0)
}

func (s *stubConn) Subscribe() error {
	return s.Called().Error(0)
}

func (s *stubConn) SetSubStateSubscriber(updateCh chan<- *sdbus.SubStateUpdate, errCh chan<- error) {
	s.Called(updateCh, errCh)
}

func newTestCatalog(t *testing.T, patterns ...string) *servicemanager.Catalog {
	catalog, err := servicemanager.NewCatalog([]servicemanager.UnitSpec{
		{ID: "web", Name: "nginx.service"},
		{ID: "app", Name: "app.service"},
	}, patterns)
	require.NoError(t, err)
	return catalog
}

func newTestAdapter(t *testing.T, conn *stubConn, patterns ...string) *Adapter {
	dial := func(ctx context.Context) (dbusConn, error) { return conn, nil }
	adapter, err := newAdapter(context.Background(), newTestCatalog(t, patterns...), Options{}, dial, logging.NewNopLogger())
	require.NoError(t, err)
	return adapter
}

func TestAdapter_ConnectRetries(t *testing.T) {
	clock := testclock.NewDilatedWallClock(time.Millisecond)
	attempts := 0
	dial := func(ctx context.Context) (dbusConn, error) {
		attempts++
		if attempts < 3 {
			return nil, godbus.ErrClosed
		}
		return &stubConn{}, nil
	}

	_, err := newAdapter(context.Background(), newTestCatalog(t), Options{
		ConnectAttempts: 5,
		ConnectDelay:    time.Second,
		Clock:           clock,
	}, dial, logging.NewNopLogger())
	require.NoError(t, err)
	assert.Equal(t, 3, attempts)

	attempts = -100
	_, err = newAdapter(context.Background(), newTestCatalog(t), Options{
		ConnectAttempts: 2,
		ConnectDelay:    time.Second,
		Clock:           clock,
	}, dial, logging.NewNopLogger())
	require.Error(t, err)
	assert.True(t, errors.IsAdapterFailureError(err))
}

func TestAdapter_ListConfiguredAndDiscovered(t *testing.T) {
	conn := &stubConn{}
	conn.On("ListUnitsByNamesContext", mock.Anything, []string{"nginx.service", "app.service"}).Return([]sdbus.UnitStatus{
		{Name: "nginx.service", Description: "nginx", LoadState: "loaded", ActiveState: "active", SubState: "running", Path: godbus.ObjectPath("/org/freedesktop/systemd1/unit/nginx_2eservice")},
		{Name: "app.service", LoadState: "not-found", ActiveState: "inactive", SubState: "dead"},
	}, nil)
	conn.On("ListUnitsContext", mock.Anything).Return([]sdbus.UnitStatus{
		{Name: "nginx.service", LoadState: "loaded", ActiveState: "active", SubState: "running"},
		{Name: "worker-1.service", Description: "worker", LoadState: "loaded", ActiveState: "failed", SubState: "failed"},
		{Name: "sshd.service", LoadState: "loaded", ActiveState: "active", SubState: "running"},
	}, nil)

	adapter := newTestAdapter(t, conn, "worker-*.service")
	infos, err := adapter.List(context.Background())
	require.NoError(t, err)

	require.Len(t, infos, 2)
	assert.Equal(t, "web", infos[0].ID)
	assert.Equal(t, domain.UnitStateActive, infos[0].Observation.Status.State)
	assert.Equal(t, "worker-1.service", infos[1].ID)
	assert.Equal(t, domain.UnitStateFailed, infos[1].Observation.Status.State)
	conn.AssertExpectations(t)
}

func TestAdapter_Query(t *testing.T) {
	conn := &stubConn{}
	conn.On("GetUnitPropertiesContext", mock.Anything, "nginx.service").Return(map[string]interface{}{
		"Description":   "nginx",
		"LoadState":     "loaded",
		"ActiveState":   "reloading",
		"SubState":      "reload",
		"UnitFileState": godbus.MakeVariant("enabled"),
	}, nil)
	conn.On("GetUnitPropertiesContext", mock.Anything, "app.service").Return(map[string]interface{}{
		"LoadState": "not-found",
	}, nil)

	adapter := newTestAdapter(t, conn)

	obs, err := adapter.Query(context.Background(), "web")
	require.NoError(t, err)
	assert.Equal(t, "nginx", obs.Description)
	assert.Equal(t, domain.UnitStateActive, obs.Status.State)
	assert.Equal(t, "reload", obs.Status.SubState)
	assert.True(t, obs.Status.Enabled)

	_, err = adapter.Query(context.Background(), "app")
	assert.True(t, errors.IsNotFoundError(err))

	_, err = adapter.Query(context.Background(), "unmanaged")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestAdapter_QueryNoSuchUnit(t *testing.T) {
	conn := &stubConn{}
	conn.On("GetUnitPropertiesContext", mock.Anything, "nginx.service").
		Return(nil, godbus.Error{Name: errNoSuchUnit, Body: []interface{}{"no such unit"}})

	adapter := newTestAdapter(t, conn)
	_, err := adapter.Query(context.Background(), "web")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestAdapter_StartWaitsForJob(t *testing.T) {
	conn := &stubConn{}
	conn.On("StartUnitContext", mock.Anything, "nginx.service", "replace", mock.Anything).
		Run(func(args mock.Arguments) {
			args.Get(3).(chan<- string) <- "done"
		}).Return(1, nil)
	conn.On("RestartUnitContext", mock.Anything, "nginx.service", "replace", mock.Anything).
		Run(func(args mock.Arguments) {
			args.Get(3).(chan<- string) <- "failed"
		}).Return(2, nil)

	adapter := newTestAdapter(t, conn)

	require.NoError(t, adapter.Mutate(context.Background(), "web", domain.OperationStart))

	err := adapter.Mutate(context.Background(), "web", domain.OperationRestart)
	require.Error(t, err)
	assert.True(t, errors.IsAdapterFailureError(err))
}

func TestAdapter_StopTimesOut(t *testing.T) {
	conn := &stubConn{}
	conn.On("StopUnitContext", mock.Anything, "nginx.service", "replace", mock.Anything).Return(1, nil)

	adapter := newTestAdapter(t, conn)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := adapter.Mutate(ctx, "web", domain.OperationStop)
	assert.True(t, errors.IsTimeoutError(err))
}

func TestAdapter_EnableDisableReload(t *testing.T) {
	conn := &stubConn{}
	conn.On("EnableUnitFilesContext", mock.Anything, []string{"app.service"}, false, true).Return(true, nil)
	conn.On("DisableUnitFilesContext", mock.Anything, []string{"app.service"}, false).Return(nil)
	conn.On("ReloadContext", mock.Anything).Return(nil).Twice()

	adapter := newTestAdapter(t, conn)
	require.NoError(t, adapter.Mutate(context.Background(), "app", domain.OperationEnable))
	require.NoError(t, adapter.Mutate(context.Background(), "app", domain.OperationDisable))
	conn.AssertExpectations(t)
}

func TestAdapter_ReconnectOnClosed(t *testing.T) {
	first := &stubConn{}
	first.On("GetUnitPropertiesContext", mock.Anything, "nginx.service").Return(nil, godbus.ErrClosed)
	first.On("Close").Return()

	second := &stubConn{}
	second.On("GetUnitPropertiesContext", mock.Anything, "nginx.service").Return(map[string]interface{}{
		"LoadState":   "loaded",
		"ActiveState": "active",
		"SubState":    "running",
	}, nil)

	conns := []*stubConn{first, second}
	dial := func(ctx context.Context) (dbusConn, error) {
		conn := conns[0]
		conns = conns[1:]
		return conn, nil
	}

	reconnected := 0
	adapter, err := newAdapter(context.Background(), newTestCatalog(t), Options{
		OnReconnect: func() { reconnected++ },
	}, dial, logging.NewNopLogger())
	require.NoError(t, err)

	obs, err := adapter.Query(context.Background(), "web")
	require.NoError(t, err)
	assert.Equal(t, domain.UnitStateActive, obs.Status.State)
	assert.Equal(t, 1, reconnected)
	first.AssertCalled(t, "Close")
}

func TestAdapter_Watch(t *testing.T) {
	defer goleak.VerifyNone(t)

	conn := &stubConn{}
	var updates chan<- *sdbus.SubStateUpdate
	conn.On("Subscribe").Return(nil)
	conn.On("SetSubStateSubscriber", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		if ch, ok := args.Get(0).(chan<- *sdbus.SubStateUpdate); ok && ch != nil {
			updates = ch
		}
	}).Return()

	adapter := newTestAdapter(t, conn, "worker-*.service")
	ctx, cancel := context.WithCancel(context.Background())

	ids, err := adapter.Watch(ctx)
	require.NoError(t, err)

	_, err = adapter.Watch(ctx)
	assert.True(t, errors.IsValidationError(err))

	updates <- &sdbus.SubStateUpdate{UnitName: "nginx.service", SubState: "running"}
	updates <- &sdbus.SubStateUpdate{UnitName: "sshd.service", SubState: "running"}
	updates <- &sdbus.SubStateUpdate{UnitName: "worker-9.service", SubState: "dead"}

	assert.Equal(t, "web", <-ids)
	assert.Equal(t, "worker-9.service", <-ids)

	cancel()
	for range ids {
	}
	conn.AssertCalled(t, "SetSubStateSubscriber", mock.Anything, mock.Anything)
}
