package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordHelpers(t *testing.T) {
	before := testutil.ToFloat64(dispatchTotal.WithLabelValues("start", "ok"))
	RecordDispatch("start", "ok", 10*time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(dispatchTotal.WithLabelValues("start", "ok")))

	AddPending(1)
	AddPending(-1)
	assert.Equal(t, float64(0), testutil.ToFloat64(dispatchPending))

	SetUnitsTracked(3)
	assert.Equal(t, float64(3), testutil.ToFloat64(unitsTracked))

	before = testutil.ToFloat64(eventsDropped)
	RecordDropped()
	assert.Equal(t, before+1, testutil.ToFloat64(eventsDropped))
}

func TestHandler(t *testing.T) {
	RecordCycle("tick", time.Millisecond)

	recorder := httptest.NewRecorder()
	Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "sjw_detector_cycles_total")
}
