package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lintwatch/notify-go/pkg/notification"
)

func TestRecorderOpenGauge(t *testing.T) {
	reg := prometheus.NewRegistry()
	r, err := NewRecorder(reg)
	require.NoError(t, err)

	r.SetOpen(3)
	assert.Equal(t, 3.0, testutil.ToFloat64(r.open))

	r.SetOpen(0)
	assert.Equal(t, 0.0, testutil.ToFloat64(r.open))
}

func TestRecorderTransportCalls(t *testing.T) {
	reg := prometheus.NewRegistry()
	r, err := NewRecorder(reg)
	require.NoError(t, err)

	r.TransportCall(notification.OpSubscribe, nil)
	r.TransportCall(notification.OpSubscribe, nil)
	r.TransportCall(notification.OpSubscribe, errors.New("refused"))
	r.TransportCall(notification.OpUnsubscribe, nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.calls.WithLabelValues(notification.OpSubscribe, ResultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.calls.WithLabelValues(notification.OpSubscribe, ResultError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.calls.WithLabelValues(notification.OpUnsubscribe, ResultOK)))
}

func TestNewRecorderDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewRecorder(reg)
	require.NoError(t, err)

	_, err = NewRecorder(reg)
	assert.Error(t, err)
}

func TestHandlerServesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	r, err := NewRecorder(reg)
	require.NoError(t, err)
	r.SetOpen(2)

	srv := httptest.NewServer(Handler(reg))
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "notify_subscriptions_open 2"), string(body))
}
