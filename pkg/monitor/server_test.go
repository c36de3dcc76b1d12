package monitor

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.webassert/pkg/suite"
)

func newTestServer(t *testing.T) (
	*Server, *EventCollector, *httptest.Server,
) {
	t.Helper()

	collector := NewEventCollector()
	dashboard := NewDashboard("run-1")
	server := NewServer(":0", collector, dashboard)

	ts := httptest.NewServer(server.Handler())
	t.Cleanup(ts.Close)

	return server, collector, ts
}

func wsURL(ts *httptest.Server, path string) string {
	return "ws" + strings.TrimPrefix(ts.URL, "http") + path
}

func TestServer_Health(t *testing.T) {
	_, _, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(body))
}

func TestServer_Dashboard(t *testing.T) {
	_, collector, ts := newTestServer(t)

	collector.EmitStarted("login", "Login page")

	resp, err := http.Get(ts.URL + "/dashboard")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	var snap Snapshot
	require.NoError(
		t, json.NewDecoder(resp.Body).Decode(&snap),
	)
	assert.Equal(t, "run-1", snap.RunID)
	require.Contains(t, snap.Suites, suite.ID("login"))
	assert.Equal(
		t, suite.StatusRunning,
		snap.Suites["login"].Status,
	)
}

func TestServer_WebSocketStream(t *testing.T) {
	_, collector, ts := newTestServer(t)

	conn, resp, err := websocket.DefaultDialer.Dial(
		wsURL(ts, "/ws"), nil,
	)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	defer func() { _ = conn.Close() }()

	// First frame is the dashboard snapshot.
	require.NoError(
		t,
		conn.SetReadDeadline(time.Now().Add(5*time.Second)),
	)
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var snap Snapshot
	require.NoError(t, json.Unmarshal(data, &snap))
	assert.Equal(t, "run-1", snap.RunID)

	// Events emitted after connect stream as frames.
	collector.EmitStarted("login", "Login page")

	_, data, err = conn.ReadMessage()
	require.NoError(t, err)

	var event SuiteEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, EventStarted, event.Type)
	assert.Equal(t, suite.ID("login"), event.SuiteID)
}

func TestServer_WebSocketMultipleClients(t *testing.T) {
	_, collector, ts := newTestServer(t)

	var conns []*websocket.Conn
	for i := 0; i < 2; i++ {
		conn, resp, err := websocket.DefaultDialer.Dial(
			wsURL(ts, "/ws"), nil,
		)
		require.NoError(t, err)
		_ = resp.Body.Close()
		defer func() { _ = conn.Close() }()

		// Drain the snapshot frame.
		require.NoError(
			t,
			conn.SetReadDeadline(
				time.Now().Add(5*time.Second),
			),
		)
		_, _, err = conn.ReadMessage()
		require.NoError(t, err)

		conns = append(conns, conn)
	}

	collector.EmitCompleted("login", "Login page", time.Second)

	for _, conn := range conns {
		_, data, err := conn.ReadMessage()
		require.NoError(t, err)

		var event SuiteEvent
		require.NoError(t, json.Unmarshal(data, &event))
		assert.Equal(t, EventCompleted, event.Type)
	}
}

func TestServer_EventUpdatesDashboard(t *testing.T) {
	server, collector, _ := newTestServer(t)

	collector.EmitStarted("login", "Login page")
	collector.EmitFailed("login", "Login page", "boom")

	snap := server.dashboard.Snapshot()
	assert.Equal(
		t, suite.StatusFailed,
		snap.Suites["login"].Status,
	)
	assert.Equal(t, "boom", snap.Suites["login"].Message)
}

func TestServer_StopWithoutStart(t *testing.T) {
	server, _, _ := newTestServer(t)

	ctx, cancel := context.WithTimeout(
		context.Background(), time.Second,
	)
	defer cancel()
	assert.NoError(t, server.Stop(ctx))
}
