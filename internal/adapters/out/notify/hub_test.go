package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PushesToConnectedProfile(t *testing.T) {
	hub := NewHub(discardLogger(), nil)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = hub.Serve(w, r, r.URL.Query().Get("profile"))
	}))
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "?profile=p-1"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.Connections("p-1") == 1 }, time.Second, 10*time.Millisecond)

	err = hub.Send(context.Background(), Message{Kind: "delivery_completed", RecipientID: "p-1", Subject: "Delivery completed"})
	require.NoError(t, err)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var got Message
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "delivery_completed", got.Kind)
	assert.Equal(t, "Delivery completed", got.Subject)

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool { return hub.Connections("p-1") == 0 }, time.Second, 10*time.Millisecond)
}

func TestHub_DeadConnectionIsDroppedWithoutError(t *testing.T) {
	hub := NewHub(discardLogger(), nil)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = hub.Serve(w, r, "p-1")
	}))
	defer server.Close()

	healthy, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http"), nil)
	require.NoError(t, err)
	defer healthy.Close()
	require.Eventually(t, func() bool { return hub.Connections("p-1") == 1 }, time.Second, 10*time.Millisecond)

	dead := &client{conn: closedConn(t)}
	hub.register("p-1", dead)
	require.Equal(t, 2, hub.Connections("p-1"))

	err = hub.Send(context.Background(), Message{Kind: "request_approved", RecipientID: "p-1"})
	require.NoError(t, err)
	assert.Equal(t, 1, hub.Connections("p-1"))

	require.NoError(t, healthy.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := healthy.ReadMessage()
	require.NoError(t, err)
	assert.Contains(t, string(data), "request_approved")
}

// closedConn returns a websocket connection that is already closed, so any
// write on it fails.
func closedConn(t *testing.T) *websocket.Conn {
	t.Helper()
	upgrader := websocket.Upgrader{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		_ = conn.Close()
	}))
	t.Cleanup(server.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http"), nil)
	require.NoError(t, err)
	require.NoError(t, conn.Close())
	return conn
}

func TestHub_OfflineRecipientIsNotAnError(t *testing.T) {
	hub := NewHub(discardLogger(), nil)

	assert.NoError(t, hub.Send(context.Background(), Message{RecipientID: "nobody"}))
}

func TestHub_RejectsForeignOrigin(t *testing.T) {
	hub := NewHub(discardLogger(), []string{"https://reco.example"})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = hub.Serve(w, r, "p-1")
	}))
	defer server.Close()

	header := http.Header{}
	header.Set("Origin", "https://evil.example")
	_, resp, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http"), header)

	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
