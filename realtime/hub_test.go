package realtime

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func newTestServer(t *testing.T, hub *Hub) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool { return true },
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		client := hub.Add(conn)
		defer func() {
			hub.Remove(client)
			_ = conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestHubBroadcastEnvelope(t *testing.T) {
	hub := NewHub()
	defer hub.Close()
	srv := newTestServer(t, hub)

	conn := dial(t, srv)
	waitForClients(t, hub, 1)

	hub.Broadcast("table_updated", map[string]string{"id": "t-1", "status": "occupied"})

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, raw, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var ev struct {
		Type string            `json:"type"`
		Data map[string]string `json:"data"`
	}
	if err := json.Unmarshal(raw, &ev); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if ev.Type != "table_updated" {
		t.Errorf("type = %q, ingin table_updated", ev.Type)
	}
	if ev.Data["status"] != "occupied" {
		t.Errorf("data.status = %q, ingin occupied", ev.Data["status"])
	}
}

func TestHubBroadcastAllClients(t *testing.T) {
	hub := NewHub()
	defer hub.Close()
	srv := newTestServer(t, hub)

	a := dial(t, srv)
	b := dial(t, srv)
	waitForClients(t, hub, 2)

	hub.Broadcast("order_created", map[string]string{"id": "o-1"})

	for _, conn := range []*websocket.Conn{a, b} {
		_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		if _, _, err := conn.ReadMessage(); err != nil {
			t.Fatalf("client tidak menerima broadcast: %v", err)
		}
	}
}

// Dua hub harus benar-benar terisolasi.
func TestHubIsolation(t *testing.T) {
	hubA := NewHub()
	defer hubA.Close()
	hubB := NewHub()
	defer hubB.Close()

	srvA := newTestServer(t, hubA)
	connA := dial(t, srvA)
	waitForClients(t, hubA, 1)

	hubB.Broadcast("order_created", map[string]string{"id": "o-x"})

	_ = connA.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	if _, _, err := connA.ReadMessage(); err == nil {
		t.Error("client hub A menerima broadcast dari hub B")
	}
}

func TestHubBroadcastNoClients(t *testing.T) {
	hub := NewHub()
	defer hub.Close()
	// tidak boleh panic atau block
	hub.Broadcast("menu_updated", map[string]string{"id": "m-1"})
}

func TestHubCloseRejectsNewClients(t *testing.T) {
	hub := NewHub()
	srv := newTestServer(t, hub)

	conn := dial(t, srv)
	waitForClients(t, hub, 1)

	hub.Close()
	if got := hub.Count(); got != 0 {
		t.Errorf("Count setelah Close = %d, ingin 0", got)
	}

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Error("koneksi masih hidup setelah Close")
	}
}

func waitForClients(t *testing.T, hub *Hub, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if hub.Count() == n {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("jumlah client = %d, ingin %d", hub.Count(), n)
}
