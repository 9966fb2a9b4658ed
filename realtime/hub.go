package realtime

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// Event adalah amplop yang dikirim ke semua client websocket.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Hub memegang set client websocket yang sedang terhubung. Broadcast
// fire-and-forget: tanpa ack, tanpa replay untuk client yang baru connect.
// Satu instance dibuat di main dan di-inject ke handler, bukan singleton,
// supaya test bisa jalan dengan beberapa hub terisolasi.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
	closed  bool
}

// Client membungkus satu koneksi; write di-serialize karena gorilla tidak
// mengizinkan concurrent writer.
type Client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func NewHub() *Hub {
	return &Hub{clients: map[*Client]struct{}{}}
}

// Add mendaftarkan koneksi baru dan mengembalikan client-nya. Koneksi yang
// masuk setelah Close langsung ditutup.
func (h *Hub) Add(conn *websocket.Conn) *Client {
	c := &Client{conn: conn}
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		_ = conn.Close()
		return c
	}
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	return c
}

func (h *Hub) Remove(c *Client) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
}

// Count mengembalikan jumlah client yang terdaftar.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) list() []*Client {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		out = append(out, c)
	}
	return out
}

// Broadcast mengirim {type, data} ke semua client. Client yang gagal ditulis
// dianggap mati: dilepas dari hub dan koneksinya ditutup. Tanpa client,
// no-op.
func (h *Hub) Broadcast(eventType string, data any) {
	raw, err := json.Marshal(Event{Type: eventType, Data: data})
	if err != nil {
		return
	}
	for _, c := range h.list() {
		if err := c.write(raw); err != nil {
			h.Remove(c)
			_ = c.conn.Close()
		}
	}
}

// Close menutup semua koneksi dan menolak pendaftaran berikutnya.
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.clients = map[*Client]struct{}{}
	h.mu.Unlock()

	for _, c := range clients {
		_ = c.conn.Close()
	}
}

func (c *Client) write(raw []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, raw)
}
