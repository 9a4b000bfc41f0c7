// Package progress implements an optional live tile-completion
// broadcaster: a websocket hub that pushes row-completion events to
// whatever dashboards are attached, mirroring the render-farm console
// the teacher exposed over its own web server.
package progress

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

// Update is one row-completion event.
type Update struct {
	RowsDone  int       `json:"rows_done"`
	TotalRows int       `json:"total_rows"`
	Timestamp time.Time `json:"timestamp"`
}

// Hub fans Update events out to every connected websocket client. A Hub
// with no attached clients is a harmless no-op sink, so renders can
// always report progress to it without checking whether anyone is
// listening.
type Hub struct {
	upgrader websocket.Upgrader
	clients  chan *websocket.Conn
	updates  chan Update
	register chan *websocket.Conn
}

// NewHub creates a Hub and starts its broadcast loop in the background.
func NewHub() *Hub {
	h := &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		clients:  make(chan *websocket.Conn, 16),
		updates:  make(chan Update, 256),
		register: make(chan *websocket.Conn, 16),
	}
	go h.run()
	return h
}

// ServeHTTP upgrades an incoming request to a websocket connection and
// registers it to receive future updates.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	h.register <- conn
}

// Report publishes an Update to every connected client. Non-blocking: a
// render must never stall waiting on a slow or absent dashboard.
func (h *Hub) Report(rowsDone, totalRows int) {
	select {
	case h.updates <- Update{RowsDone: rowsDone, TotalRows: totalRows, Timestamp: time.Now()}:
	default:
	}
}

func (h *Hub) run() {
	var conns []*websocket.Conn

	for {
		select {
		case c := <-h.register:
			conns = append(conns, c)

		case u := <-h.updates:
			payload, err := json.Marshal(u)
			if err != nil {
				continue
			}
			live := conns[:0]
			for _, c := range conns {
				if err := c.WriteMessage(websocket.TextMessage, payload); err != nil {
					c.Close()
					continue
				}
				live = append(live, c)
			}
			conns = live
		}
	}
}
