package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/san-kum/algoviz/internal/anim"
)

// event is the outgoing websocket message. Type is "frame" or "state".
type event struct {
	Type  string      `json:"type"`
	Frame *anim.Frame `json:"frame,omitempty"`
	State string      `json:"state,omitempty"`
	Stats *anim.Stats `json:"stats,omitempty"`
}

// command is the incoming websocket message.
type command struct {
	Action string  `json:"action"`
	Speed  float64 `json:"speed,omitempty"`
}

const (
	// writeWait bounds a single websocket write.
	writeWait = 10 * time.Second
	// clientQueue is how many events a client may fall behind before it
	// is dropped.
	clientQueue = 256
)

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// writer owns every write to c.conn. It exits when c.send is closed or a
// write fails.
func (c *client) writer() {
	defer c.conn.Close()
	for msg := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			slog.Warn("Websocket write failed.", "remote", c.conn.RemoteAddr().String(), "err", err)
			return
		}
	}
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// Hub fans controller events out to websocket clients. A single goroutine
// tracks the clients and hands each one its own queue; a client whose
// queue is full is disconnected.
type Hub struct {
	upgrader  websocket.Upgrader
	clients   map[*client]bool
	register  chan *client
	remove    chan *client
	broadcast chan []byte
	quit      chan struct{}
	stopped   chan struct{}
}

func NewHub(checkOrigin func(r *http.Request) bool) *Hub {
	if checkOrigin == nil {
		checkOrigin = func(r *http.Request) bool { return true }
	}
	h := &Hub{
		upgrader:  websocket.Upgrader{CheckOrigin: checkOrigin},
		clients:   make(map[*client]bool),
		register:  make(chan *client),
		remove:    make(chan *client),
		broadcast: make(chan []byte, 1024),
		quit:      make(chan struct{}),
		stopped:   make(chan struct{}),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	defer close(h.stopped)
	for {
		select {
		case c := <-h.register:
			h.clients[c] = true
		case c := <-h.remove:
			if h.clients[c] {
				h.drop(c)
			}
		case msg := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					slog.Warn("Dropping slow websocket client.", "remote", c.conn.RemoteAddr().String())
					h.drop(c)
				}
			}
		case <-h.quit:
			for c := range h.clients {
				close(c.send)
			}
			h.clients = nil
			return
		}
	}
}

func (h *Hub) drop(c *client) {
	delete(h.clients, c)
	close(c.send)
}

// Close disconnects every client and stops the hub goroutine.
func (h *Hub) Close() {
	select {
	case <-h.quit:
	default:
		close(h.quit)
	}
	<-h.stopped
}

// OnFrame implements engine.Observer.
func (h *Hub) OnFrame(f anim.Frame) {
	h.publish(event{Type: "frame", Frame: &f})
}

// OnState implements engine.Observer.
func (h *Hub) OnState(s anim.RunState) {
	h.publish(event{Type: "state", State: s.String()})
}

// publish never blocks the caller. Events that find the broadcast queue
// full are dropped.
func (h *Hub) publish(e event) {
	data, err := json.Marshal(e)
	if err != nil {
		slog.Error("Failed to encode websocket event.", "type", e.Type, "err", err)
		return
	}
	select {
	case h.broadcast <- data:
	case <-h.quit:
	default:
		slog.Debug("Websocket broadcast queue full, dropping event.", "type", e.Type)
	}
}

// handle upgrades the request and registers the connection. hello, when
// set, is the first message the client receives. Incoming commands are
// passed to control.
func (h *Hub) handle(w http.ResponseWriter, r *http.Request, hello *event, control func(command) error) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("Websocket upgrade failed.", "err", err)
		return
	}

	c := &client{conn: conn, send: make(chan []byte, clientQueue)}
	if hello != nil {
		if data, err := json.Marshal(hello); err != nil {
			slog.Error("Failed to encode websocket hello.", "err", err)
		} else {
			c.send <- data
		}
	}
	select {
	case h.register <- c:
	case <-h.quit:
		conn.Close()
		return
	}
	go c.writer()

	go func() {
		defer func() {
			select {
			case h.remove <- c:
			case <-h.quit:
			}
		}()
		for {
			_, message, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
					slog.Warn("Websocket read failed.", "err", err)
				}
				return
			}
			var cmd command
			if err := json.Unmarshal(message, &cmd); err != nil {
				slog.Debug("Ignoring malformed websocket command.", "err", err)
				continue
			}
			if err := control(cmd); err != nil {
				slog.Debug("Websocket command rejected.", "action", cmd.Action, "err", err)
			}
		}
	}()
}
