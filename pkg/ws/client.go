package ws

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"NeuroLink/pkg/zlog"

	"github.com/gorilla/websocket"
)

// ErrSendDropped reports a payload that was never queued: the client is
// closed or its outbound queue is full.
var ErrSendDropped = errors.New("ws: send dropped")

// Client wraps one websocket connection with a buffered outbound queue.
// Sends are fire-and-forget relative to the reader loop; a client whose
// queue is full is considered dead and the payload is dropped.
type Client struct {
	key  string
	conn *websocket.Conn

	mu     sync.Mutex
	send   chan []byte
	closed bool
}

func NewClient(key string, conn *websocket.Conn) *Client {
	return &Client{
		key:  key,
		conn: conn,
		send: make(chan []byte, 64),
	}
}

func (c *Client) Key() string {
	return c.key
}

func (c *Client) Close() {
	c.mu.Lock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
	c.mu.Unlock()
	if c.conn != nil {
		_ = c.conn.Close()
	}
}

// Send queues a payload for the write pump. Returns false when the
// client is closed or its queue is full.
func (c *Client) Send(payload []byte) bool {
	if len(payload) == 0 {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- payload:
		return true
	default:
		return false
	}
}

func (c *Client) SendJSON(v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if !c.Send(b) {
		return ErrSendDropped
	}
	return nil
}

func (c *Client) WritePump() {
	if c.conn == nil {
		return
	}
	for msg := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			zlog.Error(err.Error())
			return
		}
	}
}
