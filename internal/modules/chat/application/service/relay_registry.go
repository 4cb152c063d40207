package service

import (
	"sync"

	chatEntity "NeuroLink/internal/modules/chat/domain/entity"
	"NeuroLink/pkg/ws"
)

// RelayRegistry tracks at most one live connection per role per
// appointment. It belongs to the relay channel alone; the triage channel
// keeps its own session map and can never reach these sockets.
type RelayRegistry struct {
	mu    sync.RWMutex
	conns map[string]map[chatEntity.Role]*ws.Client
}

func NewRelayRegistry() *RelayRegistry {
	return &RelayRegistry{
		conns: make(map[string]map[chatEntity.Role]*ws.Client),
	}
}

// Register binds a client under (appointmentID, role), replacing and
// closing any previous connection for that role.
func (r *RelayRegistry) Register(appointmentID string, role chatEntity.Role, c *ws.Client) {
	if c == nil || appointmentID == "" {
		return
	}
	r.mu.Lock()
	pair := r.conns[appointmentID]
	if pair == nil {
		pair = make(map[chatEntity.Role]*ws.Client)
		r.conns[appointmentID] = pair
	}
	prev := pair[role]
	pair[role] = c
	r.mu.Unlock()

	if prev != nil && prev != c {
		prev.Close()
	}
}

// Unregister removes the role's registration, but only if it still points
// at c (a replaced connection must not evict its replacement). The
// appointment entry is discarded once both roles are gone.
func (r *RelayRegistry) Unregister(appointmentID string, role chatEntity.Role, c *ws.Client) {
	r.mu.Lock()
	pair := r.conns[appointmentID]
	if pair != nil && pair[role] == c {
		delete(pair, role)
		if len(pair) == 0 {
			delete(r.conns, appointmentID)
		}
	}
	r.mu.Unlock()
	if c != nil {
		c.Close()
	}
}

// SendToRole queues a frame for the given role's connection. Returns
// false when no such connection exists; there is no buffering for
// absent peers.
func (r *RelayRegistry) SendToRole(appointmentID string, role chatEntity.Role, v interface{}) bool {
	r.mu.RLock()
	var c *ws.Client
	if pair := r.conns[appointmentID]; pair != nil {
		c = pair[role]
	}
	r.mu.RUnlock()
	if c == nil {
		return false
	}
	return c.SendJSON(v) == nil
}
