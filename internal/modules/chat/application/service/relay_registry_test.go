package service

import (
	"testing"

	chatEntity "NeuroLink/internal/modules/chat/domain/entity"
	"NeuroLink/pkg/ws"

	"github.com/stretchr/testify/assert"
)

func TestRegistrySendToRole(t *testing.T) {
	r := NewRelayRegistry()
	user := ws.NewClient("a1", nil)
	therapist := ws.NewClient("a1", nil)

	r.Register("a1", chatEntity.RoleUser, user)
	r.Register("a1", chatEntity.RoleTherapist, therapist)

	assert.True(t, r.SendToRole("a1", chatEntity.RoleUser, map[string]string{"type": "system"}))
	assert.True(t, r.SendToRole("a1", chatEntity.RoleTherapist, map[string]string{"type": "system"}))

	// Absent peer: silently dropped, no buffering.
	assert.False(t, r.SendToRole("a2", chatEntity.RoleUser, map[string]string{"type": "system"}))
}

func TestRegistryReplacesPriorConnectionForRole(t *testing.T) {
	r := NewRelayRegistry()
	first := ws.NewClient("a1", nil)
	second := ws.NewClient("a1", nil)

	r.Register("a1", chatEntity.RoleUser, first)
	r.Register("a1", chatEntity.RoleUser, second)

	// The replaced connection is closed; the replacement receives sends.
	assert.False(t, first.Send([]byte("x")))
	assert.True(t, r.SendToRole("a1", chatEntity.RoleUser, map[string]string{"type": "system"}))
}

func TestRegistryUnregisterOnlyRemovesOwnRole(t *testing.T) {
	r := NewRelayRegistry()
	user := ws.NewClient("a1", nil)
	therapist := ws.NewClient("a1", nil)
	r.Register("a1", chatEntity.RoleUser, user)
	r.Register("a1", chatEntity.RoleTherapist, therapist)

	r.Unregister("a1", chatEntity.RoleUser, user)

	assert.False(t, r.SendToRole("a1", chatEntity.RoleUser, "x"))
	assert.True(t, r.SendToRole("a1", chatEntity.RoleTherapist, "x"))
}

func TestRegistrySendToClosedClientReportsFalse(t *testing.T) {
	r := NewRelayRegistry()
	user := ws.NewClient("a1", nil)
	r.Register("a1", chatEntity.RoleUser, user)

	user.Close()
	assert.False(t, r.SendToRole("a1", chatEntity.RoleUser, map[string]string{"type": "system"}))
}

func TestRegistryStaleUnregisterDoesNotEvictReplacement(t *testing.T) {
	r := NewRelayRegistry()
	first := ws.NewClient("a1", nil)
	second := ws.NewClient("a1", nil)
	r.Register("a1", chatEntity.RoleUser, first)
	r.Register("a1", chatEntity.RoleUser, second)

	// The stale reader loop of the replaced connection unregisters last;
	// the live replacement must stay routable.
	r.Unregister("a1", chatEntity.RoleUser, first)
	assert.True(t, r.SendToRole("a1", chatEntity.RoleUser, "x"))
}
