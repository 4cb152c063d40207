package handler

import (
	"fmt"
	"net/http"
	"time"

	chatRequest "NeuroLink/internal/modules/chat/application/dto/request"
	chatRespond "NeuroLink/internal/modules/chat/application/dto/respond"
	chatService "NeuroLink/internal/modules/chat/application/service"
	chatEntity "NeuroLink/internal/modules/chat/domain/entity"
	"NeuroLink/pkg/util/myjwt"
	"NeuroLink/pkg/ws"
	"NeuroLink/pkg/xerr"
	"NeuroLink/pkg/zlog"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type WsHandler struct {
	registry *chatService.RelayRegistry
	svc      chatService.RelayService
}

func NewWsHandler(registry *chatService.RelayRegistry, svc chatService.RelayService) *WsHandler {
	return &WsHandler{registry: registry, svc: svc}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func closeWithPolicy(conn *websocket.Conn, reason string) {
	msg := websocket.FormatCloseMessage(websocket.ClosePolicyViolation, reason)
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
	_ = conn.Close()
}

// Connect handles /ws/appointment-chat/:appointment_id?role=...
// A bad role or unknown appointment closes the socket with a policy
// violation before any state changes.
func (h *WsHandler) Connect(c *gin.Context) {
	appointmentID := c.Param("appointment_id")
	roleParam := c.Query("role")

	// Browsers cannot set headers on websocket handshakes, so the token
	// travels as a query parameter and is checked here when present.
	if token := c.Query("token"); token != "" {
		if _, err := myjwt.ParseToken(token); err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zlog.Error(err.Error())
		return
	}

	role, err := chatEntity.ParseRole(roleParam)
	if err != nil {
		closeWithPolicy(conn, "Invalid or missing role parameter")
		return
	}

	if _, err := h.svc.Join(appointmentID, role); err != nil {
		// Unknown failures must not masquerade as a missing appointment.
		reason := xerr.ErrServerError.Message
		if e, ok := err.(*xerr.CodeError); ok {
			reason = e.Message
		}
		closeWithPolicy(conn, reason)
		return
	}

	client := ws.NewClient(appointmentID, conn)
	h.registry.Register(appointmentID, role, client)
	defer h.registry.Unregister(appointmentID, role, client)

	go client.WritePump()

	_ = client.SendJSON(chatRespond.NewSystemFrame(fmt.Sprintf("Connected as %s", role)))

	conn.SetReadLimit(1 << 20)

	for {
		var frame chatRequest.InboundFrame
		if err := conn.ReadJSON(&frame); err != nil {
			// Transport loss; the deferred unregister is the implicit
			// disconnect. No redelivery.
			return
		}

		if frame.Type == chatRequest.TypeEndSession {
			if err := h.svc.EndSession(appointmentID, role); err != nil {
				h.sendError(client, err)
			}
			continue
		}

		if frame.Content == "" {
			continue
		}

		if err := h.svc.Send(appointmentID, role, frame.Content); err != nil {
			h.sendError(client, err)
		}
	}
}

func (h *WsHandler) sendError(client *ws.Client, err error) {
	msg := xerr.ErrServerError.Message
	if e, ok := err.(*xerr.CodeError); ok {
		msg = e.Message
	}
	_ = client.SendJSON(chatRespond.NewErrorFrame(msg))
}
