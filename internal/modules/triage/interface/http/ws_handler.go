package handler

import (
	"context"
	"net/http"

	triageRespond "NeuroLink/internal/modules/triage/application/dto/respond"
	triageService "NeuroLink/internal/modules/triage/application/service"
	"NeuroLink/pkg/ws"
	"NeuroLink/pkg/zlog"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// The triage channel has its own upgrader and its own session map; it
// shares no transport or registry with the appointment relay.
type WsHandler struct {
	svc triageService.TriageService
}

func NewWsHandler(svc triageService.TriageService) *WsHandler {
	return &WsHandler{svc: svc}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type inboundFrame struct {
	Content  string `json:"content"`
	UserName string `json:"user_name"`
}

// Connect handles /ws/ai-chat/:session_id.
func (h *WsHandler) Connect(c *gin.Context) {
	sessionID := c.Param("session_id")
	if sessionID == "" {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zlog.Error(err.Error())
		return
	}

	client := ws.NewClient(sessionID, conn)
	h.svc.Open(sessionID)
	defer func() {
		h.svc.Close(sessionID)
		client.Close()
	}()

	go client.WritePump()

	_ = client.SendJSON(triageRespond.NewAiMessageFrame(triageService.WelcomeMessage))

	for {
		var frame inboundFrame
		if err := conn.ReadJSON(&frame); err != nil {
			// Transport loss; all session state dies with the deferred
			// close.
			return
		}

		reply := h.svc.HandleMessage(context.Background(), sessionID, frame.UserName, frame.Content)
		_ = client.SendJSON(reply)
	}
}
