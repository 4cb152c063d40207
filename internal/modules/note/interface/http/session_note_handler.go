package handler

import (
	noteRequest "NeuroLink/internal/modules/note/application/dto/request"
	noteService "NeuroLink/internal/modules/note/application/service"
	"NeuroLink/pkg/back"
	"NeuroLink/pkg/xerr"

	"github.com/gin-gonic/gin"
)

type SessionNoteHandler struct {
	svc noteService.SessionNoteService
}

func NewSessionNoteHandler(svc noteService.SessionNoteService) *SessionNoteHandler {
	return &SessionNoteHandler{svc: svc}
}

func (h *SessionNoteHandler) Upsert(c *gin.Context) {
	var req noteRequest.UpsertSessionNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		back.Error(c, xerr.BadRequest, xerr.ErrParam.Message)
		return
	}
	note, err := h.svc.Upsert(c.Param("appointment_id"), req)
	back.Result(c, note, err)
}

func (h *SessionNoteHandler) Get(c *gin.Context) {
	note, err := h.svc.Get(c.Param("appointment_id"))
	back.Result(c, note, err)
}

func (h *SessionNoteHandler) Update(c *gin.Context) {
	var req noteRequest.UpdateSessionNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		back.Error(c, xerr.BadRequest, xerr.ErrParam.Message)
		return
	}
	note, err := h.svc.Update(c.Param("appointment_id"), req)
	back.Result(c, note, err)
}
