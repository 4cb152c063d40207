package handler

import (
	appointmentRequest "NeuroLink/internal/modules/appointment/application/dto/request"
	appointmentService "NeuroLink/internal/modules/appointment/application/service"
	"NeuroLink/pkg/back"
	"NeuroLink/pkg/xerr"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	svc appointmentService.AppointmentService
}

func NewAppointmentHandler(svc appointmentService.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{svc: svc}
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req appointmentRequest.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		back.Error(c, xerr.BadRequest, xerr.ErrParam.Message)
		return
	}
	appointment, err := h.svc.Create(req)
	back.Result(c, appointment, err)
}

func (h *AppointmentHandler) List(c *gin.Context) {
	appointments, err := h.svc.List()
	back.Result(c, appointments, err)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	appointment, err := h.svc.Get(c.Param("appointment_id"))
	back.Result(c, appointment, err)
}
