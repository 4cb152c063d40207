package handler

import (
	appointmentService "NeuroLink/internal/modules/appointment/application/service"
	chatService "NeuroLink/internal/modules/chat/application/service"
	chatEntity "NeuroLink/internal/modules/chat/domain/entity"
	notificationService "NeuroLink/internal/modules/notification/application/service"
	"NeuroLink/pkg/back"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	messages     chatService.MessageService
	relay        chatService.RelayService
	appointments appointmentService.AppointmentService
	notifier     notificationService.NotificationService
}

func NewMessageHandler(
	messages chatService.MessageService,
	relay chatService.RelayService,
	appointments appointmentService.AppointmentService,
	notifier notificationService.NotificationService,
) *MessageHandler {
	return &MessageHandler{
		messages:     messages,
		relay:        relay,
		appointments: appointments,
		notifier:     notifier,
	}
}

func (h *MessageHandler) ListByAppointment(c *gin.Context) {
	items, err := h.messages.ListByAppointment(c.Param("appointment_id"))
	back.Result(c, items, err)
}

// EndSession is the administrative equivalent of the therapist's
// END_SESSION relay command: same transition unit, same broadcast.
func (h *MessageHandler) EndSession(c *gin.Context) {
	appointmentID := c.Param("appointment_id")

	appointment, err := h.appointments.Get(appointmentID)
	if err != nil {
		back.Result(c, nil, err)
		return
	}

	if err := h.relay.EndSession(appointmentID, chatEntity.RoleTherapist); err != nil {
		back.Result(c, nil, err)
		return
	}

	_ = h.notifier.Notify(notificationService.RoleUser, appointment.UserName,
		"Session Ended",
		"Your therapist has ended the session.")

	back.Success(c, gin.H{"appointment_id": appointmentID})
}
