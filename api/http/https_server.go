package http

import (
	"context"

	"NeuroLink/internal/config"
	"NeuroLink/internal/initial"
	jwtMiddleware "NeuroLink/internal/middleware/jwt"
	appointmentService "NeuroLink/internal/modules/appointment/application/service"
	appointmentPersistence "NeuroLink/internal/modules/appointment/infrastructure/persistence"
	appointmentHandler "NeuroLink/internal/modules/appointment/interface/http"
	chatService "NeuroLink/internal/modules/chat/application/service"
	chatPersistence "NeuroLink/internal/modules/chat/infrastructure/persistence"
	chatHandler "NeuroLink/internal/modules/chat/interface/http"
	noteService "NeuroLink/internal/modules/note/application/service"
	notePersistence "NeuroLink/internal/modules/note/infrastructure/persistence"
	noteHandler "NeuroLink/internal/modules/note/interface/http"
	notificationService "NeuroLink/internal/modules/notification/application/service"
	notificationPersistence "NeuroLink/internal/modules/notification/infrastructure/persistence"
	notificationHandler "NeuroLink/internal/modules/notification/interface/http"
	triageService "NeuroLink/internal/modules/triage/application/service"
	"NeuroLink/internal/modules/triage/domain/conversation"
	triageLlm "NeuroLink/internal/modules/triage/infrastructure/llm"
	triageHandler "NeuroLink/internal/modules/triage/interface/http"
	"NeuroLink/pkg/zlog"

	cors "github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var GE *gin.Engine

func init() {
	conf := config.GetConfig()

	GE = gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	GE.Use(cors.New(corsConfig))

	appointmentRepo := appointmentPersistence.NewAppointmentRepository(initial.GormDB)
	messageRepo := chatPersistence.NewMessageRepository(initial.GormDB)
	analysisRepo := chatPersistence.NewEmotionAnalysisRepository(initial.GormDB)
	messageUow := chatPersistence.NewMessageUnitOfWork(initial.GormDB)
	notificationRepo := notificationPersistence.NewNotificationRepository(initial.GormDB)
	noteRepo := notePersistence.NewSessionNoteRepository(initial.GormDB)

	notificationSvc := notificationService.NewNotificationService(notificationRepo)
	appointmentSvc := appointmentService.NewAppointmentService(appointmentRepo, notificationSvc)
	messageSvc := chatService.NewMessageService(messageRepo, analysisRepo)
	noteSvc := noteService.NewSessionNoteService(noteRepo, appointmentSvc)

	// The two realtime channels get fully separate registries; triage
	// keeps its own session map inside its service.
	relayRegistry := chatService.NewRelayRegistry()
	relaySvc := chatService.NewRelayService(appointmentSvc, messageUow, notificationSvc, relayRegistry)

	var responder conversation.Responder
	chatModel, meta, err := triageLlm.NewChatModelFromConfig(context.Background(), conf)
	if err != nil {
		zlog.Warn("triage generator disabled, fallback replies only",
			zap.String("reason", err.Error()))
	} else {
		responder = triageLlm.NewChatModelResponder(chatModel)
		zlog.Info("triage generator ready",
			zap.String("provider", meta.Provider),
			zap.String("model", meta.Model))
	}
	triageSvc := triageService.NewTriageService(appointmentSvc, responder, conf.AIConfig.ChatModel.HistoryWindow)

	appointmentH := appointmentHandler.NewAppointmentHandler(appointmentSvc)
	messageH := chatHandler.NewMessageHandler(messageSvc, relaySvc, appointmentSvc, notificationSvc)
	relayWsH := chatHandler.NewWsHandler(relayRegistry, relaySvc)
	triageWsH := triageHandler.NewWsHandler(triageSvc)
	notificationH := notificationHandler.NewNotificationHandler(notificationSvc)
	noteH := noteHandler.NewSessionNoteHandler(noteSvc)

	// Realtime endpoints. Websocket handshakes cannot carry an auth
	// header, so these live outside the authed group and validate the
	// token query parameter themselves.
	GE.GET("/ws/ai-chat/:session_id", triageWsH.Connect)
	GE.GET("/ws/appointment-chat/:appointment_id", relayWsH.Connect)

	GE.POST("/appointments", appointmentH.Create)
	GE.GET("/appointments", appointmentH.List)
	GE.GET("/appointments/:appointment_id", appointmentH.Get)
	GE.GET("/appointments/:appointment_id/messages", messageH.ListByAppointment)
	GE.GET("/notifications", notificationH.List)
	GE.POST("/notifications/:notification_id/read", notificationH.MarkRead)

	therapistOnly := GE.Group("/")
	therapistOnly.Use(jwtMiddleware.Auth(), jwtMiddleware.RequireRole("therapist"))
	therapistOnly.POST("/appointments/:appointment_id/end-session", messageH.EndSession)
	therapistOnly.POST("/appointments/:appointment_id/notes", noteH.Upsert)
	therapistOnly.GET("/appointments/:appointment_id/notes", noteH.Get)
	therapistOnly.PUT("/appointments/:appointment_id/notes", noteH.Update)
}
