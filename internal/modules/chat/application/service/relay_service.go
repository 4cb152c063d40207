package service

import (
	"errors"
	"sync"
	"time"

	appointmentService "NeuroLink/internal/modules/appointment/application/service"
	appointmentEntity "NeuroLink/internal/modules/appointment/domain/entity"
	chatRespond "NeuroLink/internal/modules/chat/application/dto/respond"
	chatEntity "NeuroLink/internal/modules/chat/domain/entity"
	"NeuroLink/internal/modules/chat/domain/emotion"
	chatRepository "NeuroLink/internal/modules/chat/domain/repository"
	notificationService "NeuroLink/internal/modules/notification/application/service"
	"NeuroLink/pkg/util"
	"NeuroLink/pkg/xerr"
	"NeuroLink/pkg/zlog"

	"go.uber.org/zap"
)

// Broadcaster is the outbound side of the relay; the registry implements
// it, tests substitute a recorder.
type Broadcaster interface {
	SendToRole(appointmentID string, role chatEntity.Role, v interface{}) bool
}

// RelayService relays between exactly one user and one therapist per
// appointment. It never interprets message content; every accepted
// message is analyzed and persisted with its analysis in one transaction
// before the counterpart sees it.
type RelayService interface {
	// Join validates the appointment and, for a therapist joining a
	// scheduled one, performs the activation transition.
	Join(appointmentID string, role chatEntity.Role) (*appointmentEntity.Appointment, error)
	// Send analyzes, persists and broadcasts one message to the peer.
	Send(appointmentID string, role chatEntity.Role, content string) error
	// EndSession completes the appointment and queues SESSION_ENDED to
	// both sides before returning. Therapist only.
	EndSession(appointmentID string, role chatEntity.Role) error
}

type relayServiceImpl struct {
	appointments appointmentService.AppointmentService
	uow          chatRepository.MessageUnitOfWork
	notifier     notificationService.NotificationService
	broadcaster  Broadcaster

	// One lock per appointment id, so a status read that informs a send
	// can never interleave with a concurrent end-session on the same
	// appointment. Different appointments stay fully independent.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewRelayService(
	appointments appointmentService.AppointmentService,
	uow chatRepository.MessageUnitOfWork,
	notifier notificationService.NotificationService,
	broadcaster Broadcaster,
) RelayService {
	return &relayServiceImpl{
		appointments: appointments,
		uow:          uow,
		notifier:     notifier,
		broadcaster:  broadcaster,
		locks:        make(map[string]*sync.Mutex),
	}
}

func (s *relayServiceImpl) lockFor(appointmentID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l := s.locks[appointmentID]
	if l == nil {
		l = &sync.Mutex{}
		s.locks[appointmentID] = l
	}
	return l
}

// dropLock evicts a completed appointment's lock entry so the map does
// not grow with every appointment ever relayed. A straggler holding the
// old mutex only races other rejected operations on a terminal state.
func (s *relayServiceImpl) dropLock(appointmentID string) {
	s.mu.Lock()
	delete(s.locks, appointmentID)
	s.mu.Unlock()
}

func (s *relayServiceImpl) Join(appointmentID string, role chatEntity.Role) (*appointmentEntity.Appointment, error) {
	l := s.lockFor(appointmentID)
	l.Lock()
	defer l.Unlock()

	appointment, err := s.appointments.Get(appointmentID)
	if err != nil {
		return nil, err
	}

	if role == chatEntity.RoleTherapist && appointment.Status == appointmentEntity.StatusScheduled {
		activated, err := s.appointments.Activate(appointmentID)
		if err != nil {
			return nil, err
		}
		if activated {
			appointment.Status = appointmentEntity.StatusActive
			_ = s.notifier.Notify(notificationService.RoleUser, appointment.UserName,
				"Therapist Joined",
				"Your therapist has joined the session")
			zlog.Info("appointment activated",
				zap.String("appointment_id", appointmentID))
		}
	}

	return appointment, nil
}

func (s *relayServiceImpl) Send(appointmentID string, role chatEntity.Role, content string) error {
	l := s.lockFor(appointmentID)
	l.Lock()
	defer l.Unlock()

	appointment, err := s.appointments.Get(appointmentID)
	if err != nil {
		return err
	}
	if appointment.Status == appointmentEntity.StatusCompleted {
		s.dropLock(appointmentID)
		return xerr.ErrSessionEnded
	}

	result, err := emotion.Analyze(content)
	if err != nil {
		return xerr.New(xerr.AnalysisFailed, err.Error())
	}

	message := &chatEntity.Message{
		Id:            util.GenerateUUID(),
		AppointmentId: appointmentID,
		Sender:        role,
		Content:       content,
		CreatedAt:     time.Now(),
	}

	err = s.uow.Transaction(func(messageRepo chatRepository.MessageRepository, analysisRepo chatRepository.EmotionAnalysisRepository) error {
		if err := messageRepo.Create(message); err != nil {
			return err
		}
		return analysisRepo.Create(&chatEntity.EmotionAnalysis{
			Id:           util.GenerateUUID(),
			MessageId:    message.Id,
			EmotionLabel: result.Label,
			Confidence:   result.Confidence,
			RiskLevel:    result.RiskLevel,
			RiskScore:    result.RiskScore,
			ModelVersion: result.ModelVersion,
			CreatedAt:    time.Now(),
		})
	})
	if err != nil {
		zlog.Error(err.Error())
		return xerr.ErrServerError
	}

	if result.RiskLevel == emotion.RiskHigh {
		zlog.Warn("high risk message detected",
			zap.String("appointment_id", appointmentID),
			zap.String("message_id", message.Id))
	}

	// Delivered to the counterpart only, silently dropped if it is not
	// connected. The sender reloads its own view over REST.
	s.broadcaster.SendToRole(appointmentID, role.Peer(), chatRespond.MessageFrame{
		Type:      chatRespond.FrameMessage,
		Sender:    role.String(),
		Content:   content,
		Timestamp: message.CreatedAt,
	})
	return nil
}

func (s *relayServiceImpl) EndSession(appointmentID string, role chatEntity.Role) error {
	if role != chatEntity.RoleTherapist {
		return xerr.ErrEndSessionRole
	}

	l := s.lockFor(appointmentID)
	l.Lock()
	defer l.Unlock()

	if err := s.appointments.Complete(appointmentID); err != nil {
		if errors.Is(err, xerr.ErrTerminalState) {
			s.dropLock(appointmentID)
		}
		return err
	}

	// Queue the broadcast to both sides while still holding the lock:
	// the therapist must not observe success before the user-side frame
	// is queued, and no racing send may slip in between.
	frame := chatRespond.NewSessionEndedFrame("The therapist has ended the session.")
	s.broadcaster.SendToRole(appointmentID, chatEntity.RoleTherapist, frame)
	s.broadcaster.SendToRole(appointmentID, chatEntity.RoleUser, frame)

	zlog.Info("session ended",
		zap.String("appointment_id", appointmentID))
	s.dropLock(appointmentID)
	return nil
}
