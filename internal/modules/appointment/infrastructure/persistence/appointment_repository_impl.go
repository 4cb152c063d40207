package persistence

import (
	appointmentEntity "NeuroLink/internal/modules/appointment/domain/entity"
	appointmentRepository "NeuroLink/internal/modules/appointment/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepositoryImpl struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) appointmentRepository.AppointmentRepository {
	return &appointmentRepositoryImpl{db: db}
}

func (r *appointmentRepositoryImpl) Create(appointment *appointmentEntity.Appointment) error {
	return r.db.Create(appointment).Error
}

func (r *appointmentRepositoryImpl) GetByID(id string) (*appointmentEntity.Appointment, error) {
	var appointment appointmentEntity.Appointment
	if err := r.db.Where("id = ?", id).First(&appointment).Error; err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepositoryImpl) List() ([]appointmentEntity.Appointment, error) {
	var appointments []appointmentEntity.Appointment
	err := r.db.Order("created_at DESC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepositoryImpl) UpdateStatusFrom(id string, from []appointmentEntity.AppointmentStatus, to appointmentEntity.AppointmentStatus) (int64, error) {
	res := r.db.
		Model(&appointmentEntity.Appointment{}).
		Where("id = ? AND status IN ?", id, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}
