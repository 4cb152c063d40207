package request

type CreateAppointmentRequest struct {
	UserName      string `json:"user_name" binding:"required"`
	TherapistName string `json:"therapist_name"`
}
