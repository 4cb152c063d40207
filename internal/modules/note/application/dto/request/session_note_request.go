package request

type UpsertSessionNoteRequest struct {
	TherapistName string `json:"therapist_name" binding:"required"`
	Notes         string `json:"notes" binding:"required"`
}

type UpdateSessionNoteRequest struct {
	Notes string `json:"notes" binding:"required"`
}
