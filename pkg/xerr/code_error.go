package xerr

import "fmt"

// CodeError carries a stable error code alongside the message so
// handlers can map failures onto the response envelope directly.
type CodeError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *CodeError) Error() string {
	return fmt.Sprintf("Code: %d, Message: %s", e.Code, e.Message)
}

func New(code int, msg string) *CodeError {
	return &CodeError{Code: code, Message: msg}
}

const (
	OK                  = 200
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	Conflict            = 409
	InternalServerError = 500

	// Session-engine codes. StateError and AnalysisFailure are recoverable
	// within a connection's lifetime; only protocol-level failures close it.
	SessionEnded   = 4001
	TerminalState  = 4002
	InvalidRole    = 4003
	AnalysisFailed = 4004
)

var (
	ErrSuccess     = New(OK, "Success")
	ErrServerError = New(InternalServerError, "internal server error")
	ErrParam       = New(BadRequest, "invalid parameters")

	ErrAppointmentNotFound = New(NotFound, "Appointment not found")
	ErrInvalidRole         = New(InvalidRole, "Invalid or missing role parameter")
	ErrSessionEnded        = New(SessionEnded, "Cannot send messages - session has ended")
	ErrTerminalState       = New(TerminalState, "appointment is completed and cannot change state")
	ErrEndSessionRole      = New(InvalidRole, "only the therapist can end the session")
)
