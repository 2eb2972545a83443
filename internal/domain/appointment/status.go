package appointment

import "github.com/BruksfildServices01/barber-rewards/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
)

// ===============================
// Validations
// ===============================

// CanComplete define se um agendamento pode ser concluído.
// A única transição válida é scheduled → completed, uma única vez.
func CanComplete(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusScheduled
}
