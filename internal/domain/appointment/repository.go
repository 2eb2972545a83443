package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-rewards/internal/models"
)

type Repository interface {
	// -------- Users --------
	GetUserByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	GetBarberByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	// -------- Service --------
	GetServiceByID(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Appointment (create / read) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointmentByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	// -------- Appointment (state change) --------

	// CompleteAppointment flips scheduled → completed as a single
	// conditional update keyed on the previous status. Returns false
	// when the appointment was not in scheduled state anymore, so a
	// concurrent duplicate attempt can never win twice.
	CompleteAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) (bool, error)

	// -------- Points --------
	AddPoints(
		ctx context.Context,
		userID uint,
		amount int,
	) error

	// -------- Listing (insertion order) --------
	ListAppointmentsByBarber(
		ctx context.Context,
		barberID uint,
	) ([]models.Appointment, error)

	ListAppointmentsByUser(
		ctx context.Context,
		userID uint,
	) ([]models.Appointment, error)
}
