package rewards

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

	// -------- Catalog --------
	GetServiceByID(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	ListServices(
		ctx context.Context,
	) ([]models.Service, error)

	// -------- Points --------

	// SpendPoints decrements the balance as a conditional update guarded
	// by points >= amount. Returns false when the balance was no longer
	// enough, so the result can never go negative.
	SpendPoints(
		ctx context.Context,
		userID uint,
		amount int,
	) (bool, error)

	// -------- Appointment (redemption books a new visit) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error
}
