package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-rewards/internal/audit"
	"github.com/BruksfildServices01/barber-rewards/internal/authz"
	domain "github.com/BruksfildServices01/barber-rewards/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-rewards/internal/domain/rewards"
	"github.com/BruksfildServices01/barber-rewards/internal/httperr"
	"github.com/BruksfildServices01/barber-rewards/internal/models"
)

type CompleteResult struct {
	Appointment   *models.Appointment
	PointsAwarded int
}

type Complete struct {
	repo  domain.Repository
	audit AuditDispatcher
}

func NewComplete(
	repo domain.Repository,
	audit AuditDispatcher,
) *Complete {
	return &Complete{
		repo:  repo,
		audit: audit,
	}
}

func (uc *Complete) Execute(
	ctx context.Context,
	callerID uint,
	appointmentID uint,
) (*CompleteResult, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil || ap == nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if !authz.CanCompleteAppointment(callerID, ap.BarberID) {
		return nil, httperr.ErrBusiness("forbidden")
	}

	if err := domain.CanComplete(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	// Flip condicional scheduled → completed. Quem perde a corrida recebe
	// invalid_state, e só o vencedor credita pontos — nunca duas vezes.
	ok, err := uc.repo.CompleteAppointment(ctx, ap)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusiness("invalid_state")
	}

	awarded := 0
	if ap.PointsEligible {
		svc, err := uc.repo.GetServiceByID(ctx, ap.ServiceID)
		if err != nil || svc == nil {
			return nil, httperr.ErrBusiness("service_not_found")
		}

		awarded = rewards.AwardAmount(svc)
		if err := uc.repo.AddPoints(ctx, ap.UserID, awarded); err != nil {
			return nil, err
		}
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &callerID,
		Action:   "appointment_completed",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"points_awarded": awarded},
	})

	return &CompleteResult{
		Appointment:   ap,
		PointsAwarded: awarded,
	}, nil
}
