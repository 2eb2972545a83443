package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-rewards/internal/authz"
	domain "github.com/BruksfildServices01/barber-rewards/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-rewards/internal/dto"
	"github.com/BruksfildServices01/barber-rewards/internal/httperr"
	"github.com/BruksfildServices01/barber-rewards/internal/models"
	"github.com/BruksfildServices01/barber-rewards/internal/timeutil"
)

// Placeholder para joins quebrados (usuário ou serviço removidos depois
// do agendamento). Uma linha ruim nunca derruba a listagem inteira.
const unknown = "Unknown"

// ======================================================
// LIST BY BARBER
// ======================================================

type ListByBarber struct {
	repo domain.Repository
}

func NewListByBarber(repo domain.Repository) *ListByBarber {
	return &ListByBarber{repo: repo}
}

func (uc *ListByBarber) Execute(
	ctx context.Context,
	callerID uint,
	callerRole string,
	barberID uint,
) ([]dto.AppointmentViewDTO, error) {

	if !authz.CanViewBarberAppointments(callerID, callerRole, barberID) {
		return nil, httperr.ErrBusiness("forbidden")
	}

	if _, err := uc.repo.GetBarberByID(ctx, barberID); err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	aps, err := uc.repo.ListAppointmentsByBarber(ctx, barberID)
	if err != nil {
		return nil, err
	}

	views := make([]dto.AppointmentViewDTO, 0, len(aps))
	for _, ap := range aps {
		views = append(views, toView(ap, ap.User))
	}

	return views, nil
}

// ======================================================
// LIST BY USER
// ======================================================

type ListByUser struct {
	repo domain.Repository
}

func NewListByUser(repo domain.Repository) *ListByUser {
	return &ListByUser{repo: repo}
}

func (uc *ListByUser) Execute(
	ctx context.Context,
	callerID uint,
	callerRole string,
	userID uint,
) ([]dto.AppointmentViewDTO, error) {

	if !authz.CanViewUserAppointments(callerID, callerRole, userID) {
		return nil, httperr.ErrBusiness("forbidden")
	}

	aps, err := uc.repo.ListAppointmentsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]dto.AppointmentViewDTO, 0, len(aps))
	for _, ap := range aps {
		views = append(views, toView(ap, ap.Barber))
	}

	return views, nil
}

// ======================================================
// VIEW
// ======================================================

func toView(ap models.Appointment, counterpart models.User) dto.AppointmentViewDTO {
	view := dto.AppointmentViewDTO{
		ID:              ap.ID,
		ServiceID:       ap.ServiceID,
		Date:            timeutil.Format(ap.ScheduledAt),
		Status:          ap.Status,
		CounterpartName: unknown,
		ServiceName:     unknown,
	}

	if counterpart.ID != 0 {
		view.CounterpartName = counterpart.FullName
	}

	if ap.Service.ID != 0 {
		view.ServiceName = ap.Service.Name
		view.ServiceValue = ap.Service.Value
		view.ServiceDuration = ap.Service.DurationMin
	}

	return view
}
