package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-rewards/internal/audit"
	domain "github.com/BruksfildServices01/barber-rewards/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-rewards/internal/httperr"
	"github.com/BruksfildServices01/barber-rewards/internal/models"
	"github.com/BruksfildServices01/barber-rewards/internal/timeutil"
)

// AuditDispatcher é o que os usecases precisam do subsistema de auditoria.
type AuditDispatcher interface {
	Dispatch(ev audit.Event)
}

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	UserID    uint
	BarberID  uint
	ServiceID uint

	// Formato de fio: "2006-01-02 15:04:05", interpretado como UTC.
	Date string
}

// ======================================================
// USE CASE
// ======================================================

type Create struct {
	repo  domain.Repository
	audit AuditDispatcher
}

func NewCreate(
	repo domain.Repository,
	audit AuditDispatcher,
) *Create {
	return &Create{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Create) Execute(
	ctx context.Context,
	in CreateInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Barbeiro precisa existir com role "barber"
	// --------------------------------------------------
	barber, err := uc.repo.GetBarberByID(ctx, in.BarberID)
	if err != nil || barber == nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	// --------------------------------------------------
	// 2. Serviço do catálogo
	// --------------------------------------------------
	svc, err := uc.repo.GetServiceByID(ctx, in.ServiceID)
	if err != nil || svc == nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	// --------------------------------------------------
	// 3. Data/hora em UTC
	// --------------------------------------------------
	scheduledAt, err := timeutil.ParseDateTime(in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	// --------------------------------------------------
	// 4. Criação (sem checagem de conflito de horário:
	//    comportamento aceito, não há prevenção de
	//    double-booking neste sistema)
	// --------------------------------------------------
	ap := &models.Appointment{
		UserID:         in.UserID,
		BarberID:       barber.ID,
		ServiceID:      svc.ID,
		ScheduledAt:    scheduledAt,
		Status:         string(domain.InitialStatus()),
		PointsEligible: true,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5. Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
