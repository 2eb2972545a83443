package rewards

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-rewards/internal/audit"
	appt "github.com/BruksfildServices01/barber-rewards/internal/domain/appointment"
	domain "github.com/BruksfildServices01/barber-rewards/internal/domain/rewards"
	"github.com/BruksfildServices01/barber-rewards/internal/httperr"
	"github.com/BruksfildServices01/barber-rewards/internal/models"
	"github.com/BruksfildServices01/barber-rewards/internal/timeutil"
)

// ======================================================
// INPUT
// ======================================================

type RedeemInput struct {
	UserID    uint
	ServiceID uint
	BarberID  uint

	// Zero usa o horário do resgate.
	RequestedAt time.Time
}

type RedeemResult struct {
	Appointment *models.Appointment
	PointsSpent int
}

// ======================================================
// USE CASE
// ======================================================

type Redeem struct {
	repo  domain.Repository
	audit AuditDispatcher
}

func NewRedeem(
	repo domain.Repository,
	audit AuditDispatcher,
) *Redeem {
	return &Redeem{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Redeem) Execute(
	ctx context.Context,
	in RedeemInput,
) (*RedeemResult, error) {

	// --------------------------------------------------
	// 1. Usuário + gate fixo de 100 pontos
	// --------------------------------------------------
	user, err := uc.repo.GetUserByID(ctx, in.UserID)
	if err != nil || user == nil {
		return nil, httperr.ErrBusiness("user_not_found")
	}

	if err := domain.CheckThreshold(user.Points); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. Serviço + custo contra o saldo atual
	// --------------------------------------------------
	svc, err := uc.repo.GetServiceByID(ctx, in.ServiceID)
	if err != nil || svc == nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	if err := domain.CheckAffordable(user.Points, svc); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Barbeiro obrigatório
	// --------------------------------------------------
	if in.BarberID == 0 {
		return nil, httperr.ErrBusiness("missing_barber")
	}
	barber, err := uc.repo.GetBarberByID(ctx, in.BarberID)
	if err != nil || barber == nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	// --------------------------------------------------
	// 4. Débito condicional (points >= custo): o saldo
	//    nunca fica negativo, mesmo sob concorrência
	// --------------------------------------------------
	cost := domain.Cost(svc)
	ok, err := uc.repo.SpendPoints(ctx, user.ID, cost)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusiness("insufficient_points_for_service")
	}

	// --------------------------------------------------
	// 5. O resgate reutiliza o fluxo de agendamento, mas
	//    sem direito a novos pontos na conclusão
	// --------------------------------------------------
	scheduledAt := in.RequestedAt
	if scheduledAt.IsZero() {
		scheduledAt = timeutil.Now()
	}

	ap := &models.Appointment{
		UserID:         user.ID,
		BarberID:       barber.ID,
		ServiceID:      svc.ID,
		ScheduledAt:    scheduledAt.UTC(),
		Status:         string(appt.InitialStatus()),
		PointsEligible: false,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "points_redeemed",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"points_spent": cost, "service_id": svc.ID},
	})

	return &RedeemResult{
		Appointment: ap,
		PointsSpent: cost,
	}, nil
}
