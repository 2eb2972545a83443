package rewards

import (
	"context"

	"github.com/BruksfildServices01/barber-rewards/internal/audit"
	domain "github.com/BruksfildServices01/barber-rewards/internal/domain/rewards"
	"github.com/BruksfildServices01/barber-rewards/internal/httperr"
)

// AuditDispatcher é o que os usecases precisam do subsistema de auditoria.
type AuditDispatcher interface {
	Dispatch(ev audit.Event)
}

type Balance struct {
	repo domain.Repository
}

func NewBalance(repo domain.Repository) *Balance {
	return &Balance{repo: repo}
}

// Execute retorna o saldo de pontos. Usuário sem movimentação tem saldo
// zero, nunca erro.
func (uc *Balance) Execute(ctx context.Context, userID uint) (int, error) {
	user, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil || user == nil {
		return 0, httperr.ErrBusiness("user_not_found")
	}

	return user.Points, nil
}
