package rewards

import (
	"context"

	domain "github.com/BruksfildServices01/barber-rewards/internal/domain/rewards"
	"github.com/BruksfildServices01/barber-rewards/internal/httperr"
	"github.com/BruksfildServices01/barber-rewards/internal/models"
)

type Redeemable struct {
	repo domain.Repository
}

func NewRedeemable(repo domain.Repository) *Redeemable {
	return &Redeemable{repo: repo}
}

// Execute aplica apenas o gate fixo de 100 pontos; a viabilidade por
// serviço fica para o resgate em si. Passando o gate, devolve o catálogo
// inteiro, sem filtrar por preço.
func (uc *Redeemable) Execute(ctx context.Context, userID uint) ([]models.Service, error) {
	user, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil || user == nil {
		return nil, httperr.ErrBusiness("user_not_found")
	}

	if err := domain.CheckThreshold(user.Points); err != nil {
		return nil, err
	}

	return uc.repo.ListServices(ctx)
}
