package rewards

import (
	"github.com/BruksfildServices01/barber-rewards/internal/httperr"
	"github.com/BruksfildServices01/barber-rewards/internal/models"
)

// ===============================
// Regras de pontos
// ===============================

// RedeemThreshold é o saldo mínimo para qualquer resgate.
const RedeemThreshold = 100

// AwardAmount retorna quantos pontos a conclusão de um serviço gera.
// O campo Points do catálogo, quando preenchido, substitui o Value.
func AwardAmount(svc *models.Service) int {
	if svc.Points > 0 {
		return svc.Points
	}
	return svc.Value
}

// Cost é o custo em pontos ao resgatar um serviço.
func Cost(svc *models.Service) int {
	return svc.Value
}

// CheckThreshold valida o gate fixo de 100 pontos.
func CheckThreshold(balance int) error {
	if balance < RedeemThreshold {
		return httperr.ErrBusiness("insufficient_points")
	}
	return nil
}

// CheckAffordable valida o custo do serviço escolhido contra o saldo.
func CheckAffordable(balance int, svc *models.Service) error {
	if Cost(svc) > balance {
		return httperr.ErrBusiness("insufficient_points_for_service")
	}
	return nil
}
