package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-rewards/internal/authz"
	"github.com/BruksfildServices01/barber-rewards/internal/httperr"
	"github.com/BruksfildServices01/barber-rewards/internal/httpresp"
	infraRepo "github.com/BruksfildServices01/barber-rewards/internal/infra/repository"
	"github.com/BruksfildServices01/barber-rewards/internal/middleware"
)

type UserHandler struct {
	store *infraRepo.GormStore
}

func NewUserHandler(store *infraRepo.GormStore) *UserHandler {
	return &UserHandler{store: store}
}

// ======================================================
// LIST BARBERS (CLIENTE)
// ======================================================

func (h *UserHandler) ListBarbers(c *gin.Context) {
	role := c.MustGet(middleware.ContextUserRole).(string)

	if !authz.CanListBarbers(role) {
		httperr.Forbidden(c, "forbidden", "Access forbidden: insufficient permissions")
		return
	}

	barbers, err := h.store.ListBarbers(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Something went wrong")
		return
	}

	out := make([]gin.H, 0, len(barbers))
	for _, b := range barbers {
		out = append(out, gin.H{
			"id":       b.ID,
			"fullname": b.FullName,
			"email":    b.Email,
			"role":     b.Role,
		})
	}

	httpresp.OK(c, gin.H{"barbers": out})
}

// ======================================================
// CHECK ROLE
// ======================================================

// A role vem da claim do token, nunca de um re-fetch do usuário.
func (h *UserHandler) CheckRole(c *gin.Context) {
	role := c.MustGet(middleware.ContextUserRole).(string)
	httpresp.OK(c, gin.H{"role": role})
}
