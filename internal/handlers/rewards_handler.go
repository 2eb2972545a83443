package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-rewards/internal/httpresp"
	"github.com/BruksfildServices01/barber-rewards/internal/middleware"
	ucRewards "github.com/BruksfildServices01/barber-rewards/internal/usecase/rewards"
)

// ======================================================
// HANDLER
// ======================================================

type RewardsHandler struct {
	balanceUC    *ucRewards.Balance
	redeemableUC *ucRewards.Redeemable
	redeemUC     *ucRewards.Redeem
}

func NewRewardsHandler(
	balanceUC *ucRewards.Balance,
	redeemableUC *ucRewards.Redeemable,
	redeemUC *ucRewards.Redeem,
) *RewardsHandler {
	return &RewardsHandler{
		balanceUC:    balanceUC,
		redeemableUC: redeemableUC,
		redeemUC:     redeemUC,
	}
}

// ======================================================
// BALANCE
// ======================================================

func (h *RewardsHandler) GetPoints(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	points, err := h.balanceUC.Execute(c.Request.Context(), userID)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"points": points})
}

// ======================================================
// REDEEMABLE SERVICES
// ======================================================

func (h *RewardsHandler) ListRedeemable(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	services, err := h.redeemableUC.Execute(c.Request.Context(), userID)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"services": services})
}

// ======================================================
// REDEEM
// ======================================================

type RedeemRequest struct {
	BarberID uint `json:"barber_id" binding:"required"`
}

func (h *RewardsHandler) Redeem(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	serviceID, ok := parseIDParam(c, "serviceId")
	if !ok {
		return
	}

	var req RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing_barber",
			"message": "Barber is required",
		})
		return
	}

	result, err := h.redeemUC.Execute(c.Request.Context(), ucRewards.RedeemInput{
		UserID:    userID,
		ServiceID: serviceID,
		BarberID:  req.BarberID,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"msg":          "Free service redeemed successfully!",
		"points_spent": result.PointsSpent,
		"appointment":  result.Appointment,
	})
}
