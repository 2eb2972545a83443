package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-rewards/internal/httperr"
)

// ======================================================
// IDs validados uma única vez na borda
// ======================================================

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Invalid "+name+" format")
		return 0, false
	}

	return uint(id), true
}

// ======================================================
// Mapeamento código de negócio → HTTP
// ======================================================

func writeBusinessError(c *gin.Context, err error) {
	var be httperr.BusinessError
	if !httperr.AsBusiness(err, &be) {
		httperr.Internal(c, "internal_error", "Something went wrong")
		return
	}

	switch be.Code {
	case "barber_not_found":
		httperr.NotFound(c, be.Code, "Barber not found")
	case "service_not_found":
		httperr.NotFound(c, be.Code, "Service not found")
	case "user_not_found":
		httperr.NotFound(c, be.Code, "User not found")
	case "appointment_not_found":
		httperr.NotFound(c, be.Code, "Appointment not found")
	case "invalid_date":
		httperr.BadRequest(c, be.Code, "Invalid date format, expected YYYY-MM-DD HH:MM:SS")
	case "invalid_state":
		httperr.BadRequest(c, be.Code, "Appointment already completed")
	case "forbidden":
		httperr.Forbidden(c, be.Code, "Access forbidden: insufficient permissions")
	case "insufficient_points":
		httperr.BadRequest(c, be.Code, "You need 100 points to redeem a free service")
	case "insufficient_points_for_service":
		httperr.BadRequest(c, be.Code, "Not enough points for this service")
	case "missing_barber":
		httperr.BadRequest(c, be.Code, "Barber is required")
	default:
		httperr.Internal(c, be.Code, "Something went wrong")
	}
}
