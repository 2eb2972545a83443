package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-rewards/internal/httpresp"
	"github.com/BruksfildServices01/barber-rewards/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/barber-rewards/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC       *ucAppointment.Create
	completeUC     *ucAppointment.Complete
	listByBarberUC *ucAppointment.ListByBarber
	listByUserUC   *ucAppointment.ListByUser
}

func NewAppointmentHandler(
	createUC *ucAppointment.Create,
	completeUC *ucAppointment.Complete,
	listByBarberUC *ucAppointment.ListByBarber,
	listByUserUC *ucAppointment.ListByUser,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:       createUC,
		completeUC:     completeUC,
		listByBarberUC: listByBarberUC,
		listByUserUC:   listByUserUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	BarberID  uint   `json:"barber_id" binding:"required"`
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Barber, service, and date are required",
		})
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateInput{
		UserID:    userID,
		BarberID:  req.BarberID,
		ServiceID: req.ServiceID,
		Date:      req.Date,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"msg":         "Appointment created successfully!",
		"appointment": ap,
	})
}

// ======================================================
// COMPLETE
// ======================================================

func (h *AppointmentHandler) Complete(c *gin.Context) {
	callerID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.completeUC.Execute(c.Request.Context(), callerID, id)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"status":         result.Appointment.Status,
		"points_awarded": result.PointsAwarded,
	})
}

// ======================================================
// LIST BY BARBER
// ======================================================

func (h *AppointmentHandler) ListByBarber(c *gin.Context) {
	callerID := c.MustGet(middleware.ContextUserID).(uint)
	callerRole := c.MustGet(middleware.ContextUserRole).(string)

	barberID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	views, err := h.listByBarberUC.Execute(c.Request.Context(), callerID, callerRole, barberID)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	if len(views) == 0 {
		httpresp.OK(c, gin.H{
			"msg":          "No appointments found for this barber",
			"appointments": views,
		})
		return
	}

	httpresp.OK(c, gin.H{"appointments": views})
}

// ======================================================
// LIST BY USER
// ======================================================

func (h *AppointmentHandler) ListByUser(c *gin.Context) {
	callerID := c.MustGet(middleware.ContextUserID).(uint)
	callerRole := c.MustGet(middleware.ContextUserRole).(string)

	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	views, err := h.listByUserUC.Execute(c.Request.Context(), callerID, callerRole, userID)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	if len(views) == 0 {
		httpresp.OK(c, gin.H{
			"msg":          "No appointments found for this user",
			"appointments": views,
		})
		return
	}

	httpresp.OK(c, gin.H{"appointments": views})
}
