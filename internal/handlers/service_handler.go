package handlers

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-rewards/internal/audit"
	"github.com/BruksfildServices01/barber-rewards/internal/cache"
	"github.com/BruksfildServices01/barber-rewards/internal/httperr"
	"github.com/BruksfildServices01/barber-rewards/internal/httpresp"
	infraRepo "github.com/BruksfildServices01/barber-rewards/internal/infra/repository"
	"github.com/BruksfildServices01/barber-rewards/internal/middleware"
	"github.com/BruksfildServices01/barber-rewards/internal/models"
)

const (
	catalogCacheKey = "catalog:services"
	catalogCacheTTL = 5 * time.Minute
)

type ServiceHandler struct {
	db    *gorm.DB
	store *infraRepo.GormStore
	cache cache.Cache
	audit *audit.Dispatcher
}

func NewServiceHandler(
	db *gorm.DB,
	store *infraRepo.GormStore,
	c cache.Cache,
	dispatcher *audit.Dispatcher,
) *ServiceHandler {
	return &ServiceHandler{db: db, store: store, cache: c, audit: dispatcher}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateServiceRequest struct {
	Name     string `json:"name" binding:"required"`
	Duration int    `json:"duration" binding:"required"`
	Value    int    `json:"value" binding:"required"`
	Points   int    `json:"points"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ServiceHandler) Create(c *gin.Context) {
	callerID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Name, duration and value are required")
		return
	}

	if req.Duration != 30 && req.Duration != 60 {
		httperr.BadRequest(c, "invalid_duration", "Duration must be either 30 or 60 minutes")
		return
	}

	svc := models.Service{
		Name:        req.Name,
		DurationMin: req.Duration,
		Value:       req.Value,
		Points:      req.Points,
	}

	if err := h.db.Create(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Something went wrong")
		return
	}

	h.invalidateCatalog(c)

	h.audit.Dispatch(audit.Event{
		UserID:   &callerID,
		Action:   "service_created",
		Entity:   "service",
		EntityID: &svc.ID,
	})

	httpresp.Created(c, gin.H{"msg": "Service registered successfully!", "service": svc})
}

// ======================================================
// DELETE
// ======================================================

func (h *ServiceHandler) Delete(c *gin.Context) {
	callerID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	res := h.db.Delete(&models.Service{}, id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_service", "Something went wrong")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "service_not_found", "Service not found")
		return
	}

	h.invalidateCatalog(c)

	h.audit.Dispatch(audit.Event{
		UserID:   &callerID,
		Action:   "service_deleted",
		Entity:   "service",
		EntityID: &id,
	})

	httpresp.OK(c, gin.H{"msg": "Service deleted successfully!"})
}

// ======================================================
// LIST (cache-aside em Redis)
// ======================================================

func (h *ServiceHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if h.cache != nil {
		if raw, hit, err := h.cache.Get(ctx, catalogCacheKey); err == nil && hit {
			var services []models.Service
			if json.Unmarshal(raw, &services) == nil {
				httpresp.OK(c, gin.H{"services": services})
				return
			}
		}
	}

	services, err := h.store.ListServices(ctx)
	if err != nil {
		httperr.Internal(c, "failed_to_list_services", "Something went wrong")
		return
	}

	if h.cache != nil {
		if raw, err := json.Marshal(services); err == nil {
			if err := h.cache.Set(ctx, catalogCacheKey, raw, catalogCacheTTL); err != nil {
				log.Println("catalog cache set error:", err)
			}
		}
	}

	httpresp.OK(c, gin.H{"services": services})
}

func (h *ServiceHandler) invalidateCatalog(c *gin.Context) {
	if h.cache == nil {
		return
	}
	if err := h.cache.Delete(c.Request.Context(), catalogCacheKey); err != nil {
		log.Println("catalog cache invalidation error:", err)
	}
}
