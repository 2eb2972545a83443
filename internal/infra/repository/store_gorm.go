package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	appt "github.com/BruksfildServices01/barber-rewards/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-rewards/internal/domain/rewards"
	"github.com/BruksfildServices01/barber-rewards/internal/models"
)

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *GormStore) GetUserByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormStore) GetBarberByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var barber models.User
	if err := r.db.WithContext(ctx).
		Where("id = ? AND role = ?", id, "barber").
		First(&barber).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

func (r *GormStore) ListBarbers(
	ctx context.Context,
) ([]models.User, error) {

	var barbers []models.User
	if err := r.db.WithContext(ctx).
		Where("role = ?", "barber").
		Order("created_at ASC").
		Find(&barbers).Error; err != nil {
		return nil, err
	}
	return barbers, nil
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *GormStore) GetServiceByID(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *GormStore) ListServices(
	ctx context.Context,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Limit(10).
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *GormStore) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *GormStore) GetAppointmentByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

// CompleteAppointment faz o flip scheduled → completed num único UPDATE
// condicionado ao status anterior. RowsAffected == 0 significa que outra
// requisição concluiu primeiro.
func (r *GormStore) CompleteAppointment(
	ctx context.Context,
	ap *models.Appointment,
) (bool, error) {

	now := time.Now().UTC()

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND status = ?", ap.ID, "scheduled").
		Updates(map[string]any{
			"status":       "completed",
			"completed_at": now,
		})

	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}

	ap.Status = "completed"
	ap.CompletedAt = &now
	return true, nil
}

// --------------------------------------------------
// Points (incrementos atômicos, sem lock de aplicação)
// --------------------------------------------------

func (r *GormStore) AddPoints(
	ctx context.Context,
	userID uint,
	amount int,
) error {
	return r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Update("points", gorm.Expr("points + ?", amount)).Error
}

func (r *GormStore) SpendPoints(
	ctx context.Context,
	userID uint,
	amount int,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ? AND points >= ?", userID, amount).
		Update("points", gorm.Expr("points - ?", amount))

	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// --------------------------------------------------
// Listing (ordem de inserção)
// --------------------------------------------------

func (r *GormStore) ListAppointmentsByBarber(
	ctx context.Context,
	barberID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Service").
		Where("barber_id = ?", barberID).
		Order("created_at ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *GormStore) ListAppointmentsByUser(
	ctx context.Context,
	userID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Barber").
		Preload("Service").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// Compile-time checks
var _ appt.Repository = (*GormStore)(nil)
var _ rewards.Repository = (*GormStore)(nil)
