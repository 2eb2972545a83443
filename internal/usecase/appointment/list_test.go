package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-rewards/internal/httperr"
	"github.com/BruksfildServices01/barber-rewards/internal/models"
)

func TestListByBarber(t *testing.T) {
	barber := &models.User{ID: 2, FullName: "John Doe", Role: "barber"}

	t.Run("empty agenda is a valid empty list", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("GetBarberByID", mock.Anything, uint(2)).Return(barber, nil)
		mockRepo.On("ListAppointmentsByBarber", mock.Anything, uint(2)).Return([]models.Appointment{}, nil)

		uc := NewListByBarber(mockRepo)
		views, err := uc.Execute(context.Background(), 1, "user", 2)

		assert.NoError(t, err)
		assert.NotNil(t, views)
		assert.Empty(t, views)
	})

	t.Run("broken joins degrade to Unknown", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("GetBarberByID", mock.Anything, uint(2)).Return(barber, nil)
		mockRepo.On("ListAppointmentsByBarber", mock.Anything, uint(2)).Return([]models.Appointment{
			{
				ID:          10,
				BarberID:    2,
				ServiceID:   3,
				ScheduledAt: time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC),
				Status:      "scheduled",
				// User e Service ausentes: joins quebrados
			},
			{
				ID:          11,
				BarberID:    2,
				ServiceID:   4,
				ScheduledAt: time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC),
				Status:      "completed",
				User:        models.User{ID: 5, FullName: "Jane Roe"},
				Service:     models.Service{ID: 4, Name: "Barba", Value: 20, DurationMin: 30},
			},
		}, nil)

		uc := NewListByBarber(mockRepo)
		views, err := uc.Execute(context.Background(), 2, "barber", 2)

		assert.NoError(t, err)
		assert.Len(t, views, 2)

		assert.Equal(t, "Unknown", views[0].CounterpartName)
		assert.Equal(t, "Unknown", views[0].ServiceName)
		assert.Equal(t, "2025-03-10 14:30:00", views[0].Date)

		assert.Equal(t, "Jane Roe", views[1].CounterpartName)
		assert.Equal(t, "Barba", views[1].ServiceName)
		assert.Equal(t, 20, views[1].ServiceValue)
		assert.Equal(t, 30, views[1].ServiceDuration)
	})

	t.Run("barber must exist", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("GetBarberByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		uc := NewListByBarber(mockRepo)
		views, err := uc.Execute(context.Background(), 1, "user", 99)

		assert.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, "barber_not_found"))
		assert.Nil(t, views)
	})
}

func TestListByUser(t *testing.T) {
	t.Run("only the owner can view their appointments", func(t *testing.T) {
		mockRepo := new(MockRepository)

		uc := NewListByUser(mockRepo)
		views, err := uc.Execute(context.Background(), 7, "user", 1)

		assert.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, "forbidden"))
		assert.Nil(t, views)
		mockRepo.AssertNotCalled(t, "ListAppointmentsByUser", mock.Anything, mock.Anything)
	})

	t.Run("counterpart is the barber", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("ListAppointmentsByUser", mock.Anything, uint(1)).Return([]models.Appointment{
			{
				ID:          10,
				UserID:      1,
				BarberID:    2,
				ServiceID:   3,
				ScheduledAt: time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC),
				Status:      "scheduled",
				Barber:      models.User{ID: 2, FullName: "John Doe", Role: "barber"},
				Service:     models.Service{ID: 3, Name: "Corte e Barba", Value: 40, DurationMin: 60},
			},
		}, nil)

		uc := NewListByUser(mockRepo)
		views, err := uc.Execute(context.Background(), 1, "user", 1)

		assert.NoError(t, err)
		assert.Len(t, views, 1)
		assert.Equal(t, "John Doe", views[0].CounterpartName)
		assert.Equal(t, "Corte e Barba", views[0].ServiceName)
	})
}
