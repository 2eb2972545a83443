package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-rewards/internal/audit"
	domain "github.com/BruksfildServices01/barber-rewards/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-rewards/internal/httperr"
	"github.com/BruksfildServices01/barber-rewards/internal/models"
)

// MockRepository is a mock implementation of the appointment Repository.
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockRepository) GetBarberByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockRepository) GetServiceByID(ctx context.Context, id uint) (*models.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Service), args.Error(1)
}

func (m *MockRepository) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	args := m.Called(ctx, ap)
	return args.Error(0)
}

func (m *MockRepository) GetAppointmentByID(ctx context.Context, id uint) (*models.Appointment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockRepository) CompleteAppointment(ctx context.Context, ap *models.Appointment) (bool, error) {
	args := m.Called(ctx, ap)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) AddPoints(ctx context.Context, userID uint, amount int) error {
	args := m.Called(ctx, userID, amount)
	return args.Error(0)
}

func (m *MockRepository) ListAppointmentsByBarber(ctx context.Context, barberID uint) ([]models.Appointment, error) {
	args := m.Called(ctx, barberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockRepository) ListAppointmentsByUser(ctx context.Context, userID uint) ([]models.Appointment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

var _ domain.Repository = (*MockRepository)(nil)

// recordingDispatcher captura os eventos de auditoria emitidos.
type recordingDispatcher struct {
	events []audit.Event
}

func (d *recordingDispatcher) Dispatch(ev audit.Event) {
	d.events = append(d.events, ev)
}

func TestCreate(t *testing.T) {
	barber := &models.User{ID: 2, FullName: "John Doe", Role: "barber"}
	svc := &models.Service{ID: 3, Name: "Barba", DurationMin: 30, Value: 20}

	tests := []struct {
		name         string
		input        CreateInput
		setupMock    func(*MockRepository)
		expectedCode string
		checkCreated func(*testing.T, *models.Appointment)
	}{
		{
			name:  "successful booking",
			input: CreateInput{UserID: 1, BarberID: 2, ServiceID: 3, Date: "2025-03-10 14:30:00"},
			setupMock: func(m *MockRepository) {
				m.On("GetBarberByID", mock.Anything, uint(2)).Return(barber, nil)
				m.On("GetServiceByID", mock.Anything, uint(3)).Return(svc, nil)
				m.On("CreateAppointment", mock.Anything, mock.AnythingOfType("*models.Appointment")).Return(nil)
			},
			checkCreated: func(t *testing.T, ap *models.Appointment) {
				assert.Equal(t, "scheduled", ap.Status)
				assert.True(t, ap.PointsEligible)
				assert.Equal(t, uint(1), ap.UserID)
				assert.Equal(t, uint(2), ap.BarberID)
				assert.Equal(t, uint(3), ap.ServiceID)
				assert.Equal(t, time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC), ap.ScheduledAt)
			},
		},
		{
			name:  "barber not found",
			input: CreateInput{UserID: 1, BarberID: 99, ServiceID: 3, Date: "2025-03-10 14:30:00"},
			setupMock: func(m *MockRepository) {
				m.On("GetBarberByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedCode: "barber_not_found",
		},
		{
			name:  "service not found",
			input: CreateInput{UserID: 1, BarberID: 2, ServiceID: 99, Date: "2025-03-10 14:30:00"},
			setupMock: func(m *MockRepository) {
				m.On("GetBarberByID", mock.Anything, uint(2)).Return(barber, nil)
				m.On("GetServiceByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedCode: "service_not_found",
		},
		{
			name:  "invalid date format",
			input: CreateInput{UserID: 1, BarberID: 2, ServiceID: 3, Date: "10/03/2025 14h30"},
			setupMock: func(m *MockRepository) {
				m.On("GetBarberByID", mock.Anything, uint(2)).Return(barber, nil)
				m.On("GetServiceByID", mock.Anything, uint(3)).Return(svc, nil)
			},
			expectedCode: "invalid_date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			tt.setupMock(mockRepo)

			dispatcher := &recordingDispatcher{}
			uc := NewCreate(mockRepo, dispatcher)

			ap, err := uc.Execute(context.Background(), tt.input)

			if tt.expectedCode != "" {
				assert.Error(t, err)
				assert.True(t, httperr.IsBusiness(err, tt.expectedCode))
				assert.Nil(t, ap)
				assert.Empty(t, dispatcher.events)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, ap)
				tt.checkCreated(t, ap)
				assert.Len(t, dispatcher.events, 1)
				assert.Equal(t, "appointment_created", dispatcher.events[0].Action)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
