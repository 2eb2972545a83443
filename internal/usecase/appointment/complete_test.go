package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-rewards/internal/httperr"
	"github.com/BruksfildServices01/barber-rewards/internal/models"
)

func TestComplete(t *testing.T) {
	svc := &models.Service{ID: 3, Name: "Barba", Value: 50}

	scheduled := func() *models.Appointment {
		return &models.Appointment{
			ID:             10,
			UserID:         1,
			BarberID:       2,
			ServiceID:      3,
			Status:         "scheduled",
			PointsEligible: true,
		}
	}

	tests := []struct {
		name          string
		callerID      uint
		setupMock     func(*MockRepository)
		expectedCode  string
		expectedAward int
	}{
		{
			name:     "assigned barber completes and points are awarded",
			callerID: 2,
			setupMock: func(m *MockRepository) {
				m.On("GetAppointmentByID", mock.Anything, uint(10)).Return(scheduled(), nil)
				m.On("CompleteAppointment", mock.Anything, mock.AnythingOfType("*models.Appointment")).Return(true, nil)
				m.On("GetServiceByID", mock.Anything, uint(3)).Return(svc, nil)
				m.On("AddPoints", mock.Anything, uint(1), 50).Return(nil)
			},
			expectedAward: 50,
		},
		{
			name:     "appointment not found",
			callerID: 2,
			setupMock: func(m *MockRepository) {
				m.On("GetAppointmentByID", mock.Anything, uint(10)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedCode: "appointment_not_found",
		},
		{
			name:     "caller is not the assigned barber",
			callerID: 7,
			setupMock: func(m *MockRepository) {
				m.On("GetAppointmentByID", mock.Anything, uint(10)).Return(scheduled(), nil)
			},
			expectedCode: "forbidden",
		},
		{
			name:     "already completed",
			callerID: 2,
			setupMock: func(m *MockRepository) {
				ap := scheduled()
				ap.Status = "completed"
				m.On("GetAppointmentByID", mock.Anything, uint(10)).Return(ap, nil)
			},
			expectedCode: "invalid_state",
		},
		{
			name:     "concurrent retry loses the conditional flip",
			callerID: 2,
			setupMock: func(m *MockRepository) {
				m.On("GetAppointmentByID", mock.Anything, uint(10)).Return(scheduled(), nil)
				m.On("CompleteAppointment", mock.Anything, mock.AnythingOfType("*models.Appointment")).Return(false, nil)
			},
			expectedCode: "invalid_state",
		},
		{
			name:     "service deleted after booking",
			callerID: 2,
			setupMock: func(m *MockRepository) {
				m.On("GetAppointmentByID", mock.Anything, uint(10)).Return(scheduled(), nil)
				m.On("CompleteAppointment", mock.Anything, mock.AnythingOfType("*models.Appointment")).Return(true, nil)
				m.On("GetServiceByID", mock.Anything, uint(3)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedCode: "service_not_found",
		},
		{
			name:     "redeemed visit completes without a new award",
			callerID: 2,
			setupMock: func(m *MockRepository) {
				ap := scheduled()
				ap.PointsEligible = false
				m.On("GetAppointmentByID", mock.Anything, uint(10)).Return(ap, nil)
				m.On("CompleteAppointment", mock.Anything, mock.AnythingOfType("*models.Appointment")).Return(true, nil)
			},
			expectedAward: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			tt.setupMock(mockRepo)

			dispatcher := &recordingDispatcher{}
			uc := NewComplete(mockRepo, dispatcher)

			result, err := uc.Execute(context.Background(), tt.callerID, 10)

			if tt.expectedCode != "" {
				assert.Error(t, err)
				assert.True(t, httperr.IsBusiness(err, tt.expectedCode))
				assert.Nil(t, result)
				// nenhum ponto pode ter sido creditado em caso de erro
				mockRepo.AssertNotCalled(t, "AddPoints", mock.Anything, mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, result)
				assert.Equal(t, tt.expectedAward, result.PointsAwarded)
				assert.Len(t, dispatcher.events, 1)
				assert.Equal(t, "appointment_completed", dispatcher.events[0].Action)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

// O serviço com campo Points explícito credita esse valor, não o preço.
func TestCompleteUsesExplicitAwardOverride(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("GetAppointmentByID", mock.Anything, uint(10)).Return(&models.Appointment{
		ID: 10, UserID: 1, BarberID: 2, ServiceID: 3,
		Status: "scheduled", PointsEligible: true,
	}, nil)
	mockRepo.On("CompleteAppointment", mock.Anything, mock.AnythingOfType("*models.Appointment")).Return(true, nil)
	mockRepo.On("GetServiceByID", mock.Anything, uint(3)).Return(&models.Service{
		ID: 3, Value: 40, Points: 12,
	}, nil)
	mockRepo.On("AddPoints", mock.Anything, uint(1), 12).Return(nil)

	uc := NewComplete(mockRepo, &recordingDispatcher{})
	result, err := uc.Execute(context.Background(), 2, 10)

	assert.NoError(t, err)
	assert.Equal(t, 12, result.PointsAwarded)
	mockRepo.AssertExpectations(t)
}
