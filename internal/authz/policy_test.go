package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidRole(t *testing.T) {
	assert.True(t, IsValidRole(RoleUser))
	assert.True(t, IsValidRole(RoleBarber))
	assert.False(t, IsValidRole("admin"))
	assert.False(t, IsValidRole(""))
}

func TestCanViewUserAppointments(t *testing.T) {
	assert.True(t, CanViewUserAppointments(1, RoleUser, 1))
	assert.False(t, CanViewUserAppointments(2, RoleUser, 1))
	// nem o barbeiro vê a agenda de outro usuário
	assert.False(t, CanViewUserAppointments(2, RoleBarber, 1))
}

func TestCanViewBarberAppointments(t *testing.T) {
	assert.True(t, CanViewBarberAppointments(1, RoleUser, 2))
	assert.True(t, CanViewBarberAppointments(2, RoleBarber, 2))
	assert.False(t, CanViewBarberAppointments(3, "admin", 2))
}

func TestCanCompleteAppointment(t *testing.T) {
	assert.True(t, CanCompleteAppointment(2, 2))
	assert.False(t, CanCompleteAppointment(7, 2))
}

func TestCanListBarbers(t *testing.T) {
	assert.True(t, CanListBarbers(RoleUser))
	assert.False(t, CanListBarbers(RoleBarber))
}
