package authz

// ===============================
// Política única de autorização
// ===============================

const (
	RoleUser   = "user"
	RoleBarber = "barber"
)

func IsValidRole(role string) bool {
	return role == RoleUser || role == RoleBarber
}

// CanViewUserAppointments: só o próprio cliente vê a própria agenda.
func CanViewUserAppointments(callerID uint, callerRole string, ownerID uint) bool {
	return callerID == ownerID
}

// CanViewBarberAppointments: a agenda do barbeiro é visível para clientes
// (escolha de horário) e para o próprio barbeiro.
func CanViewBarberAppointments(callerID uint, callerRole string, barberID uint) bool {
	return callerRole == RoleUser || callerRole == RoleBarber
}

// CanCompleteAppointment: só o barbeiro dono do agendamento conclui.
func CanCompleteAppointment(callerID uint, assignedBarberID uint) bool {
	return callerID == assignedBarberID
}

// CanListBarbers: apenas clientes listam barbeiros para agendar.
func CanListBarbers(callerRole string) bool {
	return callerRole == RoleUser
}
