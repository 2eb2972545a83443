package dto

// Visão enriquecida de um agendamento para listagem.
// Joins quebrados degradam para "Unknown" em vez de abortar a listagem.
type AppointmentViewDTO struct {
	ID              uint   `json:"id"`
	ServiceID       uint   `json:"service_id"`
	Date            string `json:"date"`
	Status          string `json:"status"`
	CounterpartName string `json:"counterpart_name"`
	ServiceName     string `json:"service_name"`
	ServiceValue    int    `json:"service_value"`
	ServiceDuration int    `json:"service_duration"`
}
