package models

import "time"

// Serviço do catálogo. Value é o preço e também o custo em pontos no resgate.
// Points, quando maior que zero, substitui Value como quantidade ganha ao concluir.
type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	DurationMin int    `json:"duration"`
	Value       int    `gorm:"not null" json:"value"`
	Points      int    `gorm:"not null;default:0" json:"points"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
