package main

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/barber-rewards/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-rewards/internal/db"
	"github.com/BruksfildServices01/barber-rewards/internal/models"
)

const defaultPassword = "password123"

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	hashed, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash default password: %v", err)
	}

	barbers := []models.User{
		{FullName: "John Doe", Email: "john.doe@example.com"},
		{FullName: "Michael Smith", Email: "michael.smith@example.com"},
		{FullName: "David Jones", Email: "david.jones@example.com"},
		{FullName: "Robert Johnson", Email: "robert.johnson@example.com"},
		{FullName: "William Brown", Email: "william.brown@example.com"},
		{FullName: "Charles Davis", Email: "charles.davis@example.com"},
		{FullName: "James Miller", Email: "james.miller@example.com"},
		{FullName: "Daniel Moore", Email: "daniel.moore@example.com"},
		{FullName: "Matthew Wilson", Email: "matthew.wilson@example.com"},
		{FullName: "Anthony Taylor", Email: "anthony.taylor@example.com"},
	}

	seededBarbers := 0
	for _, barber := range barbers {
		var count int64
		db.Model(&models.User{}).Where("email = ?", barber.Email).Count(&count)
		if count > 0 {
			continue
		}

		barber.Role = "barber"
		barber.PasswordHash = string(hashed)
		if err := db.Create(&barber).Error; err != nil {
			log.Fatalf("failed to seed barber %s: %v", barber.Email, err)
		}
		seededBarbers++
	}

	services := []models.Service{
		{Name: "Corte de Cabelo Masculino", DurationMin: 30, Value: 30, Points: 10},
		{Name: "Corte de Cabelo Feminino", DurationMin: 60, Value: 50, Points: 15},
		{Name: "Barba", DurationMin: 30, Value: 20, Points: 5},
		{Name: "Corte e Barba", DurationMin: 60, Value: 40, Points: 12},
		{Name: "Design de Sobrancelha", DurationMin: 30, Value: 25, Points: 8},
		{Name: "Corte de Cabelo Infantil", DurationMin: 30, Value: 35, Points: 10},
		{Name: "Escova e Penteado", DurationMin: 60, Value: 70, Points: 20},
		{Name: "Tratamento Capilar", DurationMin: 60, Value: 80, Points: 25},
		{Name: "Manicure e Pedicure", DurationMin: 60, Value: 45, Points: 15},
		{Name: "Depilação", DurationMin: 30, Value: 20, Points: 5},
	}

	seededServices := 0
	for _, svc := range services {
		var count int64
		db.Model(&models.Service{}).Where("name = ?", svc.Name).Count(&count)
		if count > 0 {
			continue
		}

		if err := db.Create(&svc).Error; err != nil {
			log.Fatalf("failed to seed service %s: %v", svc.Name, err)
		}
		seededServices++
	}

	log.Printf("Seed completed: %d barbers, %d services", seededBarbers, seededServices)
}
