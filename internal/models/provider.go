package models

import "time"

// Provider é o profissional agendável. Criação/desativação acontece fora
// deste núcleo; aqui é somente leitura.
type Provider struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name            string `gorm:"size:100;not null" json:"name"`
	Specialty       string `gorm:"size:100" json:"specialty"`
	YearsExperience int    `json:"years_experience"`
	Active          bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
