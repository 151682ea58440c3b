package models

import "time"

// Cliente — tanto o cliente autenticado quanto o cadastrado pela recepção.
// Registros criados pelo balcão nascem com senha provisória inutilizável.
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Email string `gorm:"size:100;uniqueIndex;not null" json:"email"`

	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Provisional  bool   `gorm:"default:false" json:"provisional"`
	Active       bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
