package models

import "time"

// WorkingHours é um intervalo recorrente semanal de um provider. Pode haver
// mais de um registro por (provider, weekday) — turnos partidos.
type WorkingHours struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	ProviderID uint `gorm:"index:idx_wh_provider_weekday" json:"provider_id"`

	Weekday int `gorm:"index:idx_wh_provider_weekday" json:"weekday"` // 0=domingo .. 6=sábado

	StartTime string `gorm:"size:5" json:"start_time"` // "09:00"
	EndTime   string `gorm:"size:5" json:"end_time"`   // "12:00"
	Available bool   `gorm:"default:true" json:"available"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
