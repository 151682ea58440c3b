package models

import "time"

// Trilha de auditoria do agendamento: criação, conflito, troca de status.
type StatusAudit struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID *uint  `json:"appointment_id"`
	ActorID       *uint  `json:"actor_id"`
	Action        string `gorm:"size:50;not null" json:"action"`

	OldStatus string `gorm:"size:20" json:"old_status"`
	NewStatus string `gorm:"size:20" json:"new_status"`
	Metadata  string `gorm:"type:text" json:"metadata"`

	CreatedAt time.Time `json:"created_at"`
}
