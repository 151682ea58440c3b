package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	ProviderID uint     `json:"provider_id"`
	Provider   Provider `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"provider"`

	Date string `gorm:"size:10" json:"date"` // "2006-01-02"
	Time string `gorm:"size:5" json:"time"`  // "15:04", granularidade de hora cheia

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	ReservationCode string `gorm:"size:20" json:"reservation_code"`

	// Snapshot do catálogo no momento da reserva; edições posteriores do
	// serviço não alteram agendamentos já feitos.
	ServiceName string  `gorm:"size:100" json:"service_name"`
	Price       float64 `json:"price"`

	Phone string `gorm:"size:20" json:"phone"`
	Email string `gorm:"size:100" json:"email"`

	PaymentMethod     string `gorm:"size:20" json:"payment_method"` // on-site | transfer
	TransferReference string `gorm:"size:100" json:"transfer_reference"`

	BookedByID *uint `json:"booked_by_id"` // staff que fez a reserva, se assistida

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
