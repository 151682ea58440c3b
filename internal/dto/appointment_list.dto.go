package dto

type AppointmentListDTO struct {
	ID              uint    `json:"id"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	Status          string  `json:"status"`
	ReservationCode string  `json:"reservation_code"`
	ClientName      string  `json:"client_name"`
	ServiceName     string  `json:"service_name"`
	Price           float64 `json:"price"`
}
