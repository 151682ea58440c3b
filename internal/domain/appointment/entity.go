package appointment

import "time"

type AvailabilityInput struct {
	ProviderID uint
	Date       time.Time
	// Weekday cuja ausência de expediente vira aviso em vez de lista vazia
	// silenciosa (domingo no domínio de referência).
	AdvisoryWeekday int
}

// Availability é o resultado consultivo: a lista pode estar defasada no
// momento do submit, a verificação autoritativa acontece na criação.
type Availability struct {
	Slots    []string `json:"slots"` // "09:00", "10:00", ...
	DayLabel string   `json:"day_label"`
	Advisory string   `json:"advisory,omitempty"`
}

type PaymentMethod string

const (
	PaymentOnSite   PaymentMethod = "on-site"
	PaymentTransfer PaymentMethod = "transfer"
)

func (p PaymentMethod) Valid() bool {
	return p == PaymentOnSite || p == PaymentTransfer
}
