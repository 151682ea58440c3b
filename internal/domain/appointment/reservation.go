package appointment

import (
	"fmt"
	"math/rand"
)

const reservationPrefix = "BRB-"

// NewReservationCode gera o código curto de atendimento. Não é único por
// construção; o identificador numérico do agendamento continua sendo a
// referência autoritativa.
func NewReservationCode() string {
	return fmt.Sprintf("%s%04d", reservationPrefix, rand.Intn(10000))
}
