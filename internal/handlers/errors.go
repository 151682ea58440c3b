package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barberlane/booking-engine/internal/httperr"
)

// writeBusinessError traduz o código de negócio para HTTP. Falhas de store
// nunca vazam detalhe interno: logamos e respondemos genérico.
func writeBusinessError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, httperr.CodeUnauthenticated):
		httperr.Unauthorized(c, httperr.CodeUnauthenticated, "Identidade não reconhecida.")
	case httperr.IsBusiness(err, httperr.CodeUnauthorized):
		httperr.Forbidden(c, httperr.CodeUnauthorized, "Permissão insuficiente.")
	case httperr.IsBusiness(err, httperr.CodeInvalidBooking):
		httperr.WriteReason(
			c, http.StatusBadRequest,
			httperr.CodeInvalidBooking,
			httperr.BusinessReason(err),
			"Dados da reserva inválidos.",
		)
	case httperr.IsBusiness(err, httperr.CodePastDate):
		httperr.BadRequest(c, httperr.CodePastDate, "Data e hora precisam estar no futuro.")
	case httperr.IsBusiness(err, httperr.CodeProviderUnavailable):
		httperr.BadRequest(c, httperr.CodeProviderUnavailable, "Profissional indisponível.")
	case httperr.IsBusiness(err, httperr.CodeServiceNotFound):
		httperr.BadRequest(c, httperr.CodeServiceNotFound, "Serviço não encontrado.")
	case httperr.IsBusiness(err, httperr.CodeSlotTaken):
		httperr.Conflict(c, httperr.CodeSlotTaken, "Horário acabou de ser ocupado. Escolha outro.")
	case httperr.IsBusiness(err, httperr.CodeAppointmentNotFound):
		httperr.NotFound(c, httperr.CodeAppointmentNotFound, "Agendamento não encontrado.")
	default:
		log.Println("store error:", err)
		httperr.Internal(c, httperr.CodeStoreUnavailable, "Falha interna. Tente novamente.")
	}
}
