package httperr

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// IsUniqueViolation reconhece a violação do índice parcial de slot
// (provider, date, time) vinda do banco. Postgres em produção, sqlite nos
// testes de repositório.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 23505 unique_violation, 23P01 exclusion_violation
		return pgErr.Code == "23505" || pgErr.Code == "23P01"
	}

	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
