package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const codigoUniqueViolation = "23505"

// sqlState extrae el código SQLSTATE de un error del driver, o "" si no aplica.
func sqlState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation reporta si el error es una violación de constraint único.
// El fallback por texto cubre errores ya envueltos que perdieron el tipo.
func isUniqueViolation(err error) bool {
	if sqlState(err) == codigoUniqueViolation {
		return true
	}
	return strings.Contains(err.Error(), codigoUniqueViolation)
}
