package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
// Es el respaldo final cuando dos creaciones idénticas pasan a la vez el
// chequeo de duplicados y compiten en el INSERT.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" // unique_violation
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
