package helper

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// IsUniqueViolation: deteksi pelanggaran unique index Postgres (SQLSTATE 23505).
// Race antara pre-flight check dan write ditangkap lewat sini, bukan bug,
// jalur error yang memang diharapkan.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
