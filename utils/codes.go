// utils/codes.go
package utils

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// GenInvoiceNo membuat nomor invoice berurutan, mis. INV-0001.
// Di atas 9999 digit bertambah sendiri (INV-10000).
func GenInvoiceNo(seq int64) string {
	return fmt.Sprintf("INV-%04d", seq)
}

// IsUniqueViolation mengecek apakah err adalah pelanggaran unique constraint
// postgres (SQLSTATE 23505).
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
