package postgres

import (
	"strings"

	"walletauth/internal/errors"

	"gorm.io/gorm"
)

// isUniqueConstraintViolation reports a duplicate primary key, whether or not
// the dialector translated the driver error.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	// PostgreSQL unique_violation
	return strings.Contains(err.Error(), "SQLSTATE 23505")
}
