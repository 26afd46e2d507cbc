package util

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrNotFound           = errors.New("resource not found")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrEmailRegistered    = errors.New("user already exists with this email")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrCategoryExists     = errors.New("category name already exists")
	ErrQuizNotFound       = errors.New("quiz not found")
)

// IsDuplicateKey reports whether err is a unique-index violation. GORM
// translates the MySQL error when TranslateError is on; the string checks
// cover the raw MySQL and SQLite driver messages.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
