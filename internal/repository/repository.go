// Package repository is the GORM persistence adapter. It works against
// PostgreSQL and SQLite alike; every query carries the caller's context.
package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a scoped lookup matches no row.
var ErrNotFound = errors.New("record not found")

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
