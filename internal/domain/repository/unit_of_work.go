package repository

import (
	"context"

	"gorm.io/gorm"
)

// UnitOfWork groups the catalogue repositories behind one commit
type UnitOfWork interface {
	Hotels() HotelRepository
	Countries() CountryRepository

	// Reader returns a handle for reads outside of any transaction
	Reader(ctx context.Context) *gorm.DB

	// Save runs fn in a single transaction and commits when fn returns nil
	Save(ctx context.Context, fn func(tx *gorm.DB) error) error
}
