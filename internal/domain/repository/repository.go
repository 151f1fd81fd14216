package repository

import "gorm.io/gorm"

// Repository is the data-access contract shared by every entity store.
// The handle passed in decides whether the call joins a transaction.
type Repository[T any, ID comparable] interface {
	FindAll(db *gorm.DB) ([]T, error)
	FindByID(db *gorm.DB, id ID) (*T, error)
	Create(db *gorm.DB, e *T) error
	Update(db *gorm.DB, e *T) error
	Delete(db *gorm.DB, id ID) (int64, error)
}
