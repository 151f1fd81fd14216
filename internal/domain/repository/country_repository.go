package repository

import (
	"hotel-listing/internal/domain/entity"

	"gorm.io/gorm"
)

type CountryRepository interface {
	Repository[entity.Country, int]
	FindByIDWithHotels(db *gorm.DB, id int) (*entity.Country, error)
	Exists(db *gorm.DB, id int) (bool, error)
}
