package repository

import (
	"hotel-listing/internal/domain/entity"

	"gorm.io/gorm"
)

type HotelRepository interface {
	Repository[entity.Hotel, int]
	FindByIDWithCountry(db *gorm.DB, id int) (*entity.Hotel, error)
}
