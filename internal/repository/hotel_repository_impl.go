package repository

import (
	"errors"

	"hotel-listing/internal/domain/entity"
	domainRepo "hotel-listing/internal/domain/repository"

	"gorm.io/gorm"
)

type hotelRepository struct{}

func NewHotelRepository() domainRepo.HotelRepository {
	return &hotelRepository{}
}

func (r *hotelRepository) FindAll(db *gorm.DB) ([]entity.Hotel, error) {
	var hotels []entity.Hotel
	err := db.Order("id ASC").Find(&hotels).Error
	if err != nil {
		return nil, err
	}
	return hotels, nil
}

func (r *hotelRepository) FindByID(db *gorm.DB, id int) (*entity.Hotel, error) {
	var hotel entity.Hotel
	err := db.Where("id = ?", id).First(&hotel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &hotel, nil
}

func (r *hotelRepository) FindByIDWithCountry(db *gorm.DB, id int) (*entity.Hotel, error) {
	var hotel entity.Hotel
	err := db.Preload("Country").Where("id = ?", id).First(&hotel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &hotel, nil
}

func (r *hotelRepository) Create(db *gorm.DB, hotel *entity.Hotel) error {
	return db.Omit("Country").Create(hotel).Error
}

func (r *hotelRepository) Update(db *gorm.DB, hotel *entity.Hotel) error {
	return db.Omit("Country").Save(hotel).Error
}

func (r *hotelRepository) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Hotel{})
	return result.RowsAffected, result.Error
}
