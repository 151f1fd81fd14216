package repository

import (
	"errors"

	"hotel-listing/internal/domain/entity"
	domainRepo "hotel-listing/internal/domain/repository"

	"gorm.io/gorm"
)

type countryRepository struct{}

func NewCountryRepository() domainRepo.CountryRepository {
	return &countryRepository{}
}

func (r *countryRepository) FindAll(db *gorm.DB) ([]entity.Country, error) {
	var countries []entity.Country
	err := db.Order("name ASC").Find(&countries).Error
	if err != nil {
		return nil, err
	}
	return countries, nil
}

func (r *countryRepository) FindByID(db *gorm.DB, id int) (*entity.Country, error) {
	var country entity.Country
	err := db.Where("id = ?", id).First(&country).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &country, nil
}

func (r *countryRepository) FindByIDWithHotels(db *gorm.DB, id int) (*entity.Country, error) {
	var country entity.Country
	err := db.Preload("Hotels", func(db *gorm.DB) *gorm.DB {
		return db.Order("hotels.id ASC")
	}).Where("id = ?", id).First(&country).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &country, nil
}

func (r *countryRepository) Exists(db *gorm.DB, id int) (bool, error) {
	var count int64
	if err := db.Model(&entity.Country{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *countryRepository) Create(db *gorm.DB, country *entity.Country) error {
	return db.Omit("Hotels").Create(country).Error
}

func (r *countryRepository) Update(db *gorm.DB, country *entity.Country) error {
	return db.Omit("Hotels").Save(country).Error
}

func (r *countryRepository) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Country{})
	return result.RowsAffected, result.Error
}
