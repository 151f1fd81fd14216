package repository

import (
	"context"

	domainRepo "hotel-listing/internal/domain/repository"

	"gorm.io/gorm"
)

type unitOfWork struct {
	db        *gorm.DB
	hotels    domainRepo.HotelRepository
	countries domainRepo.CountryRepository
}

func NewUnitOfWork(db *gorm.DB) domainRepo.UnitOfWork {
	return &unitOfWork{
		db:        db,
		hotels:    NewHotelRepository(),
		countries: NewCountryRepository(),
	}
}

func (u *unitOfWork) Hotels() domainRepo.HotelRepository {
	return u.hotels
}

func (u *unitOfWork) Countries() domainRepo.CountryRepository {
	return u.countries
}

func (u *unitOfWork) Reader(ctx context.Context) *gorm.DB {
	return u.db.WithContext(ctx)
}

func (u *unitOfWork) Save(ctx context.Context, fn func(tx *gorm.DB) error) error {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit().Error
}
