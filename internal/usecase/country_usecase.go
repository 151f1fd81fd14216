package usecase

import (
	"context"

	"hotel-listing/internal/converter"
	"hotel-listing/internal/delivery/dto"
	"hotel-listing/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type CountryUsecase interface {
	GetCountries(ctx context.Context) ([]dto.CountryResponse, error)
	GetCountry(ctx context.Context, id int) (*dto.CountryDetailResponse, error)
}

type countryUsecase struct {
	uow repository.UnitOfWork
	log *logrus.Logger
}

func NewCountryUsecase(uow repository.UnitOfWork, log *logrus.Logger) CountryUsecase {
	return &countryUsecase{
		uow: uow,
		log: log,
	}
}

func (u *countryUsecase) GetCountries(ctx context.Context) ([]dto.CountryResponse, error) {
	countries, err := u.uow.Countries().FindAll(u.uow.Reader(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all countries: %+v", err)
		return nil, err
	}

	return converter.CountriesToResponses(countries), nil
}

func (u *countryUsecase) GetCountry(ctx context.Context, id int) (*dto.CountryDetailResponse, error) {
	if id < 1 {
		return nil, ErrInvalidID
	}

	country, err := u.uow.Countries().FindByIDWithHotels(u.uow.Reader(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find country: %+v", err)
		return nil, err
	}
	if country == nil {
		return nil, ErrCountryNotFound
	}

	return converter.CountryToDetailResponse(country), nil
}
