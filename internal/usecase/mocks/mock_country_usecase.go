package mocks

import (
	"context"

	"hotel-listing/internal/delivery/dto"

	"github.com/stretchr/testify/mock"
)

type MockCountryUsecase struct {
	mock.Mock
}

func (m *MockCountryUsecase) GetCountries(ctx context.Context) ([]dto.CountryResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.CountryResponse), args.Error(1)
}

func (m *MockCountryUsecase) GetCountry(ctx context.Context, id int) (*dto.CountryDetailResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CountryDetailResponse), args.Error(1)
}
