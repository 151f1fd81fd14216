package mocks

import (
	"context"

	"hotel-listing/internal/delivery/dto"

	"github.com/stretchr/testify/mock"
)

type MockHotelUsecase struct {
	mock.Mock
}

func (m *MockHotelUsecase) GetHotels(ctx context.Context) ([]dto.HotelResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.HotelResponse), args.Error(1)
}

func (m *MockHotelUsecase) GetHotel(ctx context.Context, id int) (*dto.HotelResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.HotelResponse), args.Error(1)
}

func (m *MockHotelUsecase) CreateHotel(ctx context.Context, req *dto.CreateHotelRequest) (*dto.HotelResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.HotelResponse), args.Error(1)
}

func (m *MockHotelUsecase) UpdateHotel(ctx context.Context, id int, req *dto.UpdateHotelRequest) error {
	args := m.Called(ctx, id, req)
	return args.Error(0)
}

func (m *MockHotelUsecase) DeleteHotel(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
