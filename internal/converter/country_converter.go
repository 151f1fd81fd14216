package converter

import (
	"hotel-listing/internal/delivery/dto"
	"hotel-listing/internal/domain/entity"
)

func CountryToResponse(country *entity.Country) *dto.CountryResponse {
	if country == nil {
		return nil
	}

	return &dto.CountryResponse{
		ID:        country.ID,
		Name:      country.Name,
		ShortCode: country.ShortCode,
		LongCode:  country.LongCode,
	}
}

func CountriesToResponses(countries []entity.Country) []dto.CountryResponse {
	responses := make([]dto.CountryResponse, len(countries))
	for i := range countries {
		responses[i] = *CountryToResponse(&countries[i])
	}
	return responses
}

// CountryToDetailResponse includes the loaded hotels, each without the back-reference
func CountryToDetailResponse(country *entity.Country) *dto.CountryDetailResponse {
	if country == nil {
		return nil
	}

	hotels := make([]dto.HotelResponse, len(country.Hotels))
	for i, hotel := range country.Hotels {
		hotel.Country = nil
		hotels[i] = *HotelToResponse(&hotel)
	}

	return &dto.CountryDetailResponse{
		CountryResponse: *CountryToResponse(country),
		Hotels:          hotels,
	}
}
