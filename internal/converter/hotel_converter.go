package converter

import (
	"hotel-listing/internal/delivery/dto"
	"hotel-listing/internal/domain/entity"
)

// HotelToResponse converts a Hotel entity to HotelResponse DTO.
// The country is included only when it was loaded.
func HotelToResponse(hotel *entity.Hotel) *dto.HotelResponse {
	if hotel == nil {
		return nil
	}

	return &dto.HotelResponse{
		ID:        hotel.ID,
		Name:      hotel.Name,
		Address:   hotel.Address,
		Rating:    hotel.Rating,
		CountryID: hotel.CountryID,
		Country:   CountryToResponse(hotel.Country),
	}
}

// HotelsToResponses converts a slice of Hotel entities to slice of HotelResponse DTOs
func HotelsToResponses(hotels []entity.Hotel) []dto.HotelResponse {
	responses := make([]dto.HotelResponse, len(hotels))
	for i := range hotels {
		responses[i] = *HotelToResponse(&hotels[i])
	}
	return responses
}

// CreateRequestToHotel builds a new Hotel entity; the identifier is left to the store
func CreateRequestToHotel(req *dto.CreateHotelRequest) *entity.Hotel {
	return &entity.Hotel{
		Name:      req.Name,
		Address:   req.Address,
		Rating:    req.Rating,
		CountryID: req.CountryID,
	}
}

// ApplyUpdateRequest copies the mutable fields onto an existing hotel
func ApplyUpdateRequest(req *dto.UpdateHotelRequest, hotel *entity.Hotel) {
	hotel.Name = req.Name
	hotel.Address = req.Address
	hotel.Rating = req.Rating
	if hotel.CountryID != req.CountryID {
		hotel.CountryID = req.CountryID
		hotel.Country = nil
	}
}
