package dto

// Request DTOs

type CreateHotelRequest struct {
	Name      string  `json:"name" validate:"required,max=150"`
	Address   string  `json:"address" validate:"required,max=250"`
	Rating    float64 `json:"rating" validate:"gte=1,lte=5"`
	CountryID int     `json:"countryId" validate:"required,gte=1"`
}

type UpdateHotelRequest struct {
	Name      string  `json:"name" validate:"required,max=150"`
	Address   string  `json:"address" validate:"required,max=250"`
	Rating    float64 `json:"rating" validate:"gte=1,lte=5"`
	CountryID int     `json:"countryId" validate:"required,gte=1"`
}

// Response DTOs

type HotelResponse struct {
	ID        int              `json:"id"`
	Name      string           `json:"name"`
	Address   string           `json:"address"`
	Rating    float64          `json:"rating"`
	CountryID int              `json:"countryId"`
	Country   *CountryResponse `json:"country,omitempty"`
}
