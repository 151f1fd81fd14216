package dto

// Response DTOs

type CountryResponse struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ShortCode string `json:"shortCode"`
	LongCode  string `json:"longCode,omitempty"`
}

type CountryDetailResponse struct {
	CountryResponse
	Hotels []HotelResponse `json:"hotels"`
}
