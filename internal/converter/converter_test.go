package converter

import (
	"testing"

	"hotel-listing/internal/delivery/dto"
	"hotel-listing/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHotelToResponse(t *testing.T) {
	assert.Nil(t, HotelToResponse(nil))

	summary := HotelToResponse(&entity.Hotel{ID: 3, Name: "Grand", Address: "1 Main St", Rating: 4.5, CountryID: 1})
	require.NotNil(t, summary)
	assert.Equal(t, dto.HotelResponse{ID: 3, Name: "Grand", Address: "1 Main St", Rating: 4.5, CountryID: 1}, *summary)

	detail := HotelToResponse(&entity.Hotel{
		ID: 3, Name: "Grand", CountryID: 1,
		Country: &entity.Country{ID: 1, Name: "Jamaica", ShortCode: "JM", LongCode: "JAM"},
	})
	require.NotNil(t, detail.Country)
	assert.Equal(t, "Jamaica", detail.Country.Name)
	assert.Equal(t, "JM", detail.Country.ShortCode)
}

func TestHotelsToResponses(t *testing.T) {
	out := HotelsToResponses([]entity.Hotel{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}})
	require.Len(t, out, 2)
	assert.Equal(t, "A", out[0].Name)
	assert.Equal(t, 2, out[1].ID)

	assert.NotNil(t, HotelsToResponses(nil))
}

func TestCreateRequestToHotel_LeavesIDZero(t *testing.T) {
	hotel := CreateRequestToHotel(&dto.CreateHotelRequest{Name: "Grand", Address: "1 Main St", Rating: 4.5, CountryID: 2})

	assert.Zero(t, hotel.ID)
	assert.Equal(t, "Grand", hotel.Name)
	assert.Equal(t, "1 Main St", hotel.Address)
	assert.Equal(t, 4.5, hotel.Rating)
	assert.Equal(t, 2, hotel.CountryID)
}

func TestApplyUpdateRequest(t *testing.T) {
	hotel := &entity.Hotel{ID: 7, Name: "Old", Address: "Old St", Rating: 2, CountryID: 1, Country: &entity.Country{ID: 1}}

	ApplyUpdateRequest(&dto.UpdateHotelRequest{Name: "New", Address: "New St", Rating: 5, CountryID: 1}, hotel)
	assert.Equal(t, 7, hotel.ID)
	assert.Equal(t, "New", hotel.Name)
	assert.NotNil(t, hotel.Country)

	ApplyUpdateRequest(&dto.UpdateHotelRequest{Name: "New", Address: "New St", Rating: 5, CountryID: 2}, hotel)
	assert.Equal(t, 2, hotel.CountryID)
	assert.Nil(t, hotel.Country)
}

func TestCountryToDetailResponse(t *testing.T) {
	country := &entity.Country{
		ID: 1, Name: "Jamaica", ShortCode: "JM",
		Hotels: []entity.Hotel{{ID: 1, Name: "Sandals", CountryID: 1}, {ID: 2, Name: "Comfort", CountryID: 1}},
	}

	out := CountryToDetailResponse(country)
	require.NotNil(t, out)
	assert.Equal(t, "Jamaica", out.Name)
	require.Len(t, out.Hotels, 2)
	assert.Nil(t, out.Hotels[0].Country)
	assert.Equal(t, "Comfort", out.Hotels[1].Name)
}

func TestUserToResponse(t *testing.T) {
	id := uuid.New()
	out := UserToResponse(&entity.User{
		ID: id, Email: "a@b.c", FirstName: "Ada", LastName: "L",
		Roles: []entity.Role{{Name: entity.RoleAdministrator}, {Name: entity.RoleUser}},
	})

	assert.Equal(t, id, out.ID)
	assert.Equal(t, []string{"Administrator", "User"}, out.Roles)
	assert.Nil(t, UserToResponse(nil))
}

func TestAuditLogToResponse(t *testing.T) {
	out := AuditLogToResponse(&entity.AuditLog{ID: 9, Action: entity.AuditActionHotelDelete, Metadata: entity.JSON{"entity_id": "3"}})

	assert.Equal(t, int64(9), out.ID)
	assert.Nil(t, out.User)
	assert.Equal(t, "3", out.Metadata["entity_id"])
}
