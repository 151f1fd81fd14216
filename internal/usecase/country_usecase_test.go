package usecase

import (
	"context"
	"testing"

	"hotel-listing/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountryUsecase(t *testing.T) {
	db := newTestDB(t)
	uc := NewCountryUsecase(repository.NewUnitOfWork(db), newTestLogger())

	jamaica := seedCountry(t, db, "Jamaica", "JM")
	seedCountry(t, db, "Bahamas", "BS")
	seedHotel(t, db, "Sandals", jamaica.ID)

	countries, err := uc.GetCountries(context.Background())
	require.NoError(t, err)
	require.Len(t, countries, 2)
	assert.Equal(t, "Bahamas", countries[0].Name)

	detail, err := uc.GetCountry(context.Background(), jamaica.ID)
	require.NoError(t, err)
	assert.Equal(t, "JM", detail.ShortCode)
	require.Len(t, detail.Hotels, 1)
	assert.Equal(t, "Sandals", detail.Hotels[0].Name)

	_, err = uc.GetCountry(context.Background(), 999)
	assert.ErrorIs(t, err, ErrCountryNotFound)

	_, err = uc.GetCountry(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidID)
}
