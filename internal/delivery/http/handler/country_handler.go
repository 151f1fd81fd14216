package handler

import (
	"errors"
	"net/http"

	"hotel-listing/internal/domain/entity"
	"hotel-listing/internal/usecase"
	"hotel-listing/pkg/response"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CountryHandler struct {
	countryUsecase usecase.CountryUsecase
	log            *logrus.Logger
}

func NewCountryHandler(countryUsecase usecase.CountryUsecase, log *logrus.Logger) *CountryHandler {
	return &CountryHandler{
		countryUsecase: countryUsecase,
		log:            log,
	}
}

// GetCountries handles listing countries (api-version 1.0)
func (h *CountryHandler) GetCountries(w http.ResponseWriter, r *http.Request) {
	countries, err := h.countryUsecase.GetCountries(r.Context())
	if err != nil {
		h.log.Errorf("Something went wrong in %s: %+v", "GetCountries", err)
		response.InternalServerError(w, "Internal server error, please try again later")
		return
	}

	response.JSON(w, http.StatusOK, countries)
}

// GetCountry handles reading one country with its hotels (api-version 1.0)
func (h *CountryHandler) GetCountry(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid country ID")
		return
	}

	country, err := h.countryUsecase.GetCountry(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidID):
			response.BadRequest(w, "Invalid country ID")
		case errors.Is(err, usecase.ErrCountryNotFound):
			response.NotFound(w, "Country not found")
		default:
			h.log.Errorf("Something went wrong in %s: %+v", "GetCountry", err)
			response.InternalServerError(w, "Internal server error, please try again later")
		}
		return
	}

	response.JSON(w, http.StatusOK, country)
}

// CountryV2Handler serves the deprecated 2.0 surface straight from the store,
// without the repository and DTO layers.
type CountryV2Handler struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewCountryV2Handler(db *gorm.DB, log *logrus.Logger) *CountryV2Handler {
	return &CountryV2Handler{
		db:  db,
		log: log,
	}
}

// GetCountries handles listing raw country rows (api-version 2.0, deprecated)
func (h *CountryV2Handler) GetCountries(w http.ResponseWriter, r *http.Request) {
	var countries []entity.Country
	if err := h.db.WithContext(r.Context()).Find(&countries).Error; err != nil {
		h.log.Errorf("Something went wrong in %s: %+v", "GetCountries", err)
		response.InternalServerError(w, "Internal server error, please try again later")
		return
	}

	response.JSON(w, http.StatusOK, countries)
}
