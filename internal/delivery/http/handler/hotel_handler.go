package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"hotel-listing/internal/delivery/dto"
	"hotel-listing/internal/usecase"
	"hotel-listing/pkg/response"
	"hotel-listing/pkg/validator"

	"github.com/sirupsen/logrus"
)

type HotelHandler struct {
	hotelUsecase usecase.HotelUsecase
	validator    *validator.CustomValidator
	log          *logrus.Logger
}

func NewHotelHandler(hotelUsecase usecase.HotelUsecase, validator *validator.CustomValidator, log *logrus.Logger) *HotelHandler {
	return &HotelHandler{
		hotelUsecase: hotelUsecase,
		validator:    validator,
		log:          log,
	}
}

// GetHotels handles listing every hotel
// @Summary List hotels
// @Tags Hotel
// @Produce json
// @Success 200 {array} dto.HotelResponse
// @Failure 500 {object} response.Response
// @Router /hotel [get]
func (h *HotelHandler) GetHotels(w http.ResponseWriter, r *http.Request) {
	hotels, err := h.hotelUsecase.GetHotels(r.Context())
	if err != nil {
		h.serverError(w, "GetHotels", err)
		return
	}

	response.JSON(w, http.StatusOK, hotels)
}

// GetHotel handles reading one hotel with its country
// @Summary Get hotel
// @Tags Hotel
// @Produce json
// @Param id path int true "Hotel ID"
// @Success 200 {object} dto.HotelResponse
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /hotel/{id} [get]
func (h *HotelHandler) GetHotel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid hotel ID")
		return
	}

	hotel, err := h.hotelUsecase.GetHotel(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidID):
			response.BadRequest(w, "Invalid hotel ID")
		case errors.Is(err, usecase.ErrHotelNotFound):
			response.NotFound(w, "Hotel not found")
		default:
			h.serverError(w, "GetHotel", err)
		}
		return
	}

	response.JSON(w, http.StatusOK, hotel)
}

// CreateHotel handles hotel creation
// @Summary Create hotel
// @Tags Hotel
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateHotelRequest true "Create Hotel Request"
// @Success 201 {object} dto.HotelResponse
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /hotel [post]
func (h *HotelHandler) CreateHotel(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateHotelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Errorf("Invalid POST attempt in %s", "CreateHotel")
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		h.log.Errorf("Invalid POST attempt in %s", "CreateHotel")
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	hotel, err := h.hotelUsecase.CreateHotel(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrCountryNotFound) {
			h.log.Errorf("Submitted data is invalid %s", "CreateHotel")
			response.BadRequest(w, "Country does not exist")
			return
		}
		h.serverError(w, "CreateHotel", err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/hotel/%d", hotel.ID))
	response.JSON(w, http.StatusCreated, hotel)
}

// UpdateHotel handles replacing a hotel's fields
// @Summary Update hotel
// @Tags Hotel
// @Security BearerAuth
// @Accept json
// @Param id path int true "Hotel ID"
// @Param request body dto.UpdateHotelRequest true "Update Hotel Request"
// @Success 204
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /hotel/{id} [put]
func (h *HotelHandler) UpdateHotel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.log.Errorf("Invalid PUT attempt in %s", "UpdateHotel")
		response.BadRequest(w, "Invalid hotel ID")
		return
	}

	var req dto.UpdateHotelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Errorf("Invalid PUT attempt in %s", "UpdateHotel")
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		h.log.Errorf("Invalid PUT attempt in %s", "UpdateHotel")
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.hotelUsecase.UpdateHotel(r.Context(), id, &req); err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidID):
			h.log.Errorf("Invalid PUT attempt in %s", "UpdateHotel")
			response.BadRequest(w, "Invalid hotel ID")
		case errors.Is(err, usecase.ErrHotelNotFound), errors.Is(err, usecase.ErrCountryNotFound):
			h.log.Errorf("Submitted data is invalid %s", "UpdateHotel")
			response.BadRequest(w, "Submitted data is invalid")
		default:
			h.serverError(w, "UpdateHotel", err)
		}
		return
	}

	response.NoContent(w)
}

// DeleteHotel handles hotel removal
// @Summary Delete hotel
// @Tags Hotel
// @Security BearerAuth
// @Param id path int true "Hotel ID"
// @Success 204
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /hotel/{id} [delete]
func (h *HotelHandler) DeleteHotel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.log.Errorf("Invalid DELETE attempt in %s", "DeleteHotel")
		response.BadRequest(w, "Invalid hotel ID")
		return
	}

	if err := h.hotelUsecase.DeleteHotel(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidID):
			h.log.Errorf("Invalid DELETE attempt in %s", "DeleteHotel")
			response.BadRequest(w, "Invalid hotel ID")
		case errors.Is(err, usecase.ErrHotelNotFound):
			h.log.Errorf("Submitted data is invalid %s", "DeleteHotel")
			response.BadRequest(w, "Submitted data is invalid")
		default:
			h.serverError(w, "DeleteHotel", err)
		}
		return
	}

	response.NoContent(w)
}

func (h *HotelHandler) serverError(w http.ResponseWriter, action string, err error) {
	h.log.Errorf("Something went wrong in %s: %+v", action, err)
	response.InternalServerError(w, "Internal server error, please try again later")
}
