package usecase

import (
	"context"
	"strconv"

	"hotel-listing/internal/converter"
	"hotel-listing/internal/delivery/dto"
	"hotel-listing/internal/delivery/http/middleware"
	"hotel-listing/internal/domain/entity"
	"hotel-listing/internal/domain/repository"
	repo "hotel-listing/internal/repository"
	"hotel-listing/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type HotelUsecase interface {
	GetHotels(ctx context.Context) ([]dto.HotelResponse, error)
	GetHotel(ctx context.Context, id int) (*dto.HotelResponse, error)
	CreateHotel(ctx context.Context, req *dto.CreateHotelRequest) (*dto.HotelResponse, error)
	UpdateHotel(ctx context.Context, id int, req *dto.UpdateHotelRequest) error
	DeleteHotel(ctx context.Context, id int) error
}

type hotelUsecase struct {
	uow          repository.UnitOfWork
	log          *logrus.Logger
	auditService service.AuditService
}

func NewHotelUsecase(
	uow repository.UnitOfWork,
	log *logrus.Logger,
	auditService service.AuditService,
) HotelUsecase {
	return &hotelUsecase{
		uow:          uow,
		log:          log,
		auditService: auditService,
	}
}

func (u *hotelUsecase) GetHotels(ctx context.Context) ([]dto.HotelResponse, error) {
	hotels, err := u.uow.Hotels().FindAll(u.uow.Reader(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all hotels: %+v", err)
		return nil, err
	}

	return converter.HotelsToResponses(hotels), nil
}

func (u *hotelUsecase) GetHotel(ctx context.Context, id int) (*dto.HotelResponse, error) {
	if id < 1 {
		return nil, ErrInvalidID
	}

	hotel, err := u.uow.Hotels().FindByIDWithCountry(u.uow.Reader(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find hotel: %+v", err)
		return nil, err
	}
	if hotel == nil {
		return nil, ErrHotelNotFound
	}

	return converter.HotelToResponse(hotel), nil
}

func (u *hotelUsecase) CreateHotel(ctx context.Context, req *dto.CreateHotelRequest) (*dto.HotelResponse, error) {
	hotel := converter.CreateRequestToHotel(req)

	err := u.uow.Save(ctx, func(tx *gorm.DB) error {
		exists, err := u.uow.Countries().Exists(tx, hotel.CountryID)
		if err != nil {
			u.log.Warnf("Failed to check country: %+v", err)
			return err
		}
		if !exists {
			return ErrCountryNotFound
		}

		if err := u.uow.Hotels().Create(tx, hotel); err != nil {
			if repo.IsForeignKeyError(err, "country") {
				return ErrCountryNotFound
			}
			u.log.Warnf("Failed to create hotel: %+v", err)
			return err
		}

		if err := u.auditService.LogCreate(ctx, tx, actorFromContext(ctx), entity.AuditActionHotelCreate, "hotel", strconv.Itoa(hotel.ID), converter.HotelToResponse(hotel)); err != nil {
			u.log.Warnf("Failed to create audit log: %+v", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return converter.HotelToResponse(hotel), nil
}

// UpdateHotel replaces the mutable fields of an existing hotel.
// A missing hotel is reported as ErrHotelNotFound and nothing is written.
func (u *hotelUsecase) UpdateHotel(ctx context.Context, id int, req *dto.UpdateHotelRequest) error {
	if id < 1 {
		return ErrInvalidID
	}

	return u.uow.Save(ctx, func(tx *gorm.DB) error {
		hotel, err := u.uow.Hotels().FindByID(tx, id)
		if err != nil {
			u.log.Warnf("Failed to find hotel: %+v", err)
			return err
		}
		if hotel == nil {
			return ErrHotelNotFound
		}

		if hotel.CountryID != req.CountryID {
			exists, err := u.uow.Countries().Exists(tx, req.CountryID)
			if err != nil {
				u.log.Warnf("Failed to check country: %+v", err)
				return err
			}
			if !exists {
				return ErrCountryNotFound
			}
		}

		oldValue := converter.HotelToResponse(hotel)
		converter.ApplyUpdateRequest(req, hotel)

		if err := u.uow.Hotels().Update(tx, hotel); err != nil {
			if repo.IsForeignKeyError(err, "country") {
				return ErrCountryNotFound
			}
			u.log.Warnf("Failed to update hotel: %+v", err)
			return err
		}

		if err := u.auditService.LogUpdate(ctx, tx, actorFromContext(ctx), entity.AuditActionHotelUpdate, "hotel", strconv.Itoa(id), oldValue, converter.HotelToResponse(hotel)); err != nil {
			u.log.Warnf("Failed to create audit log: %+v", err)
		}
		return nil
	})
}

func (u *hotelUsecase) DeleteHotel(ctx context.Context, id int) error {
	if id < 1 {
		return ErrInvalidID
	}

	return u.uow.Save(ctx, func(tx *gorm.DB) error {
		hotel, err := u.uow.Hotels().FindByID(tx, id)
		if err != nil {
			u.log.Warnf("Failed to find hotel: %+v", err)
			return err
		}
		if hotel == nil {
			return ErrHotelNotFound
		}

		if _, err := u.uow.Hotels().Delete(tx, id); err != nil {
			u.log.Warnf("Failed to delete hotel: %+v", err)
			return err
		}

		if err := u.auditService.LogDelete(ctx, tx, actorFromContext(ctx), entity.AuditActionHotelDelete, "hotel", strconv.Itoa(id), converter.HotelToResponse(hotel)); err != nil {
			u.log.Warnf("Failed to create audit log: %+v", err)
		}
		return nil
	})
}

// actorFromContext returns the authenticated caller, nil for anonymous contexts
func actorFromContext(ctx context.Context) *uuid.UUID {
	if userID, ok := middleware.GetUserIDFromContext(ctx); ok {
		return &userID
	}
	return nil
}
