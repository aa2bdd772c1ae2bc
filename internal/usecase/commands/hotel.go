package commands

import (
	"context"

	"hotelier-hub/internal/domain/hotel"
	"hotelier-hub/internal/infra"
	"hotelier-hub/internal/pkg/errs"
	"hotelier-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrHotelNotFound = errs.New("hotel not found")

type HotelCommands interface {
	UpdateProfile(ctx context.Context, hotelID uuid.UUID, patch hotel.Patch) (*hotel.Hotel, error)
}

type hotelCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewHotelCommands(uow shared.UnitOfWork) HotelCommands {
	return &hotelCommandsImpl{uow: uow}
}

func (c *hotelCommandsImpl) UpdateProfile(ctx context.Context, hotelID uuid.UUID, patch hotel.Patch) (*hotel.Hotel, error) {
	var updated *hotel.Hotel
	err := c.uow.Within(ctx, func(ctx context.Context, r shared.Repos) error {
		h, err := r.Hotels().FindByID(ctx, hotelID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrHotelNotFound
			}
			return err
		}
		h.Apply(patch)
		if err := r.Hotels().Update(ctx, h); err != nil {
			return err
		}
		updated = h
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
