package commands

import (
	"context"

	"hotelier-hub/internal/domain/room"
	"hotelier-hub/internal/infra"
	"hotelier-hub/internal/pkg/errs"
	"hotelier-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrRoomTypeNotFound = errs.New("room type not found")

type CreateRoomTypeInput struct {
	Name            string
	Description     *string
	BaseOccupancy   int
	MaxOccupancy    int
	MaxChildren     int
	ExtraBedAllowed bool
	BasePrice       float64
	TotalInventory  int
	Photos          []string
	Amenities       []string
}

type RoomCommands interface {
	Create(ctx context.Context, hotelID uuid.UUID, in CreateRoomTypeInput) (*room.RoomType, error)
	Update(ctx context.Context, hotelID, roomTypeID uuid.UUID, patch room.Patch) (*room.RoomType, error)
	Delete(ctx context.Context, hotelID, roomTypeID uuid.UUID) error
}

type roomCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewRoomCommands(uow shared.UnitOfWork) RoomCommands {
	return &roomCommandsImpl{uow: uow}
}

func (c *roomCommandsImpl) Create(ctx context.Context, hotelID uuid.UUID, in CreateRoomTypeInput) (*room.RoomType, error) {
	rt, err := room.NewRoomType(hotelID, in.Name, in.Description, in.BaseOccupancy, in.MaxOccupancy,
		in.MaxChildren, in.ExtraBedAllowed, in.BasePrice, in.TotalInventory, in.Photos, in.Amenities)
	if err != nil {
		return nil, err
	}
	if err := c.uow.Repos().RoomTypes().Create(ctx, rt); err != nil {
		return nil, err
	}
	return rt, nil
}

func (c *roomCommandsImpl) Update(ctx context.Context, hotelID, roomTypeID uuid.UUID, patch room.Patch) (*room.RoomType, error) {
	var updated *room.RoomType
	err := c.uow.Within(ctx, func(ctx context.Context, r shared.Repos) error {
		rt, err := r.RoomTypes().FindByID(ctx, hotelID, roomTypeID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoomTypeNotFound
			}
			return err
		}
		if err := rt.Apply(patch); err != nil {
			return err
		}
		if err := r.RoomTypes().Update(ctx, rt); err != nil {
			return err
		}
		updated = rt
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *roomCommandsImpl) Delete(ctx context.Context, hotelID, roomTypeID uuid.UUID) error {
	err := c.uow.Repos().RoomTypes().Delete(ctx, hotelID, roomTypeID)
	if infra.IsKind(err, infra.KindNotFound) {
		return ErrRoomTypeNotFound
	}
	return err
}
