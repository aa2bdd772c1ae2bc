package commands

import (
	"context"
	"time"

	"hotelier-hub/internal/domain/rates"
	"hotelier-hub/internal/infra"
	"hotelier-hub/internal/pkg/errs"
	"hotelier-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrRatePlanNotFound = errs.New("rate plan not found")

type CreateRatePlanInput struct {
	Name              string
	Description       *string
	MealPlan          string
	IsRefundable      bool
	CancellationHours int
}

type CreateRoomRateInput struct {
	RoomTypeID uuid.UUID
	RatePlanID uuid.UUID
	DateFrom   time.Time
	DateTo     time.Time
	Price      float64
}

type RateCommands interface {
	CreatePlan(ctx context.Context, hotelID uuid.UUID, in CreateRatePlanInput) (*rates.RatePlan, error)
	DeletePlan(ctx context.Context, hotelID, planID uuid.UUID) error
	CreateRoomRate(ctx context.Context, hotelID uuid.UUID, in CreateRoomRateInput) (*rates.RoomRate, error)
}

type rateCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewRateCommands(uow shared.UnitOfWork) RateCommands {
	return &rateCommandsImpl{uow: uow}
}

func (c *rateCommandsImpl) CreatePlan(ctx context.Context, hotelID uuid.UUID, in CreateRatePlanInput) (*rates.RatePlan, error) {
	p, err := rates.NewRatePlan(hotelID, in.Name, in.Description, in.MealPlan, in.IsRefundable, in.CancellationHours)
	if err != nil {
		return nil, err
	}
	if err := c.uow.Repos().Rates().CreatePlan(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (c *rateCommandsImpl) DeletePlan(ctx context.Context, hotelID, planID uuid.UUID) error {
	err := c.uow.Repos().Rates().DeletePlan(ctx, hotelID, planID)
	if infra.IsKind(err, infra.KindNotFound) {
		return ErrRatePlanNotFound
	}
	return err
}

func (c *rateCommandsImpl) CreateRoomRate(ctx context.Context, hotelID uuid.UUID, in CreateRoomRateInput) (*rates.RoomRate, error) {
	rr, err := rates.NewRoomRate(hotelID, in.RoomTypeID, in.RatePlanID, in.DateFrom, in.DateTo, in.Price)
	if err != nil {
		return nil, err
	}
	if err := c.uow.Repos().Rates().CreateRoomRate(ctx, rr); err != nil {
		return nil, err
	}
	return rr, nil
}
