package repository

import (
	"context"
	"errors"
	"time"

	"hotelier-hub/internal/domain/rates"
	"hotelier-hub/internal/infra"
	"hotelier-hub/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type RateRepository struct {
	db db.DBTX
}

func NewRateRepository(database db.DBTX) *RateRepository {
	return &RateRepository{db: database}
}


const ratePlanColumns = `id, hotel_id, name, description, meal_plan, is_refundable,
	cancellation_hours, is_active, created_at, updated_at`

func (r *RateRepository) CreatePlan(ctx context.Context, p *rates.RatePlan) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO rate_plans (id, hotel_id, name, description, meal_plan, is_refundable,
			cancellation_hours, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.ID(), p.HotelID(), p.Name(), p.Description(), p.MealPlan(), p.IsRefundable(),
		p.CancellationHours(), p.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create rate plan", err)
	}
	return nil
}

func (r *RateRepository) ListPlansByHotel(ctx context.Context, hotelID uuid.UUID) ([]*rates.RatePlan, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+ratePlanColumns+` FROM rate_plans WHERE hotel_id = $1 ORDER BY created_at`, hotelID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rate plans", err)
	}
	defer rows.Close()

	var result []*rates.RatePlan
	for rows.Next() {
		p, err := scanRatePlan(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate rate plans", err)
	}
	return result, nil
}

func (r *RateRepository) DeletePlan(ctx context.Context, hotelID, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM rate_plans WHERE id = $1 AND hotel_id = $2`, id, hotelID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete rate plan", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("rate plan not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *RateRepository) CreateRoomRate(ctx context.Context, rr *rates.RoomRate) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO room_rates (id, hotel_id, room_type_id, rate_plan_id, date_from, date_to, price)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rr.ID(), rr.HotelID(), rr.RoomTypeID(), rr.RatePlanID(), rr.DateFrom(), rr.DateTo(), rr.Price(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create room rate", err)
	}
	return nil
}

func (r *RateRepository) ListRoomRatesByHotel(ctx context.Context, hotelID uuid.UUID) ([]*rates.RoomRate, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, hotel_id, room_type_id, rate_plan_id, date_from, date_to, price, created_at
		FROM room_rates WHERE hotel_id = $1 ORDER BY date_from`, hotelID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room rates", err)
	}
	defer rows.Close()

	var result []*rates.RoomRate
	for rows.Next() {
		var (
			id         uuid.UUID
			hID        uuid.UUID
			roomTypeID uuid.UUID
			ratePlanID uuid.UUID
			dateFrom   time.Time
			dateTo     time.Time
			price      float64
			createdAt  time.Time
		)
		if err := rows.Scan(&id, &hID, &roomTypeID, &ratePlanID, &dateFrom, &dateTo, &price, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room rate", err)
		}
		result = append(result, rates.ReconstructRoomRate(id, hID, roomTypeID, ratePlanID, dateFrom, dateTo, price, createdAt))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room rates", err)
	}
	return result, nil
}

func scanRatePlan(row pgx.Row) (*rates.RatePlan, error) {
	var (
		id                uuid.UUID
		hotelID           uuid.UUID
		name              string
		description       *string
		mealPlan          string
		isRefundable      bool
		cancellationHours int
		isActive          bool
		createdAt         time.Time
		updatedAt         time.Time
	)
	err := row.Scan(&id, &hotelID, &name, &description, &mealPlan, &isRefundable,
		&cancellationHours, &isActive, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("rate plan not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan rate plan", err)
	}

	return rates.ReconstructRatePlan(id, hotelID, name, description, mealPlan, isRefundable,
		cancellationHours, isActive, createdAt, updatedAt), nil
}
