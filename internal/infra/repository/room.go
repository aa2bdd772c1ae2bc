package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"hotelier-hub/internal/domain/room"
	"hotelier-hub/internal/infra"
	"hotelier-hub/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type RoomTypeRepository struct {
	db db.DBTX
}

func NewRoomTypeRepository(database db.DBTX) *RoomTypeRepository {
	return &RoomTypeRepository{db: database}
}


const roomTypeColumns = `id, hotel_id, name, description, base_occupancy, max_occupancy, max_children,
	extra_bed_allowed, base_price, total_inventory, photos, amenities, is_active, created_at, updated_at`

func (r *RoomTypeRepository) Create(ctx context.Context, rt *room.RoomType) error {
	photos, err := json.Marshal(rt.Photos())
	if err != nil {
		return infra.WrapRepoErr("failed to marshal room photos", err)
	}
	amenities, err := json.Marshal(rt.Amenities())
	if err != nil {
		return infra.WrapRepoErr("failed to marshal room amenities", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO room_types (id, hotel_id, name, description, base_occupancy, max_occupancy,
			max_children, extra_bed_allowed, base_price, total_inventory, photos, amenities, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		rt.ID(), rt.HotelID(), rt.Name(), rt.Description(), rt.BaseOccupancy(), rt.MaxOccupancy(),
		rt.MaxChildren(), rt.ExtraBedAllowed(), rt.BasePrice(), rt.TotalInventory(), photos, amenities, rt.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create room type", err)
	}
	return nil
}

func (r *RoomTypeRepository) FindByID(ctx context.Context, hotelID, id uuid.UUID) (*room.RoomType, error) {
	row := r.db.QueryRow(ctx, `SELECT `+roomTypeColumns+` FROM room_types WHERE id = $1 AND hotel_id = $2`, id, hotelID)
	return scanRoomType(row)
}

func (r *RoomTypeRepository) ListByHotel(ctx context.Context, hotelID uuid.UUID) ([]*room.RoomType, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+roomTypeColumns+` FROM room_types WHERE hotel_id = $1 ORDER BY created_at`, hotelID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room types", err)
	}
	defer rows.Close()

	var result []*room.RoomType
	for rows.Next() {
		rt, err := scanRoomType(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room types", err)
	}
	return result, nil
}

func (r *RoomTypeRepository) ListActiveByHotel(ctx context.Context, hotelID uuid.UUID) ([]*room.RoomType, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+roomTypeColumns+` FROM room_types
		WHERE hotel_id = $1 AND is_active ORDER BY created_at`, hotelID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active room types", err)
	}
	defer rows.Close()

	var result []*room.RoomType
	for rows.Next() {
		rt, err := scanRoomType(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room types", err)
	}
	return result, nil
}

func (r *RoomTypeRepository) Update(ctx context.Context, rt *room.RoomType) error {
	photos, err := json.Marshal(rt.Photos())
	if err != nil {
		return infra.WrapRepoErr("failed to marshal room photos", err)
	}
	amenities, err := json.Marshal(rt.Amenities())
	if err != nil {
		return infra.WrapRepoErr("failed to marshal room amenities", err)
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE room_types
		SET name = $3, description = $4, base_occupancy = $5, max_occupancy = $6, max_children = $7,
			extra_bed_allowed = $8, base_price = $9, total_inventory = $10, photos = $11,
			amenities = $12, is_active = $13, updated_at = now()
		WHERE id = $1 AND hotel_id = $2`,
		rt.ID(), rt.HotelID(), rt.Name(), rt.Description(), rt.BaseOccupancy(), rt.MaxOccupancy(),
		rt.MaxChildren(), rt.ExtraBedAllowed(), rt.BasePrice(), rt.TotalInventory(), photos, amenities, rt.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update room type", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room type not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *RoomTypeRepository) Delete(ctx context.Context, hotelID, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM room_types WHERE id = $1 AND hotel_id = $2`, id, hotelID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete room type", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room type not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

// TotalInventory sums the active room-type inventory for a hotel.
func (r *RoomTypeRepository) TotalInventory(ctx context.Context, hotelID uuid.UUID) (int, error) {
	var total *int
	err := r.db.QueryRow(ctx, `
		SELECT SUM(total_inventory) FROM room_types WHERE hotel_id = $1 AND is_active`, hotelID).Scan(&total)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to sum room inventory", err)
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}

func scanRoomType(row pgx.Row) (*room.RoomType, error) {
	var (
		id              uuid.UUID
		hotelID         uuid.UUID
		name            string
		description     *string
		baseOccupancy   int
		maxOccupancy    int
		maxChildren     int
		extraBedAllowed bool
		basePrice       float64
		totalInventory  int
		photosRaw       []byte
		amenitiesRaw    []byte
		isActive        bool
		createdAt       time.Time
		updatedAt       time.Time
	)
	err := row.Scan(&id, &hotelID, &name, &description, &baseOccupancy, &maxOccupancy, &maxChildren,
		&extraBedAllowed, &basePrice, &totalInventory, &photosRaw, &amenitiesRaw, &isActive, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("room type not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan room type", err)
	}

	photos, err := unmarshalStrings(photosRaw)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to unmarshal room photos", err)
	}
	amenities, err := unmarshalStrings(amenitiesRaw)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to unmarshal room amenities", err)
	}

	return room.ReconstructRoomType(id, hotelID, name, description, baseOccupancy, maxOccupancy, maxChildren,
		extraBedAllowed, basePrice, totalInventory, photos, amenities, isActive, createdAt, updatedAt), nil
}

func unmarshalStrings(raw []byte) ([]string, error) {
	if len(raw) == 0 {
		return []string{}, nil
	}
	var s []string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	return s, nil
}
