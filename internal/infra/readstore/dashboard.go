// Package readstore holds read-only aggregation queries that never map to
// a domain entity: dashboard counters and report inputs. They are
// recomputed per request, not cached.
package readstore

import (
	"context"
	"time"

	"hotelier-hub/internal/infra"
	"hotelier-hub/internal/infra/db"

	"github.com/google/uuid"
)

type DashboardStore struct {
	db db.DBTX
}

func NewDashboardStore(database db.DBTX) *DashboardStore {
	return &DashboardStore{db: database}
}

// Stats is the summary counter block shown on the dashboard.
type Stats struct {
	TodayArrivals    int     `json:"today_arrivals"`
	TodayDepartures  int     `json:"today_departures"`
	CurrentOccupancy int     `json:"current_occupancy"`
	TodayRevenue     float64 `json:"today_revenue"`
	PendingBookings  int     `json:"pending_bookings"`
	TotalRooms       int     `json:"total_rooms"`
}

func (s *DashboardStore) Stats(ctx context.Context, hotelID uuid.UUID, today time.Time) (Stats, error) {
	var stats Stats

	err := s.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM bookings
		WHERE hotel_id = $1 AND check_in = $2 AND status IN ('confirmed', 'pending')`,
		hotelID, today).Scan(&stats.TodayArrivals)
	if err != nil {
		return Stats{}, infra.WrapRepoErr("failed to count today's arrivals", err)
	}

	err = s.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM bookings
		WHERE hotel_id = $1 AND check_out = $2 AND status = 'checked_in'`,
		hotelID, today).Scan(&stats.TodayDepartures)
	if err != nil {
		return Stats{}, infra.WrapRepoErr("failed to count today's departures", err)
	}

	err = s.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM bookings
		WHERE hotel_id = $1 AND status = 'checked_in'`,
		hotelID).Scan(&stats.CurrentOccupancy)
	if err != nil {
		return Stats{}, infra.WrapRepoErr("failed to count current occupancy", err)
	}

	err = s.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(total_amount), 0) FROM bookings
		WHERE hotel_id = $1 AND created_at::date = $2`,
		hotelID, today).Scan(&stats.TodayRevenue)
	if err != nil {
		return Stats{}, infra.WrapRepoErr("failed to sum today's revenue", err)
	}

	err = s.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM bookings
		WHERE hotel_id = $1 AND status = 'pending'`,
		hotelID).Scan(&stats.PendingBookings)
	if err != nil {
		return Stats{}, infra.WrapRepoErr("failed to count pending bookings", err)
	}

	err = s.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(total_inventory), 0) FROM room_types
		WHERE hotel_id = $1 AND is_active`,
		hotelID).Scan(&stats.TotalRooms)
	if err != nil {
		return Stats{}, infra.WrapRepoErr("failed to sum total rooms", err)
	}

	return stats, nil
}
