package queries

import (
	"context"
	"time"

	"hotelier-hub/internal/domain/booking"
	"hotelier-hub/internal/pkg/clock"
	"hotelier-hub/internal/pkg/patch"
	"hotelier-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

// Revenue attribution and occupancy both count only stays that were sold:
// confirmed, in-house or departed.
var soldStatuses = []booking.Status{
	booking.StatusConfirmed,
	booking.StatusCheckedIn,
	booking.StatusCheckedOut,
}

const netProfitMargin = 0.7

type DailyStat struct {
	Date      string  `json:"date"`
	Revenue   float64 `json:"revenue"`
	Occupancy int     `json:"occupancy"`
	Bookings  int     `json:"bookings"`
}

type ReportSummary struct {
	TotalRevenue  float64 `json:"totalRevenue"`
	TotalBookings int     `json:"totalBookings"`
	OccupancyRate int     `json:"occupancyRate"`
	NetProfit     float64 `json:"netProfit"`
}

type DashboardReport struct {
	Summary        ReportSummary `json:"summary"`
	RevenueChart   []DailyStat   `json:"revenueChart"`
	OccupancyChart []DailyStat   `json:"occupancyChart"`
}

type DailyOccupancy struct {
	Date           string `json:"date"`
	OccupiedRooms  int    `json:"occupied_rooms"`
	AvailableRooms int    `json:"available_rooms"`
	OccupancyRate  int    `json:"occupancy_rate"`
}

type OccupancyReport struct {
	StartDate        string           `json:"start_date"`
	EndDate          string           `json:"end_date"`
	TotalInventory   int              `json:"total_inventory"`
	AverageOccupancy int              `json:"average_occupancy"`
	DailyOccupancy   []DailyOccupancy `json:"daily_occupancy"`
}

type ReportQueries interface {
	Dashboard(ctx context.Context, hotelID uuid.UUID, days int) (*DashboardReport, error)
	Occupancy(ctx context.Context, hotelID uuid.UUID, start, end *time.Time) (*OccupancyReport, error)
}

type reportQueriesImpl struct {
	uow shared.UnitOfWork
	clk clock.Clock
}

func NewReportQueries(uow shared.UnitOfWork, clk clock.Clock) ReportQueries {
	return &reportQueriesImpl{uow: uow, clk: clk}
}

// Dashboard aggregates the last N days of sold bookings into summary totals
// and per-day chart data. Revenue is attributed to the check-in date;
// occupancy counts nightly line items against the hotel-wide inventory,
// capped at 100%.
func (q *reportQueriesImpl) Dashboard(ctx context.Context, hotelID uuid.UUID, days int) (*DashboardReport, error) {
	if days <= 0 {
		days = 30
	}
	end := truncateToDay(q.clk.Now())
	start := end.AddDate(0, 0, -days)

	r := q.uow.Repos()
	bookings, err := r.Bookings().ListOverlappingWithStatuses(ctx, hotelID, start, end.AddDate(0, 0, 1), soldStatuses)
	if err != nil {
		return nil, err
	}
	totalInventory, err := r.RoomTypes().TotalInventory(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	// Summary counts only bookings whose check-in falls in the window.
	var totalRevenue float64
	totalBookings := 0
	byCheckIn := make(map[string]*DailyStat)
	chart := make([]DailyStat, 0, days+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		chart = append(chart, DailyStat{Date: d.Format(time.DateOnly)})
	}
	for i := range chart {
		byCheckIn[chart[i].Date] = &chart[i]
	}

	for _, b := range bookings {
		checkIn := b.Stay().CheckIn()
		if checkIn.Before(start) || checkIn.After(end) {
			continue
		}
		totalRevenue += b.TotalAmount()
		totalBookings++
		if stat, ok := byCheckIn[checkIn.Format(time.DateOnly)]; ok {
			stat.Revenue += b.TotalAmount()
			stat.Bookings++
		}
	}

	if totalInventory > 0 {
		for i := range chart {
			d, _ := time.Parse(time.DateOnly, chart[i].Date)
			occupied := 0
			for _, b := range bookings {
				if b.Stay().Occupies(d) {
					occupied += len(b.Rooms())
				}
			}
			chart[i].Occupancy = occupancyRate(occupied, totalInventory)
		}
	}

	avgOccupancy := 0
	if len(chart) > 0 {
		sum := 0
		for _, d := range chart {
			sum += d.Occupancy
		}
		avgOccupancy = sum / len(chart)
	}

	return &DashboardReport{
		Summary: ReportSummary{
			TotalRevenue:  totalRevenue,
			TotalBookings: totalBookings,
			OccupancyRate: avgOccupancy,
			NetProfit:     totalRevenue * netProfitMargin,
		},
		RevenueChart:   chart,
		OccupancyChart: chart,
	}, nil
}

// Occupancy reports per-day occupied/available counts over an inclusive
// date range, defaulting to the last 30 days.
func (q *reportQueriesImpl) Occupancy(ctx context.Context, hotelID uuid.UUID, start, end *time.Time) (*OccupancyReport, error) {
	endDate := truncateToDay(patch.Coalesce(end, q.clk.Now()))
	startDate := truncateToDay(patch.Coalesce(start, endDate.AddDate(0, 0, -30)))

	r := q.uow.Repos()
	totalInventory, err := r.RoomTypes().TotalInventory(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	report := &OccupancyReport{
		StartDate:      startDate.Format(time.DateOnly),
		EndDate:        endDate.Format(time.DateOnly),
		TotalInventory: totalInventory,
		DailyOccupancy: []DailyOccupancy{},
	}
	if totalInventory == 0 {
		return report, nil
	}

	bookings, err := r.Bookings().ListOverlappingWithStatuses(ctx, hotelID, startDate, endDate, soldStatuses)
	if err != nil {
		return nil, err
	}

	totalRate := 0
	for d := startDate; !d.After(endDate); d = d.AddDate(0, 0, 1) {
		occupied := 0
		for _, b := range bookings {
			if b.Stay().Occupies(d) {
				occupied += len(b.Rooms())
			}
		}
		rate := occupancyRate(occupied, totalInventory)
		report.DailyOccupancy = append(report.DailyOccupancy, DailyOccupancy{
			Date:           d.Format(time.DateOnly),
			OccupiedRooms:  occupied,
			AvailableRooms: totalInventory - occupied,
			OccupancyRate:  rate,
		})
		totalRate += rate
	}
	if len(report.DailyOccupancy) > 0 {
		report.AverageOccupancy = totalRate / len(report.DailyOccupancy)
	}

	return report, nil
}

func occupancyRate(occupied, inventory int) int {
	rate := occupied * 100 / inventory
	if rate > 100 {
		return 100
	}
	return rate
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
