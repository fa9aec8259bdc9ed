package ports

import "context"

// DashboardStats is the landing-page summary, recomputed live from the other
// sections' data on every request.
type DashboardStats struct {
	PatientsRegistered int     `json:"patients_registered"`
	TodaysAppointments int     `json:"todays_appointments"`
	ActiveDoctors      int     `json:"active_doctors"`
	StockAvailability  float64 `json:"stock_availability"`
	TotalRevenue       float64 `json:"total_revenue"`
	BedOccupancy       float64 `json:"bed_occupancy"`
	VitalsMonitored    int     `json:"vitals_monitored"`
	UnreadMessages     int     `json:"unread_messages"`
}

// DashboardService aggregates the section stats into one view.
type DashboardService interface {
	Stats(ctx context.Context) (*DashboardStats, error)
}
