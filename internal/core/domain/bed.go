package domain

import (
	"errors"
	"time"
)

// BedSeverity ranks how closely an admitted patient must be watched.
type BedSeverity string

const (
	SeverityLow      BedSeverity = "Low"
	SeverityMedium   BedSeverity = "Medium"
	SeverityHigh     BedSeverity = "High"
	SeverityCritical BedSeverity = "Critical"
)

var (
	ErrBedNotFound = errors.New("bed not found")
	ErrBedOccupied = errors.New("bed already occupied")
)

// Bed is one occupied bed in a ward. Free beds are not stored; availability
// is the configured capacity minus the occupied count.
type Bed struct {
	BedNo       string      `json:"bed_no"`
	Ward        string      `json:"ward"`
	PatientID   string      `json:"patient_id"`
	PatientName string      `json:"patient_name"`
	AdmittedAt  time.Time   `json:"admitted_at"`
	Diagnosis   string      `json:"diagnosis"`
	Doctor      string      `json:"doctor"`
	Severity    BedSeverity `json:"severity"`
}

// OccupancyStats is the bed panel's aggregate view.
type OccupancyStats struct {
	Capacity      int     `json:"capacity"`
	Occupied      int     `json:"occupied"`
	Available     int     `json:"available"`
	OccupancyRate float64 `json:"occupancy_rate"`
}

// NewOccupancyStats derives occupancy figures from a bed count and capacity.
func NewOccupancyStats(occupied, capacity int) OccupancyStats {
	stats := OccupancyStats{
		Capacity:  capacity,
		Occupied:  occupied,
		Available: capacity - occupied,
	}
	if capacity > 0 {
		stats.OccupancyRate = float64(occupied) * 100 / float64(capacity)
	}
	return stats
}
