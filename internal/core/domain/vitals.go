package domain

import (
	"errors"
	"time"
)

// VitalsStatus is derived from the recorded temperature.
type VitalsStatus string

const (
	VitalsNormal    VitalsStatus = "Normal"
	VitalsFever     VitalsStatus = "Fever"
	VitalsHighFever VitalsStatus = "High Fever"
)

var ErrVitalsNotFound = errors.New("vitals record not found")

// VitalsRecord is one patient vitals reading.
type VitalsRecord struct {
	PatientID       string    `json:"patient_id"`
	PatientName     string    `json:"patient_name"`
	Temperature     float64   `json:"temperature"`
	BloodPressure   string    `json:"blood_pressure"`
	HeartRate       int       `json:"heart_rate"`
	OxygenSat       int       `json:"oxygen_saturation"`
	RespiratoryRate int       `json:"respiratory_rate"`
	WeightKg        float64   `json:"weight_kg"`
	HeightCm        float64   `json:"height_cm"`
	RecordedAt      time.Time `json:"recorded_at"`
}

// BMI computes body mass index from weight and height, or 0 when height is
// not usable.
func (v *VitalsRecord) BMI() float64 {
	if v.HeightCm <= 0 {
		return 0
	}
	m := v.HeightCm / 100
	return v.WeightKg / (m * m)
}

// Status grades the reading by temperature.
func (v *VitalsRecord) Status() VitalsStatus {
	switch {
	case v.Temperature > 39.5:
		return VitalsHighFever
	case v.Temperature > 38.0:
		return VitalsFever
	default:
		return VitalsNormal
	}
}
