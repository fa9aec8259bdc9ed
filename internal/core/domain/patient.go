package domain

import (
	"errors"
	"time"
)

// PatientStatus marks whether a patient record is currently in use.
type PatientStatus string

const (
	PatientActive   PatientStatus = "Active"
	PatientInactive PatientStatus = "Inactive"
)

var ErrPatientNotFound = errors.New("patient not found")

// Patient is one row of the clinic's student-patient register.
type Patient struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	StudentNo   string        `json:"student_no"`
	Programme   string        `json:"programme"`
	Level       string        `json:"level"`
	Gender      string        `json:"gender"`
	DateOfBirth time.Time     `json:"date_of_birth"`
	BloodGroup  string        `json:"blood_group"`
	Genotype    string        `json:"genotype"`
	Rhesus      string        `json:"rhesus"`
	Phone       string        `json:"phone"`
	Condition   string        `json:"condition"`
	Status      PatientStatus `json:"status"`
}

// Age derives the patient's age in whole years as of now.
func (p *Patient) Age(now time.Time) int {
	years := now.Year() - p.DateOfBirth.Year()
	if now.YearDay() < p.DateOfBirth.YearDay() {
		years--
	}
	return years
}
