package domain

import (
	"errors"
	"time"
)

// AppointmentStatus represents the lifecycle state of an appointment.
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "Scheduled"
	AppointmentCompleted AppointmentStatus = "Completed"
	AppointmentCancelled AppointmentStatus = "Cancelled"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrAppointmentClosed   = errors.New("appointment already completed or cancelled")
)

// Appointment is a single scheduled consultation.
type Appointment struct {
	ID         string            `json:"id"`
	Date       time.Time         `json:"date"`
	Time       string            `json:"time"`
	Patient    string            `json:"patient"`
	Doctor     string            `json:"doctor"`
	Department string            `json:"department"`
	Status     AppointmentStatus `json:"status"`
	Notes      string            `json:"notes"`
}

// Open reports whether the appointment can still be completed or cancelled.
func (a *Appointment) Open() bool {
	return a.Status == AppointmentScheduled
}
