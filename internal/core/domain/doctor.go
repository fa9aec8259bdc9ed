package domain

import "errors"

// DoctorStatus is the duty state shown in the doctors register.
type DoctorStatus string

const (
	DoctorActive  DoctorStatus = "Active"
	DoctorOnLeave DoctorStatus = "On Leave"
)

var ErrDoctorNotFound = errors.New("doctor not found")

// Doctor is one row of the clinic's doctor register.
type Doctor struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Speciality string       `json:"speciality"`
	Department string       `json:"department"`
	Phone      string       `json:"phone"`
	Email      string       `json:"email"`
	Schedule   string       `json:"schedule"`
	Status     DoctorStatus `json:"status"`
	Experience string       `json:"experience"`
}
