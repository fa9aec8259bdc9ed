package ports

import (
	"context"

	"github.com/upsaclinic/clinic-admin/internal/core/domain"
)

// DoctorRepository defines storage operations for the doctor register.
type DoctorRepository interface {
	List(ctx context.Context) ([]*domain.Doctor, error)
	Find(ctx context.Context, id string) (*domain.Doctor, error)
	Create(ctx context.Context, d *domain.Doctor) error
	Update(ctx context.Context, d *domain.Doctor) error
	Delete(ctx context.Context, id string) error
}

// DoctorInput carries the fields of a doctor record.
type DoctorInput struct {
	Name       string
	Speciality string
	Department string
	Phone      string
	Email      string
	Schedule   string
	Status     domain.DoctorStatus
	Experience string
}

// DoctorStats is the register's aggregate label.
type DoctorStats struct {
	Total   int `json:"total"`
	Active  int `json:"active"`
	OnLeave int `json:"on_leave"`
}

// DoctorService defines use-case operations for the doctors section.
type DoctorService interface {
	ListDoctors(ctx context.Context, query string) ([]*domain.Doctor, error)
	GetDoctor(ctx context.Context, id string) (*domain.Doctor, error)
	CreateDoctor(ctx context.Context, in DoctorInput) (*domain.Doctor, error)
	UpdateDoctor(ctx context.Context, id string, in DoctorInput) (*domain.Doctor, error)
	DeleteDoctor(ctx context.Context, id string) error
	Stats(ctx context.Context) (*DoctorStats, error)
}
