package ports

import (
	"context"
	"time"

	"github.com/upsaclinic/clinic-admin/internal/core/domain"
)

// PatientRepository defines storage operations for the patient register.
type PatientRepository interface {
	List(ctx context.Context) ([]*domain.Patient, error)
	Find(ctx context.Context, id string) (*domain.Patient, error)
	Create(ctx context.Context, p *domain.Patient) error
	Update(ctx context.Context, p *domain.Patient) error
	Delete(ctx context.Context, id string) error
}

// PatientInput carries the fields of a patient record; used for both create
// and update.
type PatientInput struct {
	Name        string
	StudentNo   string
	Programme   string
	Level       string
	Gender      string
	DateOfBirth time.Time
	BloodGroup  string
	Genotype    string
	Rhesus      string
	Phone       string
	Condition   string
	Status      domain.PatientStatus
}

// PatientStats is the register's aggregate label.
type PatientStats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

// PatientService defines use-case operations for the patients section.
type PatientService interface {
	// ListPatients returns patients whose name, ID, student number or
	// programme contains the (case-insensitive) query; empty query lists all.
	ListPatients(ctx context.Context, query string) ([]*domain.Patient, error)
	GetPatient(ctx context.Context, id string) (*domain.Patient, error)
	CreatePatient(ctx context.Context, in PatientInput) (*domain.Patient, error)
	UpdatePatient(ctx context.Context, id string, in PatientInput) (*domain.Patient, error)
	DeletePatient(ctx context.Context, id string) error
	Stats(ctx context.Context) (*PatientStats, error)
}
