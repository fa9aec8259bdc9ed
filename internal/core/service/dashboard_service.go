package service

import (
	"context"

	"github.com/upsaclinic/clinic-admin/internal/core/ports"
)

// DashboardService assembles the landing-page summary from the section
// services. Every figure is recomputed on request; nothing is cached.
type DashboardService struct {
	patients     ports.PatientService
	doctors      ports.DoctorService
	appointments ports.AppointmentService
	billing      ports.BillingService
	pharmacy     ports.PharmacyService
	messages     ports.MessageService
	vitals       ports.VitalsService
	beds         ports.BedService
}

func NewDashboardService(
	patients ports.PatientService,
	doctors ports.DoctorService,
	appointments ports.AppointmentService,
	billing ports.BillingService,
	pharmacy ports.PharmacyService,
	messages ports.MessageService,
	vitals ports.VitalsService,
	beds ports.BedService,
) *DashboardService {
	return &DashboardService{
		patients:     patients,
		doctors:      doctors,
		appointments: appointments,
		billing:      billing,
		pharmacy:     pharmacy,
		messages:     messages,
		vitals:       vitals,
		beds:         beds,
	}
}

func (s *DashboardService) Stats(ctx context.Context) (*ports.DashboardStats, error) {
	stats := &ports.DashboardStats{}

	patientStats, err := s.patients.Stats(ctx)
	if err != nil {
		return nil, err
	}
	stats.PatientsRegistered = patientStats.Total

	appointmentStats, err := s.appointments.Stats(ctx)
	if err != nil {
		return nil, err
	}
	stats.TodaysAppointments = appointmentStats.Today

	doctorStats, err := s.doctors.Stats(ctx)
	if err != nil {
		return nil, err
	}
	stats.ActiveDoctors = doctorStats.Active

	pharmacyStats, err := s.pharmacy.Stats(ctx)
	if err != nil {
		return nil, err
	}
	if pharmacyStats.Total > 0 {
		stats.StockAvailability = float64(pharmacyStats.InStock) * 100 / float64(pharmacyStats.Total)
	}

	billingStats, err := s.billing.Stats(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalRevenue = billingStats.TotalRevenue

	bedStats, err := s.beds.Stats(ctx)
	if err != nil {
		return nil, err
	}
	stats.BedOccupancy = bedStats.OccupancyRate

	vitalsStats, err := s.vitals.Stats(ctx)
	if err != nil {
		return nil, err
	}
	stats.VitalsMonitored = vitalsStats.Monitored

	messageStats, err := s.messages.Stats(ctx)
	if err != nil {
		return nil, err
	}
	stats.UnreadMessages = messageStats.Unread

	return stats, nil
}
