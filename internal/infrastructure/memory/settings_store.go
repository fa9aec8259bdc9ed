package memory

import (
	"context"
	"sync"

	"github.com/upsaclinic/clinic-admin/internal/core/domain"
	"github.com/upsaclinic/clinic-admin/internal/core/ports"
)

// SettingsStore holds the single clinic settings document.
type SettingsStore struct {
	mu       sync.RWMutex
	settings domain.Settings
}

var _ ports.SettingsRepository = (*SettingsStore)(nil)

// NewSettingsStore returns a store holding the default clinic profile.
func NewSettingsStore() *SettingsStore {
	return &SettingsStore{
		settings: domain.Settings{
			ClinicName:             "UPSA Clinic",
			Address:                "UPSA Campus, Madina, Accra",
			Phone:                  "030-250-0171",
			Email:                  "clinic@upsa.edu.gh",
			WorkingHours:           "Mon-Fri 8AM-5PM",
			BedCapacity:            50,
			AppointmentSlotMinutes: 30,
		},
	}
}

func (s *SettingsStore) Get(_ context.Context) (*domain.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	clone := s.settings
	return &clone, nil
}

func (s *SettingsStore) Put(_ context.Context, settings *domain.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = *settings
	return nil
}
