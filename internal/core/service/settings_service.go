package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/upsaclinic/clinic-admin/internal/core/domain"
	"github.com/upsaclinic/clinic-admin/internal/core/ports"
)

// SettingsService implements the settings section over the single clinic
// settings document.
type SettingsService struct {
	repo ports.SettingsRepository
	log  zerolog.Logger
}

func NewSettingsService(repo ports.SettingsRepository, log zerolog.Logger) *SettingsService {
	return &SettingsService{repo: repo, log: log}
}

func (s *SettingsService) Get(ctx context.Context) (*domain.Settings, error) {
	return s.repo.Get(ctx)
}

func (s *SettingsService) Update(ctx context.Context, in domain.Settings) (*domain.Settings, error) {
	if err := s.repo.Put(ctx, &in); err != nil {
		return nil, err
	}
	s.log.Info().Str("clinic_name", in.ClinicName).Msg("settings updated")
	return &in, nil
}
