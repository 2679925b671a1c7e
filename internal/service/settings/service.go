package settings

import (
	"context"
	"fmt"

	"github.com/cliniquenova/timeclock-backend-go/internal/domain/settings"
)

type SettingsServiceImpl struct {
	settings.SettingsRepository
}

func NewSettingsService(settingsRepository settings.SettingsRepository) settings.SettingsService {
	return &SettingsServiceImpl{SettingsRepository: settingsRepository}
}

// Get implements settings.SettingsService.
func (s *SettingsServiceImpl) Get(ctx context.Context) (settings.Settings, error) {
	cfg, err := s.SettingsRepository.Get(ctx)
	if err != nil {
		return settings.Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}
	return cfg, nil
}

// Update implements settings.SettingsService.
func (s *SettingsServiceImpl) Update(ctx context.Context, req settings.UpdateSettingsRequest) (settings.Settings, error) {
	if err := req.Validate(); err != nil {
		return settings.Settings{}, err
	}

	cfg := settings.Settings{
		DefaultEntryTime:         req.DefaultEntryTime,
		DefaultExitTime:          req.DefaultExitTime,
		LatenessThresholdMinutes: req.LatenessThresholdMinutes,
	}
	if err := s.SettingsRepository.Update(ctx, cfg); err != nil {
		return settings.Settings{}, fmt.Errorf("failed to update settings: %w", err)
	}
	return cfg, nil
}
