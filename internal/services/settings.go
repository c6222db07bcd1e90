package services

import (
	"context"

	"github.com/speedsolve/cubecomp/internal/logger"
	"github.com/speedsolve/cubecomp/internal/repository"
)

// SettingsService handles key-value settings
type SettingsService struct {
	log  logger.Logger
	repo repository.SettingsRepository
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(log logger.Logger, repo repository.SettingsRepository) *SettingsService {
	return &SettingsService{log: log, repo: repo}
}

// GetSetting retrieves a setting. A missing key yields an empty string.
func (s *SettingsService) GetSetting(ctx context.Context, key string) (string, error) {
	value, err := s.repo.GetSetting(ctx, key)
	if err == repository.ErrNotFound {
		return "", nil
	}
	return value, err
}

// SetSetting stores a setting
func (s *SettingsService) SetSetting(ctx context.Context, key, value string) error {
	return s.repo.SetSetting(ctx, key, value)
}

// GetBaseURL returns the externally reachable server URL used in QR codes
func (s *SettingsService) GetBaseURL(ctx context.Context) (string, error) {
	return s.GetSetting(ctx, "base_url")
}

// SetBaseURL stores the externally reachable server URL
func (s *SettingsService) SetBaseURL(ctx context.Context, url string) error {
	return s.SetSetting(ctx, "base_url", url)
}
