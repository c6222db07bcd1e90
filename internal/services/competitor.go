package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
	"github.com/speedsolve/cubecomp/internal/logger"
	"github.com/speedsolve/cubecomp/internal/models"
	"github.com/speedsolve/cubecomp/internal/repository"
)

// CompetitorService handles competitor profiles
type CompetitorService struct {
	log      logger.Logger
	repo     repository.CompetitorRepository
	settings SettingsServicer
}

// NewCompetitorService creates a new CompetitorService
func NewCompetitorService(log logger.Logger, repo repository.CompetitorRepository, settings SettingsServicer) *CompetitorService {
	return &CompetitorService{log: log, repo: repo, settings: settings}
}

// List returns all competitors
func (s *CompetitorService) List(ctx context.Context) ([]models.Competitor, error) {
	return s.repo.ListCompetitors(ctx)
}

// Get returns a competitor by id
func (s *CompetitorService) Get(ctx context.Context, id int64) (*models.Competitor, error) {
	c, err := s.repo.GetCompetitor(ctx, id)
	if err == repository.ErrNotFound {
		return nil, ErrCompetitorNotFound
	}
	return c, err
}

// Create registers a new competitor
func (s *CompetitorService) Create(ctx context.Context, name, wcaID string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, ErrEmptyName
	}

	id, err := s.repo.CreateCompetitor(ctx, name, strings.TrimSpace(wcaID))
	if err != nil {
		return 0, err
	}
	s.log.Info("Competitor created", "id", id, "name", name)
	return id, nil
}

// Update changes a competitor's profile fields
func (s *CompetitorService) Update(ctx context.Context, id int64, name, wcaID string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}

	err := s.repo.UpdateCompetitor(ctx, id, name, strings.TrimSpace(wcaID))
	if err == repository.ErrNotFound {
		return ErrCompetitorNotFound
	}
	return err
}

// Delete removes a competitor
func (s *CompetitorService) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteCompetitor(ctx, id)
}

// GenerateRecordsQRImage generates a QR code PNG pointing at the
// competitor's public records page.
func (s *CompetitorService) GenerateRecordsQRImage(ctx context.Context, id int64) ([]byte, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	baseURL, err := s.settings.GetBaseURL(ctx)
	if err != nil || baseURL == "" {
		return nil, fmt.Errorf("base URL not configured")
	}

	recordsURL := fmt.Sprintf("%s/competitors/%d/records", strings.TrimSuffix(baseURL, "/"), id)
	return qrcode.Encode(recordsURL, qrcode.Medium, 256)
}
