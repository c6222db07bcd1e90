package mock

import (
	"context"
	"encoding/json"

	"github.com/speedsolve/cubecomp/internal/models"
	"github.com/speedsolve/cubecomp/internal/repository"
)

// Repository wraps a real repository and allows injecting errors for testing.
// This provides a flexible way to test error paths without complex database manipulation.
//
// Usage:
//
//	realRepo := testutil.NewTestRepository(t)
//	mockRepo := mock.NewRepository(realRepo)
//	mockRepo.SaveCompetitionError = errors.New("database error")
//	svc := services.NewCompetitionService(log, mockRepo, gen, hub)
//	_, err := svc.Rollover(ctx)
//	// err will now contain the injected error
type Repository struct {
	repository.FullRepository

	// ===== Competition Errors =====
	GetCompetitionError         error
	GetLatestCompetitionError   error
	ListCompetitionNumbersError error
	SaveCompetitionError        error

	// ===== Competitor Errors =====
	ListCompetitorsError      error
	GetCompetitorError        error
	GetCompetitorByNameError  error
	CreateCompetitorError     error
	UpdateCompetitorError     error
	DeleteCompetitorError     error
	GetRecordDocError         error
	SetRecordDocError         error

	// ===== Settings Errors =====
	GetSettingError error
	SetSettingError error
}

// NewRepository creates a mock repository wrapping a real one
func NewRepository(real repository.FullRepository) *Repository {
	return &Repository{
		FullRepository: real,
	}
}

func (m *Repository) GetCompetition(ctx context.Context, number int) (*models.Competition, error) {
	if m.GetCompetitionError != nil {
		return nil, m.GetCompetitionError
	}
	return m.FullRepository.GetCompetition(ctx, number)
}

func (m *Repository) GetLatestCompetition(ctx context.Context) (*models.Competition, error) {
	if m.GetLatestCompetitionError != nil {
		return nil, m.GetLatestCompetitionError
	}
	return m.FullRepository.GetLatestCompetition(ctx)
}

func (m *Repository) ListCompetitionNumbers(ctx context.Context) ([]int, error) {
	if m.ListCompetitionNumbersError != nil {
		return nil, m.ListCompetitionNumbersError
	}
	return m.FullRepository.ListCompetitionNumbers(ctx)
}

func (m *Repository) SaveCompetition(ctx context.Context, comp *models.Competition) error {
	if m.SaveCompetitionError != nil {
		return m.SaveCompetitionError
	}
	return m.FullRepository.SaveCompetition(ctx, comp)
}

func (m *Repository) ListCompetitors(ctx context.Context) ([]models.Competitor, error) {
	if m.ListCompetitorsError != nil {
		return nil, m.ListCompetitorsError
	}
	return m.FullRepository.ListCompetitors(ctx)
}

func (m *Repository) GetCompetitor(ctx context.Context, id int64) (*models.Competitor, error) {
	if m.GetCompetitorError != nil {
		return nil, m.GetCompetitorError
	}
	return m.FullRepository.GetCompetitor(ctx, id)
}

func (m *Repository) GetCompetitorByName(ctx context.Context, name string) (*models.Competitor, error) {
	if m.GetCompetitorByNameError != nil {
		return nil, m.GetCompetitorByNameError
	}
	return m.FullRepository.GetCompetitorByName(ctx, name)
}

func (m *Repository) CreateCompetitor(ctx context.Context, name, wcaID string) (int64, error) {
	if m.CreateCompetitorError != nil {
		return 0, m.CreateCompetitorError
	}
	return m.FullRepository.CreateCompetitor(ctx, name, wcaID)
}

func (m *Repository) UpdateCompetitor(ctx context.Context, id int64, name, wcaID string) error {
	if m.UpdateCompetitorError != nil {
		return m.UpdateCompetitorError
	}
	return m.FullRepository.UpdateCompetitor(ctx, id, name, wcaID)
}

func (m *Repository) DeleteCompetitor(ctx context.Context, id int64) error {
	if m.DeleteCompetitorError != nil {
		return m.DeleteCompetitorError
	}
	return m.FullRepository.DeleteCompetitor(ctx, id)
}

func (m *Repository) GetRecordDoc(ctx context.Context, competitorID int64, eventID string) (json.RawMessage, error) {
	if m.GetRecordDocError != nil {
		return nil, m.GetRecordDocError
	}
	return m.FullRepository.GetRecordDoc(ctx, competitorID, eventID)
}

func (m *Repository) SetRecordDoc(ctx context.Context, competitorID int64, eventID string, doc json.RawMessage) error {
	if m.SetRecordDocError != nil {
		return m.SetRecordDocError
	}
	return m.FullRepository.SetRecordDoc(ctx, competitorID, eventID, doc)
}

func (m *Repository) GetSetting(ctx context.Context, key string) (string, error) {
	if m.GetSettingError != nil {
		return "", m.GetSettingError
	}
	return m.FullRepository.GetSetting(ctx, key)
}

func (m *Repository) SetSetting(ctx context.Context, key, value string) error {
	if m.SetSettingError != nil {
		return m.SetSettingError
	}
	return m.FullRepository.SetSetting(ctx, key, value)
}

// Ensure Repository implements FullRepository
var _ repository.FullRepository = (*Repository)(nil)
