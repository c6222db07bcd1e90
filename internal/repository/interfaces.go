package repository

import (
	"context"
	"encoding/json"

	"github.com/speedsolve/cubecomp/internal/models"
)

// CompetitionRepository defines competition data operations
type CompetitionRepository interface {
	GetCompetition(ctx context.Context, number int) (*models.Competition, error)
	GetLatestCompetition(ctx context.Context) (*models.Competition, error)
	ListCompetitionNumbers(ctx context.Context) ([]int, error)
	SaveCompetition(ctx context.Context, comp *models.Competition) error
}

// CompetitorRepository defines competitor data operations. Per-event
// record documents are stored as opaque JSON; the records package owns
// their encoding.
type CompetitorRepository interface {
	ListCompetitors(ctx context.Context) ([]models.Competitor, error)
	GetCompetitor(ctx context.Context, id int64) (*models.Competitor, error)
	GetCompetitorByName(ctx context.Context, name string) (*models.Competitor, error)
	CreateCompetitor(ctx context.Context, name, wcaID string) (int64, error)
	UpdateCompetitor(ctx context.Context, id int64, name, wcaID string) error
	DeleteCompetitor(ctx context.Context, id int64) error
	GetRecordDoc(ctx context.Context, competitorID int64, eventID string) (json.RawMessage, error)
	SetRecordDoc(ctx context.Context, competitorID int64, eventID string, doc json.RawMessage) error
}

// SettingsRepository defines settings data operations
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
}

// FullRepository combines all repository interfaces
// Use this when a service needs access to multiple domains
type FullRepository interface {
	CompetitionRepository
	CompetitorRepository
	SettingsRepository
}

// Ensure Repository implements all interfaces
var _ FullRepository = (*Repository)(nil)
