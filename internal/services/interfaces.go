package services

import (
	"context"

	"github.com/speedsolve/cubecomp/internal/models"
	"github.com/speedsolve/cubecomp/internal/records"
)

// CompetitionServicer defines the interface for competition operations
type CompetitionServicer interface {
	Active(ctx context.Context) (*models.Competition, error)
	Get(ctx context.Context, number int) (*models.Competition, error)
	ListNumbers(ctx context.Context) ([]int, error)
	Scrambles(ctx context.Context, eventID string) ([]string, error)
	SubmitAttempt(ctx context.Context, eventID string, competitorID int64, index int, attempt models.Attempt) (*models.Submission, error)
	Moderate(ctx context.Context, eventID string, competitorID int64, approve bool) (*models.Submission, error)
	PendingReview(ctx context.Context) ([]ReviewItem, error)
	Leaderboard(ctx context.Context, eventID string) ([]models.Submission, error)
	CloseActive(ctx context.Context) (*models.Competition, error)
	SetBroadcaster(b Broadcaster)
}

// RecordsServicer defines the interface for personal-record operations
type RecordsServicer interface {
	Get(ctx context.Context, competitorID int64, eventID string) (records.Best, error)
	All(ctx context.Context, competitorID int64) (map[string]records.Best, error)
	Apply(ctx context.Context, competitorID int64, eventID string, candidate records.Candidate, originComp int) (records.Best, error)
	ImportFederation(ctx context.Context, competitorID int64, eventID string, candidate records.Candidate) (records.Best, error)
}

// CompetitorServicer defines the interface for competitor operations
type CompetitorServicer interface {
	List(ctx context.Context) ([]models.Competitor, error)
	Get(ctx context.Context, id int64) (*models.Competitor, error)
	Create(ctx context.Context, name, wcaID string) (int64, error)
	Update(ctx context.Context, id int64, name, wcaID string) error
	Delete(ctx context.Context, id int64) error
	GenerateRecordsQRImage(ctx context.Context, id int64) ([]byte, error)
}

// SettingsServicer defines the interface for settings operations
type SettingsServicer interface {
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
	GetBaseURL(ctx context.Context) (string, error)
	SetBaseURL(ctx context.Context, url string) error
}

// Broadcaster pushes live updates to connected clients
type Broadcaster interface {
	BroadcastSubmissionFinalized(eventID string, competitorID int64, state, display string)
	BroadcastRecordImproved(eventID string, competitorID int64)
	BroadcastCompetitionRolled(number int)
}

// Ensure concrete types implement interfaces
var (
	_ CompetitionServicer = (*CompetitionService)(nil)
	_ RecordsServicer     = (*RecordsService)(nil)
	_ CompetitorServicer  = (*CompetitorService)(nil)
	_ SettingsServicer    = (*SettingsService)(nil)
)
