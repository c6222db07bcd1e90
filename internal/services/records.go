package services

import (
	"context"
	"sync"

	"github.com/speedsolve/cubecomp/internal/events"
	"github.com/speedsolve/cubecomp/internal/logger"
	"github.com/speedsolve/cubecomp/internal/records"
	"github.com/speedsolve/cubecomp/internal/repository"
)

// RecordsService handles personal-best record storage. All writes to a
// given competitor+event record go through a per-key mutex: merges are
// read-modify-write and concurrent finalizations must not lose updates.
type RecordsService struct {
	log  logger.Logger
	repo repository.CompetitorRepository

	mu   sync.Mutex
	keys map[recordKey]*sync.Mutex
}

type recordKey struct {
	competitorID int64
	eventID      string
}

// NewRecordsService creates a new RecordsService
func NewRecordsService(log logger.Logger, repo repository.CompetitorRepository) *RecordsService {
	return &RecordsService{
		log:  log,
		repo: repo,
		keys: make(map[recordKey]*sync.Mutex),
	}
}

func (s *RecordsService) keyLock(competitorID int64, eventID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := recordKey{competitorID, eventID}
	if s.keys[k] == nil {
		s.keys[k] = &sync.Mutex{}
	}
	return s.keys[k]
}

// load reads and decodes one stored record. Absent or malformed
// documents quietly become the never-achieved default for the format.
func (s *RecordsService) load(ctx context.Context, competitorID int64, eventID string) (records.Best, error) {
	ev, ok := events.ByID(eventID)
	if !ok {
		return nil, &UnknownEventError{EventID: eventID}
	}

	doc, err := s.repo.GetRecordDoc(ctx, competitorID, eventID)
	if err == repository.ErrNotFound {
		return nil, ErrCompetitorNotFound
	}
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return records.NewBest(ev.Format), nil
	}

	best, err := records.Unmarshal(doc)
	if err != nil {
		s.log.Warn("Malformed stored record, resetting to default",
			"competitor_id", competitorID, "event_id", eventID, "error", err)
		return records.NewBest(ev.Format), nil
	}
	return records.Normalize(ev.Format, best), nil
}

// Get returns the competitor's best record for an event
func (s *RecordsService) Get(ctx context.Context, competitorID int64, eventID string) (records.Best, error) {
	return s.load(ctx, competitorID, eventID)
}

// All returns every stored record of a competitor, keyed by event id
func (s *RecordsService) All(ctx context.Context, competitorID int64) (map[string]records.Best, error) {
	c, err := s.repo.GetCompetitor(ctx, competitorID)
	if err == repository.ErrNotFound {
		return nil, ErrCompetitorNotFound
	}
	if err != nil {
		return nil, err
	}

	out := make(map[string]records.Best, len(c.Records))
	for eventID := range c.Records {
		ev, ok := events.ByID(eventID)
		if !ok {
			continue
		}
		best, err := records.Unmarshal(c.Records[eventID])
		if err != nil {
			s.log.Warn("Malformed stored record, reporting default",
				"competitor_id", competitorID, "event_id", eventID, "error", err)
			best = records.NewBest(ev.Format)
		}
		out[eventID] = records.Normalize(ev.Format, best)
	}
	return out, nil
}

// Apply merges a candidate into the stored record under the per-key
// lock and persists the result. Merging is idempotent and
// never-worsening, so re-applying the same candidate is safe.
func (s *RecordsService) Apply(ctx context.Context, competitorID int64, eventID string, candidate records.Candidate, originComp int) (records.Best, error) {
	ev, ok := events.ByID(eventID)
	if !ok {
		return nil, &UnknownEventError{EventID: eventID}
	}

	lock := s.keyLock(competitorID, eventID)
	lock.Lock()
	defer lock.Unlock()

	current, err := s.load(ctx, competitorID, eventID)
	if err != nil {
		return nil, err
	}

	merged := records.Merge(ev, current, candidate, originComp)

	doc, err := records.Marshal(merged)
	if err != nil {
		return nil, err
	}
	if err := s.repo.SetRecordDoc(ctx, competitorID, eventID, doc); err != nil {
		return nil, err
	}

	s.log.Info("Record merged", "competitor_id", competitorID, "event_id", eventID, "origin_comp", originComp)
	return merged, nil
}

// ImportFederation merges an externally achieved result, attributed to
// the federation origin rather than any internal competition.
func (s *RecordsService) ImportFederation(ctx context.Context, competitorID int64, eventID string, candidate records.Candidate) (records.Best, error) {
	return s.Apply(ctx, competitorID, eventID, candidate, records.CompFederation)
}
