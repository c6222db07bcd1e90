package services

import (
	"context"
	"sync"
	"time"

	"github.com/speedsolve/cubecomp/internal/competition"
	"github.com/speedsolve/cubecomp/internal/errors"
	"github.com/speedsolve/cubecomp/internal/events"
	"github.com/speedsolve/cubecomp/internal/logger"
	"github.com/speedsolve/cubecomp/internal/models"
	"github.com/speedsolve/cubecomp/internal/records"
	"github.com/speedsolve/cubecomp/internal/repository"
	"github.com/speedsolve/cubecomp/internal/submissions"
)

// CompetitionServiceRepository defines the repository methods needed by CompetitionService
type CompetitionServiceRepository interface {
	repository.CompetitionRepository
	repository.CompetitorRepository
}

// CompetitionService handles the active competition: rollover, scramble
// backfill, attempt intake and submission finalization. A single mutex
// serializes all mutations of the competition document.
type CompetitionService struct {
	log         logger.Logger
	repo        CompetitionServiceRepository
	records     RecordsServicer
	gen         competition.Generator
	broadcaster Broadcaster
	extraEvents []string
	lengthDays  int
	now         func() time.Time
	mu          sync.Mutex
}

// NewCompetitionService creates a new CompetitionService
func NewCompetitionService(log logger.Logger, repo CompetitionServiceRepository, recs RecordsServicer, gen competition.Generator, extraEvents []string, lengthDays int) *CompetitionService {
	if lengthDays <= 0 {
		lengthDays = competition.DefaultLengthDays
	}
	return &CompetitionService{
		log:         log,
		repo:        repo,
		records:     recs,
		gen:         gen,
		extraEvents: extraEvents,
		lengthDays:  lengthDays,
		now:         time.Now,
	}
}

// SetBroadcaster wires the live-update hub. Optional.
func (s *CompetitionService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// SetClock overrides the service clock (for testing)
func (s *CompetitionService) SetClock(now func() time.Time) {
	s.now = now
}

// Active returns the currently running competition, creating the first
// one or rolling over to the next when the latest window has ended.
func (s *CompetitionService) Active(ctx context.Context) (*models.Competition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeLocked(ctx)
}

func (s *CompetitionService) activeLocked(ctx context.Context) (*models.Competition, error) {
	today := s.now()

	comp, err := s.repo.GetLatestCompetition(ctx)
	if err == repository.ErrNotFound {
		return s.startNextLocked(ctx, 1, today)
	}
	if err != nil {
		return nil, err
	}

	if competition.IsActive(comp, today) {
		return comp, nil
	}

	// Not yet started: the window is in the future, nothing to roll
	if competition.Midnight(today).Before(competition.Midnight(comp.StartDate)) {
		return comp, nil
	}

	// Ended: freeze final standings, then open the next window
	competition.Rank(comp)
	if err := s.repo.SaveCompetition(ctx, comp); err != nil {
		return nil, err
	}
	s.log.Info("Competition archived", "number", comp.Number)

	return s.startNextLocked(ctx, comp.Number+1, today)
}

func (s *CompetitionService) startNextLocked(ctx context.Context, number int, today time.Time) (*models.Competition, error) {
	end := competition.Midnight(today).AddDate(0, 0, s.lengthDays)
	comp, _ := competition.New(number, s.extraEvents, today, end)

	// Scramble backfill is best-effort here: a down scramble service
	// must not block the rollover. Scrambles() retries lazily.
	if err := competition.FillScrambles(ctx, comp, s.gen); err != nil {
		s.log.Warn("Scramble backfill failed, will retry on demand", "number", number, "error", err)
	}

	if err := s.repo.SaveCompetition(ctx, comp); err != nil {
		return nil, err
	}
	s.log.Info("Competition started", "number", number,
		"start", comp.StartDate.Format("2006-01-02"), "end", comp.EndDate.Format("2006-01-02"))

	if s.broadcaster != nil {
		s.broadcaster.BroadcastCompetitionRolled(number)
	}
	return comp, nil
}

// Get returns a competition by number
func (s *CompetitionService) Get(ctx context.Context, number int) (*models.Competition, error) {
	comp, err := s.repo.GetCompetition(ctx, number)
	if err == repository.ErrNotFound {
		return nil, errors.NotFoundf("competition %d not found", number)
	}
	return comp, err
}

// ListNumbers returns all competition numbers, newest first
func (s *CompetitionService) ListNumbers(ctx context.Context) ([]int, error) {
	return s.repo.ListCompetitionNumbers(ctx)
}

// Scrambles returns the active competition's scrambles for an event,
// generating them on first access.
func (s *CompetitionService) Scrambles(ctx context.Context, eventID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	comp, err := s.activeLocked(ctx)
	if err != nil {
		return nil, err
	}
	if comp.EventResults(eventID) == nil {
		return nil, ErrEventNotHeld
	}

	filled, err := competition.EnsureScrambles(ctx, comp, eventID, s.gen)
	if err != nil {
		return nil, err
	}
	if filled {
		if err := s.repo.SaveCompetition(ctx, comp); err != nil {
			return nil, err
		}
	}
	return comp.EventResults(eventID).Scrambles, nil
}

// SubmitAttempt records one attempt into a competitor's submission for
// an event of the active competition. When the attempt completes the
// set, the submission is finalized: result computed, auto-approval
// decided and, on approval, the personal record merged and persisted.
// Errors leave no partial state behind.
func (s *CompetitionService) SubmitAttempt(ctx context.Context, eventID string, competitorID int64, index int, attempt models.Attempt) (*models.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	comp, err := s.activeLocked(ctx)
	if err != nil {
		return nil, err
	}
	if !competition.IsActive(comp, s.now()) {
		return nil, ErrCompetitionClosed
	}

	ev, ok := events.ByID(eventID)
	if !ok {
		return nil, &UnknownEventError{EventID: eventID}
	}
	evRes := comp.EventResults(eventID)
	if evRes == nil {
		return nil, ErrEventNotHeld
	}

	if _, err := s.repo.GetCompetitor(ctx, competitorID); err != nil {
		if err == repository.ErrNotFound {
			return nil, ErrCompetitorNotFound
		}
		return nil, err
	}

	sub := comp.Submission(eventID, competitorID)
	if sub == nil {
		evRes.Submissions = append(evRes.Submissions, models.Submission{
			CompetitorID: competitorID,
			Attempts:     models.EmptyAttempts(ev),
			State:        models.StatePending,
		})
		sub = &evRes.Submissions[len(evRes.Submissions)-1]
	}

	if sub.State.Decided() {
		return nil, ErrSubmissionDecided
	}
	if index < 0 || index >= len(sub.Attempts) {
		return nil, ErrAttemptOutOfRange
	}
	if sub.Attempts[index].Decided() {
		return nil, ErrAttemptDecided
	}
	if !attempt.Decided() {
		return nil, errors.InvalidInput("attempt must carry a time or a DNF")
	}

	sub.Attempts[index] = attempt

	var decision submissions.Decision
	finalized := false
	if sub.Full() {
		current, err := s.records.Get(ctx, competitorID, eventID)
		if err != nil {
			return nil, err
		}
		decision, finalized, err = submissions.Finalize(ev, sub, current, comp.Number)
		if err != nil {
			return nil, err
		}

		// Merge the record before persisting the competition: the merge
		// is idempotent, so a save failure here is safely retryable.
		if finalized && decision.Outcome == submissions.OutcomeApproved {
			if _, err := s.records.Apply(ctx, competitorID, eventID, decision.Candidate, comp.Number); err != nil {
				return nil, err
			}
		}
	}

	if err := s.repo.SaveCompetition(ctx, comp); err != nil {
		return nil, err
	}

	if finalized {
		s.log.Info("Submission finalized", "event_id", eventID, "competitor_id", competitorID,
			"state", sub.State.String(), "display", sub.Display)
		if s.broadcaster != nil {
			s.broadcaster.BroadcastSubmissionFinalized(eventID, competitorID, sub.State.String(), sub.Display)
			if decision.Outcome == submissions.OutcomeApproved {
				s.broadcaster.BroadcastRecordImproved(eventID, competitorID)
			}
		}
	}

	result := *sub
	return &result, nil
}

// Moderate resolves a needs-review submission. Approval merges the
// submission's record candidate; rejection leaves records untouched.
func (s *CompetitionService) Moderate(ctx context.Context, eventID string, competitorID int64, approve bool) (*models.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	comp, err := s.repo.GetLatestCompetition(ctx)
	if err == repository.ErrNotFound {
		return nil, ErrNoActiveCompetition
	}
	if err != nil {
		return nil, err
	}

	ev, ok := events.ByID(eventID)
	if !ok {
		return nil, &UnknownEventError{EventID: eventID}
	}

	sub := comp.Submission(eventID, competitorID)
	if sub == nil {
		return nil, ErrSubmissionNotFound
	}
	if sub.State != models.StateNeedsReview {
		return nil, ErrSubmissionNotReview
	}

	if approve {
		candidate, err := records.FromAttempts(ev, sub.Attempts)
		if err != nil {
			return nil, err
		}
		if _, err := s.records.Apply(ctx, competitorID, eventID, candidate, comp.Number); err != nil {
			return nil, err
		}
		sub.State = models.StateApproved
	} else {
		sub.State = models.StateRejected
	}

	if err := s.repo.SaveCompetition(ctx, comp); err != nil {
		return nil, err
	}

	s.log.Info("Submission moderated", "event_id", eventID, "competitor_id", competitorID,
		"state", sub.State.String())
	if s.broadcaster != nil {
		s.broadcaster.BroadcastSubmissionFinalized(eventID, competitorID, sub.State.String(), sub.Display)
		if approve {
			s.broadcaster.BroadcastRecordImproved(eventID, competitorID)
		}
	}

	result := *sub
	return &result, nil
}

// ReviewItem is one submission awaiting moderator review
type ReviewItem struct {
	EventID    string            `json:"event_id"`
	Submission models.Submission `json:"submission"`
}

// PendingReview lists every needs-review submission of the latest competition
func (s *CompetitionService) PendingReview(ctx context.Context) ([]ReviewItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	comp, err := s.repo.GetLatestCompetition(ctx)
	if err == repository.ErrNotFound {
		return nil, ErrNoActiveCompetition
	}
	if err != nil {
		return nil, err
	}

	var items []ReviewItem
	for _, ev := range comp.Events {
		for _, sub := range ev.Submissions {
			if sub.State == models.StateNeedsReview {
				items = append(items, ReviewItem{EventID: ev.EventID, Submission: sub})
			}
		}
	}
	return items, nil
}

// Leaderboard returns the active competition's approved submissions for
// an event, ranked best-first. Non-destructive: standings in the stored
// document are only frozen when the competition ends.
func (s *CompetitionService) Leaderboard(ctx context.Context, eventID string) ([]models.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	comp, err := s.activeLocked(ctx)
	if err != nil {
		return nil, err
	}
	evRes := comp.EventResults(eventID)
	if evRes == nil {
		return nil, ErrEventNotHeld
	}

	scratch := &models.Competition{
		Events: []models.EventResults{{
			EventID:     eventID,
			Submissions: append([]models.Submission(nil), evRes.Submissions...),
		}},
	}
	competition.Rank(scratch)
	return scratch.Events[0].Submissions, nil
}

// CloseActive ends the running competition today and freezes its
// standings. The next Active call opens the following competition.
func (s *CompetitionService) CloseActive(ctx context.Context) (*models.Competition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	comp, err := s.repo.GetLatestCompetition(ctx)
	if err == repository.ErrNotFound {
		return nil, ErrNoActiveCompetition
	}
	if err != nil {
		return nil, err
	}

	today := s.now()
	if !competition.IsActive(comp, today) {
		return nil, ErrCompetitionClosed
	}

	// Closing today means today is the last active day; end the window
	// yesterday so the next Active call rolls over immediately.
	competition.Close(comp, today.AddDate(0, 0, -1))
	if err := s.repo.SaveCompetition(ctx, comp); err != nil {
		return nil, err
	}

	s.log.Info("Competition closed", "number", comp.Number)
	return comp, nil
}
