package models

import (
	"encoding/json"
	"time"

	"github.com/speedsolve/cubecomp/internal/events"
	"github.com/speedsolve/cubecomp/internal/timing"
)

// ExtraArgs carries format-specific attempt data
type ExtraArgs struct {
	// FMCSolution is the move list of an FMC solution
	FMCSolution []string `json:"fmc_solution,omitempty"`

	// MultiSuccess / MultiAttempted are the multi-blind cube counts.
	// -1 means unset.
	MultiSuccess   int `json:"multi_success,omitempty"`
	MultiAttempted int `json:"multi_attempted,omitempty"`
}

// Attempt is one timed or counted attempt of an event
type Attempt struct {
	// Centis is the attempt's time in centiseconds, or a move count for
	// move-based events. timing.SentinelCentis means unset.
	Centis  int            `json:"centis"`
	Penalty timing.Penalty `json:"penalty"`
	Extra   *ExtraArgs     `json:"extra,omitempty"`
}

// Pure returns the attempt's comparable centisecond value: the sentinel
// for a DNF, otherwise the time plus any penalty surcharge. This is the
// only value ever compared or averaged.
func (a Attempt) Pure() int {
	return timing.ApplyPenalty(a.Centis, a.Penalty)
}

// Decided reports whether the attempt slot has been submitted
func (a Attempt) Decided() bool {
	return a.Penalty == timing.PenaltyDNF || a.Centis >= 0
}

// Display returns the attempt's display string
func (a Attempt) Display() string {
	return timing.FormatWithPenalty(a.Centis, a.Penalty)
}

// EmptyAttempt returns the unset attempt slot for an event, with the
// format's empty extra payload provisioned.
func EmptyAttempt(event events.Event) Attempt {
	a := Attempt{Centis: timing.SentinelCentis, Penalty: timing.PenaltyNone}
	switch event.Format {
	case events.FormatFMC:
		a.Extra = &ExtraArgs{FMCSolution: []string{}}
	case events.FormatMulti:
		a.Extra = &ExtraArgs{MultiSuccess: -1, MultiAttempted: -1}
	}
	return a
}

// EmptyAttempts provisions the full unset attempt list for an event
func EmptyAttempts(event events.Event) []Attempt {
	attempts := make([]Attempt, event.AttemptCount())
	for i := range attempts {
		attempts[i] = EmptyAttempt(event)
	}
	return attempts
}

// Full reports whether every attempt slot has been submitted
func Full(attempts []Attempt) bool {
	if len(attempts) == 0 {
		return false
	}
	for _, a := range attempts {
		if !a.Decided() {
			return false
		}
	}
	return true
}

// SubmissionState is the approval state of a submission
type SubmissionState int

const (
	// StatePending - the attempt set is not yet complete or not yet decided
	StatePending SubmissionState = 0
	// StateApproved - auto-approved or approved by a moderator
	StateApproved SubmissionState = 1
	// StateRejected - explicitly rejected by a moderator
	StateRejected SubmissionState = 2
	// StateNeedsReview - auto-approval declined; awaiting manual review
	StateNeedsReview SubmissionState = 3
)

func (s SubmissionState) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateApproved:
		return "approved"
	case StateRejected:
		return "rejected"
	case StateNeedsReview:
		return "needs_review"
	default:
		return "unknown"
	}
}

// Decided reports whether the state has left Pending
func (s SubmissionState) Decided() bool {
	return s != StatePending
}

// Submission is one competitor's attempt set for an event in a competition
type Submission struct {
	CompetitorID int64           `json:"competitor_id"`
	Attempts     []Attempt       `json:"attempts"`
	State        SubmissionState `json:"state"`
	Result       int             `json:"result"`
	Display      string          `json:"display"`
	Place        int             `json:"place,omitempty"`
}

// Full reports whether the submission's attempt list is fully populated
func (s Submission) Full() bool {
	return Full(s.Attempts)
}

// EventResults holds one event's scrambles and submissions within a competition
type EventResults struct {
	EventID     string       `json:"event_id"`
	Scrambles   []string     `json:"scrambles"`
	Submissions []Submission `json:"submissions"`
}

// Competition is one competition window with its event roster
type Competition struct {
	Number    int            `json:"number"`
	StartDate time.Time      `json:"start_date"`
	EndDate   time.Time      `json:"end_date"`
	Events    []EventResults `json:"events"`
}

// EventResults returns the competition's entry for an event, or nil if
// the event is not part of the roster.
func (c *Competition) EventResults(eventID string) *EventResults {
	for i := range c.Events {
		if c.Events[i].EventID == eventID {
			return &c.Events[i]
		}
	}
	return nil
}

// EventIDs returns the roster's event ids in order
func (c *Competition) EventIDs() []string {
	ids := make([]string, len(c.Events))
	for i, ev := range c.Events {
		ids[i] = ev.EventID
	}
	return ids
}

// Submission returns the competitor's submission for an event, or nil
func (c *Competition) Submission(eventID string, competitorID int64) *Submission {
	ev := c.EventResults(eventID)
	if ev == nil {
		return nil
	}
	for i := range ev.Submissions {
		if ev.Submissions[i].CompetitorID == competitorID {
			return &ev.Submissions[i]
		}
	}
	return nil
}

// Competitor is a registered participant. Records maps event id to the
// stored personal-best document for that event; the records package owns
// the document encoding.
type Competitor struct {
	ID      int64                      `json:"id"`
	Name    string                     `json:"name"`
	WcaID   string                     `json:"wca_id,omitempty"`
	Records map[string]json.RawMessage `json:"records"`
}

// WSMessage represents a WebSocket message
type WSMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}
