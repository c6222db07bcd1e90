// Package submissions decides the fate of a completed attempt set: it
// computes the canonical result and drives the approval state machine.
package submissions

import (
	"github.com/speedsolve/cubecomp/internal/errors"
	"github.com/speedsolve/cubecomp/internal/events"
	"github.com/speedsolve/cubecomp/internal/models"
	"github.com/speedsolve/cubecomp/internal/records"
	"github.com/speedsolve/cubecomp/internal/results"
)

// Outcome is the auto-approval verdict for a completed submission
type Outcome int

const (
	// OutcomeApproved - a personal best in every tracked dimension
	OutcomeApproved Outcome = iota
	// OutcomeNeedsReview - not an unambiguous improvement; a moderator decides
	OutcomeNeedsReview
)

func (o Outcome) String() string {
	if o == OutcomeApproved {
		return "approved"
	}
	return "needs_review"
}

// State returns the submission state an outcome maps to
func (o Outcome) State() models.SubmissionState {
	if o == OutcomeApproved {
		return models.StateApproved
	}
	return models.StateNeedsReview
}

// Decision is the full product of evaluating a completed submission
type Decision struct {
	Outcome   Outcome
	Result    int
	Display   string
	Candidate records.Candidate
	// Merged is the updated best-record set to persist. Only set when
	// the outcome is Approved.
	Merged records.Best
}

// Decide evaluates auto-approval for a full attempt set against the
// competitor's current (pre-merge) best-record set. Pure: no state is
// mutated. Approval is deliberately conservative - the candidate must
// strictly improve every slot the format tracks.
func Decide(event events.Event, attempts []models.Attempt, current records.Best, originComp int) (Decision, error) {
	if !models.Full(attempts) {
		return Decision{}, errors.Contractf("event %s: cannot decide an incomplete attempt set", event.ID)
	}

	result, display, err := results.Compute(event, attempts)
	if err != nil {
		return Decision{}, err
	}

	candidate, err := records.FromAttempts(event, attempts)
	if err != nil {
		return Decision{}, err
	}

	current = records.Normalize(event.Format, current)

	var approved bool
	switch cur := current.(type) {
	case records.MultiBest:
		approved = records.MultiImproves(candidate.Points, cur.BestPoints)
	case records.RankedBest:
		approved = records.SingleImproves(candidate.Single, cur.Single) &&
			records.AggregateImproves(candidate.Aggregate, cur.Aggregate)
	}

	decision := Decision{
		Outcome:   OutcomeNeedsReview,
		Result:    result,
		Display:   display,
		Candidate: candidate,
	}
	if approved {
		decision.Outcome = OutcomeApproved
		decision.Merged = records.Merge(event, current, candidate, originComp)
	}
	return decision, nil
}

// Finalize transitions a submission out of Pending exactly once. If the
// submission is already decided, it is a no-op reporting applied=false:
// a submission's fate is fixed by the record state at the moment it was
// first completed.
func Finalize(event events.Event, sub *models.Submission, current records.Best, originComp int) (Decision, bool, error) {
	if sub.State.Decided() {
		return Decision{
			Outcome: outcomeFromState(sub.State),
			Result:  sub.Result,
			Display: sub.Display,
		}, false, nil
	}

	decision, err := Decide(event, sub.Attempts, current, originComp)
	if err != nil {
		return Decision{}, false, err
	}

	sub.Result = decision.Result
	sub.Display = decision.Display
	sub.State = decision.Outcome.State()
	return decision, true, nil
}

func outcomeFromState(s models.SubmissionState) Outcome {
	if s == models.StateApproved {
		return OutcomeApproved
	}
	return OutcomeNeedsReview
}
