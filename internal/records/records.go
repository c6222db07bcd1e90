// Package records holds a competitor's all-time best results per event
// and the pure merge logic that folds new candidates into them.
package records

import (
	"encoding/json"
	"fmt"

	"github.com/speedsolve/cubecomp/internal/events"
	"github.com/speedsolve/cubecomp/internal/models"
	"github.com/speedsolve/cubecomp/internal/results"
	"github.com/speedsolve/cubecomp/internal/timing"
)

// Origin competition-number conventions for record provenance
const (
	// CompNever marks a record slot that was never achieved
	CompNever = -1
	// CompFederation marks a record imported from the external federation
	CompFederation = 0
)

// Best is a competitor's best-record set for one event. It is a closed
// union: RankedBest for the single+aggregate families, MultiBest for
// multi-blind.
type Best interface {
	Format() events.Format
	sealed()
}

// RankedBest covers the AO5/MO3/BO3/FMC families: an independently
// tracked best single and best aggregate, each with the competition
// number that produced it.
type RankedBest struct {
	Fmt           events.Format  `json:"format"`
	Single        models.Attempt `json:"single"`
	SingleComp    int            `json:"single_comp"`
	Aggregate     int            `json:"aggregate"`
	AggregateComp int            `json:"aggregate_comp"`
}

func (r RankedBest) Format() events.Format { return r.Fmt }
func (RankedBest) sealed()                 {}

// MultiBest tracks the best multi-blind attempt: highest points, with
// the attempt time kept as a tiebreak field.
type MultiBest struct {
	BestPoints int `json:"best_points"`
	TimeOfBest int `json:"time_of_best"`
	BestComp   int `json:"best_comp"`
}

func (MultiBest) Format() events.Format { return events.FormatMulti }
func (MultiBest) sealed()               {}

// NewBest returns the never-achieved default record set for a format
func NewBest(format events.Format) Best {
	switch format {
	case events.FormatMulti:
		return MultiBest{
			BestPoints: timing.SentinelCentis,
			TimeOfBest: timing.SentinelCentis,
			BestComp:   CompNever,
		}
	case events.FormatAO5, events.FormatMO3, events.FormatBO3, events.FormatFMC:
		return RankedBest{
			Fmt:           format,
			Single:        models.Attempt{Centis: timing.SentinelCentis},
			SingleComp:    CompNever,
			Aggregate:     timing.SentinelCentis,
			AggregateComp: CompNever,
		}
	default:
		// unknown formats degrade to an inert ranked shape
		return RankedBest{
			Fmt:           format,
			Single:        models.Attempt{Centis: timing.SentinelCentis},
			SingleComp:    CompNever,
			Aggregate:     timing.SentinelCentis,
			AggregateComp: CompNever,
		}
	}
}

// Candidate is a freshly computed record candidate derived from one
// finalized attempt set.
type Candidate struct {
	// Single is the set's best single attempt (move count for FMC)
	Single models.Attempt
	// Aggregate is the set's canonical computed result
	Aggregate int
	// Points and TimeOfBest are only meaningful for multi-blind
	Points     int
	TimeOfBest int
}

// FromAttempts derives a record candidate from a full attempt set.
// Fails only on contract violations (wrong shape, missing payload).
func FromAttempts(event events.Event, attempts []models.Attempt) (Candidate, error) {
	result, _, err := results.Compute(event, attempts)
	if err != nil {
		return Candidate{}, err
	}

	switch event.Format {
	case events.FormatMulti:
		return Candidate{
			Points:     result,
			TimeOfBest: attempts[0].Centis,
		}, nil

	case events.FormatFMC:
		return Candidate{
			Single:    shortestSolution(attempts),
			Aggregate: result,
		}, nil

	default:
		return Candidate{
			Single:    results.BestSingle(attempts),
			Aggregate: result,
		}, nil
	}
}

// shortestSolution picks the attempt with the fewest moves, rewritten so
// its comparable value is the move count. All-DNF sets yield a sentinel.
func shortestSolution(attempts []models.Attempt) models.Attempt {
	best := models.Attempt{Centis: timing.SentinelCentis}
	for _, a := range attempts {
		if a.Penalty == timing.PenaltyDNF || a.Extra == nil || a.Extra.FMCSolution == nil {
			continue
		}
		moves := len(a.Extra.FMCSolution)
		if best.Centis < 0 || moves < best.Centis {
			best = models.Attempt{Centis: moves, Extra: a.Extra}
		}
	}
	return best
}

// SingleImproves reports whether a candidate single strictly improves a
// stored single. Never-achieved stored singles (sentinel) always lose to
// a real candidate.
func SingleImproves(candidate, stored models.Attempt) bool {
	return timing.Compare(candidate.Pure(), stored.Pure()) < 0
}

// AggregateImproves reports whether a candidate aggregate strictly
// improves a stored aggregate. The candidate must be valid.
func AggregateImproves(candidate, stored int) bool {
	return candidate >= 0 && (stored < 0 || candidate < stored)
}

// MultiImproves reports whether candidate points strictly beat stored
// points. Higher is better for multi-blind.
func MultiImproves(candidate, stored int) bool {
	return candidate > stored
}

// Merge folds a candidate into an existing best-record set and returns
// the updated set. The single and aggregate slots are compared and
// updated independently; a slot that improves takes the candidate's
// origin competition number, untouched slots keep value and origin.
// Merge never fails: nil or shape-mismatched existing records are
// treated as never achieved. Merging the same candidate twice is a
// no-op the second time.
func Merge(event events.Event, existing Best, candidate Candidate, originComp int) Best {
	existing = Normalize(event.Format, existing)

	switch old := existing.(type) {
	case MultiBest:
		if MultiImproves(candidate.Points, old.BestPoints) {
			return MultiBest{
				BestPoints: candidate.Points,
				TimeOfBest: candidate.TimeOfBest,
				BestComp:   originComp,
			}
		}
		return old

	case RankedBest:
		merged := old
		if SingleImproves(candidate.Single, old.Single) {
			merged.Single = candidate.Single
			merged.SingleComp = originComp
		}
		if AggregateImproves(candidate.Aggregate, old.Aggregate) {
			merged.Aggregate = candidate.Aggregate
			merged.AggregateComp = originComp
		}
		return merged

	default:
		// unreachable: Normalize returns one of the union members
		return existing
	}
}

// Normalize coerces a possibly absent or malformed record set to the
// correct shape for a format, substituting the never-achieved default
// when it does not line up.
func Normalize(format events.Format, b Best) Best {
	if b == nil {
		return NewBest(format)
	}

	switch rec := b.(type) {
	case MultiBest:
		if format == events.FormatMulti {
			return rec
		}
	case RankedBest:
		if format != events.FormatMulti && rec.Fmt == format {
			return rec
		}
	}
	return NewBest(format)
}

// storedBest is the tagged storage wrapper for a Best
type storedBest struct {
	Format events.Format `json:"format"`
	Ranked *RankedBest   `json:"ranked,omitempty"`
	Multi  *MultiBest    `json:"multi,omitempty"`
}

// Marshal encodes a Best for storage
func Marshal(b Best) ([]byte, error) {
	wrapper := storedBest{Format: b.Format()}
	switch rec := b.(type) {
	case RankedBest:
		wrapper.Ranked = &rec
	case MultiBest:
		wrapper.Multi = &rec
	default:
		return nil, fmt.Errorf("records: cannot marshal %T", b)
	}
	return json.Marshal(wrapper)
}

// Unmarshal decodes a stored Best. Callers should treat a failure as a
// data-quality anomaly and substitute NewBest for the event's format.
func Unmarshal(data []byte) (Best, error) {
	var wrapper storedBest
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, err
	}

	switch {
	case wrapper.Multi != nil:
		return *wrapper.Multi, nil
	case wrapper.Ranked != nil:
		return *wrapper.Ranked, nil
	default:
		return nil, fmt.Errorf("records: stored record has no payload (format %q)", wrapper.Format)
	}
}
