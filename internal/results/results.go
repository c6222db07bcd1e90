// Package results computes canonical numeric results and display strings
// from an event's ordered attempt list. All functions are pure.
package results

import (
	"fmt"
	"strconv"

	"github.com/speedsolve/cubecomp/internal/errors"
	"github.com/speedsolve/cubecomp/internal/events"
	"github.com/speedsolve/cubecomp/internal/models"
	"github.com/speedsolve/cubecomp/internal/timing"
)

// Sentinel errors for contract violations. Both carry Kind ErrContract:
// they indicate a caller bug upstream and must not be retried.
var (
	ErrInvalidAttemptShape = errors.Contract("invalid attempt shape")
	ErrMissingExtraPayload = errors.Contract("missing format-required extra payload")
)

func invalidShape(event events.Event, got int) error {
	return errors.Wrap(ErrInvalidAttemptShape, errors.ErrContract,
		fmt.Sprintf("event %s: got %d attempts, want %d", event.ID, got, event.AttemptCount()))
}

func missingPayload(event events.Event, slot int) error {
	return errors.Wrap(ErrMissingExtraPayload, errors.ErrContract,
		fmt.Sprintf("event %s: attempt %d has no extra payload", event.ID, slot))
}

// Compute maps an event and its full ordered attempt list to the canonical
// numeric result (centiseconds, move count or points depending on format)
// and its display string.
func Compute(event events.Event, attempts []models.Attempt) (int, string, error) {
	if len(attempts) != event.AttemptCount() {
		return timing.SentinelCentis, "", invalidShape(event, len(attempts))
	}

	switch event.Format {
	case events.FormatBO3:
		result := bestOf(attempts)
		return result, timing.Format(result), nil

	case events.FormatMO3:
		result := meanOf3(attempts)
		return result, timing.Format(result), nil

	case events.FormatAO5:
		result := averageOf5(attempts)
		return result, timing.Format(result), nil

	case events.FormatFMC:
		result, err := fewestMoves(event, attempts)
		if err != nil {
			return timing.SentinelCentis, "", err
		}
		// a DNF'd move-count mean reads "DNF"; timed formats render
		// the sentinel as "-" through timing.Format
		if result < 0 {
			return result, timing.DNFString, nil
		}
		return result, strconv.Itoa(result), nil

	case events.FormatMulti:
		return multiBlind(event, attempts[0])

	default:
		return timing.SentinelCentis, "", errors.Contractf("event %s: unknown format %q", event.ID, event.Format)
	}
}

// BestSingle returns the best single attempt of the set by pure-value
// ordering. Used for the single slot of record candidates.
func BestSingle(attempts []models.Attempt) models.Attempt {
	best := attempts[0]
	for _, a := range attempts[1:] {
		if timing.Compare(a.Pure(), best.Pure()) < 0 {
			best = a
		}
	}
	return best
}

// MultiPoints computes the multi-blind points of an attempt's payload:
// successes minus misses. The caller decides how non-positive scores
// collapse for comparison.
func MultiPoints(extra *models.ExtraArgs) int {
	return extra.MultiSuccess - (extra.MultiAttempted - extra.MultiSuccess)
}

// bestOf takes the minimum pure value; DNFs lose by sentinel ordering.
// All-DNF sets yield the sentinel.
func bestOf(attempts []models.Attempt) int {
	best := timing.SentinelCentis
	for _, a := range attempts {
		if v := a.Pure(); timing.Compare(v, best) < 0 {
			best = v
		}
	}
	return best
}

// meanOf3 is the floored arithmetic mean; any DNF invalidates the whole mean
func meanOf3(attempts []models.Attempt) int {
	sum := 0
	for _, a := range attempts {
		v := a.Pure()
		if a.Penalty == timing.PenaltyDNF || v < 0 {
			return timing.SentinelCentis
		}
		sum += v
	}
	return sum / len(attempts)
}

// averageOf5 is the trimmed mean of 5: the best and worst attempts are
// dropped and the remaining three averaged. A single DNF counts as the
// dropped worst; two or more DNFs invalidate the average.
func averageOf5(attempts []models.Attempt) int {
	const maxDNF = 2

	dnfCount := 0
	sum := 0
	lowest, highest := timing.SentinelCentis, timing.SentinelCentis

	for _, a := range attempts {
		if a.Penalty == timing.PenaltyDNF {
			dnfCount++
			if dnfCount >= maxDNF {
				return timing.SentinelCentis
			}
			continue
		}

		v := a.Pure()
		if v < 0 {
			// defensive: unset slot in a "full" set
			return timing.SentinelCentis
		}
		sum += v

		if lowest < 0 || v < lowest {
			lowest = v
		}
		if v > highest {
			highest = v
		}
	}

	// a single DNF is automatically the dropped worst, so only the
	// numeric best is trimmed alongside it
	sum -= highest
	if dnfCount == 0 {
		sum -= lowest
	}

	return sum / 3
}

// fewestMoves is the floored mean of the 3 solution lengths; any DNF
// invalidates the mean. A missing solution payload on a finished attempt
// is a contract error; a DNF carries no solution obligation.
func fewestMoves(event events.Event, attempts []models.Attempt) (int, error) {
	sum := 0
	for i, a := range attempts {
		if a.Penalty == timing.PenaltyDNF {
			return timing.SentinelCentis, nil
		}
		if a.Extra == nil || a.Extra.FMCSolution == nil {
			return timing.SentinelCentis, missingPayload(event, i)
		}
		sum += len(a.Extra.FMCSolution)
	}
	return sum / len(attempts), nil
}

// multiBlind scores the single multi-blind attempt. A score of zero or
// worse is a failed attempt: it collapses to the sentinel for comparison
// and displays as a DNF.
func multiBlind(event events.Event, attempt models.Attempt) (int, string, error) {
	if attempt.Extra == nil {
		return timing.SentinelCentis, "", missingPayload(event, 0)
	}

	points := MultiPoints(attempt.Extra)
	if points <= 0 || attempt.Penalty == timing.PenaltyDNF {
		return timing.SentinelCentis, timing.DNFString, nil
	}

	display := fmt.Sprintf("%d/%d %s",
		attempt.Extra.MultiSuccess, attempt.Extra.MultiAttempted, timing.Format(attempt.Centis))
	return points, display, nil
}
