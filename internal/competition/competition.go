// Package competition implements the competition lifecycle: the active
// date window, scramble backfill, roster construction and final ranking.
package competition

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	mathrand "math/rand"
	"sort"
	"time"

	"github.com/speedsolve/cubecomp/internal/errors"
	"github.com/speedsolve/cubecomp/internal/events"
	"github.com/speedsolve/cubecomp/internal/models"
)

// DefaultLengthDays is the regular competition window length
const DefaultLengthDays = 7

// Generator is the narrow capability the lifecycle needs from the
// external scramble-generation service.
type Generator interface {
	Scramble(ctx context.Context, scrambleType string, length int) (string, error)
}

// Midnight normalizes a time to date-only (midnight, local).
// Time of day must never influence window comparisons.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsActive reports whether a competition's window contains today.
// Both endpoints are inclusive.
func IsActive(comp *models.Competition, today time.Time) bool {
	day := Midnight(today)
	start := Midnight(comp.StartDate)
	end := Midnight(comp.EndDate)
	return !day.Before(start) && !day.After(end)
}

// New builds a competition with the given number and window. The roster
// is the full event catalog plus any extra event ids not already
// present (duplicates filtered). A zero start defaults to today; a zero
// end defaults to start plus DefaultLengthDays, endpoints inclusive.
// An inverted window is swapped rather than rejected; the returned
// swapped flag lets the caller log it.
func New(number int, extraEvents []string, start, end time.Time) (*models.Competition, bool) {
	if start.IsZero() {
		start = time.Now()
	}
	start = Midnight(start)
	if end.IsZero() {
		end = start.AddDate(0, 0, DefaultLengthDays)
	}
	end = Midnight(end)

	swapped := false
	if end.Before(start) {
		start, end = end, start
		swapped = true
	}

	roster := events.IDs()
	seen := make(map[string]bool, len(roster))
	for _, id := range roster {
		seen[id] = true
	}
	for _, id := range extraEvents {
		if seen[id] {
			continue
		}
		seen[id] = true
		roster = append(roster, id)
	}

	evs := make([]models.EventResults, len(roster))
	for i, id := range roster {
		evs[i] = models.EventResults{EventID: id, Scrambles: []string{}, Submissions: []models.Submission{}}
	}

	return &models.Competition{
		Number:    number,
		StartDate: start,
		EndDate:   end,
		Events:    evs,
	}, swapped
}

// scrambleLength picks a length in [ScrLen-Radius, ScrLen+Radius].
// Zero means "use the generator's default".
func scrambleLength(e events.Event) int {
	if e.ScrLen <= 0 {
		return 0
	}
	if e.ScrLenRadius <= 0 {
		return e.ScrLen
	}
	return e.ScrLen - e.ScrLenRadius + mathrand.Intn(2*e.ScrLenRadius+1)
}

// randomSeed returns an opaque seed for events whose attempt content is
// generated attempt-by-attempt rather than pre-listed.
func randomSeed() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b)
}

// EnsureScrambles backfills an event's scramble list if it is empty.
// Existing non-empty lists are never overwritten. Returns whether the
// list was filled.
func EnsureScrambles(ctx context.Context, comp *models.Competition, eventID string, gen Generator) (bool, error) {
	ev := comp.EventResults(eventID)
	if ev == nil {
		return false, errors.NotFoundf("event %s is not part of competition %d", eventID, comp.Number)
	}
	if len(ev.Scrambles) > 0 {
		return false, nil
	}

	def, ok := events.ByID(eventID)
	if !ok {
		return false, errors.NotFoundf("event %s is not in the catalog", eventID)
	}

	count := def.Format.ScrambleCount()
	if count < 0 {
		ev.Scrambles = []string{randomSeed()}
		return true, nil
	}

	scrambles := make([]string, 0, count)
	for i := 0; i < count; i++ {
		scr, err := gen.Scramble(ctx, def.ScrambleType, scrambleLength(def))
		if err != nil {
			// leave the list untouched: no partial state
			return false, errors.Wrap(err, errors.ErrInternal, "scramble generation failed")
		}
		scrambles = append(scrambles, scr)
	}
	ev.Scrambles = scrambles
	return true, nil
}

// FillScrambles backfills every event in the competition that has no
// scrambles yet. Roster entries outside the catalog are skipped; they
// have no scramble parameters to generate from.
func FillScrambles(ctx context.Context, comp *models.Competition, gen Generator) error {
	for _, id := range comp.EventIDs() {
		if !events.IsEventID(id) {
			continue
		}
		if _, err := EnsureScrambles(ctx, comp, id, gen); err != nil {
			return err
		}
	}
	return nil
}

// better orders two finalized results within one event. Sentinels sort
// last; multi-blind counts higher points as better.
func better(format events.Format, a, b int) bool {
	aInvalid, bInvalid := a < 0, b < 0
	if aInvalid || bInvalid {
		return !aInvalid && bInvalid
	}
	if format == events.FormatMulti {
		return a > b
	}
	return a < b
}

// Rank filters each event's submissions down to the approved ones,
// sorts them best-first and assigns places. Equal results share a place.
func Rank(comp *models.Competition) {
	for i := range comp.Events {
		ev := &comp.Events[i]

		def, ok := events.ByID(ev.EventID)
		if !ok {
			continue
		}

		approved := ev.Submissions[:0:0]
		for _, s := range ev.Submissions {
			if s.State == models.StateApproved {
				approved = append(approved, s)
			}
		}

		sort.SliceStable(approved, func(a, b int) bool {
			return better(def.Format, approved[a].Result, approved[b].Result)
		})

		place := 1
		for j := range approved {
			if j > 0 && better(def.Format, approved[j-1].Result, approved[j].Result) {
				place = j + 1
			}
			approved[j].Place = place
		}

		ev.Submissions = approved
	}
}

// Close ends a competition: the end date becomes today and the final
// standings are ranked.
func Close(comp *models.Competition, today time.Time) {
	comp.EndDate = Midnight(today)
	Rank(comp)
}
