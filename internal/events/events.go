// Package events defines the static competition event catalog.
package events

import "fmt"

// Format is an event's timing format
type Format string

const (
	// FormatAO5 is an average of 5: trimmed mean dropping best and worst
	FormatAO5 Format = "ao5"
	// FormatMO3 is an arithmetic mean of 3
	FormatMO3 Format = "mo3"
	// FormatBO3 is the best (minimum) of 3
	FormatBO3 Format = "bo3"
	// FormatFMC is a mean of 3 solution move counts
	FormatFMC Format = "fmc"
	// FormatMulti is the multi-blind points formula over a single attempt
	FormatMulti Format = "multi"
)

// AttemptCount returns the number of attempts a format requires
func (f Format) AttemptCount() int {
	switch f {
	case FormatAO5:
		return 5
	case FormatMO3, FormatBO3, FormatFMC:
		return 3
	case FormatMulti:
		return 1
	default:
		return 0
	}
}

// ScrambleCount returns the number of scrambles to pre-generate for a
// format's round. Multi returns -1: its attempt content is generated
// attempt-by-attempt from a single opaque seed instead.
func (f Format) ScrambleCount() int {
	if f == FormatMulti {
		return -1
	}
	return f.AttemptCount()
}

// Valid reports whether f is a known format
func (f Format) Valid() bool {
	switch f {
	case FormatAO5, FormatMO3, FormatBO3, FormatFMC, FormatMulti:
		return true
	}
	return false
}

// Event is one competition event. Events are immutable and defined once
// at process start.
type Event struct {
	ID           string
	Title        string
	Icon         string
	Format       Format
	ScrambleType string
	ScrLen       int // expected scramble length; <=0 means generator default
	ScrLenRadius int // scramble length variance around ScrLen
}

// AttemptCount returns the event's required attempt count
func (e Event) AttemptCount() int {
	return e.Format.AttemptCount()
}

// catalog is the full list of supported events.
//
//	          ID          Title       ScrType    Icon            Format      Len  Radius
var catalog = []Event{
	{ID: "333", Title: "3x3x3", ScrambleType: "333", Icon: "event-333", Format: FormatAO5},
	{ID: "222", Title: "2x2x2", ScrambleType: "222so", Icon: "event-222", Format: FormatAO5},
	{ID: "444", Title: "4x4x4", ScrambleType: "444wca", Icon: "event-444", Format: FormatAO5},
	{ID: "555", Title: "5x5x5", ScrambleType: "555wca", Icon: "event-555", Format: FormatAO5, ScrLen: 60},
	{ID: "666", Title: "6x6x6", ScrambleType: "666wca", Icon: "event-666", Format: FormatMO3, ScrLen: 80},
	{ID: "777", Title: "7x7x7", ScrambleType: "777wca", Icon: "event-777", Format: FormatMO3, ScrLen: 100},
	{ID: "3bld", Title: "3x3 BLD", ScrambleType: "333ni", Icon: "event-333bf", Format: FormatBO3},
	{ID: "fmc", Title: "FMC", ScrambleType: "333fm", Icon: "event-333fm", Format: FormatFMC},
	{ID: "oh", Title: "3x3 OH", ScrambleType: "333", Icon: "event-333oh", Format: FormatAO5},
	{ID: "clock", Title: "Clock", ScrambleType: "clkwca", Icon: "event-clock", Format: FormatAO5},
	{ID: "megaminx", Title: "Megaminx", ScrambleType: "mgmp", Icon: "event-minx", Format: FormatAO5, ScrLen: 70},
	{ID: "pyraminx", Title: "Pyraminx", ScrambleType: "pyrso", Icon: "event-pyram", Format: FormatAO5, ScrLen: 10},
	{ID: "skewb", Title: "Skewb", ScrambleType: "skbso", Icon: "event-skewb", Format: FormatAO5},
	{ID: "square-1", Title: "Square-1", ScrambleType: "sqrs", Icon: "event-sq1", Format: FormatAO5},
	{ID: "4bld", Title: "4x4 BLD", ScrambleType: "444bld", Icon: "event-444bf", Format: FormatBO3, ScrLen: 40},
	{ID: "5bld", Title: "5x5 BLD", ScrambleType: "555bld", Icon: "event-555bf", Format: FormatBO3, ScrLen: 60},
	{ID: "mbld", Title: "3x3 MBLD", ScrambleType: "r3ni", Icon: "event-333mbf", Format: FormatMulti, ScrLen: 1},
}

var byID = func() map[string]Event {
	m := make(map[string]Event, len(catalog))
	for _, e := range catalog {
		if _, dup := m[e.ID]; dup {
			panic(fmt.Sprintf("events: duplicate event id %q", e.ID))
		}
		m[e.ID] = e
	}
	return m
}()

// All returns the full event catalog in display order
func All() []Event {
	out := make([]Event, len(catalog))
	copy(out, catalog)
	return out
}

// IDs returns all event ids in catalog order
func IDs() []string {
	out := make([]string, len(catalog))
	for i, e := range catalog {
		out[i] = e.ID
	}
	return out
}

// ByID looks up an event by id
func ByID(id string) (Event, bool) {
	e, ok := byID[id]
	return e, ok
}

// IsEventID reports whether id names a cataloged event
func IsEventID(id string) bool {
	_, ok := byID[id]
	return ok
}
