package schedule

import (
	"math"
	"sort"

	"github.com/jsphweid/musicability/constants"
	"github.com/jsphweid/musicability/model"
	"github.com/jsphweid/musicability/pitch"
	"github.com/jsphweid/musicability/util"
)

// Event is one note boundary on the tick timeline.
type Event struct {
	Tick     int
	NoteOff  bool
	Note     uint8
	Velocity uint8
}

// Build converts the melody into a tick-ordered on/off event list. Notes whose
// pitch token fails to parse are omitted; their tokens come back in the second
// return value so callers can report them.
func Build(melody []model.NoteEvent, ticksPerBeat int) ([]Event, []string) {
	var events []Event
	var dropped []string

	for _, n := range melody {
		note, err := pitch.Resolve(n.Pitch)
		if err != nil {
			dropped = append(dropped, n.Pitch)
			continue
		}
		vel := util.Clamp(n.Velocity, 0, constants.VelocityMax)
		startBeat := n.StartBeat
		if startBeat < 0 {
			startBeat = 0
		}
		start := int(math.Round(startBeat * float64(ticksPerBeat)))
		dur := int(math.Round(n.DurationBeats * float64(ticksPerBeat)))
		if dur < 1 {
			dur = 1
		}
		events = append(events, Event{Tick: start, Note: note, Velocity: uint8(vel)})
		events = append(events, Event{Tick: start + dur, NoteOff: true, Note: note})
	}

	// note-offs first on shared ticks so boundary notes never look overlapped
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Tick != events[j].Tick {
			return events[i].Tick < events[j].Tick
		}
		return events[i].NoteOff && !events[j].NoteOff
	})

	return events, dropped
}
