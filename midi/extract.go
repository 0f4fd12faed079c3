package midi

import (
	"sort"

	"gitlab.com/gomidi/midi/v2/smf"
)

// Extract walks every decoded track, applies the transpose offset, stamps
// each note boundary with its absolute millisecond time, and returns the
// events of all tracks merged into one list sorted by time. A note-on with
// velocity zero counts as a note-off, per MIDI running-status convention.
func Extract(tracks []smf.Track, ticksPerQuarter uint32, tm *TempoMap, transpose int, speed float64) []NoteEvent {
	var events []NoteEvent

	for _, track := range tracks {
		var abs uint32
		for _, ev := range track {
			abs += ev.Delta

			var ch, key, vel uint8
			switch {
			case ev.Message.GetNoteOn(&ch, &key, &vel):
				kind := NoteOn
				if vel == 0 {
					kind = NoteOff
				}
				events = append(events, NoteEvent{
					Kind:     kind,
					Pitch:    int(key) + transpose,
					Velocity: vel,
					Ticks:    abs,
					Ms:       TicksToMs(abs, ticksPerQuarter, tm, speed),
				})
			case ev.Message.GetNoteOff(&ch, &key, &vel):
				events = append(events, NoteEvent{
					Kind:  NoteOff,
					Pitch: int(key) + transpose,
					Ticks: abs,
					Ms:    TicksToMs(abs, ticksPerQuarter, tm, speed),
				})
			}
		}
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Ms < events[j].Ms
	})
	return events
}
