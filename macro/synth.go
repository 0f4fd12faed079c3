package macro

import (
	"log/slog"
	"math"

	"go-keymacro/keymap"
	"go-keymacro/midi"
)

// Options carries the tunable parameters of one conversion. Zero values
// are not defaulted here; the config package owns the defaults.
type Options struct {
	MinNoteDurationMs   float64 // floor for every key press duration
	MinDelayThresholdMs int64   // gaps at or under this emit no Delay
}

// Synthesize turns a time-sorted note event list into an ordered command
// list. Key presses are appended in note-on order with the minimum
// duration; when the matching note-off arrives the press is stretched in
// place to the real duration. Note-ons for pitches the profile cannot
// play are dropped with a diagnostic; note-offs without a matching onset
// are ignored.
func Synthesize(events []midi.NoteEvent, profile keymap.Profile, opts Options, log *slog.Logger) []Command {
	var (
		commands []Command
		lastMs   float64
		// Onset time and command index of the most recent unresolved
		// press, at most one per pitch: a re-triggered pitch overwrites
		// its prior onset.
		activeNotes = make(map[int]float64)
		activePress = make(map[int]int)
	)

	for _, ev := range events {
		pitch := keymap.Clamp(ev.Pitch)

		switch ev.Kind {
		case midi.NoteOn:
			key := profile.Map(pitch)
			if key.IsZero() {
				log.Warn("no key mapping for pitch, note dropped",
					"pitch", pitch,
					"profile", profile.String(),
					"ms", ev.Ms,
				)
				continue
			}

			if gap := ev.Ms - lastMs; gap > float64(opts.MinDelayThresholdMs) {
				commands = append(commands, NewDelay(int64(math.Round(gap))))
			}

			activeNotes[pitch] = ev.Ms
			activePress[pitch] = len(commands)
			commands = append(commands, NewKeyPress(key, pitch, ev.Ms,
				int64(math.Round(opts.MinNoteDurationMs))))
			lastMs = ev.Ms

		case midi.NoteOff:
			onset, ok := activeNotes[pitch]
			if !ok {
				continue
			}
			if actual := ev.Ms - onset; actual > 0 {
				idx := activePress[pitch]
				dur := int64(math.Round(actual))
				if floor := int64(math.Round(opts.MinNoteDurationMs)); dur < floor {
					dur = floor
				}
				commands[idx].DurationMs = dur
			}
			delete(activeNotes, pitch)
			delete(activePress, pitch)
		}
	}

	return commands
}
