package macro

import "go-keymacro/keymap"

// CommandKind tags the two macro command variants.
type CommandKind uint8

const (
	Delay CommandKind = iota
	KeyPress
)

// Command is one synthesized unit of script behavior: a pause between key
// actions, or a key action itself. DurationMs on a KeyPress starts at the
// configured minimum and is raised once when the matching note-off
// arrives; every other field is fixed at creation.
type Command struct {
	Kind CommandKind

	// Delay only.
	DelayMs int64

	// KeyPress only.
	Key        keymap.Key
	Pitch      int     // clamped source pitch
	OnsetMs    float64 // absolute time of the note-on
	DurationMs int64
}

// NewDelay returns a pause command.
func NewDelay(ms int64) Command {
	return Command{Kind: Delay, DelayMs: ms}
}

// NewKeyPress returns a key action with a provisional duration.
func NewKeyPress(key keymap.Key, pitch int, onsetMs float64, durationMs int64) Command {
	return Command{
		Kind:       KeyPress,
		Key:        key,
		Pitch:      pitch,
		OnsetMs:    onsetMs,
		DurationMs: durationMs,
	}
}
