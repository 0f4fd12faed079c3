package midi

// EventKind distinguishes the two note boundaries the converter cares
// about. Everything else in the source file is ignored.
type EventKind uint8

const (
	NoteOn EventKind = iota
	NoteOff
)

func (k EventKind) String() string {
	if k == NoteOff {
		return "off"
	}
	return "on"
}

// NoteEvent is one decoded, transposed, absolutely-timed note boundary.
// Immutable once extracted; the pipeline orders events by Ms.
type NoteEvent struct {
	Kind     EventKind
	Pitch    int     // post-transpose, may leave 0-127 until clamped at mapping time
	Velocity uint8   // note-on only
	Ticks    uint32  // absolute tick position within its source track
	Ms       float64 // absolute milliseconds under the tempo map
}
