package keymap

import (
	"log/slog"
	"strings"
)

// Key identifies the keyboard action a pitch maps to. The zero value means
// the pitch has no mapping in the active profile. Modifier is empty for
// plain keys.
type Key struct {
	Modifier string // e.g. "SHIFT"
	Name     string // e.g. "Z"
}

// IsZero reports whether the pitch has no mapping.
func (k Key) IsZero() bool {
	return k.Name == ""
}

// HasModifier reports whether the key needs a modifier held around it.
func (k Key) HasModifier() bool {
	return k.Modifier != ""
}

// Profile selects one of the built-in game key layouts.
type Profile int

const (
	ProfileWWM     Profile = iota // Where Winds Meet, full 128-pitch coverage
	ProfileGenshin                // Genshin Impact windsong lyre, 21 naturals
)

func (p Profile) String() string {
	switch p {
	case ProfileGenshin:
		return "genshin"
	default:
		return "wwm"
	}
}

// ProfileByName resolves a profile by case-insensitive name. Unrecognized
// names fall back to the wwm profile with a warning.
func ProfileByName(name string, log *slog.Logger) Profile {
	switch strings.ToLower(name) {
	case "wwm":
		return ProfileWWM
	case "genshin":
		return ProfileGenshin
	default:
		log.Warn("unknown game profile, falling back to default",
			"profile", name,
			"default", ProfileWWM.String(),
		)
		return ProfileWWM
	}
}

// wwm maps each of the 12 pitch classes within an octave band to a key.
// The five pitch classes carrying a sharp are played with SHIFT held.
//
//	pitch class:  C   C#  D   D#  E   F   F#  G   G#  A   A#  B

var wwmLow = [12]Key{
	{Name: "Z"}, {Modifier: "SHIFT", Name: "Z"},
	{Name: "X"}, {Modifier: "SHIFT", Name: "X"},
	{Name: "C"},
	{Name: "V"}, {Modifier: "SHIFT", Name: "V"},
	{Name: "B"}, {Modifier: "SHIFT", Name: "B"},
	{Name: "N"}, {Modifier: "SHIFT", Name: "N"},
	{Name: "M"},
}

var wwmMid = [12]Key{
	{Name: "A"}, {Modifier: "SHIFT", Name: "A"},
	{Name: "S"}, {Modifier: "SHIFT", Name: "S"},
	{Name: "D"},
	{Name: "F"}, {Modifier: "SHIFT", Name: "F"},
	{Name: "G"}, {Modifier: "SHIFT", Name: "G"},
	{Name: "H"}, {Modifier: "SHIFT", Name: "H"},
	{Name: "J"},
}

var wwmHigh = [12]Key{
	{Name: "Q"}, {Modifier: "SHIFT", Name: "Q"},
	{Name: "W"}, {Modifier: "SHIFT", Name: "W"},
	{Name: "E"},
	{Name: "R"}, {Modifier: "SHIFT", Name: "R"},
	{Name: "T"}, {Modifier: "SHIFT", Name: "T"},
	{Name: "Y"}, {Modifier: "SHIFT", Name: "Y"},
	{Name: "U"},
}

// genshinRows holds the seven natural-note keys of each playable octave.
// Row 0 starts at pitch 60 (C4), row 1 at 72, row 2 at 84.
var genshinRows = [3][7]string{
	{"Z", "X", "C", "V", "B", "N", "M"},
	{"A", "S", "D", "F", "G", "H", "J"},
	{"Q", "W", "E", "R", "T", "Y", "U"},
}

// naturalIndex maps a pitch class to its diatonic position within an
// octave, or -1 for the sharps the lyre cannot play.
var naturalIndex = [12]int{0, -1, 1, -1, 2, 3, -1, 4, -1, 5, -1, 6}

const (
	genshinBase = 60 // first playable pitch (C4)
	wwmMidBase  = 72 // pitches below this use the low band
	wwmHighBase = 84 // pitches from this up use the high band
)

// Clamp restricts a pitch to the valid MIDI range [0,127].
func Clamp(pitch int) int {
	if pitch < 0 {
		return 0
	}
	if pitch > 127 {
		return 127
	}
	return pitch
}

// Map resolves a pitch to its key action under the profile. The pitch is
// clamped to [0,127] first. The zero Key is returned for pitches the
// profile cannot play.
func (p Profile) Map(pitch int) Key {
	pitch = Clamp(pitch)

	switch p {
	case ProfileGenshin:
		if pitch < genshinBase || pitch >= genshinBase+3*12 {
			return Key{}
		}
		idx := naturalIndex[pitch%12]
		if idx < 0 {
			return Key{}
		}
		return Key{Name: genshinRows[(pitch-genshinBase)/12][idx]}

	default: // ProfileWWM
		class := pitch % 12
		switch {
		case pitch < wwmMidBase:
			return wwmLow[class]
		case pitch < wwmHighBase:
			return wwmMid[class]
		default:
			return wwmHigh[class]
		}
	}
}
