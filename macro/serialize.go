package macro

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// modifierNames translates profile modifier names to the canonical key
// identifiers the macro runner understands. Unrecognized names pass
// through unchanged.
var modifierNames = map[string]string{
	"SHIFT":   "ShiftLeft",
	"CTRL":    "ControlLeft",
	"CONTROL": "ControlLeft",
	"ALT":     "AltLeft",
}

func canonicalModifier(name string) string {
	if canon, ok := modifierNames[name]; ok {
		return canon
	}
	return name
}

// Serialize renders a command list to the line-oriented script format:
// one directive per line, order-significant. A plain key press becomes
// down / gap / up; a modified press wraps the bare down+up pair in
// modifier down / gap ... modifier up so the game reads the key while the
// modifier is held.
func Serialize(commands []Command, keyPressGapMs int64) []string {
	var lines []string

	for _, cmd := range commands {
		switch cmd.Kind {
		case Delay:
			lines = append(lines, fmt.Sprintf("DELAY : %d", cmd.DelayMs))

		case KeyPress:
			if cmd.Key.HasModifier() {
				mod := canonicalModifier(cmd.Key.Modifier)
				lines = append(lines,
					fmt.Sprintf("Keyboard : %s : KeyDown", mod),
					fmt.Sprintf("DELAY : %d", keyPressGapMs),
					fmt.Sprintf("Keyboard : %s : KeyDown", cmd.Key.Name),
					fmt.Sprintf("Keyboard : %s : KeyUp", cmd.Key.Name),
					fmt.Sprintf("Keyboard : %s : KeyUp", mod),
				)
			} else {
				lines = append(lines,
					fmt.Sprintf("Keyboard : %s : KeyDown", cmd.Key.Name),
					fmt.Sprintf("DELAY : %d", keyPressGapMs),
					fmt.Sprintf("Keyboard : %s : KeyUp", cmd.Key.Name),
				)
			}
		}
	}

	return lines
}

// WriteScript writes the serialized lines to a file, one per line. An
// empty command list yields an empty file.
func WriteScript(path string, lines []string) error {
	var content string
	if len(lines) > 0 {
		content = strings.Join(lines, "\n") + "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errors.Wrapf(err, "write macro script %s", path)
	}
	return nil
}
