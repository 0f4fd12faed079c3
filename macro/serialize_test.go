package macro

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"go-keymacro/keymap"
	"go-keymacro/midi"
)

func TestSerializeDelay(t *testing.T) {
	lines := Serialize([]Command{NewDelay(500)}, 2)
	want := []string{"DELAY : 500"}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("got %v want %v", lines, want)
	}
}

func TestSerializeSimpleKey(t *testing.T) {
	press := NewKeyPress(keymap.Key{Name: "Z"}, 60, 0, 100)
	lines := Serialize([]Command{press}, 2)
	want := []string{
		"Keyboard : Z : KeyDown",
		"DELAY : 2",
		"Keyboard : Z : KeyUp",
	}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("got %v want %v", lines, want)
	}
}

func TestSerializeModifiedKey(t *testing.T) {
	press := NewKeyPress(keymap.Key{Modifier: "SHIFT", Name: "Z"}, 61, 0, 100)
	lines := Serialize([]Command{press}, 2)
	want := []string{
		"Keyboard : ShiftLeft : KeyDown",
		"DELAY : 2",
		"Keyboard : Z : KeyDown",
		"Keyboard : Z : KeyUp",
		"Keyboard : ShiftLeft : KeyUp",
	}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("got %v want %v", lines, want)
	}
}

func TestCanonicalModifier(t *testing.T) {
	tests := []struct{ in, want string }{
		{"SHIFT", "ShiftLeft"},
		{"CTRL", "ControlLeft"},
		{"CONTROL", "ControlLeft"},
		{"ALT", "AltLeft"},
		{"HYPER", "HYPER"}, // unknown names pass through
	}
	for _, tt := range tests {
		if got := canonicalModifier(tt.in); got != tt.want {
			t.Errorf("canonicalModifier(%q): got %q want %q", tt.in, got, tt.want)
		}
	}
}

func TestSerializeEmpty(t *testing.T) {
	if lines := Serialize(nil, 2); len(lines) != 0 {
		t.Fatalf("got %d lines from empty command list", len(lines))
	}
}

// Two notes, C4 then C#4 half a second apart, through the whole
// synthesize+serialize pipeline under the default configuration.
func TestPipelineScenario(t *testing.T) {
	events := []midi.NoteEvent{
		on(60, 0), off(60, 250),
		on(61, 500), off(61, 750),
	}
	cmds := Synthesize(events, keymap.ProfileWWM, defaultOpts, quiet)
	lines := Serialize(cmds, 2)

	want := []string{
		"Keyboard : Z : KeyDown",
		"DELAY : 2",
		"Keyboard : Z : KeyUp",
		"DELAY : 500",
		"Keyboard : ShiftLeft : KeyDown",
		"DELAY : 2",
		"Keyboard : Z : KeyDown",
		"Keyboard : Z : KeyUp",
		"Keyboard : ShiftLeft : KeyUp",
	}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("got:\n%s\nwant:\n%s", strings.Join(lines, "\n"), strings.Join(want, "\n"))
	}
}

func TestPipelineDeterminism(t *testing.T) {
	events := []midi.NoteEvent{
		on(60, 0), on(72, 0), off(60, 125.5), off(72, 250),
		on(84, 333.33), off(84, 400),
	}
	render := func() string {
		cmds := Synthesize(events, keymap.ProfileWWM, defaultOpts, quiet)
		return strings.Join(Serialize(cmds, 2), "\n")
	}
	first := render()
	for i := 0; i < 10; i++ {
		if got := render(); got != first {
			t.Fatalf("run %d differs:\n%s\nvs\n%s", i, got, first)
		}
	}
}

func TestWriteScript(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "out.txt")
	if err := WriteScript(path, []string{"DELAY : 1", "DELAY : 2"}); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "DELAY : 1\nDELAY : 2\n" {
		t.Fatalf("got %q", data)
	}

	empty := filepath.Join(dir, "empty.txt")
	if err := WriteScript(empty, nil); err != nil {
		t.Fatal(err)
	}
	data, err = os.ReadFile(empty)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 0 {
		t.Fatalf("empty command list: got %d bytes, want 0", len(data))
	}

	if err := WriteScript(filepath.Join(dir, "no", "such", "dir.txt"), []string{"x"}); err == nil {
		t.Fatal("expected an error for an unwritable destination")
	}
}
