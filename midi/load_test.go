package midi

import (
	"os"
	"path/filepath"
	"testing"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func TestLoadRoundTrip(t *testing.T) {
	sm := smf.New()
	sm.TimeFormat = smf.MetricTicks(480)

	var tr smf.Track
	tr.Add(0, smf.MetaTempo(120))
	tr.Add(0, gomidi.NoteOn(0, 60, 100))
	tr.Add(480, gomidi.NoteOff(0, 60))
	tr.Close(0)
	if err := sm.Add(tr); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "roundtrip.mid")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := sm.WriteTo(f); err != nil {
		t.Fatal(err)
	}
	f.Close()

	data, ppq, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if ppq != 480 {
		t.Errorf("ppq: got %d want 480", ppq)
	}

	events := Extract(data.Tracks, ppq, BuildTempoMap(data.Tracks), 0, 1.0)
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[1].Ms != 500.0 {
		t.Errorf("note off time: got %v want 500ms", events[1].Ms)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, _, err := Load(filepath.Join(t.TempDir(), "nope.mid")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestLoadGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.mid")
	if err := os.WriteFile(path, []byte("not a midi file"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(path); err == nil {
		t.Fatal("expected an error for a malformed file")
	}
}
