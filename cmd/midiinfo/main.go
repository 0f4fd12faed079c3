package main

import (
	"fmt"
	"os"

	"go-keymacro/midi"
)

func main() {
	if len(os.Args) < 3 {
		usage()
		return
	}

	switch os.Args[1] {
	case "info":
		showInfo(os.Args[2])
	case "tempo":
		showTempo(os.Args[2])
	case "events":
		showEvents(os.Args[2])
	default:
		usage()
	}
}

func usage() {
	fmt.Println("MIDI Inspection Tool")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  info <file>    - File header and per-track event counts")
	fmt.Println("  tempo <file>   - Dump the merged tempo map")
	fmt.Println("  events <file>  - Dump the extracted, time-sorted note events")
}

func load(path string) (tracks int, ppq uint32, tm *midi.TempoMap, events []midi.NoteEvent) {
	data, ppq, err := midi.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	tm = midi.BuildTempoMap(data.Tracks)
	return len(data.Tracks), ppq, tm, midi.Extract(data.Tracks, ppq, tm, 0, 1.0)
}

func showInfo(path string) {
	tracks, ppq, tm, events := load(path)
	fmt.Printf("File:          %s\n", path)
	fmt.Printf("Tracks:        %d\n", tracks)
	fmt.Printf("Ticks/quarter: %d\n", ppq)
	fmt.Printf("Tempo entries: %d\n", tm.Len())
	fmt.Printf("Note events:   %d\n", len(events))
	if len(events) > 0 {
		last := events[len(events)-1]
		fmt.Printf("Length:        %.2f s\n", last.Ms/1000)
	}
}

func showTempo(path string) {
	_, _, tm, _ := load(path)
	fmt.Println("=== Tempo Map ===")
	tm.Entries(func(tick, micros uint32) {
		fmt.Printf("  tick %7d: %7d us/quarter (%.1f BPM)\n", tick, micros, 60000000.0/float64(micros))
	})
}

func showEvents(path string) {
	_, _, _, events := load(path)
	fmt.Println("=== Note Events ===")
	for _, ev := range events {
		fmt.Printf("  %10.2f ms  %-3s pitch=%-3d vel=%d (tick %d)\n",
			ev.Ms, ev.Kind, ev.Pitch, ev.Velocity, ev.Ticks)
	}
}
