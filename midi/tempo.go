package midi

import (
	"math"
	"sort"

	"gitlab.com/gomidi/midi/v2/smf"
)

// DefaultTempoMicros is the MIDI default of 120 BPM, used until the first
// explicit tempo event.
const DefaultTempoMicros = 500000

// TempoMap is an ordered mapping from absolute tick position to
// microseconds per quarter note. Built once per conversion, read-only
// afterwards. Tick 0 always has an entry.
type TempoMap struct {
	ticks  []uint32
	micros []uint32
}

// NewTempoMap returns a map seeded with the default tempo at tick 0.
func NewTempoMap() *TempoMap {
	return &TempoMap{
		ticks:  []uint32{0},
		micros: []uint32{DefaultTempoMicros},
	}
}

// Set inserts or overwrites the tempo at a tick position.
func (tm *TempoMap) Set(tick, micros uint32) {
	i := sort.Search(len(tm.ticks), func(i int) bool { return tm.ticks[i] >= tick })
	if i < len(tm.ticks) && tm.ticks[i] == tick {
		tm.micros[i] = micros
		return
	}
	tm.ticks = append(tm.ticks, 0)
	tm.micros = append(tm.micros, 0)
	copy(tm.ticks[i+1:], tm.ticks[i:])
	copy(tm.micros[i+1:], tm.micros[i:])
	tm.ticks[i] = tick
	tm.micros[i] = micros
}

// Lookup returns the tempo in effect at a tick: the value stored at the
// greatest position <= tick. The tick-0 seed guarantees a match.
func (tm *TempoMap) Lookup(tick uint32) uint32 {
	i := sort.Search(len(tm.ticks), func(i int) bool { return tm.ticks[i] > tick })
	if i == 0 {
		return tm.micros[0]
	}
	return tm.micros[i-1]
}

// Len returns the number of tempo entries, including the seed.
func (tm *TempoMap) Len() int {
	return len(tm.ticks)
}

// Entries calls fn for every (tick, micros) pair in ascending tick order.
func (tm *TempoMap) Entries(fn func(tick, micros uint32)) {
	for i := range tm.ticks {
		fn(tm.ticks[i], tm.micros[i])
	}
}

// BuildTempoMap scans every track for tempo events and folds them into one
// map. Each track's tick counter starts at zero and counters are not
// merged across tracks, so same-numbered ticks from different tracks
// conflate. Faithful to the classic converters; fine for files that keep
// tempo events on a single track.
func BuildTempoMap(tracks []smf.Track) *TempoMap {
	tm := NewTempoMap()
	for _, track := range tracks {
		var abs uint32
		for _, ev := range track {
			abs += ev.Delta
			var bpm float64
			if ev.Message.GetMetaTempo(&bpm) && bpm > 0 {
				tm.Set(abs, uint32(math.Round(60000000/bpm)))
			}
		}
	}
	return tm
}

// TicksToMs converts an absolute tick position to milliseconds under the
// tempo in effect at that tick, scaled by the speed multiplier and rounded
// to two decimals so identical inputs always time identically.
func TicksToMs(tick uint32, ticksPerQuarter uint32, tm *TempoMap, speed float64) float64 {
	msPerTick := float64(tm.Lookup(tick)) / float64(ticksPerQuarter) / 1000.0
	return round2(float64(tick) * msPerTick * speed)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
