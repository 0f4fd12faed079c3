package midi

import (
	"os"

	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Load reads a Standard MIDI File and returns the decoded form along with
// its resolution in ticks per quarter note. SMPTE-timed files are rejected:
// the converter's tempo math only makes sense for metric time.
func Load(path string) (*smf.SMF, uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "open midi file %s", path)
	}
	defer f.Close()

	data, err := smf.ReadFrom(f)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "decode midi file %s", path)
	}

	ticks, ok := data.TimeFormat.(smf.MetricTicks)
	if !ok {
		return nil, 0, errors.Errorf("midi file %s uses unsupported time format %v", path, data.TimeFormat)
	}
	return data, uint32(ticks), nil
}
