package midi

import (
	"context"
	"time"

	"github.com/pkg/errors"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register MIDI driver
)

// Preview plays an extracted event list on a MIDI output port in real
// time, so a conversion can be auditioned before a macro script is
// generated. An empty port name picks the first available output. Blocks
// until the last event or until the context is cancelled.
func Preview(ctx context.Context, events []NoteEvent, portName string) error {
	out, err := findOutPort(portName)
	if err != nil {
		return err
	}

	send, err := gomidi.SendTo(out)
	if err != nil {
		return errors.Wrapf(err, "open midi output %s", out.String())
	}

	// Release anything still sounding when we bail out early.
	active := make(map[uint8]bool)
	defer func() {
		for pitch := range active {
			send(gomidi.NoteOff(0, pitch))
		}
	}()

	start := time.Now()
	for _, ev := range events {
		target := time.Duration(ev.Ms * float64(time.Millisecond))
		if wait := target - time.Since(start); wait > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		}

		pitch := uint8(clampPitch(ev.Pitch))
		switch ev.Kind {
		case NoteOn:
			if err := send(gomidi.NoteOn(0, pitch, ev.Velocity)); err != nil {
				return errors.Wrap(err, "send note on")
			}
			active[pitch] = true
		case NoteOff:
			if err := send(gomidi.NoteOff(0, pitch)); err != nil {
				return errors.Wrap(err, "send note off")
			}
			delete(active, pitch)
		}
	}
	return nil
}

func findOutPort(name string) (drivers.Out, error) {
	if name != "" {
		out, err := gomidi.FindOutPort(name)
		if err != nil {
			return nil, errors.Wrapf(err, "find midi output %q", name)
		}
		return out, nil
	}
	outs := gomidi.GetOutPorts()
	if len(outs) == 0 {
		return nil, errors.New("no midi output ports available")
	}
	return outs[0], nil
}

func clampPitch(pitch int) int {
	if pitch < 0 {
		return 0
	}
	if pitch > 127 {
		return 127
	}
	return pitch
}
