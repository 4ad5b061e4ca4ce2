package midi

import (
	"bytes"
	"encoding/binary"
	"errors"

	"github.com/jsphweid/musicability/constants"
	"github.com/jsphweid/musicability/schedule"
	"github.com/jsphweid/musicability/util"
	"gitlab.com/gomidi/midi/v2/smf"
)

// EncodeVarint encodes a tick delta as a MIDI variable-length quantity:
// base-128, most significant group first, continuation bit on every byte
// except the last.
func EncodeVarint(value uint32) []byte {
	buf := []byte{byte(value & 0x7F)}
	value >>= 7
	for value > 0 {
		buf = append(buf, byte(value&0x7F)|0x80)
		value >>= 7
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf
}

// metaTempo builds FF 51 03 followed by microseconds-per-beat in 3 bytes
// big-endian.
func metaTempo(bpm int) []byte {
	us := 60_000_000 / bpm
	return []byte{0xFF, 0x51, 0x03, byte(us >> 16), byte(us >> 8), byte(us)}
}

// Encode serializes the event list as a type-0 standard MIDI file:
// tempo meta, program change to acoustic piano, the note events on channel 0,
// end of track. Encoding itself never fails; bad notes were already dropped
// by the scheduler.
func Encode(bpm int, events []schedule.Event) []byte {
	bpm = util.Clamp(bpm, constants.TempoMin, constants.TempoMax)

	track := new(bytes.Buffer)
	track.Write(EncodeVarint(0))
	track.Write(metaTempo(bpm))
	track.Write(EncodeVarint(0))
	track.Write([]byte{0xC0, 0x00})

	currentTick := 0
	for _, evt := range events {
		delta := evt.Tick - currentTick
		currentTick = evt.Tick
		track.Write(EncodeVarint(uint32(delta)))
		if evt.NoteOff {
			track.Write([]byte{0x80, evt.Note, 0x00})
		} else {
			track.Write([]byte{0x90, evt.Note, evt.Velocity})
		}
	}
	track.Write([]byte{0x00, 0xFF, 0x2F, 0x00})

	var out bytes.Buffer
	out.WriteString("MThd")
	binary.Write(&out, binary.BigEndian, uint32(6))
	binary.Write(&out, binary.BigEndian, uint16(0))
	binary.Write(&out, binary.BigEndian, uint16(1))
	binary.Write(&out, binary.BigEndian, uint16(constants.TicksPerBeat))
	out.WriteString("MTrk")
	binary.Write(&out, binary.BigEndian, uint32(track.Len()))
	out.Write(track.Bytes())
	return out.Bytes()
}

// Read parses a MIDI byte stream with gomidi, used by the inspect command and
// to round-trip-verify encoder output.
func Read(data []byte) (s *smf.SMF, e error) {
	var blank smf.SMF

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	res, err := smf.ReadFrom(bytes.NewReader(data))
	if err != nil {
		return &blank, errors.New("Error parsing midi data... " + err.Error())
	}
	return res, nil
}
