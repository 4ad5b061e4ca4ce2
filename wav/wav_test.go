package wav

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeHeaderLayout(t *testing.T) {
	pcm := []int16{0, 1000, -1000, 32767}
	data := Encode(pcm, 44100)

	assert := assert.New(t)
	assert.Len(data, 44+8)
	assert.Equal("RIFF", string(data[0:4]))
	assert.Equal(uint32(36+8), binary.LittleEndian.Uint32(data[4:8]))
	assert.Equal("WAVE", string(data[8:12]))
	assert.Equal("fmt ", string(data[12:16]))
	assert.Equal(uint32(16), binary.LittleEndian.Uint32(data[16:20]))
	assert.Equal(uint16(1), binary.LittleEndian.Uint16(data[20:22]))
	assert.Equal(uint16(1), binary.LittleEndian.Uint16(data[22:24]))
	assert.Equal(uint32(44100), binary.LittleEndian.Uint32(data[24:28]))
	assert.Equal(uint32(88200), binary.LittleEndian.Uint32(data[28:32]))
	assert.Equal(uint16(2), binary.LittleEndian.Uint16(data[32:34]))
	assert.Equal(uint16(16), binary.LittleEndian.Uint16(data[34:36]))
	assert.Equal("data", string(data[36:40]))
	assert.Equal(uint32(8), binary.LittleEndian.Uint32(data[40:44]))
}

func TestEncodeSamplesAreLittleEndian(t *testing.T) {
	data := Encode([]int16{0x0102, -2}, 8000)

	assert := assert.New(t)
	assert.Equal([]byte{0x02, 0x01}, data[44:46])
	assert.Equal([]byte{0xFE, 0xFF}, data[46:48])
}

func TestDurationOfEncodedBuffer(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(1.0, Duration(Encode(make([]int16, 44100), 44100)))
	assert.Equal(0.5, Duration(Encode(make([]int16, 22050), 44100)))
	assert.Equal(2.0, Duration(Encode(make([]int16, 16000), 8000)))
}

func TestDurationRoundsToTenth(t *testing.T) {
	// 44100 + 1000 samples = 1.0226...s
	assert.Equal(t, 1.0, Duration(Encode(make([]int16, 45100), 44100)))
}

func TestDurationHandlesStereo(t *testing.T) {
	// hand-build a stereo header: same layout, channels 2
	data := Encode(make([]int16, 48000), 48000)
	binary.LittleEndian.PutUint16(data[22:24], 2)

	assert.Equal(t, 0.5, Duration(data))
}

func TestDurationDegenerateInputsAreZero(t *testing.T) {
	assert := assert.New(t)

	assert.Zero(Duration(nil))
	assert.Zero(Duration([]byte("RIFF")))
	assert.Zero(Duration(make([]byte, 43)))

	// zero sample rate
	data := Encode(make([]int16, 100), 8000)
	binary.LittleEndian.PutUint32(data[24:28], 0)
	assert.Zero(Duration(data))

	// zero channels
	data = Encode(make([]int16, 100), 8000)
	binary.LittleEndian.PutUint16(data[22:24], 0)
	assert.Zero(Duration(data))

	// nonsense bit depth
	data = Encode(make([]int16, 100), 8000)
	binary.LittleEndian.PutUint16(data[34:36], 4)
	assert.Zero(Duration(data))
}
