package wav

import (
	"encoding/binary"
	"math"
)

const headerSize = 44

// Encode wraps 16-bit mono PCM samples in a canonical RIFF/WAVE container.
func Encode(pcm []int16, sampleRate int) []byte {
	dataSize := len(pcm) * 2
	buf := make([]byte, headerSize+dataSize)

	copy(buf[0:4], "RIFF")
	binary.LittleEndian.PutUint32(buf[4:8], uint32(36+dataSize))
	copy(buf[8:12], "WAVE")
	copy(buf[12:16], "fmt ")
	binary.LittleEndian.PutUint32(buf[16:20], 16)
	binary.LittleEndian.PutUint16(buf[20:22], 1) // PCM
	binary.LittleEndian.PutUint16(buf[22:24], 1) // mono
	binary.LittleEndian.PutUint32(buf[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(buf[28:32], uint32(sampleRate*2)) // byte rate
	binary.LittleEndian.PutUint16(buf[32:34], 2)                    // block align
	binary.LittleEndian.PutUint16(buf[34:36], 16)                   // bits per sample
	copy(buf[36:40], "data")
	binary.LittleEndian.PutUint32(buf[40:44], uint32(dataSize))

	for i, s := range pcm {
		binary.LittleEndian.PutUint16(buf[headerSize+i*2:], uint16(s))
	}
	return buf
}

// Duration reads channel count, sample rate and bit depth from the fixed
// canonical header offsets and returns the playback length in seconds,
// rounded to a tenth. Best effort only: anything it can't make sense of
// yields 0.
func Duration(data []byte) float64 {
	if len(data) < headerSize {
		return 0
	}
	channels := binary.LittleEndian.Uint16(data[22:24])
	sampleRate := binary.LittleEndian.Uint32(data[24:28])
	bits := binary.LittleEndian.Uint16(data[34:36])
	if channels == 0 || sampleRate == 0 || bits < 8 {
		return 0
	}
	samples := (len(data) - headerSize) / int(bits/8)
	duration := float64(samples) / (float64(sampleRate) * float64(channels))
	return math.Round(duration*10) / 10
}
