package pitch

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jsphweid/musicability/constants"
	"github.com/stretchr/testify/assert"
)

func TestResolvesPlainNotes(t *testing.T) {
	assert := assert.New(t)

	cases := map[string]uint8{
		"C4": 60,
		"C3": 48,
		"C5": 72,
		"A4": 69,
		"G3": 55,
		"B4": 71,
	}
	for token, want := range cases {
		got, err := Resolve(token)
		assert.NoError(err)
		assert.Equal(want, got, token)
	}
}

func TestResolvesAccidentals(t *testing.T) {
	assert := assert.New(t)

	got, err := Resolve("D#4")
	assert.NoError(err)
	assert.Equal(uint8(63), got)

	got, err = Resolve("Bb3")
	assert.NoError(err)
	assert.Equal(uint8(58), got)

	got, err = Resolve("F#3")
	assert.NoError(err)
	assert.Equal(uint8(54), got)
}

func TestFoldsOutOfRangeOctavesIntoRange(t *testing.T) {
	assert := assert.New(t)

	letters := []string{"A", "B", "C", "D", "E", "F", "G"}
	accidentals := []string{"", "#", "b"}
	for _, letter := range letters {
		for _, acc := range accidentals {
			for octave := -2; octave <= 9; octave++ {
				token := fmt.Sprintf("%v%v%v", letter, acc, octave)
				got, err := Resolve(token)
				assert.NoError(err, token)
				assert.GreaterOrEqual(int(got), constants.PitchMin, token)
				assert.LessOrEqual(int(got), constants.PitchMax, token)
			}
		}
	}
}

func TestFoldingIsStableAcrossWholeOctaves(t *testing.T) {
	assert := assert.New(t)

	// anything above the range folds down to a single landing spot,
	// anything below folds up to a single landing spot
	for _, letter := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		high, _ := Resolve(letter + "6")
		for octave := 7; octave <= 9; octave++ {
			got, err := Resolve(fmt.Sprintf("%v%v", letter, octave))
			assert.NoError(err)
			assert.Equal(high, got)
		}

		low, _ := Resolve(letter + "-1")
		for octave := 0; octave <= 1; octave++ {
			got, err := Resolve(fmt.Sprintf("%v%v", letter, octave))
			assert.NoError(err)
			assert.Equal(low, got)
		}
	}
}

func TestRejectsMalformedTokens(t *testing.T) {
	assert := assert.New(t)

	for _, token := range []string{"Z9", "", "C", "H4", "C#", "c4", "C##4", "4C"} {
		_, err := Resolve(token)
		assert.Error(err, token)

		var formatErr *FormatError
		assert.True(errors.As(err, &formatErr), token)
	}
}

func TestFrequency(t *testing.T) {
	assert := assert.New(t)

	assert.InDelta(440.0, Frequency(69), 1e-9)
	assert.InDelta(261.6256, Frequency(60), 1e-3)
	assert.InDelta(880.0, Frequency(81), 1e-9)
}
