package pitch

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/jsphweid/musicability/constants"
)

// FormatError means a pitch token didn't match the expected grammar.
// Callers drop the note rather than abort the whole render.
type FormatError struct {
	Token string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid pitch: %q", e.Token)
}

var noteSemitones = map[string]int{
	"C": 0, "D": 2, "E": 4, "F": 5, "G": 7, "A": 9, "B": 11,
}

var tokenRegexp = regexp.MustCompile(`^([A-G])([#b]?)(-?\d+)$`)

// Resolve parses a token like "C4", "D#4" or "Bb3" into a MIDI note number,
// then transposes by octaves until it sits in [PitchMin, PitchMax]. Folding
// trades the requested register for guaranteed playability.
func Resolve(token string) (uint8, error) {
	m := tokenRegexp.FindStringSubmatch(strings.TrimSpace(token))
	if m == nil {
		return 0, &FormatError{Token: token}
	}
	octave, err := strconv.Atoi(m[3])
	if err != nil {
		return 0, &FormatError{Token: token}
	}

	midi := (octave+1)*12 + noteSemitones[m[1]]
	switch m[2] {
	case "#":
		midi++
	case "b":
		midi--
	}

	for midi < constants.PitchMin {
		midi += 12
	}
	for midi > constants.PitchMax {
		midi -= 12
	}
	return uint8(midi), nil
}

// Frequency returns the equal-temperament frequency in Hz (A4 = 440).
func Frequency(note uint8) float64 {
	return 440.0 * math.Pow(2.0, (float64(note)-69.0)/12.0)
}
