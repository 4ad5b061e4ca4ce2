package synth

import (
	"math"

	"github.com/jsphweid/musicability/constants"
	"github.com/jsphweid/musicability/model"
	"github.com/jsphweid/musicability/pitch"
	"github.com/jsphweid/musicability/util"
	"github.com/jsphweid/musicability/wav"
)

// Render mixes the melody into a freshly allocated float64 sample buffer
// using three sine partials per note shaped by an ADSR envelope. Notes with
// unparseable pitches are skipped and their tokens returned.
func Render(score model.MusicScore, sampleRate int) ([]float64, []string) {
	bpm := util.Clamp(score.TempoBPM, constants.TempoMin, constants.TempoMax)
	spb := 60.0 / float64(bpm)

	// buffer extent covers every melody entry, droppable or not
	maxEnd := 0.0
	for _, n := range score.Melody {
		end := (n.StartBeat + n.DurationBeats) * spb
		if end > maxEnd {
			maxEnd = end
		}
	}
	totalSamples := int(math.Ceil((maxEnd + constants.TailSeconds) * float64(sampleRate)))
	buf := make([]float64, totalSamples)

	var dropped []string
	for _, n := range score.Melody {
		note, err := pitch.Resolve(n.Pitch)
		if err != nil {
			dropped = append(dropped, n.Pitch)
			continue
		}
		freq := pitch.Frequency(note)
		vel := float64(util.Clamp(n.Velocity, 0, constants.VelocityMax)) / 127.0
		t0 := n.StartBeat * spb
		dur := n.DurationBeats * spb
		s0 := int(t0 * float64(sampleRate))
		ns := int(dur * float64(sampleRate))
		ns = util.Min(ns, totalSamples-s0)

		att := int(constants.AttackSeconds * float64(sampleRate))
		dec := int(constants.DecaySeconds * float64(sampleRate))
		rel := int(constants.ReleaseSeconds * float64(sampleRate))

		for i := 0; i < ns; i++ {
			env := envelope(i, ns, att, dec, rel)
			t := float64(i) / float64(sampleRate)
			// fundamental plus two softer partials for a little body
			sample := math.Sin(2*math.Pi*freq*t) +
				0.3*math.Sin(4*math.Pi*freq*t) +
				0.1*math.Sin(6*math.Pi*freq*t)
			idx := s0 + i
			if idx >= 0 && idx < totalSamples {
				buf[idx] += sample * vel * env * constants.OutputGain
			}
		}
	}
	return buf, dropped
}

// envelope evaluates the amplitude at sample i of a note ns samples long.
// Phases are checked in order, so for notes shorter than attack+decay+release
// the early phases win and the release only shapes whatever is left.
func envelope(i, ns, att, dec, rel int) float64 {
	switch {
	case i < att:
		if att == 0 {
			return 1.0
		}
		return float64(i) / float64(att)
	case i < att+dec:
		if dec == 0 {
			return constants.SustainLevel
		}
		return 1.0 - (1.0-constants.SustainLevel)*float64(i-att)/float64(dec)
	case i < ns-rel:
		return constants.SustainLevel
	default:
		if rel == 0 {
			return 0.0
		}
		return constants.SustainLevel * float64(ns-i) / float64(rel)
	}
}

// Normalize scales the mixed buffer so its peak hits PeakTarget and quantizes
// to signed 16-bit. A silent buffer normalizes against a neutral peak of 1.0
// instead of dividing by zero.
func Normalize(buf []float64) []int16 {
	peak := 0.0
	for _, s := range buf {
		if a := math.Abs(s); a > peak {
			peak = a
		}
	}
	if peak < 1e-6 {
		peak = 1.0
	}
	scale := constants.PeakTarget / peak

	pcm := make([]int16, len(buf))
	for i, s := range buf {
		v := int(s * scale)
		pcm[i] = int16(util.Clamp(v, -32768, 32767))
	}
	return pcm
}

// Synthesize renders the score to a complete mono 16-bit WAV byte buffer.
func Synthesize(score model.MusicScore, sampleRate int) ([]byte, []string) {
	buf, dropped := Render(score, sampleRate)
	return wav.Encode(Normalize(buf), sampleRate), dropped
}
