package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// tone is a square wave that glides from one pitch to another and fades out.
type tone struct {
	rate     beep.SampleRate
	from, to float64
	volume   float64
	total    int
	pos      int
	phase    float64
}

func newTone(rate beep.SampleRate, from, to float64, d time.Duration, volume float64) *tone {
	return &tone{
		rate:   rate,
		from:   from,
		to:     to,
		volume: volume,
		total:  rate.N(d),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}

		progress := float64(t.pos) / float64(t.total)
		freq := t.from + (t.to-t.from)*progress

		val := -1.0
		if t.phase < 0.5 {
			val = 1.0
		}
		val *= t.volume * (1 - progress)

		samples[i][0] = val
		samples[i][1] = val

		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
