package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Feedback plays short tone cues for placement actions
// Optional: a failed speaker init yields a silent instance, the tool
// runs fine without sound
type Feedback struct {
	enabled bool
}

// NewFeedback initializes the speaker
// The returned error is informational; the instance is always usable
func NewFeedback() (*Feedback, error) {
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	return &Feedback{enabled: err == nil}, err
}

// Disabled returns a silent feedback instance
func Disabled() *Feedback {
	return &Feedback{}
}

// Confirm plays the placement-committed blip
func (f *Feedback) Confirm() {
	f.tone(880, 50*time.Millisecond)
}

// Reject plays the invalid-action buzz
func (f *Feedback) Reject() {
	f.tone(220, 80*time.Millisecond)
}

// Remove plays the object-removed cue
func (f *Feedback) Remove() {
	f.tone(440, 40*time.Millisecond)
}

func (f *Feedback) tone(freq float64, d time.Duration) {
	if !f.enabled {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

// Close shuts the speaker down
func (f *Feedback) Close() {
	if f.enabled {
		speaker.Close()
	}
}
