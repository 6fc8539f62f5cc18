package feedback

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Signal is a success/failure cue.
type Signal string

const (
	SignalSuccess Signal = "success"
	SignalFailure Signal = "failure"
)

// Sink receives fire-and-forget feedback cues after each answer.
type Sink interface {
	Success()
	Failure()
}

// Nop ignores every cue.
type Nop struct{}

func (Nop) Success() {}
func (Nop) Failure() {}

// Bell rings the terminal bell. A correct answer rings once and a mistake
// rings twice so the two are distinguishable without a speaker.
type Bell struct {
	w io.Writer
}

// NewBell returns a Bell writing to w, or to stderr when w is nil.
func NewBell(w io.Writer) *Bell {
	if w == nil {
		w = os.Stderr
	}
	return &Bell{w: w}
}

func (b *Bell) Success() { b.ring("\a") }
func (b *Bell) Failure() { b.ring("\a\a") }

func (b *Bell) ring(seq string) {
	if _, err := io.WriteString(b.w, seq); err != nil {
		logrus.Debugf("feedback: bell write failed: %v", err)
	}
}

// Recorder keeps every cue it receives, in order.
type Recorder struct {
	Signals []Signal
}

func (r *Recorder) Success() { r.Signals = append(r.Signals, SignalSuccess) }
func (r *Recorder) Failure() { r.Signals = append(r.Signals, SignalFailure) }

// New returns a Bell on stderr when sound is enabled, otherwise Nop.
func New(sound bool) Sink {
	if sound {
		return NewBell(nil)
	}
	return Nop{}
}
