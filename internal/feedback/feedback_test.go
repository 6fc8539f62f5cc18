package feedback

import (
	"bytes"
	"testing"
)

func TestBell(t *testing.T) {
	var buf bytes.Buffer
	b := NewBell(&buf)

	b.Success()
	if got := buf.String(); got != "\a" {
		t.Errorf("success wrote %q, want one bell", got)
	}

	buf.Reset()
	b.Failure()
	if got := buf.String(); got != "\a\a" {
		t.Errorf("failure wrote %q, want two bells", got)
	}
}

func TestRecorder(t *testing.T) {
	var r Recorder
	r.Success()
	r.Failure()
	r.Success()

	want := []Signal{SignalSuccess, SignalFailure, SignalSuccess}
	if len(r.Signals) != len(want) {
		t.Fatalf("signals = %v, want %v", r.Signals, want)
	}
	for i := range want {
		if r.Signals[i] != want[i] {
			t.Errorf("signal[%d] = %q, want %q", i, r.Signals[i], want[i])
		}
	}
}

func TestNew(t *testing.T) {
	if _, ok := New(false).(Nop); !ok {
		t.Error("sound off should give Nop")
	}
	if _, ok := New(true).(*Bell); !ok {
		t.Error("sound on should give *Bell")
	}
}
