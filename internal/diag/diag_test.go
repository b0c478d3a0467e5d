package diag

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestLogSink(t *testing.T) {
	var buf bytes.Buffer
	sink := NewLogSink(log.New(&buf, "", 0))
	sink.Warnf("threshold %dpx too small", 5)

	got := buf.String()
	if !strings.Contains(got, "warning: threshold 5px too small") {
		t.Errorf("log output = %q, want formatted warning", got)
	}
}

func TestNop(t *testing.T) {
	// Must not panic and must discard silently.
	Nop().Warnf("ignored %s", "entirely")
}

func TestRecorder(t *testing.T) {
	rec := &Recorder{}
	rec.Warnf("first %d", 1)
	rec.Warnf("second %d", 2)

	want := []string{"first 1", "second 2"}
	if len(rec.Warnings) != len(want) {
		t.Fatalf("got %d warnings, want %d", len(rec.Warnings), len(want))
	}
	for i, w := range want {
		if rec.Warnings[i] != w {
			t.Errorf("Warnings[%d] = %q, want %q", i, rec.Warnings[i], w)
		}
	}
}
