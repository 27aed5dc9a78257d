package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestVerbose(t *testing.T) {
	var quiet, loud bytes.Buffer
	NewWithWriter(&quiet, false).Debugf("hidden %d", 1)
	NewWithWriter(&loud, true).Debugf("shown %d", 2)
	if quiet.Len() != 0 {
		t.Fatalf("debug leaked: %q", quiet.String())
	}
	if !strings.Contains(loud.String(), "shown 2") {
		t.Fatalf("missing debug line: %q", loud.String())
	}
}

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, false)
	l.Infof("hello %s", "world")
	l.Errorf("boom")
	out := buf.String()
	if !strings.Contains(out, "level=INFO") || !strings.Contains(out, "level=ERROR") {
		t.Fatalf("unexpected output %q", out)
	}
}
