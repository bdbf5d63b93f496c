package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewWithLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewWithLevel(&buf, "info")
	if err != nil {
		t.Fatal(err)
	}

	l.Debugf("hidden %d", 1)
	l.Infof("shown %d", 2)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("expected debug entry to be filtered, got %q", out)
	}
	if !strings.Contains(out, "shown 2") {
		t.Errorf("expected info entry, got %q", out)
	}

	if _, err := NewWithLevel(&buf, "loud"); err == nil {
		t.Errorf("expected error for unknown level")
	}
}
