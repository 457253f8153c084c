package logx

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	prev := CurrentLevel()
	defer SetLevel(prev)

	SetLevel(LevelWarn)
	Debugf("debug %d", 1)
	Infof("info %d", 2)
	Warnf("warn %d", 3)
	Errorf("error %d", 4)

	out := buf.String()
	if strings.Contains(out, "debug 1") || strings.Contains(out, "info 2") {
		t.Fatalf("messages below WARN leaked: %q", out)
	}
	if !strings.Contains(out, "WARN: warn 3") || !strings.Contains(out, "ERROR: error 4") {
		t.Fatalf("expected WARN and ERROR lines, got %q", out)
	}

	buf.Reset()
	SetLevel(LevelNone)
	Errorf("silenced")
	if buf.Len() != 0 {
		t.Fatalf("expected no output at NONE, got %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		"warning": LevelWarn,
		"Error":   LevelError,
		"none":    LevelNone,
		"bogus":   LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
