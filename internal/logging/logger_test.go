package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"silent", zerolog.Disabled},
		{"", zerolog.WarnLevel},
		{"bogus", zerolog.WarnLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "warn")

	log.Debug().Msg("quiet")
	if buf.Len() != 0 {
		t.Errorf("debug message logged at warn level: %q", buf.String())
	}

	log.Error().Msg("loud")
	if !strings.Contains(buf.String(), "loud") {
		t.Errorf("error message missing from output: %q", buf.String())
	}
}

func TestSubTagsSubsystem(t *testing.T) {
	var buf bytes.Buffer
	log := Sub(New(&buf, "info"), "scanner")

	log.Info().Msg("hello")
	if !strings.Contains(buf.String(), `"subsystem":"scanner"`) {
		t.Errorf("subsystem tag missing: %q", buf.String())
	}
}
