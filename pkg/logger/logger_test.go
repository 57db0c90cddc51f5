package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestNew_JSONWithServiceField(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: "info", Service: "hustlehub-api", Output: &buf})

	log.Debug().Msg("hidden")
	log.Info().Str("user_id", "7").Msg("hello")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected a single JSON line, got %q: %v", buf.String(), err)
	}
	if line["service"] != "hustlehub-api" || line["message"] != "hello" {
		t.Fatalf("unexpected log line %v", line)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		" DEBUG ": zerolog.DebugLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"bogus":   zerolog.InfoLevel,
		"":        zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestInit_IsSingleton(t *testing.T) {
	Reset()
	defer Reset()

	var first, second bytes.Buffer
	Init(Options{Output: &first})
	Init(Options{Output: &second})

	l := Get()
	l.Info().Msg("x")
	if first.Len() == 0 || second.Len() != 0 {
		t.Fatalf("expected only the first Init to take effect")
	}
}
