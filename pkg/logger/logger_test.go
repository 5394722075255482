package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestImpl_WithComponent(t *testing.T) {
	var buf bytes.Buffer
	log := New(Opts{Env: "production", Writer: &buf})

	log.WithComponent("Curator").Info("fetched posts", "count", 3)

	out := buf.String()
	for _, want := range []string{`"component":"Curator"`, `"count":3`, "fetched posts"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q does not contain %q", out, want)
		}
	}
}

func TestImpl_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(Opts{Env: "production", Level: "warn", Writer: &buf})

	log.Info("quiet")
	log.Warn("loud")

	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Errorf("info record leaked through warn level: %q", out)
	}
	if !strings.Contains(out, "loud") {
		t.Errorf("warn record missing: %q", out)
	}
}
