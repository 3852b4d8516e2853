package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestSetupFiltersByLevel(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var buf bytes.Buffer
	logger, err := Setup("warn", &buf)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}

	logger.Info().Msg("quiet")
	logger.Warn().Str("component", "test").Msg("loud")

	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Errorf("info line written at warn level: %q", out)
	}
	if !strings.Contains(out, "loud") || !strings.Contains(out, "component=") {
		t.Errorf("warn line missing: %q", out)
	}
}

func TestSetupRejectsUnknownLevel(t *testing.T) {
	if _, err := Setup("chatty", nil); err == nil {
		t.Error("Setup accepted an unknown level")
	}
}
