package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	t.Run("info level hides debug", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(&buf, false)
		log.Debug("hidden")
		log.Info("shown")

		out := buf.String()
		if strings.Contains(out, "hidden") {
			t.Errorf("Debug entry written at info level: %q", out)
		}
		if !strings.Contains(out, "INFO") || !strings.Contains(out, "shown") {
			t.Errorf("Expected info entry, got %q", out)
		}
	})

	t.Run("verbose enables debug", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(&buf, true)
		log.Debug("details")

		if !strings.Contains(buf.String(), "DEBUG") {
			t.Errorf("Expected debug entry, got %q", buf.String())
		}
	})
}
