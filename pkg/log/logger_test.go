package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stdout)
	defer SetLevel(Notice)

	logger := New("test-module")

	tests := []struct {
		level    Level
		visible  []string
		filtered []string
	}{
		{Notice, []string{"notice-msg", "warning-msg", "error-msg"}, []string{"debug-msg", "info-msg"}},
		{Debug, []string{"debug-msg", "info-msg", "notice-msg"}, nil},
		{Error, []string{"error-msg"}, []string{"info-msg", "notice-msg", "warning-msg"}},
	}

	for _, tt := range tests {
		buf.Reset()
		SetLevel(tt.level)

		logger.Debug("debug-msg")
		logger.Infof("%s", "info-msg")
		logger.Notice("notice-msg")
		logger.Warningf("%s-%s", "warning", "msg")
		logger.Error("error-msg")

		out := buf.String()
		for _, msg := range tt.visible {
			if !strings.Contains(out, msg) {
				t.Errorf("level %d: expected %q in output %q", tt.level, msg, out)
			}
		}
		for _, msg := range tt.filtered {
			if strings.Contains(out, msg) {
				t.Errorf("level %d: expected %q to be filtered from %q", tt.level, msg, out)
			}
		}
	}
}

func TestLogger_Format(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stdout)

	New("renderer").Warning("tiles done")

	out := buf.String()
	for _, part := range []string{"[renderer]", "[WARNING]", "tiles done"} {
		if !strings.Contains(out, part) {
			t.Errorf("Expected %q in %q", part, out)
		}
	}
}

func TestSetSink_KeepsLevel(t *testing.T) {
	SetLevel(Error)
	defer SetLevel(Notice)

	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stdout)

	New("sink").Warning("hidden")
	if buf.Len() != 0 {
		t.Errorf("Expected warning to stay filtered after changing sink, got %q", buf.String())
	}
	if CurrentLevel() != Error {
		t.Errorf("Expected level Error, got %d", CurrentLevel())
	}
}
