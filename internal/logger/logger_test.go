package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		config    Config
		checkFunc func(t *testing.T, output string)
	}{
		{
			name:   "text format at info level",
			config: Config{Level: "info", Format: "text"},
			checkFunc: func(t *testing.T, output string) {
				if !strings.Contains(output, "level=INFO") ||
					!strings.Contains(output, `msg="diagram ready"`) {
					t.Errorf("expected text output with info level and message, got: %s", output)
				}
			},
		},
		{
			name:   "json format at debug level",
			config: Config{Level: "debug", Format: "json"},
			checkFunc: func(t *testing.T, output string) {
				var entry map[string]interface{}
				if err := json.Unmarshal([]byte(output), &entry); err != nil {
					t.Fatalf("failed to unmarshal JSON log: %v, output: %s", err, output)
				}
				if entry["level"] != "DEBUG" || entry["msg"] != "diagram ready" {
					t.Errorf("expected JSON output with debug level and message, got: %v", entry)
				}
			},
		},
		{
			name:   "info level drops debug records",
			config: Config{Level: "info", Format: "text"},
			checkFunc: func(t *testing.T, output string) {
				if strings.Contains(output, "level=DEBUG") {
					t.Errorf("expected debug records to be filtered, got: %s", output)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(tt.config, &buf)

			logger.Debug("diagram ready")
			if tt.config.Level != "debug" {
				logger.Info("diagram ready")
			}

			tt.checkFunc(t, buf.String())
		})
	}
}
