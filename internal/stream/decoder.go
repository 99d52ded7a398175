package stream

import (
	"bufio"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
)

// dataPrefix marks payload-bearing lines in the SSE body. Lines without it
// (blank keep-alives, comments) are skipped.
const dataPrefix = "data: "

// maxLineSize bounds a single event line. A complete diagram payload fits
// comfortably; anything larger is a protocol violation.
const maxLineSize = 4 * 1024 * 1024

// Decoder reads newline-delimited SSE records from a response body and
// yields them one event at a time. Partial lines are buffered across reads,
// so an event split over several network chunks is reassembled correctly.
type Decoder struct {
	scanner *bufio.Scanner
	logger  *slog.Logger
}

// NewDecoder wraps a raw stream body. The logger receives skipped-line
// diagnostics and may not be nil.
func NewDecoder(r io.Reader, logger *slog.Logger) *Decoder {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	return &Decoder{scanner: scanner, logger: logger}
}

// Next returns the next well-formed event from the stream. Malformed JSON
// lines are logged and skipped rather than failing the stream. It returns
// io.EOF once the stream is exhausted, or the underlying read error.
func (d *Decoder) Next() (Event, error) {
	for d.scanner.Scan() {
		line := d.scanner.Text()
		if !strings.HasPrefix(line, dataPrefix) {
			continue
		}
		payload := strings.TrimPrefix(line, dataPrefix)
		if strings.TrimSpace(payload) == "" {
			continue
		}

		var ev Event
		if err := json.Unmarshal([]byte(payload), &ev); err != nil {
			d.logger.Warn("skipping malformed stream event", "error", err, "line_length", len(line))
			continue
		}
		return ev, nil
	}

	if err := d.scanner.Err(); err != nil {
		return Event{}, err
	}
	return Event{}, io.EOF
}
