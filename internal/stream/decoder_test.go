package stream

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chunkedReader returns at most n bytes per Read call, simulating network
// chunk boundaries that fall in the middle of a line.
type chunkedReader struct {
	data []byte
	n    int
}

func (r *chunkedReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, io.EOF
	}
	n := r.n
	if n > len(r.data) {
		n = len(r.data)
	}
	if n > len(p) {
		n = len(p)
	}
	copy(p, r.data[:n])
	r.data = r.data[n:]
	return n, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func collectEvents(t *testing.T, d *Decoder) []Event {
	t.Helper()
	var events []Event
	for {
		ev, err := d.Next()
		if err == io.EOF {
			return events
		}
		require.NoError(t, err)
		events = append(events, ev)
	}
}

func TestDecoder_ReadsEventSequence(t *testing.T) {
	body := "data: {\"status\":\"started\",\"message\":\"Starting generation process...\"}\n\n" +
		"data: {\"status\":\"explanation_chunk\",\"chunk\":\"Hello \"}\n\n" +
		"data: {\"status\":\"complete\",\"explanation\":\"Hello\",\"diagram\":\"graph TD;\"}\n\n"

	d := NewDecoder(strings.NewReader(body), testLogger())
	events := collectEvents(t, d)

	require.Len(t, events, 3)
	assert.Equal(t, StatusStarted, events[0].Status)
	assert.Equal(t, "Hello ", events[1].Chunk)
	assert.Equal(t, "graph TD;", events[2].Diagram)
}

func TestDecoder_ReassemblesLinesSplitAcrossReads(t *testing.T) {
	body := "data: {\"status\":\"explanation_chunk\",\"chunk\":\"a long chunk of explanation text\"}\n" +
		"data: {\"status\":\"diagram_chunk\",\"chunk\":\"graph TD;A-->B;\"}\n"

	// Three bytes per read guarantees every JSON object spans many reads.
	d := NewDecoder(&chunkedReader{data: []byte(body), n: 3}, testLogger())
	events := collectEvents(t, d)

	require.Len(t, events, 2)
	assert.Equal(t, "a long chunk of explanation text", events[0].Chunk)
	assert.Equal(t, "graph TD;A-->B;", events[1].Chunk)
}

func TestDecoder_SkipsMalformedJSON(t *testing.T) {
	body := "data: {\"status\":\"started\"}\n" +
		"data: {not valid json\n" +
		"data: {\"status\":\"complete\",\"diagram\":\"graph TD;\"}\n"

	d := NewDecoder(strings.NewReader(body), testLogger())
	events := collectEvents(t, d)

	require.Len(t, events, 2)
	assert.Equal(t, StatusStarted, events[0].Status)
	assert.Equal(t, StatusComplete, events[1].Status)
}

func TestDecoder_IgnoresBlankAndNonDataLines(t *testing.T) {
	body := "\n" +
		": keep-alive\n" +
		"data: \n" +
		"data: {\"status\":\"started\"}\n"

	d := NewDecoder(strings.NewReader(body), testLogger())
	events := collectEvents(t, d)

	require.Len(t, events, 1)
	assert.Equal(t, StatusStarted, events[0].Status)
}

func TestDecoder_FinalLineWithoutNewline(t *testing.T) {
	body := "data: {\"status\":\"error\",\"message\":\"cut off\"}"

	d := NewDecoder(strings.NewReader(body), testLogger())
	events := collectEvents(t, d)

	require.Len(t, events, 1)
	assert.Equal(t, StatusError, events[0].Status)
}
