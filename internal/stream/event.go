// Package stream decodes the generation backend's SSE protocol and folds
// the decoded events into a single evolving generation state.
package stream

// Status identifies a phase of the generation protocol. The backend drives
// the client through explanation, component mapping, and diagram phases,
// each with a "sent" announcement, a phase marker, and incremental chunks.
type Status string

const (
	StatusIdle             Status = "idle"
	StatusStarted          Status = "started"
	StatusExplanationSent  Status = "explanation_sent"
	StatusExplanation      Status = "explanation"
	StatusExplanationChunk Status = "explanation_chunk"
	StatusMappingSent      Status = "mapping_sent"
	StatusMapping          Status = "mapping"
	StatusMappingChunk     Status = "mapping_chunk"
	StatusDiagramSent      Status = "diagram_sent"
	StatusDiagram          Status = "diagram"
	StatusDiagramChunk     Status = "diagram_chunk"
	StatusComplete         Status = "complete"
	StatusError            Status = "error"
)

// Event is one decoded record from the generation stream.
// Chunk carries an incremental piece of text; which accumulator it belongs
// to is determined by the status it arrives under. Explanation, Mapping and
// Diagram are only populated on the terminal "complete" event.
type Event struct {
	Status      Status `json:"status"`
	Message     string `json:"message,omitempty"`
	Chunk       string `json:"chunk,omitempty"`
	Explanation string `json:"explanation,omitempty"`
	Mapping     string `json:"mapping,omitempty"`
	Diagram     string `json:"diagram,omitempty"`
	Error       string `json:"error,omitempty"`
}
