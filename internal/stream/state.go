package stream

// State is a snapshot of one generation run. The three accumulators are
// append-only within a run and reset only when a new run starts.
type State struct {
	Status      Status
	Message     string
	Explanation string
	Mapping     string
	Diagram     string
	Error       string
}

// NewState returns the starting state for a fresh generation run.
func NewState() State {
	return State{Status: StatusIdle}
}

// Terminal reports whether the state accepts no further events.
// Once a run is complete or failed, only an explicit new run resets it.
func (s State) Terminal() bool {
	return s.Status == StatusComplete || s.Status == StatusError
}

// Reduce folds one event into the state and returns the next snapshot.
// Terminal states absorb all subsequent events unchanged.
func Reduce(s State, ev Event) State {
	if s.Terminal() {
		return s
	}

	// An error field on any event ends the run immediately, regardless of
	// the status it arrived under.
	if ev.Error != "" {
		s.Status = StatusError
		s.Error = ev.Error
		return s
	}

	switch ev.Status {
	case StatusExplanationChunk:
		s.Explanation += ev.Chunk
	case StatusMappingChunk:
		s.Mapping += ev.Chunk
	case StatusDiagramChunk:
		s.Diagram += ev.Chunk

	case StatusComplete:
		// The backend sends the final, post-processed texts on completion.
		// The component mapping is an intermediate artifact and is dropped.
		return State{
			Status:      StatusComplete,
			Message:     ev.Message,
			Explanation: ev.Explanation,
			Diagram:     ev.Diagram,
		}

	case StatusError:
		s.Status = StatusError
		s.Error = ev.Message
		return s

	case StatusStarted,
		StatusExplanationSent, StatusExplanation,
		StatusMappingSent, StatusMapping,
		StatusDiagramSent, StatusDiagram:
		s.Status = ev.Status
		s.Message = ev.Message

	default:
		// Unknown statuses are tolerated so a newer backend does not break
		// older clients; the message still surfaces.
		s.Status = ev.Status
		s.Message = ev.Message
	}

	return s
}
