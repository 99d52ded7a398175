package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/sevigo/repograph/internal/session"
	"github.com/sevigo/repograph/internal/stream"
)

// Color definitions
var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	infoColor    = color.New(color.FgWhite)
	dimColor     = color.New(color.FgHiBlack)
)

// progressPrinter turns streamed session snapshots into terminal output.
// Phase messages are printed once each; chunk progress is shown as a
// growing character count on the same line.
type progressPrinter struct {
	verbose     bool
	start       time.Time
	lastMessage string
	lastStatus  stream.Status
	chunkLine   bool

	explanationLen int
	mappingLen     int
	diagramLen     int
}

func newProgressPrinter(verbose bool) *progressPrinter {
	return &progressPrinter{verbose: verbose, start: time.Now()}
}

func (p *progressPrinter) update(snap session.Snapshot) {
	st := snap.State

	if st.Message != "" && st.Message != p.lastMessage {
		p.endChunkLine()
		p.lastMessage = st.Message
		dimColor.Printf("   %s\n", st.Message)
	}

	if p.verbose && st.Status != p.lastStatus {
		p.endChunkLine()
		p.lastStatus = st.Status
		dimColor.Printf("   phase: %s (%s)\n", st.Status, time.Since(p.start).Round(time.Millisecond))
	}

	switch {
	case len(st.Explanation) > p.explanationLen && !st.Terminal():
		p.explanationLen = len(st.Explanation)
		fmt.Printf("\r   explanation: %d chars", p.explanationLen)
		p.chunkLine = true
	case len(st.Mapping) > p.mappingLen:
		p.mappingLen = len(st.Mapping)
		fmt.Printf("\r   mapping: %d chars", p.mappingLen)
		p.chunkLine = true
	case len(st.Diagram) > p.diagramLen && !st.Terminal():
		p.diagramLen = len(st.Diagram)
		fmt.Printf("\r   diagram: %d chars", p.diagramLen)
		p.chunkLine = true
	}

	if st.Terminal() {
		p.endChunkLine()
	}
}

func (p *progressPrinter) endChunkLine() {
	if p.chunkLine {
		fmt.Println()
		p.chunkLine = false
	}
}

// printResult writes the finished diagram and explanation to stdout.
func printResult(snap session.Snapshot, showExplanation bool) {
	separator := strings.Repeat("─", 60)

	if snap.Cost != "" {
		dimColor.Printf("   Estimated cost: %s\n", snap.Cost)
	}
	if snap.LastGenerated != nil {
		dimColor.Printf("   Last generated: %s\n", snap.LastGenerated.Format(time.RFC822))
	}

	fmt.Println()
	titleColor.Println(separator)
	fmt.Println(snap.State.Diagram)
	titleColor.Println(separator)

	if showExplanation && snap.State.Explanation != "" {
		fmt.Println()
		infoColor.Println(snap.State.Explanation)
	}
}
