package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type frameMsg time.Time

// framePump turns the widget's frame requests into tea.Tick commands. At
// most one tick is in flight. It is shared by pointer so that copies of the
// Model made by bubbletea see the same state.
type framePump struct {
	interval  time.Duration
	requested bool
	inFlight  bool
}

func (p *framePump) RequestFrame() {
	p.requested = true
}

// next returns the tick for a pending request, or nil.
func (p *framePump) next() tea.Cmd {
	if !p.requested || p.inFlight {
		return nil
	}
	p.requested = false
	p.inFlight = true
	return tea.Tick(p.interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// arrived marks the in-flight tick as delivered.
func (p *framePump) arrived() {
	p.inFlight = false
}
