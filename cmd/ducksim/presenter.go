package main

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/talgya/duckpond/internal/agents"
)

// logPresenter stands in for a sprite renderer: it logs animation changes.
// Frames arrive from the tick goroutine only, so no locking is needed.
type logPresenter struct {
	last map[uuid.UUID]presented
}

type presented struct {
	anim       agents.Animation
	facingLeft bool
}

func newLogPresenter() *logPresenter {
	return &logPresenter{last: make(map[uuid.UUID]presented)}
}

func (p *logPresenter) Present(f agents.Frame) {
	now := presented{anim: f.Animation, facingLeft: f.FacingLeft}
	if prev, ok := p.last[f.AgentID]; ok && prev == now {
		return
	}
	p.last[f.AgentID] = now
	slog.Debug("animation",
		"agent", f.AgentID,
		"play", f.Animation,
		"flip_h", f.FacingLeft,
	)
}
