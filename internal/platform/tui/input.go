package tui

import "github.com/vovakirdan/nightfall/internal/core"

// InputState turns key presses into per-tick input frames.
//
// Terminals report presses and auto-repeats but never releases, so a
// movement or jump key counts as held until its hold window runs out
// without a repeat. The first press gets a longer window that covers the
// terminal's initial repeat delay. When the jump window runs out the next
// frame carries ActionJumpRelease.
type InputState struct {
	initial int64
	repeat  int64
	held    map[core.Action]int64 // action -> last tick it counts as held
	once    core.InputFrame
}

// NewInputState creates an input state for the given tick rate.
func NewInputState(tickRate int) *InputState {
	if tickRate <= 0 {
		tickRate = 60
	}
	initial := int64(tickRate) * 6 / 10
	repeat := int64(tickRate) / 8
	if repeat < 1 {
		repeat = 1
	}
	if initial < repeat {
		initial = repeat
	}
	return &InputState{
		initial: initial,
		repeat:  repeat,
		held:    make(map[core.Action]int64),
		once:    core.NewInputFrame(),
	}
}

func holdable(a core.Action) bool {
	return a == core.ActionLeft || a == core.ActionRight || a == core.ActionJump
}

// Press records a key press at tick now.
func (s *InputState) Press(a core.Action, now int64) {
	if a == core.ActionNone {
		return
	}
	if !holdable(a) {
		s.once.Set(a)
		return
	}

	switch a {
	case core.ActionLeft:
		delete(s.held, core.ActionRight)
	case core.ActionRight:
		delete(s.held, core.ActionLeft)
	}

	until, held := s.held[a]
	if !held || until < now {
		if a == core.ActionJump {
			s.once.Set(core.ActionJump)
		}
		s.held[a] = now + s.initial
		return
	}
	if next := now + s.repeat; next > until {
		s.held[a] = next
	}
}

// Frame returns the actions active at tick now and clears one-shot presses.
func (s *InputState) Frame(now int64) core.InputFrame {
	f := s.once.Clone()
	s.once.Clear()

	for a, until := range s.held {
		if until < now {
			delete(s.held, a)
			if a == core.ActionJump {
				f.Set(core.ActionJumpRelease)
			}
			continue
		}
		if a != core.ActionJump {
			f.Set(a)
		}
	}
	return f
}

// Held reports whether an action is currently held.
func (s *InputState) Held(a core.Action, now int64) bool {
	until, ok := s.held[a]
	return ok && until >= now
}

// Reset forgets every held key and pending press.
func (s *InputState) Reset() {
	for a := range s.held {
		delete(s.held, a)
	}
	s.once.Clear()
}
