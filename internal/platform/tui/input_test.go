package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/nightfall/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"a moves left", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}, core.ActionLeft, false},
		{"arrow moves right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"space jumps", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, core.ActionJump, false},
		{"f attacks", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("f")}, core.ActionAttack, false},
		{"esc pauses", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"s saves", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")}, core.ActionSave, false},
		{"b goes back", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")}, core.ActionBack, false},
		{"q quits", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound key", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("z")}, core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = (%v, %v), want (%v, %v)", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestHeldMovementExpires(t *testing.T) {
	s := NewInputState(60)
	s.Press(core.ActionLeft, 0)

	if f := s.Frame(1); !f.Has(core.ActionLeft) {
		t.Fatal("left should be held right after the press")
	}
	if f := s.Frame(36); !f.Has(core.ActionLeft) {
		t.Error("left should still be held inside the initial window")
	}
	if f := s.Frame(37); f.Has(core.ActionLeft) {
		t.Error("left should be released after the initial window")
	}
}

func TestRepeatExtendsHold(t *testing.T) {
	s := NewInputState(60)
	s.Press(core.ActionRight, 0)
	s.Press(core.ActionRight, 30)

	if f := s.Frame(37); !f.Has(core.ActionRight) {
		t.Error("repeat should extend the hold")
	}
	if f := s.Frame(38); f.Has(core.ActionRight) {
		t.Error("hold should end after the repeat window")
	}
}

func TestOppositeDirectionCancels(t *testing.T) {
	s := NewInputState(60)
	s.Press(core.ActionLeft, 0)
	s.Press(core.ActionRight, 1)

	f := s.Frame(2)
	if f.Has(core.ActionLeft) || !f.Has(core.ActionRight) {
		t.Errorf("expected only right to be held, got %v", f.Actions)
	}
}

func TestJumpEdgeAndRelease(t *testing.T) {
	s := NewInputState(60)
	s.Press(core.ActionJump, 0)

	f := s.Frame(1)
	if !f.Has(core.ActionJump) || f.Has(core.ActionJumpRelease) {
		t.Fatalf("first frame should carry only the jump edge, got %v", f.Actions)
	}

	// Auto-repeat does not re-trigger the jump.
	s.Press(core.ActionJump, 10)
	if f := s.Frame(11); f.Has(core.ActionJump) {
		t.Error("repeat should not produce another jump")
	}
	if !s.Held(core.ActionJump, 20) {
		t.Error("jump should be held between repeats")
	}

	if f := s.Frame(37); !f.Has(core.ActionJumpRelease) {
		t.Error("expected a release once the hold ran out")
	}
	if f := s.Frame(38); f.Has(core.ActionJumpRelease) {
		t.Error("release should be sent once")
	}
}

func TestOneShotActions(t *testing.T) {
	s := NewInputState(60)
	s.Press(core.ActionAttack, 0)
	s.Press(core.ActionNone, 0)

	if f := s.Frame(1); !f.Has(core.ActionAttack) {
		t.Fatal("attack should be delivered")
	}
	if f := s.Frame(2); f.Has(core.ActionAttack) {
		t.Error("attack should be delivered once")
	}
}

func TestInputReset(t *testing.T) {
	s := NewInputState(60)
	s.Press(core.ActionLeft, 0)
	s.Press(core.ActionAttack, 0)
	s.Reset()

	if f := s.Frame(1); len(f.Actions) != 0 {
		t.Errorf("expected an empty frame after reset, got %v", f.Actions)
	}
}
