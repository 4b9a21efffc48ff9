package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-roll/internal/core"
)

func TestGameKeyMapMapKey(t *testing.T) {
	keys := DefaultGameKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"restart", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}, core.ActionRestart},
		{"next", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")}, core.ActionNext},
		{"next arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionNext},
		{"prev", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")}, core.ActionPrev},
		{"prev arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionPrev},
		{"pause", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, core.ActionPause},
		{"quit", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"help is platform only", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")}, core.ActionNone},
		{"unbound", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("z")}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestMouseToPointer(t *testing.T) {
	tests := []struct {
		name   string
		msg    tea.MouseMsg
		want   core.PointerKind
		wantOK bool
	}{
		{"left press", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, core.PointerPress, true},
		{"right press", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, 0, false},
		{"wheel", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}, 0, false},
		{"motion", tea.MouseMsg{Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}, core.PointerMotion, true},
		{"release", tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}, core.PointerRelease, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MouseToPointer(tt.msg)
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Errorf("MouseToPointer = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
