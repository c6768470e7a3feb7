package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	reg.Bind("space", tea.Quit)
	reg.Bind("j", nil)

	if reg.Lookup("q") == nil {
		t.Error("expected q to be bound")
	}
	if reg.Lookup(" ") == nil {
		t.Error("expected space to be bound")
	}
	if reg.Lookup("j") != nil {
		t.Error("expected j (nil cmd) to be unbound")
	}
	if reg.Lookup("unknown") != nil {
		t.Error("expected unknown to be unbound")
	}
}

func TestKeyHandler_SingleKey(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg("q"))
	if !consumed || cmd == nil {
		t.Errorf("q: consumed=%v cmd=%v", consumed, cmd)
	}
}

func TestKeyHandler_Arrows(t *testing.T) {
	reg := NewKeybindRegistry()
	var got Direction = -1
	reg.Bind("left", func() tea.Msg {
		got = DirLeft
		return nil
	})
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg("left"))
	if !consumed || cmd == nil {
		t.Fatalf("left: consumed=%v cmd=%v", consumed, cmd)
	}
	cmd()
	if got != DirLeft {
		t.Errorf("expected left command to run, got %v", got)
	}
}

func TestKeyHandler_UnboundFallsThrough(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, _ := h.Handle(keyMsg("j"))
	if consumed {
		t.Error("unbound j should not be consumed")
	}
}

func TestKeyMap_GroupsSharedDescriptions(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("up", tea.Quit, "move")
	reg.BindWithDesc("down", tea.Quit, "move")
	reg.BindWithDesc("enter", tea.Quit, "activate")
	reg.BindWithDesc("q", tea.Quit, "quit")
	reg.Bind("x", tea.Quit) // no description, not shown

	bindings := NewKeyMap(reg).ShortHelp()
	if len(bindings) != 3 {
		t.Fatalf("expected 3 bindings, got %d", len(bindings))
	}
	want := []struct{ key, desc string }{
		{"↑/↓", "move"},
		{"enter", "activate"},
		{"q", "quit"},
	}
	for i, w := range want {
		h := bindings[i].Help()
		if h.Key != w.key || h.Desc != w.desc {
			t.Errorf("binding %d: expected %q %q, got %q %q", i, w.key, w.desc, h.Key, h.Desc)
		}
	}
	if len(NewKeyMap(reg).FullHelp()) != 1 {
		t.Error("expected FullHelp to have one column")
	}
}

func TestRenderKeybindHelp(t *testing.T) {
	if RenderKeybindHelp(nil) != "" {
		t.Error("nil registry should render nothing")
	}
	if RenderKeybindHelp(NewKeybindRegistry()) != "" {
		t.Error("empty registry should render nothing")
	}
}

// keyMsg creates a tea.KeyMsg for testing. Bubble Tea uses KeyType and Runes.
// KeySpace.String() returns " ", KeyUp returns "up", etc.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
