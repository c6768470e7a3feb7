package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry maps keys to commands.
// Keys use tea.KeyMsg.String() notation: "up", "enter", "q", "ctrl+c".
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
	order        []string // registration order, for help display
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
	}
}

// Bind registers a key to a command.
// Overwrites any existing binding for the key.
// Use BindWithDesc for human-readable hints in the help view.
func (r *KeybindRegistry) Bind(k string, cmd tea.Cmd) {
	r.BindWithDesc(k, cmd, "")
}

// BindWithDesc registers a key with a description for the help view.
func (r *KeybindRegistry) BindWithDesc(k string, cmd tea.Cmd, desc string) {
	n := normalizeKey(k)
	if _, ok := r.bindings[n]; !ok {
		r.order = append(r.order, n)
	}
	r.bindings[n] = cmd
	if desc != "" {
		r.descriptions[n] = desc
	} else {
		delete(r.descriptions, n)
	}
}

// Lookup returns the command for a key, or nil if not bound.
func (r *KeybindRegistry) Lookup(k string) tea.Cmd {
	return r.bindings[normalizeKey(k)]
}

// normalizeKey maps Bubble Tea's " " for the space bar to "space".
func normalizeKey(k string) string {
	k = strings.TrimSpace(k)
	if k == "" {
		return "space"
	}
	return k
}

// KeyHandler dispatches key messages to the registry.
type KeyHandler struct {
	Registry *KeybindRegistry
}

// NewKeyHandler creates a handler over reg.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg}
}

// Handle processes a KeyMsg. Returns (consumed, cmd).
// Keys without a binding are not consumed and fall through to the views.
func (h *KeyHandler) Handle(msg tea.KeyMsg) (consumed bool, cmd tea.Cmd) {
	if c := h.Registry.Lookup(msg.String()); c != nil {
		return true, c
	}
	return false, nil
}

// keyLabels are the help labels for keys with a symbol.
var keyLabels = map[string]string{
	"up":    "↑",
	"down":  "↓",
	"left":  "←",
	"right": "→",
}

// KeyMap implements help.KeyMap over a KeybindRegistry.
// Consecutively registered keys that share a description are grouped
// into one binding, so the arrows render as "↑/↓/←/→ move".
type KeyMap struct {
	registry *KeybindRegistry
}

var _ help.KeyMap = (*KeyMap)(nil)

// NewKeyMap creates a KeyMap for the given registry.
func NewKeyMap(registry *KeybindRegistry) *KeyMap {
	return &KeyMap{registry: registry}
}

// ShortHelp returns bindings for the short help view, in registration order.
func (km *KeyMap) ShortHelp() []key.Binding {
	if km.registry == nil {
		return nil
	}
	var (
		bindings []key.Binding
		keys     []string
		labels   []string
		desc     string
	)
	flush := func() {
		if len(keys) == 0 {
			return
		}
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(strings.Join(labels, "/"), desc),
		))
		keys, labels = nil, nil
	}
	for _, k := range km.registry.order {
		d := km.registry.descriptions[k]
		if km.registry.bindings[k] == nil || d == "" {
			continue
		}
		if d != desc {
			flush()
			desc = d
		}
		keys = append(keys, k)
		label := k
		if l, ok := keyLabels[k]; ok {
			label = l
		}
		labels = append(labels, label)
	}
	flush()
	return bindings
}

// FullHelp returns a single column with the same bindings as ShortHelp.
func (km *KeyMap) FullHelp() [][]key.Binding {
	short := km.ShortHelp()
	if len(short) == 0 {
		return nil
	}
	return [][]key.Binding{short}
}
