package ui

import (
	"github.com/charmbracelet/bubbles/help"
)

// RenderKeybindHelp produces the one-line footer listing bound keys.
func RenderKeybindHelp(reg *KeybindRegistry) string {
	if reg == nil {
		return ""
	}
	bindings := NewKeyMap(reg).ShortHelp()
	if len(bindings) == 0 {
		return ""
	}

	helpModel := help.New()
	helpModel.Styles.ShortKey = Styles.HelpKey
	helpModel.Styles.ShortDesc = Styles.HelpDesc
	helpModel.Styles.ShortSeparator = Styles.HelpDesc
	return helpModel.ShortHelpView(bindings)
}
