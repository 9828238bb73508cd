package phishing

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/cyberguardian/cyberguardian/internal/i18n"
)

type KeyMap struct {
	Scan  key.Binding
	Paste key.Binding
	Next  key.Binding
	Prev  key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Scan, km.Paste, km.Next}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Scan, km.Paste}, {km.Next, km.Prev}}
}

var _ help.KeyMap = KeyMap{}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Scan: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", i18n.T("key.scan")),
		),
		Paste: key.NewBinding(
			key.WithKeys("ctrl+v"),
			key.WithHelp("ctrl+v", i18n.T("key.paste")),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", i18n.T("key.next")),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", i18n.T("key.previous")),
		),
	}
}
