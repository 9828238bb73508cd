package scanner

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/cyberguardian/cyberguardian/internal/i18n"
)

type KeyMap struct {
	Scan key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding  { return []key.Binding{km.Scan} }
func (km KeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{km.Scan}} }

var _ help.KeyMap = KeyMap{}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Scan: key.NewBinding(
			key.WithKeys("enter", "s"),
			key.WithHelp("enter", i18n.T("key.scan")),
		),
	}
}
