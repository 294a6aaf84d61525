package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// HelpSection はヘルプのセクションを表す。
type HelpSection struct {
	Title    string
	Bindings []KeyBinding
}

// DefaultHelpSections はヘルプに表示するセクションを返す。
func DefaultHelpSections() []HelpSection {
	return []HelpSection{
		{Title: "Lists", Bindings: ListKeyBindings(true)},
		{Title: "Forms", Bindings: FormKeyBindings()},
		{Title: "Global", Bindings: GlobalKeyBindings()},
	}
}

// FormatHelp はヘルプセクションを表示用テキストに整形する。
func FormatHelp(sections []HelpSection) string {
	var b strings.Builder
	for i, section := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(StyleBold(section.Title) + "\n")
		for _, kb := range section.Bindings {
			b.WriteString("  " + kb.Label() + "  " + kb.Description + "\n")
		}
	}
	return b.String()
}

// NewHelpModal はヘルプモーダルを生成する。
func NewHelpModal(sections []HelpSection, onClose func()) *tview.Modal {
	modal := tview.NewModal().
		SetText(FormatHelp(sections)).
		AddButtons([]string{"Close"}).
		SetDoneFunc(func(int, string) {
			if onClose != nil {
				onClose()
			}
		})

	modal.SetTitle(" Help ").
		SetBorder(true).
		SetBorderColor(tcell.ColorTeal)
	return modal
}
