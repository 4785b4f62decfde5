package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/fosscope/toolkit/internal/config"
	"github.com/fosscope/toolkit/internal/theme"
)

// Tip holds a tip format string and the keys to highlight
type Tip struct {
	Format string
	Keys   []string
}

// newTip formats a tip with its keys. The plain text is used for filtering.
func newTip(format string, keys ...string) Tip {
	return Tip{Format: format, Keys: keys}
}

// Text returns the tip without styling
func (t Tip) Text() string {
	args := make([]any, len(t.Keys))
	for i, k := range t.Keys {
		args[i] = k
	}
	return fmt.Sprintf(t.Format, args...)
}

// RenderTip formats a tip with highlighted keys and gray text
func RenderTip(tip Tip) string {
	parts := strings.Split(tip.Format, "%s")
	var b strings.Builder
	b.WriteString(theme.TipTextStyle.Render("ℹ  tip: "))
	for i, part := range parts {
		b.WriteString(theme.TipTextStyle.Render(part))
		if i < len(tip.Keys) {
			b.WriteString(theme.TipKeyStyle.Render(tip.Keys[i]))
		}
	}
	return b.String()
}

// KeyWithTip wraps a key.Binding with an optional tip.
type KeyWithTip struct {
	Binding key.Binding
	Tip     *Tip
}

// buildBinding creates a KeyWithTip from the key definition, using custom keys if provided.
func buildBinding(name string, customKeys config.KeyBindingsConfig) KeyWithTip {
	def := GetKeyDefinition(name)
	if def == nil {
		panic("unknown key definition: " + name)
	}

	keys := def.Defaults
	if custom, ok := customKeys[name]; ok && len(custom) > 0 {
		keys = custom
	}

	result := KeyWithTip{
		Binding: key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(strings.Join(keys, "/"), def.Help),
		),
	}

	if def.TipFormat != "" && len(keys) > 0 {
		tip := newTip(def.TipFormat, keys[0])
		result.Tip = &tip
	}

	return result
}
