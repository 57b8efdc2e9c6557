// Package icon renders the status symbols printed next to diagnostics.
//
// Icons can be displayed as emoji, plain ASCII or Unicode squares depending on user preference.
package icon

import (
	"github.com/lifo-cli/lifo/key"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	plain   = "plain"
	squares = "squares"
)

// AvailableVariants returns a slice of all registered icon style identifiers.
func AvailableVariants() []string {
	return []string{emoji, plain, squares}
}

// Icon identifies a symbol in the registry.
type Icon int

const (
	Success Icon = iota
	Fail
	Hint
)

type iconDef struct {
	emoji   string
	plain   string
	squares string
}

func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case plain:
		return d.plain
	case squares:
		return d.squares
	default:
		return ""
	}
}

var icons = map[Icon]*iconDef{
	Success: {emoji: "✅", plain: "✓", squares: "🟩"},
	Fail:    {emoji: "❌", plain: "✖", squares: "🟥"},
	Hint:    {emoji: "💡", plain: "?", squares: "🟨"},
}

// Get returns the rendered string for an Icon under the configured variant.
func Get(i Icon) string {
	return icons[i].Get()
}
