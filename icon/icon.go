// Package icon renders UI symbols in the glyph variant selected by the user.
//
// Icons can be displayed as emoji, nerd-font glyphs, plain text, kaomoji
// or Unicode squares depending on the icons.variant setting.
package icon

import (
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/tmdb-cli/tmdb/key"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants returns all registered icon style identifiers.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// IsVariant reports whether name is a registered icon style.
func IsVariant(name string) bool {
	return lo.Contains(AvailableVariants(), name)
}

// Icon identifies a symbol in the registry.
type Icon int

const (
	Progress Icon = iota + 1
	Success
	Fail
	Star
	Key
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return d.plain
	}
}

var icons = map[Icon]*iconDef{
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "…",
		kaomoji: "(・_・ヾ",
		squares: "▣",
	},
	Success: {
		emoji:   "✅",
		nerd:    "",
		plain:   "✔",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "▣",
	},
	Fail: {
		emoji:   "❌",
		nerd:    "",
		plain:   "✖",
		kaomoji: "(╯°□°)╯",
		squares: "▣",
	},
	Star: {
		emoji:   "⭐",
		nerd:    "",
		plain:   "★",
		kaomoji: "★",
		squares: "★",
	},
	Key: {
		emoji:   "🔑",
		nerd:    "",
		plain:   "›",
		kaomoji: "(｀・ω・´)",
		squares: "▣",
	},
}

// Get returns the rendered string for an icon.
// Unknown variants render as plain; unregistered icons render as an empty string.
func Get(i Icon) string {
	d, ok := icons[i]
	if !ok {
		return ""
	}
	return d.Get()
}
