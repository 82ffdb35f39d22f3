package config

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"github.com/tmdb-cli/tmdb/color"
	"github.com/tmdb-cli/tmdb/constant"
	"github.com/tmdb-cli/tmdb/key"
	"github.com/tmdb-cli/tmdb/style"
)

// Field is a configuration key with its default value.
// The default's dynamic type (string, int or bool) is the type of the setting.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Env returns the environment variable that overrides the field.
func (f *Field) Env() string {
	return strings.ToUpper(constant.App + "_" + EnvKeyReplacer.Replace(f.Key))
}

// Kind names the setting type as shown by `config info`.
func (f *Field) Kind() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	}
	return fmt.Sprintf("%T", f.Value)
}

// Pretty renders the field for `config info`.
func (f *Field) Pretty() string {
	label := style.Fg(color.Blue)
	rows := [][2]string{
		{"Key:", style.Fg(color.Purple)(f.Key)},
		{"Env:", f.Env()},
		{"Value:", highlight(viper.Get(f.Key))},
		{"Default:", highlight(f.Value)},
		{"Type:", f.Kind()},
	}

	var b strings.Builder
	b.WriteString(style.Faint(f.Description))
	for _, row := range rows {
		fmt.Fprintf(&b, "\n%s %s%s", label(row[0]), strings.Repeat(" ", 8-len(row[0])), row[1])
	}
	return b.String()
}

type fieldJSON struct {
	Key         string `json:"key"`
	Value       any    `json:"value"`
	Default     any    `json:"default"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// MarshalJSON reports the current value next to the default.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(fieldJSON{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.Kind(),
	})
}

func highlight(v any) string {
	switch value := v.(type) {
	case bool:
		if value {
			return style.Fg(color.Green)("true")
		}
		return style.Fg(color.Red)("false")
	case string:
		return style.Fg(color.Yellow)(value)
	default:
		return fmt.Sprint(value)
	}
}

// Default maps every known key to its field.
var Default = make(map[string]Field)

// EnvExposed lists the keys bound to environment variables, in registration order.
var EnvExposed []string

var fields = []Field{
	{key.CatalogBaseURL, constant.ProviderBaseURL, "Base URL of the movie collection endpoints"},
	{key.CatalogLanguage, constant.ProviderLanguage, "Locale tag sent with every catalog request"},
	{key.CatalogDefaultType, "popular", "Movie list fetched when --type is omitted.\nAvailable options are: playing, popular, top, upcoming"},
	{key.CatalogDefaultLimit, 10, "Number of movies shown when --limit is omitted. From 1 to 20"},
	{key.IconsVariant, "plain", "Icon set used in progress and status lines.\nAvailable options are: plain, emoji, kaomoji, squares, nerd (nerd-font required)"},
	{key.LogsWrite, false, "Write a daily log file to the logs directory"},
	{key.LogsLevel, "info", "Log verbosity, from least to most verbose:\npanic, fatal, error, warn, info, debug, trace"},
	{key.LogsJson, false, "Write log entries as JSON"},
	{key.CliColored, true, "Colorize the command help"},
	{key.CliTruncate, false, "Truncate listing lines to the terminal width"},
}

func init() {
	for _, f := range fields {
		if _, dup := Default[f.Key]; dup {
			panic("config: duplicate key " + f.Key)
		}
		Default[f.Key] = f
		EnvExposed = append(EnvExposed, f.Key)
	}
}
