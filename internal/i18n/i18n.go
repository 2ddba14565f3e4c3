// Package i18n provides the localized reply catalog for the bot.
// It uses the go-i18n library to load embedded translation files, so every
// user-facing chat string can be served in the configured language.
package i18n

import (
	"embed"
	"io/fs"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// localeFS embeds the YAML translation files from the 'locales' directory
// into the application binary.
//
//go:embed locales/*.yaml
var localeFS embed.FS

// bundle stores all the loaded translation messages from the locale files.
var bundle *i18n.Bundle

// localizer is used to translate messages into a specific language.
var localizer *i18n.Localizer

// Init initializes the i18n bundle and sets up the localizer for a specific
// language. It parses all embedded YAML files from the 'locales' directory.
// Japanese is the bundle default; unknown languages fall back to it.
func Init(lang string) {
	bundle = i18n.NewBundle(language.Japanese)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, _ := localeFS.ReadFile("locales/" + f.Name())
		bundle.ParseMessageFileBytes(data, f.Name())
	}

	localizer = i18n.NewLocalizer(bundle, lang)
}

// T translates a message by its ID.
// If the i18n system has not been initialized, it defaults to Japanese.
// If a translation for the given ID is not found, it returns the ID itself.
func T(messageID string) string {
	return TD(messageID, nil)
}

// TD translates a message by its ID, executing the message template with
// the given data.
func TD(messageID string, data map[string]any) string {
	if localizer == nil {
		Init("ja")
	}
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	if err != nil {
		// Unknown message IDs fall back to the ID itself.
		return messageID
	}
	return msg
}
