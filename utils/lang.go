package utils

import (
	"os"
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

// MessageLanguages are the translation files looked up under `i18n.dir`
var MessageLanguages = []string{"en", "ko"}

var bundle = newBundle()

func newBundle() *i18n.Bundle {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	return b
}

// InitI18NBundle loads the translation files of `i18n.dir`. Languages without
// a file fall back to the default message of each call site.
func InitI18NBundle() error {
	b := newBundle()

	dir := viper.GetString("i18n.dir")
	if dir != "" {
		for _, lang := range MessageLanguages {
			file := path.Join(dir, lang+".yaml")
			if _, err := os.Stat(file); os.IsNotExist(err) {
				continue
			}

			if _, err := b.LoadMessageFile(file); err != nil {
				return err
			}
		}
	}

	bundle = b
	return nil
}

func NewLocalizer(langs ...string) *i18n.Localizer {
	return i18n.NewLocalizer(bundle, langs...)
}

// Localize translates a message for an Accept-Language header value and
// returns the default text when no translation exists
func Localize(acceptLanguage, messageID, defaultText string) string {
	msg, err := NewLocalizer(acceptLanguage).Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID:    messageID,
			Other: defaultText,
		},
	})
	if err != nil || msg == "" {
		return defaultText
	}
	return msg
}
