package utils

import (
	"embed"
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

var messageFiles = []string{"en.yaml", "zh_tw.yaml"}

//go:embed locales/*.yaml
var locales embed.FS

var bundle *i18n.Bundle

func init() {
	if err := InitI18NBundle(""); err != nil {
		panic(err)
	}
}

// InitI18NBundle loads the message files from dir, or the embedded ones
// when dir is empty
func InitI18NBundle(dir string) error {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	for _, name := range messageFiles {
		if dir != "" {
			if _, err := b.LoadMessageFile(path.Join(dir, name)); err != nil {
				return err
			}
			continue
		}

		data, err := locales.ReadFile(path.Join("locales", name))
		if err != nil {
			return err
		}
		if _, err := b.ParseMessageFileBytes(data, name); err != nil {
			return err
		}
	}

	bundle = b
	return nil
}

func NewLocalizer(lang string) *i18n.Localizer {
	return i18n.NewLocalizer(bundle, lang)
}

// Translate returns the message for id, falling back to the id itself
func Translate(loc *i18n.Localizer, id string, data map[string]interface{}) string {
	msg, err := loc.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		return id
	}
	return msg
}
