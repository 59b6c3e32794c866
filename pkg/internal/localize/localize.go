// Package localize renders the user-facing message catalogue. The English
// strings double as catalogue keys; translated catalogues register overrides
// for the same keys.
package localize

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

var builder = catalog.NewBuilder(catalog.Fallback(language.English))

var supported = []language.Tag{
	language.English,
}

var matcher = language.NewMatcher(supported)

// Register adds a translated string for the given catalogue key. Intended for
// translation bundles loaded at boot.
func Register(tag language.Tag, key, translation string) {
	_ = builder.SetString(tag, key, translation)
	supported = append(supported, tag)
	matcher = language.NewMatcher(supported)
}

func Render(tag language.Tag, key string, args ...any) string {
	matched, _, _ := matcher.Match(tag)
	return message.NewPrinter(matched, message.Catalog(builder)).Sprintf(key, args...)
}

// Match resolves a BCP 47 code like "en-US" to the closest supported tag.
func Match(code string) language.Tag {
	tag, err := language.Parse(code)
	if err != nil {
		return language.English
	}
	matched, _, _ := matcher.Match(tag)
	return matched
}
