// Package i18n resolves locales and prints the icon commands' terminal output.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var supportedTags = []language.Tag{
	language.English,
	language.German,
	language.MustParse("pt-BR"),
}

var tagMatcher = language.NewMatcher(supportedTags)

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	tags := make([]language.Tag, len(supportedTags))
	copy(tags, supportedTags)
	return tags
}

// Default returns the default language tag.
func Default() language.Tag {
	return language.English
}

// Match returns the supported tag closest to tag, or Default when none is.
func Match(tag language.Tag) language.Tag {
	_, idx, confidence := tagMatcher.Match(tag)
	if confidence == language.No || idx < 0 || idx >= len(supportedTags) {
		return Default()
	}
	return supportedTags[idx]
}

// Printer returns a message printer for the supported tag closest to tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(Match(tag))
}
