package logview

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

const (
	// TimestampField is the field log entries are ordered by.
	TimestampField = "@timestamp"
	// TiebreakerField breaks ordering ties between entries with equal timestamps.
	TiebreakerField = "_doc"
	// DefaultLogViewID identifies the built-in log view.
	DefaultLogViewID = "default"
)

// DefaultMessageFields are tried in order when extracting the log message.
var DefaultMessageFields = []string{"message"}

const defaultNameKey = "Log View"

var supported = []language.Tag{
	language.English,
	language.Spanish,
	language.French,
	language.German,
	language.Japanese,
}

var names = func() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	b.SetString(language.English, defaultNameKey, "Log View")
	b.SetString(language.Spanish, defaultNameKey, "Vista de registros")
	b.SetString(language.French, defaultNameKey, "Vue des journaux")
	b.SetString(language.German, defaultNameKey, "Protokollansicht")
	b.SetString(language.Japanese, defaultNameKey, "ログビュー")
	return b
}()

var matcher = language.NewMatcher(supported)

// DefaultName returns the display name of the built-in log view, localized
// for the given language. Unsupported languages fall back to English.
func DefaultName(tag language.Tag) string {
	return message.NewPrinter(tag, message.Catalog(names)).Sprintf(defaultNameKey)
}

// MatchLocale picks the best supported language for a BCP 47 locale string
// (e.g. "es-MX", "ja"). Empty or unparseable locales match English.
func MatchLocale(locale string) language.Tag {
	if locale == "" {
		return language.English
	}
	tag, _ := language.MatchStrings(matcher, locale)
	return tag
}

// DefaultColumns returns the display columns used when a log view does not
// configure its own. The IDs are fixed so default views compare stable.
func DefaultColumns() []Column {
	return []Column{
		{Type: ColumnTimestamp, ID: "5e7f964a-be8a-40d8-88d2-fbcfbdca0e2f"},
		{Type: ColumnField, ID: "eb5e0e68-9abd-4262-ac78-09e22e352a4e", Field: "event.dataset"},
		{Type: ColumnMessage, ID: "b645d6da-824b-4723-9a2a-e8cece1645c0"},
	}
}

// DefaultAttributes returns the built-in log view configuration, with the
// display name localized for the given language.
func DefaultAttributes(tag language.Tag) Attributes {
	return Attributes{
		Name:       DefaultName(tag),
		LogIndices: LogIndices{Kind: KindLogSources},
		Columns:    DefaultColumns(),
	}
}
