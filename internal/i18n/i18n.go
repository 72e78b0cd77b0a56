// Package i18n holds the site languages and the translated UI strings.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Lang is a supported UI language tag.
type Lang string

const (
	EN   Lang = "en"
	ZhTW Lang = "zh-TW"
	ZhCN Lang = "zh-CN"
	ES   Lang = "es"
)

// Default is used when nothing better is known about the visitor.
const Default = EN

// Language describes one entry of the language switcher.
type Language struct {
	Code  Lang
	Label string
}

var languages = []Language{
	{EN, "EN"},
	{ZhTW, "繁體"},
	{ZhCN, "简体"},
	{ES, "ES"},
}

// Languages returns the switcher entries in display order.
func Languages() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}

// Parse matches s against the supported tags, ignoring case.
func Parse(s string) (Lang, bool) {
	s = strings.TrimSpace(s)
	for _, l := range languages {
		if strings.EqualFold(s, string(l.Code)) {
			return l.Code, true
		}
	}
	return "", false
}

// Label returns the switcher label for l.
func (l Lang) Label() string {
	for _, known := range languages {
		if known.Code == l {
			return known.Label
		}
	}
	return strings.ToUpper(string(l))
}

func (l Lang) String() string { return string(l) }

// IsChinese reports whether l is one of the Chinese variants. Any tag that
// starts with "zh" counts.
func IsChinese(l Lang) bool {
	return strings.HasPrefix(strings.ToLower(string(l)), "zh")
}

var (
	supportedTags = []language.Tag{
		language.English,
		language.MustParse("zh-TW"),
		language.MustParse("zh-CN"),
		language.Spanish,
	}
	supportedLangs = []Lang{EN, ZhTW, ZhCN, ES}
	matcher        = language.NewMatcher(supportedTags)
)

// FromAcceptLanguage picks the best supported language for an
// Accept-Language header value.
func FromAcceptLanguage(header string) Lang {
	if strings.TrimSpace(header) == "" {
		return Default
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return Default
	}
	return supportedLangs[idx]
}

// T returns the translation of key in l. Missing translations fall back to
// English, and unknown keys are returned unchanged.
func T(l Lang, key string) string {
	e, ok := catalog[key]
	if !ok {
		return key
	}
	var s string
	switch l {
	case ZhTW:
		s = e.zhTW
	case ZhCN:
		s = e.zhCN
	case ES:
		s = e.es
	}
	if s == "" {
		s = e.en
	}
	return s
}

// Has reports whether key exists in the catalog.
func Has(key string) bool {
	_, ok := catalog[key]
	return ok
}
