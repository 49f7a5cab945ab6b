// Package locale normalizes user supplied locale codes ("zh-CN", "en_us", "fr")
// into the forms the weather providers and the date formatter expect.
package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// Default is used when a locale cannot be parsed
var Default = language.English

// providerRegional lists locales the weather provider only accepts in
// region-qualified form.
var providerRegional = map[string]bool{
	"zh_cn": true,
	"zh_tw": true,
	"pt_br": true,
}

// Parse returns the language tag for s, falling back to Default
func Parse(s string) language.Tag {
	s = strings.TrimSpace(strings.ReplaceAll(s, "_", "-"))
	if s == "" {
		return Default
	}
	tag, err := language.Parse(s)
	if err != nil {
		return Default
	}
	return tag
}

// Base returns the ISO 639-1 language code, e.g. "zh" for "zh-CN"
func Base(s string) string {
	base, _ := Parse(s).Base()
	return base.String()
}

// ProviderLang returns the weather provider's lang parameter for s
func ProviderLang(s string) string {
	tag := Parse(s)
	base, _ := tag.Base()
	region, confidence := tag.Region()
	if confidence == language.Exact {
		key := strings.ToLower(base.String() + "_" + region.String())
		if providerRegional[key] {
			return key
		}
	}
	if base.String() == "zh" {
		return "zh_cn"
	}
	return base.String()
}
