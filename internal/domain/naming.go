package domain

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	kebabLowerUpper   = regexp.MustCompile(`([a-z])([A-Z])`)
	kebabAcronymUpper = regexp.MustCompile(`([A-Z])([A-Z][a-z])`)
)

// ToPascalCase converts snake_case to PascalCase. Each underscore-separated
// segment gets an upper-case first letter and a lower-case remainder.
// Any input is accepted; empty segments vanish.
func ToPascalCase(s string) string {
	var b strings.Builder
	for _, seg := range strings.Split(s, "_") {
		if seg == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(seg)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(strings.ToLower(seg[size:]))
	}
	return b.String()
}

// ToKebabCase converts a Pascal or camel identifier to a kebab-case route
// segment, splitting acronyms before their last capital: HTMLPage -> html-page.
func ToKebabCase(s string) string {
	s = kebabLowerUpper.ReplaceAllString(s, "$1-$2")
	s = kebabAcronymUpper.ReplaceAllString(s, "$1-$2")
	return strings.ToLower(s)
}

// LowerFirst lower-cases the first rune: ArticleService -> articleService.
func LowerFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}
