package domain

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/fatih/camelcase"
)

// NameWarnings returns advisory notes about an entity name. They never
// block generation.
func NameWarnings(entity string) []string {
	if entity == "" {
		return nil
	}

	var warnings []string
	words := camelcase.Split(entity)
	if first := []rune(words[0])[0]; unicode.IsLower(first) {
		warnings = append(warnings, fmt.Sprintf("entity name %q should start with an upper-case letter", entity))
	}
	for _, w := range words {
		if !isAlnum(w) {
			warnings = append(warnings, fmt.Sprintf("entity name %q contains %q; class names are used verbatim", entity, w))
			break
		}
	}
	if len(entity) > 1 && strings.HasSuffix(entity, "s") {
		warnings = append(warnings, fmt.Sprintf("entity name %q looks plural; the list route becomes get-list-%ss", entity, ToKebabCase(entity)))
	}
	return warnings
}

func isAlnum(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
