// Package schema imports property definitions from column listings pasted
// out of database tools. Parsing never fails: lines it cannot use are
// skipped and reported.
package schema

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/slicegen/slicegen/internal/domain"
)

// Column positions of the supported layouts:
// Name, Type, Length, Decimals, Not null, Virtual, Key, Comment.
const (
	colName    = 0
	colType    = 1
	colLength  = 2
	colNotNull = 4
)

// lenientSeparator matches one column break: a single tab with any spaces
// around it, or two or more spaces. Consecutive tabs keep empty columns.
var lenientSeparator = regexp.MustCompile(` *\t *| {2,}`)

// Options tunes line splitting.
type Options struct {
	// Lenient treats runs of two or more spaces as column separators in
	// addition to tabs. Use it for pastes whose tabs were expanded.
	Lenient bool
}

// Skip records a line that did not produce a property.
type Skip struct {
	Line   int    `json:"line"`
	Text   string `json:"text"`
	Reason string `json:"reason"`
}

// Report is the outcome of one parse.
type Report struct {
	Properties []domain.PropertyDefinition `json:"properties"`
	Skipped    []Skip                      `json:"skipped,omitempty"`
}

// Parse reads tab-separated column listings.
func Parse(text string) []domain.PropertyDefinition {
	return ParseWith(text, Options{}).Properties
}

// ParseWith parses text and reports skipped lines alongside the properties.
func ParseWith(text string, opts Options) Report {
	var r Report
	for i, line := range splitLines(text) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if isHeader(line) {
			r.Skipped = append(r.Skipped, Skip{Line: i + 1, Text: line, Reason: "header"})
			continue
		}

		fields := splitFields(line, opts.Lenient)
		if len(fields) < 2 {
			r.Skipped = append(r.Skipped, Skip{Line: i + 1, Text: line, Reason: "fewer than two columns"})
			continue
		}
		if fields[colName] == "" {
			r.Skipped = append(r.Skipped, Skip{Line: i + 1, Text: line, Reason: "empty name"})
			continue
		}

		r.Properties = append(r.Properties, property(fields))
	}
	return r
}

func property(fields []string) domain.PropertyDefinition {
	required := len(fields) > colNotNull && isNotNull(fields[colNotNull])

	p := domain.PropertyDefinition{
		Name:       domain.ToPascalCase(fields[colName]),
		Type:       domain.MapSourceType(fields[colType], !required),
		IsRequired: required,
	}
	if len(fields) > colLength && p.Type.IsTextual() {
		if n, err := strconv.Atoi(fields[colLength]); err == nil && n > 0 {
			p.MaxLength = n
		}
	}
	return p
}

// isNotNull accepts "0" from full exports and "true" from simple ones.
// Anything else, including "1" and "-1", means nullable.
func isNotNull(v string) bool {
	return v == "0" || strings.EqualFold(v, "true")
}

func isHeader(line string) bool {
	l := strings.ToLower(line)
	return strings.Contains(l, "name") && strings.Contains(l, "type")
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(text, "\n")
}

// splitFields keeps column positions: a leading tab yields an empty name in
// both modes. Lenient mode only drops the space indentation of a line.
func splitFields(line string, lenient bool) []string {
	var parts []string
	if lenient {
		parts = lenientSeparator.Split(strings.Trim(line, " "), -1)
	} else {
		parts = strings.Split(line, "\t")
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
