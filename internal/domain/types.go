package domain

import "strings"

// TargetType is a C# property type. Nullable variants carry a trailing "?".
type TargetType string

const nullableMarker = "?"

const (
	TypeString   TargetType = "string"
	TypeInt      TargetType = "int"
	TypeLong     TargetType = "long"
	TypeDecimal  TargetType = "decimal"
	TypeDouble   TargetType = "double"
	TypeBool     TargetType = "bool"
	TypeDateTime TargetType = "DateTime"
	TypeGuid     TargetType = "Guid"
)

// BaseTypes enumerates the non-nullable target types. Nullable variants are
// derived with Nullable and are never listed separately.
var BaseTypes = []TargetType{
	TypeString,
	TypeInt,
	TypeLong,
	TypeDecimal,
	TypeDouble,
	TypeBool,
	TypeDateTime,
	TypeGuid,
}

// AllTargetTypes returns every base type followed by its nullable variant.
func AllTargetTypes() []TargetType {
	out := make([]TargetType, 0, len(BaseTypes)*2)
	for _, t := range BaseTypes {
		out = append(out, t, t.Nullable())
	}
	return out
}

// Nullable returns the nullable variant of t.
func (t TargetType) Nullable() TargetType {
	if t.IsNullable() {
		return t
	}
	return t + nullableMarker
}

// Base strips the nullable marker.
func (t TargetType) Base() TargetType {
	return TargetType(strings.TrimSuffix(string(t), nullableMarker))
}

// IsNullable reports whether t carries the nullable marker.
func (t TargetType) IsNullable() bool {
	return strings.HasSuffix(string(t), nullableMarker)
}

// IsTextual reports whether t is string or string?.
func (t TargetType) IsTextual() bool {
	return t.Base() == TypeString
}

// WithNullability returns the nullable or non-nullable variant of t.
func (t TargetType) WithNullability(nullable bool) TargetType {
	if nullable {
		return t.Nullable()
	}
	return t.Base()
}

// Valid reports whether t is one of the known types or their nullable variants.
func (t TargetType) Valid() bool {
	base := t.Base()
	for _, bt := range BaseTypes {
		if bt == base {
			return true
		}
	}
	return false
}

// IdType is the identifier type threaded through every generated artifact.
type IdType string

const (
	IdLong   IdType = "long"
	IdString IdType = "string"
	IdGuid   IdType = "Guid"
)

// ValidIdTypes enumerates the supported identifier types.
var ValidIdTypes = []IdType{IdLong, IdString, IdGuid}

// Valid reports whether id is a supported identifier type.
func (id IdType) Valid() bool {
	for _, v := range ValidIdTypes {
		if v == id {
			return true
		}
	}
	return false
}

// IsNumeric reports whether identifiers of this type are validated with "> 0".
func (id IdType) IsNumeric() bool {
	return id == IdLong
}

// sourceTypeTable maps exact source database type names to a base target type.
var sourceTypeTable = map[string]TargetType{
	"int":              TypeInt,
	"integer":          TypeInt,
	"bigint":           TypeLong,
	"long":             TypeLong,
	"decimal":          TypeDecimal,
	"numeric":          TypeDecimal,
	"money":            TypeDecimal,
	"float":            TypeDouble,
	"double":           TypeDouble,
	"real":             TypeDouble,
	"bit":              TypeBool,
	"boolean":          TypeBool,
	"bool":             TypeBool,
	"datetime":         TypeDateTime,
	"datetime2":        TypeDateTime,
	"date":             TypeDateTime,
	"timestamp":        TypeDateTime,
	"uniqueidentifier": TypeGuid,
	"guid":             TypeGuid,
	"uuid":             TypeGuid,
}

// textualMarkers are substrings that classify a source type as textual.
var textualMarkers = []string{"varchar", "text", "char"}

// MapSourceType maps a database column type to a target type. Matching is
// case-insensitive and total: anything unrecognized becomes textual.
func MapSourceType(source string, nullable bool) TargetType {
	name := strings.ToLower(strings.TrimSpace(source))

	for _, m := range textualMarkers {
		if strings.Contains(name, m) {
			return TypeString.WithNullability(nullable)
		}
	}

	// decimal(18,2), datetime2(7)
	if i := strings.IndexByte(name, '('); i >= 0 {
		name = strings.TrimSpace(name[:i])
	}

	if t, ok := sourceTypeTable[name]; ok {
		return t.WithNullability(nullable)
	}
	return TypeString.WithNullability(nullable)
}
