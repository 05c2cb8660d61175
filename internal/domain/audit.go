package domain

import "strings"

// Audit field names owned by the generated framework base classes.
const (
	FieldId          = "Id"
	FieldCreatedTime = "CreatedTime"
	FieldCreatedUser = "CreatedUser"
	FieldUpdatedTime = "UpdatedTime"
	FieldUpdatedUser = "UpdatedUser"
	FieldDeletedTime = "DeletedTime"
	FieldDeletedUser = "DeletedUser"
	FieldIsDeleted   = "IsDeleted"
)

// AuditFields are never taken from user input; generators add them based on
// the capability flags instead.
var AuditFields = []string{
	FieldId,
	FieldCreatedTime,
	FieldCreatedUser,
	FieldUpdatedTime,
	FieldUpdatedUser,
	FieldDeletedTime,
	FieldDeletedUser,
	FieldIsDeleted,
}

// IsAuditField reports whether name matches an audit field, ignoring case.
func IsAuditField(name string) bool {
	for _, f := range AuditFields {
		if strings.EqualFold(f, name) {
			return true
		}
	}
	return false
}

// FilterAuditFields returns a new slice without audit fields. The input is
// left untouched.
func FilterAuditFields(props []PropertyDefinition) []PropertyDefinition {
	out := make([]PropertyDefinition, 0, len(props))
	for _, p := range props {
		if !IsAuditField(p.Name) {
			out = append(out, p)
		}
	}
	return out
}

// Capability is an optional structural trait of a generated entity.
type Capability string

const (
	CapabilityUpdatable     Capability = "Updatable"
	CapabilitySoftDeletable Capability = "SoftDeletable"
)

// CapabilitySet is the subset of {Updatable, SoftDeletable} an entity carries.
type CapabilitySet map[Capability]bool

// NewCapabilitySet builds the set from the two config flags.
func NewCapabilitySet(updatable, softDeletable bool) CapabilitySet {
	set := CapabilitySet{}
	if updatable {
		set[CapabilityUpdatable] = true
	}
	if softDeletable {
		set[CapabilitySoftDeletable] = true
	}
	return set
}

// Has reports membership.
func (s CapabilitySet) Has(c Capability) bool {
	return s[c]
}

// Interfaces returns the marker interfaces for the set, in a fixed order.
func (s CapabilitySet) Interfaces() []string {
	var out []string
	if s.Has(CapabilityUpdatable) {
		out = append(out, "ICanUpdated")
	}
	if s.Has(CapabilitySoftDeletable) {
		out = append(out, "ICanDeleted")
	}
	return out
}
