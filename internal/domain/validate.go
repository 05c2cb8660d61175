package domain

import (
	"fmt"
	"strings"
)

// Validate checks the generation preconditions. All failures are collected
// so a caller can show them at once; generation must not run when this
// returns an error.
func (c EntityConfig) Validate() error {
	var errs []FieldError
	add := func(field, msg string) {
		errs = append(errs, FieldError{Field: field, Message: msg})
	}

	if strings.TrimSpace(c.ModuleName) == "" {
		add("module_name", "must not be empty")
	}
	if strings.TrimSpace(c.EntityName) == "" {
		add("entity_name", "must not be empty")
	}
	if !c.IdType.Valid() {
		add("id_type", fmt.Sprintf("unknown id type %q (valid: long, string, Guid)", c.IdType))
	}

	if len(c.Properties) == 0 {
		add("properties", "at least one property is required")
	}
	names := make(map[string]int, len(c.Properties))
	for i, p := range c.Properties {
		field := fmt.Sprintf("properties[%d]", i)
		if strings.TrimSpace(p.Name) == "" {
			add(field+".name", "must not be empty")
		} else if first, dup := names[strings.ToLower(p.Name)]; dup {
			add(field+".name", fmt.Sprintf("duplicates properties[%d] %q", first, p.Name))
		} else {
			names[strings.ToLower(p.Name)] = i
		}
		if !p.Type.Valid() {
			add(field+".type", fmt.Sprintf("unknown type %q", p.Type))
		}
		if p.MaxLength < 0 {
			add(field+".max_length", "must not be negative")
		}
	}

	if len(c.Endpoints) == 0 {
		add("endpoints", "at least one endpoint is required")
	}
	for _, e := range c.Endpoints {
		if !e.Valid() {
			add("endpoints", fmt.Sprintf("unknown endpoint %q", e))
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}
