package domain

import "strings"

// EntitySpec is the on-disk form of one entity. Unset fields fall back to
// the project defaults when resolved.
type EntitySpec struct {
	Namespace      string               `yaml:"namespace,omitempty"`
	ModuleName     string               `yaml:"module_name,omitempty"`
	EntityName     string               `yaml:"entity_name"`
	IdType         IdType               `yaml:"id_type,omitempty"`
	HasActivityLog *bool                `yaml:"has_activity_log,omitempty"`
	HasCanUpdated  *bool                `yaml:"has_can_updated,omitempty"`
	HasSoftDelete  *bool                `yaml:"has_soft_delete,omitempty"`
	Endpoints      []EndpointType       `yaml:"endpoints,omitempty"`
	Properties     []PropertyDefinition `yaml:"properties,omitempty"`

	// Schema holds a pasted column listing; its properties are appended
	// after Properties. The store reads SchemaFile into LinkedSchema.
	Schema       string `yaml:"schema,omitempty"`
	SchemaFile   string `yaml:"schema_file,omitempty"`
	Lenient      bool   `yaml:"lenient,omitempty"`
	LinkedSchema string `yaml:"-"`
}

// SchemaText returns the inline and linked column listings joined.
func (s EntitySpec) SchemaText() string {
	switch {
	case s.Schema == "":
		return s.LinkedSchema
	case s.LinkedSchema == "":
		return s.Schema
	default:
		return s.Schema + "\n" + s.LinkedSchema
	}
}

// Resolve merges the entity fields over the project defaults.
func (s EntitySpec) Resolve(p ProjectConfig) EntityConfig {
	d := p.Defaults
	cfg := EntityConfig{
		Namespace:      firstNonEmpty(s.Namespace, p.Namespace),
		ModuleName:     firstNonEmpty(s.ModuleName, d.ModuleName),
		EntityName:     s.EntityName,
		Properties:     append([]PropertyDefinition(nil), s.Properties...),
		IdType:         s.IdType,
		HasActivityLog: boolOr(s.HasActivityLog, d.HasActivityLog),
		HasCanUpdated:  boolOr(s.HasCanUpdated, d.HasCanUpdated),
		HasSoftDelete:  boolOr(s.HasSoftDelete, d.HasSoftDelete),
		Endpoints:      s.Endpoints,
	}
	if cfg.IdType == "" {
		cfg.IdType = d.IdType
	}
	if len(cfg.Endpoints) == 0 {
		cfg.Endpoints = append([]EndpointType(nil), d.Endpoints...)
	}
	return cfg
}

func firstNonEmpty(v ...string) string {
	for _, s := range v {
		if s != "" {
			return s
		}
	}
	return ""
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

// MergeProperties appends the extra properties whose names base does not
// already declare, compared case-insensitively. It returns the merged list
// and how many were added; base always wins.
func MergeProperties(base, extra []PropertyDefinition) ([]PropertyDefinition, int) {
	seen := make(map[string]bool, len(base)+len(extra))
	out := append([]PropertyDefinition(nil), base...)
	for _, p := range base {
		seen[strings.ToLower(p.Name)] = true
	}

	added := 0
	for _, p := range extra {
		key := strings.ToLower(p.Name)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, p)
		added++
	}
	return out, added
}
