package generator

import (
	"fmt"
	"strings"

	"github.com/slicegen/slicegen/internal/domain"
)

// MappingProfile emits an advisory snippet for the module's mapping profile.
// It is not compiled, so the file keeps a .txt suffix.
func MappingProfile(cfg domain.EntityConfig) domain.GeneratedFile {
	n := newNames(cfg)
	endpoints := cfg.EndpointSet()

	maps := []string{fmt.Sprintf("        CreateMap<%s, %s>();", n.entityClass(), n.modelClass())}
	for _, e := range []domain.EndpointType{domain.EndpointCreate, domain.EndpointUpdate} {
		if endpoints.Has(e) {
			maps = append(maps, fmt.Sprintf("        CreateMap<%s, %s>();", n.requestClass(e), n.entityClass()))
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "// Add this to your %sMappingProfile.cs\n\n", n.module)
	b.WriteString(usings(
		n.namespace("Business", "Infrastructure", "Entities"),
		n.namespace("Shared", "Models"),
		n.namespace("Shared", "Requests"),
	))
	b.WriteString("\n// Inside CreateMap() method, add:\n")
	b.WriteString(strings.Join(maps, "\n"))
	b.WriteString("\n")

	return newFile(
		n.project("Business"),
		n.entity+"MappingProfile.cs.txt",
		b.String(),
		domain.CategoryMapping,
	)
}
