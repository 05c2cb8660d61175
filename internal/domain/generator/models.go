package generator

import (
	"fmt"
	"strings"

	"github.com/slicegen/slicegen/internal/domain"
)

// Models emits the read model followed by one request shape per selected
// endpoint that takes input. GetAll has no request shape.
func Models(cfg domain.EntityConfig) []domain.GeneratedFile {
	n := newNames(cfg)
	files := []domain.GeneratedFile{readModel(cfg, n)}

	for _, e := range cfg.EndpointSet().Ordered() {
		if !e.HasRequestShape() {
			continue
		}
		files = append(files, requestModel(cfg, n, e))
	}
	return files
}

func readModel(cfg domain.EntityConfig, n names) domain.GeneratedFile {
	caps := cfg.Capabilities()

	lines := []string{idLine(cfg.IdType)}
	lines = append(lines, propertyLines(cfg.UserProperties())...)
	lines = append(lines,
		propertyLine(domain.TypeDateTime, domain.FieldCreatedTime),
		propertyLine(domain.TypeString.Nullable(), domain.FieldCreatedUser),
	)
	if caps.Has(domain.CapabilityUpdatable) {
		lines = append(lines,
			propertyLine(domain.TypeDateTime.Nullable(), domain.FieldUpdatedTime),
			propertyLine(domain.TypeString.Nullable(), domain.FieldUpdatedUser),
		)
	}
	if caps.Has(domain.CapabilitySoftDeletable) {
		lines = append(lines,
			propertyLine(domain.TypeBool, domain.FieldIsDeleted),
			propertyLine(domain.TypeDateTime.Nullable(), domain.FieldDeletedTime),
			propertyLine(domain.TypeString.Nullable(), domain.FieldDeletedUser),
		)
	}

	return newFile(
		n.dir("Shared", "Models"),
		n.modelClass()+".cs",
		classFile(n.namespace("Shared", "Models"), n.modelClass(), lines),
		domain.CategoryModel,
	)
}

func requestModel(cfg domain.EntityConfig, n names, e domain.EndpointType) domain.GeneratedFile {
	var lines []string
	switch e {
	case domain.EndpointCreate:
		lines = propertyLines(cfg.UserProperties())
	case domain.EndpointUpdate:
		lines = append([]string{idLine(cfg.IdType)}, propertyLines(cfg.UserProperties())...)
	case domain.EndpointDelete, domain.EndpointGetByID:
		lines = []string{idLine(cfg.IdType)}
	case domain.EndpointGetList:
		lines = []string{
			"    public int PageIndex { get; set; } = 1;",
			"    public int PageSize { get; set; } = 20;",
			propertyLine(domain.TypeString.Nullable(), "Keyword"),
		}
	}

	class := n.requestClass(e)
	return newFile(
		n.dir("Shared", "Requests"),
		class+".cs",
		classFile(n.namespace("Shared", "Requests"), class, lines),
		domain.CategoryModel,
	)
}

// classFile renders a file-scoped namespace holding one plain class.
func classFile(namespace, class string, lines []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "namespace %s;\n\n", namespace)
	fmt.Fprintf(&b, "public class %s\n{\n", class)
	for _, l := range lines {
		b.WriteString(l)
		b.WriteString("\n")
	}
	b.WriteString("}\n")
	return b.String()
}
