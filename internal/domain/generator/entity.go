package generator

import (
	"fmt"
	"strings"

	"github.com/slicegen/slicegen/internal/domain"
)

// Entity emits the persistence class. Its interface list is exactly the
// capability subset selected by the config on top of BaseEntity.
func Entity(cfg domain.EntityConfig) domain.GeneratedFile {
	n := newNames(cfg)
	caps := cfg.Capabilities()

	bases := append([]string{"BaseEntity"}, caps.Interfaces()...)

	members := propertyLines(cfg.UserProperties())
	if caps.Has(domain.CapabilityUpdatable) {
		members = append(members,
			propertyLine(domain.TypeDateTime.Nullable(), domain.FieldUpdatedTime),
			propertyLine(domain.TypeString.Nullable(), domain.FieldUpdatedUser),
		)
	}
	if caps.Has(domain.CapabilitySoftDeletable) {
		members = append(members,
			propertyLine(domain.TypeBool, domain.FieldIsDeleted),
			propertyLine(domain.TypeDateTime.Nullable(), domain.FieldDeletedTime),
			propertyLine(domain.TypeString.Nullable(), domain.FieldDeletedUser),
		)
	}

	var b strings.Builder
	b.WriteString(usings(
		"System.ComponentModel.DataAnnotations",
		"System.ComponentModel.DataAnnotations.Schema",
		"Framework.Data",
	))
	fmt.Fprintf(&b, "\nnamespace %s;\n\n", n.namespace("Business", "Infrastructure", "Entities"))
	fmt.Fprintf(&b, "[Table(%q)]\n", n.entity)
	fmt.Fprintf(&b, "public class %s : %s\n{\n", n.entityClass(), strings.Join(bases, ", "))
	b.WriteString(strings.Join(members, "\n\n"))
	b.WriteString("\n}\n")

	return newFile(
		n.dir("Business", "Infrastructure", "Entities"),
		n.entityClass()+".cs",
		b.String(),
		domain.CategoryEntity,
	)
}

// Repository emits the generic persistence wrapper for the entity.
func Repository(cfg domain.EntityConfig) domain.GeneratedFile {
	n := newNames(cfg)

	var b strings.Builder
	b.WriteString(usings(n.namespace("Business", "Infrastructure", "Entities")))
	fmt.Fprintf(&b, "\nnamespace %s;\n\n", n.namespace("Business", "Infrastructure", "Repos"))
	fmt.Fprintf(&b, "public class %s : Base%sRepository<%s>\n{\n", n.repoClass(), n.module, n.entityClass())
	fmt.Fprintf(&b, "    public %s(%sDbContext dbContext) : base(dbContext)\n", n.repoClass(), n.module)
	b.WriteString("    {\n    }\n}\n")

	return newFile(
		n.dir("Business", "Infrastructure", "Repos"),
		n.repoClass()+".cs",
		b.String(),
		domain.CategoryRepository,
	)
}
