// Package generator turns an EntityConfig into the C# artifacts of one CRUD
// slice. Every function here is pure: no I/O, no shared state, and the same
// config always yields byte-identical files.
package generator

import (
	"fmt"
	"strings"

	"github.com/slicegen/slicegen/internal/domain"
)

// names holds the identifiers every artifact derives from the config.
type names struct {
	ns     string // Fastlink
	module string // Portal
	entity string // Article
	lower  string // article
	kebab  string // article
}

func newNames(cfg domain.EntityConfig) names {
	return names{
		ns:     cfg.RootNamespace(),
		module: cfg.ModuleName,
		entity: cfg.EntityName,
		lower:  domain.LowerFirst(cfg.EntityName),
		kebab:  domain.ToKebabCase(cfg.EntityName),
	}
}

// project returns a project name such as Fastlink.Portal.Business.
func (n names) project(layer string) string {
	return n.ns + "." + n.module + "." + layer
}

// dir returns a path under a project: Fastlink.Portal.Business/Services.
func (n names) dir(layer string, sub ...string) string {
	parts := append([]string{n.project(layer)}, sub...)
	return strings.Join(parts, "/")
}

// namespace returns a dotted namespace: Fastlink.Portal.Business.Services.
func (n names) namespace(layer string, sub ...string) string {
	parts := append([]string{n.project(layer)}, sub...)
	return strings.Join(parts, ".")
}

func (n names) entityClass() string  { return n.entity + "Entity" }
func (n names) modelClass() string   { return n.entity + "Model" }
func (n names) serviceClass() string { return n.entity + "Service" }
func (n names) repoClass() string    { return n.entity + "Repository" }
func (n names) constClass() string   { return n.entity + "Const" }
func (n names) plural() string       { return n.entity + "s" }

// requestClass returns the request shape of an endpoint.
func (n names) requestClass(e domain.EndpointType) string {
	switch e {
	case domain.EndpointCreate:
		return "Create" + n.entity + "Request"
	case domain.EndpointUpdate:
		return "Update" + n.entity + "Request"
	case domain.EndpointDelete:
		return "Delete" + n.entity + "Request"
	case domain.EndpointGetByID:
		return "Get" + n.entity + "ByIdRequest"
	case domain.EndpointGetList:
		return "GetList" + n.plural() + "Request"
	default:
		return "EmptyRequest"
	}
}

// operation returns the member name shared by the service, the client and
// the route constant: CreateArticle, GetArticleById, GetListArticles.
func (n names) operation(e domain.EndpointType) string {
	switch e {
	case domain.EndpointCreate:
		return "Create" + n.entity
	case domain.EndpointUpdate:
		return "Update" + n.entity
	case domain.EndpointDelete:
		return "Delete" + n.entity
	case domain.EndpointGetByID:
		return "Get" + n.entity + "ById"
	case domain.EndpointGetList:
		return "GetList" + n.plural()
	case domain.EndpointGetAll:
		return "GetAll" + n.plural()
	default:
		return string(e) + n.entity
	}
}

// routeSegment returns the sub-path of an endpoint under the base route.
func (n names) routeSegment(e domain.EndpointType) string {
	switch e {
	case domain.EndpointCreate:
		return "create-" + n.kebab
	case domain.EndpointUpdate:
		return "update-" + n.kebab
	case domain.EndpointDelete:
		return "delete-" + n.kebab
	case domain.EndpointGetByID:
		return "get-" + n.kebab + "-by-id"
	case domain.EndpointGetList:
		return "get-list-" + n.kebab + "s"
	case domain.EndpointGetAll:
		return "get-all-" + n.kebab + "s"
	default:
		return n.kebab
	}
}

func (n names) baseRoute() string {
	return "/api/v1/" + n.kebab
}

// propertyLine renders an auto-property. Non-nullable strings get an empty
// default so the class never holds null.
func propertyLine(t domain.TargetType, name string) string {
	line := fmt.Sprintf("    public %s %s { get; set; }", t, name)
	if t == domain.TypeString {
		line += " = string.Empty;"
	}
	return line
}

// idLine renders the Id property typed as the configured identifier.
func idLine(id domain.IdType) string {
	return propertyLine(domain.TargetType(id), domain.FieldId)
}

func propertyLines(props []domain.PropertyDefinition) []string {
	lines := make([]string, 0, len(props))
	for _, p := range props {
		lines = append(lines, propertyLine(p.Type, p.Name))
	}
	return lines
}

// usings renders a block of using directives.
func usings(namespaces ...string) string {
	var b strings.Builder
	for _, ns := range namespaces {
		fmt.Fprintf(&b, "using %s;\n", ns)
	}
	return b.String()
}

func newFile(dir, fileName, content string, c domain.Category) domain.GeneratedFile {
	return domain.GeneratedFile{
		Path:     dir,
		FileName: fileName,
		Content:  strings.TrimSpace(content),
		Category: c,
	}
}
