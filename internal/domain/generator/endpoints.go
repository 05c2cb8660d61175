package generator

import (
	"fmt"
	"strings"

	"github.com/slicegen/slicegen/internal/domain"
)

// Page size bounds enforced by the GetList validator.
const (
	minPageSize = 1
	maxPageSize = 100
)

// Route is one entry of the route constants file.
type Route struct {
	Endpoint domain.EndpointType `json:"endpoint"`
	Constant string              `json:"constant"`
	Method   string              `json:"method"`
	Path     string              `json:"path"`
}

// Routes returns the routes of the selected endpoints in canonical order.
func Routes(cfg domain.EntityConfig) []Route {
	n := newNames(cfg)
	var routes []Route
	for _, e := range cfg.EndpointSet().Ordered() {
		routes = append(routes, Route{
			Endpoint: e,
			Constant: n.operation(e),
			Method:   e.HTTPMethod(),
			Path:     n.baseRoute() + "/" + n.routeSegment(e),
		})
	}
	return routes
}

// Endpoints emits the route constants file once, then a handler for every
// selected endpoint, each followed by its validator when it has one.
func Endpoints(cfg domain.EntityConfig) []domain.GeneratedFile {
	n := newNames(cfg)
	files := []domain.GeneratedFile{routeConstants(cfg, n)}

	dir := n.dir("Endpoints", "Endpoints", n.entity)
	props := cfg.UserProperties()
	for _, e := range cfg.EndpointSet().Ordered() {
		files = append(files, newFile(dir, handlerClass(n, e)+".cs", handler(n, e), domain.CategoryEndpoint))
		if e.HasValidator() {
			files = append(files, newFile(dir, validatorClass(n, e)+".cs", validator(n, e, cfg.IdType, props), domain.CategoryEndpoint))
		}
	}
	return files
}

func routeConstants(cfg domain.EntityConfig, n names) domain.GeneratedFile {
	var b strings.Builder
	fmt.Fprintf(&b, "namespace %s;\n\n", n.namespace("Shared", "Models"))
	fmt.Fprintf(&b, "public class %s\n{\n", n.constClass())
	fmt.Fprintf(&b, "    public const string BaseRoute = %q;\n\n", n.baseRoute())
	fmt.Fprintf(&b, "    public const string GroupKey = %q;\n\n", n.entity)
	for _, e := range cfg.EndpointSet().Ordered() {
		fmt.Fprintf(&b, "    public const string %s = $\"{BaseRoute}/%s\";\n", n.operation(e), n.routeSegment(e))
	}
	b.WriteString("}\n")

	return newFile(
		n.dir("Shared", "Models", n.entity),
		n.constClass()+".cs",
		b.String(),
		domain.CategoryModel,
	)
}

func handlerClass(n names, e domain.EndpointType) string {
	return "Admin" + n.operation(e) + "Endpoint"
}

func validatorClass(n names, e domain.EndpointType) string {
	return "Admin" + n.operation(e) + "RequestValidator"
}

func handlerBase(e domain.EndpointType) string {
	switch e {
	case domain.EndpointCreate:
		return "BasePostEndpoint"
	case domain.EndpointUpdate:
		return "BasePutEndpoint"
	case domain.EndpointDelete:
		return "BaseDeleteEndpoint"
	default:
		return "BaseGetEndpoint"
	}
}

func responseType(n names, e domain.EndpointType) string {
	switch e {
	case domain.EndpointGetByID:
		return "BusinessResult<" + n.modelClass() + ">"
	case domain.EndpointGetList:
		return "BusinessResult<PagedResult<" + n.modelClass() + ">>"
	case domain.EndpointGetAll:
		return "BusinessResult<List<" + n.modelClass() + ">>"
	default:
		return "BusinessResult"
	}
}

// serviceCall renders the body lines that resolve the actor and invoke the
// service method for e.
func serviceCall(n names, e domain.EndpointType, svc string) []string {
	call := func(args string) string {
		return fmt.Sprintf("        var result = await %s.%sAsync(%s);", svc, n.operation(e), args)
	}
	switch e {
	case domain.EndpointCreate:
		return []string{"        var createdUser = this.GetUserName();", call("req, createdUser")}
	case domain.EndpointUpdate:
		return []string{"        var updatedUser = this.GetUserName();", call("req.Id, req, updatedUser")}
	case domain.EndpointDelete:
		return []string{"        var deletedUser = this.GetUserName();", call("req.Id, deletedUser")}
	case domain.EndpointGetByID:
		return []string{call("req.Id")}
	case domain.EndpointGetList:
		return []string{call("req")}
	default:
		return []string{call("")}
	}
}

func handler(n names, e domain.EndpointType) string {
	class := handlerClass(n, e)
	svcParam := n.lower + "Service"
	svcField := "_" + svcParam
	req := n.requestClass(e)

	imports := []string{
		"FastEndpoints",
		"Framework.Common.Results",
		"Framework.Endpoints",
		n.namespace("Business", "Services"),
		n.namespace("Shared", "Models"),
	}
	if e.HasRequestShape() {
		imports = append(imports, n.namespace("Shared", "Requests"))
	}

	var b strings.Builder
	b.WriteString(usings(imports...))
	fmt.Fprintf(&b, "\nnamespace %s;\n\n", n.namespace("Endpoints", "Endpoints", n.entity))
	fmt.Fprintf(&b, "public class %s : %s<%s, %s>\n{\n", class, handlerBase(e), req, responseType(n, e))
	fmt.Fprintf(&b, "    public override string Group => %s.GroupKey;\n", n.constClass())
	fmt.Fprintf(&b, "    public override string Path => %s.%s;\n\n", n.constClass(), n.operation(e))
	fmt.Fprintf(&b, "    private readonly %s %s;\n\n", n.serviceClass(), svcField)
	fmt.Fprintf(&b, "    public %s(%s %s)\n    {\n", class, n.serviceClass(), svcParam)
	fmt.Fprintf(&b, "        %s = %s;\n    }\n\n", svcField, svcParam)
	fmt.Fprintf(&b, "    public override async Task HandleAsync(%s req, CancellationToken ct)\n    {\n", req)
	for _, l := range serviceCall(n, e, svcField) {
		b.WriteString(l)
		b.WriteString("\n")
	}
	b.WriteString("        await Send.OkAsync(result);\n")
	b.WriteString("    }\n}\n")
	return b.String()
}

func validator(n names, e domain.EndpointType, id domain.IdType, props []domain.PropertyDefinition) string {
	var rules []string
	switch e {
	case domain.EndpointCreate:
		rules = propertyRules(props)
		if len(rules) == 0 {
			rules = []string{"// Add validation rules here"}
		}
	case domain.EndpointUpdate:
		rules = append([]string{idRule(id)}, propertyRules(props)...)
	case domain.EndpointDelete, domain.EndpointGetByID:
		rules = []string{idRule(id)}
	case domain.EndpointGetList:
		rules = []string{
			`RuleFor(x => x.PageIndex).GreaterThan(0).WithMessage("PageIndex must be greater than 0.");`,
			fmt.Sprintf(`RuleFor(x => x.PageSize).InclusiveBetween(%d, %d).WithMessage("PageSize must be between %d and %d.");`,
				minPageSize, maxPageSize, minPageSize, maxPageSize),
		}
	}

	class := validatorClass(n, e)
	var b strings.Builder
	b.WriteString(usings("FastEndpoints", n.namespace("Shared", "Requests"), "FluentValidation"))
	fmt.Fprintf(&b, "\nnamespace %s;\n\n", n.namespace("Endpoints", "Endpoints", n.entity))
	fmt.Fprintf(&b, "public class %s : Validator<%s>\n{\n", class, n.requestClass(e))
	fmt.Fprintf(&b, "    public %s()\n    {\n", class)
	for _, r := range rules {
		b.WriteString("        ")
		b.WriteString(r)
		b.WriteString("\n")
	}
	b.WriteString("    }\n}\n")
	return b.String()
}

// idRule: numeric identifiers must be positive, others non-empty.
func idRule(id domain.IdType) string {
	if id.IsNumeric() {
		return `RuleFor(x => x.Id).GreaterThan(0).WithMessage("Id is required.");`
	}
	return `RuleFor(x => x.Id).NotEmpty().WithMessage("Id is required.");`
}

// propertyRules renders required and max-length rules. Audit fields must
// already be filtered out.
func propertyRules(props []domain.PropertyDefinition) []string {
	var rules []string
	for _, p := range props {
		if p.IsRequired {
			if p.Type.IsTextual() {
				rules = append(rules, fmt.Sprintf(`RuleFor(x => x.%s).NotEmpty().WithMessage("%s is required.");`, p.Name, p.Name))
			} else {
				rules = append(rules, fmt.Sprintf(`RuleFor(x => x.%s).NotNull().WithMessage("%s is required.");`, p.Name, p.Name))
			}
		}
		if p.MaxLength > 0 && p.Type.IsTextual() {
			rules = append(rules, fmt.Sprintf(`RuleFor(x => x.%s).MaximumLength(%d).WithMessage("%s must not exceed %d characters.");`,
				p.Name, p.MaxLength, p.Name, p.MaxLength))
		}
	}
	return rules
}
