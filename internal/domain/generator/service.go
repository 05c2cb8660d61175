package generator

import (
	"fmt"
	"strings"

	"github.com/slicegen/slicegen/internal/domain"
)

// Service emits the business service. Each selected endpoint contributes one
// method and an unselected endpoint contributes nothing at all.
func Service(cfg domain.EntityConfig) domain.GeneratedFile {
	n := newNames(cfg)
	repo := "_" + n.lower + "Repository"
	softDelete := cfg.Capabilities().Has(domain.CapabilitySoftDeletable)

	var methods []string
	for _, e := range cfg.EndpointSet().Ordered() {
		methods = append(methods, serviceMethod(n, e, cfg.IdType, repo, softDelete))
	}

	var b strings.Builder
	b.WriteString(usings(
		"AutoMapper",
		"Microsoft.EntityFrameworkCore",
		"Microsoft.Extensions.Logging",
		"Framework.Common.Results",
		n.namespace("Business", "Infrastructure", "Entities"),
		n.namespace("Business", "Infrastructure", "Repos"),
		n.namespace("Shared", "Models"),
		n.namespace("Shared", "Requests"),
	))
	fmt.Fprintf(&b, "\nnamespace %s;\n\n", n.namespace("Business", "Services"))
	fmt.Fprintf(&b, "public class %s\n{\n", n.serviceClass())
	fmt.Fprintf(&b, "    private readonly %s %s;\n", n.repoClass(), repo)
	b.WriteString("    private readonly IMapper _mapper;\n")
	fmt.Fprintf(&b, "    private readonly ILogger<%s> _logger;\n\n", n.serviceClass())
	fmt.Fprintf(&b, "    public %s(\n", n.serviceClass())
	fmt.Fprintf(&b, "        %s %sRepository,\n", n.repoClass(), n.lower)
	b.WriteString("        IMapper mapper,\n")
	fmt.Fprintf(&b, "        ILogger<%s> logger)\n", n.serviceClass())
	b.WriteString("    {\n")
	fmt.Fprintf(&b, "        %s = %sRepository;\n", repo, n.lower)
	b.WriteString("        _mapper = mapper;\n")
	b.WriteString("        _logger = logger;\n")
	b.WriteString("    }\n")
	for _, m := range methods {
		b.WriteString("\n")
		b.WriteString(m)
	}
	b.WriteString("}\n")

	return newFile(
		n.dir("Business", "Services"),
		n.serviceClass()+".cs",
		b.String(),
		domain.CategoryService,
	)
}

func serviceMethod(n names, e domain.EndpointType, id domain.IdType, repo string, softDelete bool) string {
	model := n.modelClass()
	notFound := fmt.Sprintf("%q", n.entity+" not found")

	var b strings.Builder
	switch e {
	case domain.EndpointCreate:
		fmt.Fprintf(&b, "    public async Task<BusinessResult> %sAsync(%s request, string createdUser)\n    {\n",
			n.operation(e), n.requestClass(e))
		fmt.Fprintf(&b, "        var entity = _mapper.Map<%s>(request);\n", n.entityClass())
		b.WriteString("        entity.CreatedUser = createdUser;\n")
		b.WriteString("        entity.CreatedTime = DateTime.Now;\n\n")
		fmt.Fprintf(&b, "        await %s.AddAsync(entity);\n", repo)
		fmt.Fprintf(&b, "        await %s.SaveChangesAsync();\n\n", repo)
		fmt.Fprintf(&b, "        _logger.LogInformation(\"Created %s with Id: {Id}\", entity.Id);\n\n", n.entity)
		b.WriteString("        return BusinessResult.Success(entity.Id);\n")

	case domain.EndpointUpdate:
		fmt.Fprintf(&b, "    public async Task<BusinessResult> %sAsync(%s id, %s request, string updatedUser)\n    {\n",
			n.operation(e), id, n.requestClass(e))
		writeLoad(&b, repo, "BusinessResult", notFound)
		b.WriteString("        _mapper.Map(request, entity);\n")
		b.WriteString("        entity.UpdatedUser = updatedUser;\n")
		b.WriteString("        entity.UpdatedTime = DateTime.Now;\n\n")
		fmt.Fprintf(&b, "        %s.Update(entity);\n", repo)
		fmt.Fprintf(&b, "        await %s.SaveChangesAsync();\n\n", repo)
		fmt.Fprintf(&b, "        _logger.LogInformation(\"Updated %s with Id: {Id}\", id);\n\n", n.entity)
		b.WriteString("        return BusinessResult.Success();\n")

	case domain.EndpointDelete:
		fmt.Fprintf(&b, "    public async Task<BusinessResult> %sAsync(%s id, string deletedUser)\n    {\n",
			n.operation(e), id)
		writeLoad(&b, repo, "BusinessResult", notFound)
		if softDelete {
			b.WriteString("        entity.IsDeleted = true;\n")
			b.WriteString("        entity.DeletedUser = deletedUser;\n")
			b.WriteString("        entity.DeletedTime = DateTime.Now;\n\n")
			fmt.Fprintf(&b, "        %s.Update(entity);\n", repo)
		} else {
			fmt.Fprintf(&b, "        %s.Delete(entity);\n", repo)
		}
		fmt.Fprintf(&b, "        await %s.SaveChangesAsync();\n\n", repo)
		fmt.Fprintf(&b, "        _logger.LogInformation(\"Deleted %s with Id: {Id}\", id);\n\n", n.entity)
		b.WriteString("        return BusinessResult.Success();\n")

	case domain.EndpointGetByID:
		result := "BusinessResult<" + model + ">"
		fmt.Fprintf(&b, "    public async Task<%s> %sAsync(%s id)\n    {\n", result, n.operation(e), id)
		writeLoad(&b, repo, result, notFound)
		fmt.Fprintf(&b, "        var model = _mapper.Map<%s>(entity);\n", model)
		fmt.Fprintf(&b, "        return %s.Success(model);\n", result)

	case domain.EndpointGetList:
		paged := "PagedResult<" + model + ">"
		result := "BusinessResult<" + paged + ">"
		fmt.Fprintf(&b, "    public async Task<%s> %sAsync(%s request)\n    {\n", result, n.operation(e), n.requestClass(e))
		fmt.Fprintf(&b, "        var query = %s.GetQueryable();\n\n", repo)
		b.WriteString("        var totalCount = await query.CountAsync();\n\n")
		b.WriteString("        var entities = await query\n")
		b.WriteString("            .OrderByDescending(x => x.CreatedTime)\n")
		b.WriteString("            .Skip((request.PageIndex - 1) * request.PageSize)\n")
		b.WriteString("            .Take(request.PageSize)\n")
		b.WriteString("            .ToListAsync();\n\n")
		fmt.Fprintf(&b, "        var models = _mapper.Map<List<%s>>(entities);\n\n", model)
		fmt.Fprintf(&b, "        var result = new %s\n        {\n", paged)
		b.WriteString("            Items = models,\n")
		b.WriteString("            TotalCount = totalCount,\n")
		b.WriteString("            PageIndex = request.PageIndex,\n")
		b.WriteString("            PageSize = request.PageSize\n")
		b.WriteString("        };\n\n")
		fmt.Fprintf(&b, "        return %s.Success(result);\n", result)

	case domain.EndpointGetAll:
		list := "List<" + model + ">"
		result := "BusinessResult<" + list + ">"
		fmt.Fprintf(&b, "    public async Task<%s> %sAsync()\n    {\n", result, n.operation(e))
		fmt.Fprintf(&b, "        var entities = await %s\n", repo)
		b.WriteString("            .GetQueryable()\n")
		b.WriteString("            .OrderByDescending(x => x.CreatedTime)\n")
		b.WriteString("            .ToListAsync();\n\n")
		fmt.Fprintf(&b, "        var models = _mapper.Map<%s>(entities);\n", list)
		fmt.Fprintf(&b, "        return %s.Success(models);\n", result)
	}
	b.WriteString("    }\n")
	return b.String()
}

// writeLoad renders the fetch-or-NotFound preamble shared by id-based methods.
func writeLoad(b *strings.Builder, repo, result, notFound string) {
	fmt.Fprintf(b, "        var entity = await %s.GetByIdAsync(id);\n", repo)
	b.WriteString("        if (entity == null)\n")
	fmt.Fprintf(b, "            return %s.NotFound(%s);\n\n", result, notFound)
}
