package generator

import "github.com/slicegen/slicegen/internal/domain"

// Generator is one named step of the aggregate run.
type Generator struct {
	Name     string
	Category domain.Category
	Generate func(domain.EntityConfig) []domain.GeneratedFile
}

func single(f func(domain.EntityConfig) domain.GeneratedFile) func(domain.EntityConfig) []domain.GeneratedFile {
	return func(cfg domain.EntityConfig) []domain.GeneratedFile {
		return []domain.GeneratedFile{f(cfg)}
	}
}

// Generators returns the steps in emission order. The Endpoints step also
// produces the route constants file, which is categorized as a Model.
func Generators() []Generator {
	return []Generator{
		{Name: "ApiClient", Category: domain.CategoryApiClient, Generate: single(ApiClient)},
		{Name: "Entity", Category: domain.CategoryEntity, Generate: single(Entity)},
		{Name: "Repository", Category: domain.CategoryRepository, Generate: single(Repository)},
		{Name: "Service", Category: domain.CategoryService, Generate: single(Service)},
		{Name: "Models", Category: domain.CategoryModel, Generate: Models},
		{Name: "Endpoints", Category: domain.CategoryEndpoint, Generate: Endpoints},
		{Name: "MappingProfile", Category: domain.CategoryMapping, Generate: single(MappingProfile)},
	}
}

// GenerateAll runs every generator and summarizes the result. The config is
// expected to have passed Validate.
func GenerateAll(cfg domain.EntityConfig) *domain.GeneratorResult {
	var files []domain.GeneratedFile
	for _, g := range Generators() {
		files = append(files, g.Generate(cfg)...)
	}
	return domain.NewGeneratorResult(files)
}
