package domain

import "path"

// DefaultNamespace is the root namespace used when EntityConfig.Namespace is empty.
const DefaultNamespace = "Fastlink"

// PropertyDefinition describes one user-supplied property of an entity.
type PropertyDefinition struct {
	Name        string     `json:"name"                  yaml:"name"`
	Type        TargetType `json:"type"                  yaml:"type"`
	IsRequired  bool       `json:"is_required"           yaml:"required"`
	MaxLength   int        `json:"max_length,omitempty"  yaml:"max_length,omitempty"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
}

// EntityConfig is the full input of one generation run.
type EntityConfig struct {
	Namespace      string               `json:"namespace,omitempty"`
	ModuleName     string               `json:"module_name"`
	EntityName     string               `json:"entity_name"`
	Properties     []PropertyDefinition `json:"properties"`
	IdType         IdType               `json:"id_type"`
	HasActivityLog bool                 `json:"has_activity_log"`
	HasCanUpdated  bool                 `json:"has_can_updated"`
	HasSoftDelete  bool                 `json:"has_soft_delete"`
	Endpoints      []EndpointType       `json:"endpoints"`
}

// RootNamespace returns the configured namespace or DefaultNamespace.
func (c EntityConfig) RootNamespace() string {
	if c.Namespace == "" {
		return DefaultNamespace
	}
	return c.Namespace
}

// Capabilities returns the optional traits selected by the config flags.
func (c EntityConfig) Capabilities() CapabilitySet {
	return NewCapabilitySet(c.HasCanUpdated, c.HasSoftDelete)
}

// EndpointSet returns the selected endpoints as an order-insensitive set.
func (c EntityConfig) EndpointSet() EndpointSet {
	return NewEndpointSet(c.Endpoints...)
}

// UserProperties returns the properties with audit fields removed.
func (c EntityConfig) UserProperties() []PropertyDefinition {
	return FilterAuditFields(c.Properties)
}

// Category groups generated files by architectural layer.
type Category string

const (
	CategoryEntity     Category = "Entity"
	CategoryRepository Category = "Repository"
	CategoryService    Category = "Service"
	CategoryEndpoint   Category = "Endpoint"
	CategoryModel      Category = "Model"
	CategoryMapping    Category = "Mapping"
	CategoryApiClient  Category = "ApiClient"
)

// AllCategories lists categories in the order files are emitted.
var AllCategories = []Category{
	CategoryApiClient,
	CategoryEntity,
	CategoryRepository,
	CategoryService,
	CategoryModel,
	CategoryEndpoint,
	CategoryMapping,
}

// GeneratedFile is one emitted artifact. Its identity is (Path, FileName).
type GeneratedFile struct {
	Path     string   `json:"path"`
	FileName string   `json:"file_name"`
	Content  string   `json:"content"`
	Category Category `json:"category"`
}

// FullPath joins Path and FileName with a forward slash.
func (f GeneratedFile) FullPath() string {
	return path.Join(f.Path, f.FileName)
}

// Summary is derived from a file list and never edited on its own.
type Summary struct {
	TotalFiles int              `json:"total_files"`
	ByCategory map[Category]int `json:"by_category"`
}

// Count returns the number of files in category c.
func (s Summary) Count(c Category) int {
	return s.ByCategory[c]
}

// GeneratorResult bundles the files of one run with their summary.
type GeneratorResult struct {
	Files   []GeneratedFile `json:"files"`
	Summary Summary         `json:"summary"`
}

// NewGeneratorResult computes the summary for files.
func NewGeneratorResult(files []GeneratedFile) *GeneratorResult {
	byCategory := make(map[Category]int)
	for _, f := range files {
		byCategory[f.Category]++
	}
	return &GeneratorResult{
		Files: files,
		Summary: Summary{
			TotalFiles: len(files),
			ByCategory: byCategory,
		},
	}
}

// FilesIn returns the files of category c in emission order.
func (r *GeneratorResult) FilesIn(c Category) []GeneratedFile {
	var out []GeneratedFile
	for _, f := range r.Files {
		if f.Category == c {
			out = append(out, f)
		}
	}
	return out
}
