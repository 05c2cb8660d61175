package domain

// EndpointInfo describes one endpoint type for listings.
type EndpointInfo struct {
	Name         EndpointType `json:"name"`
	Label        string       `json:"label"`
	Method       string       `json:"method"`
	HasRequest   bool         `json:"has_request"`
	HasValidator bool         `json:"has_validator"`
}

// Catalog lists everything an entity file may reference.
type Catalog struct {
	PropertyTypes []TargetType   `json:"property_types"`
	IdTypes       []IdType       `json:"id_types"`
	Endpoints     []EndpointInfo `json:"endpoints"`
}

// NewCatalog builds the catalog in canonical order.
func NewCatalog() Catalog {
	c := Catalog{
		PropertyTypes: AllTargetTypes(),
		IdTypes:       append([]IdType(nil), ValidIdTypes...),
	}
	for _, e := range AllEndpointTypes {
		c.Endpoints = append(c.Endpoints, EndpointInfo{
			Name:         e,
			Label:        e.Label(),
			Method:       e.HTTPMethod(),
			HasRequest:   e.HasRequestShape(),
			HasValidator: e.HasValidator(),
		})
	}
	return c
}
