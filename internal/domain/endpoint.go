package domain

import (
	"strings"

	"github.com/fatih/camelcase"
)

// EndpointType is one of the six CRUD operations a slice can expose.
type EndpointType string

const (
	EndpointCreate  EndpointType = "Create"
	EndpointUpdate  EndpointType = "Update"
	EndpointDelete  EndpointType = "Delete"
	EndpointGetByID EndpointType = "GetById"
	EndpointGetList EndpointType = "GetList"
	EndpointGetAll  EndpointType = "GetAll"
)

// AllEndpointTypes is the canonical order. Every generator emits files and
// members in this order regardless of how the caller listed them.
var AllEndpointTypes = []EndpointType{
	EndpointCreate,
	EndpointUpdate,
	EndpointDelete,
	EndpointGetByID,
	EndpointGetList,
	EndpointGetAll,
}

// Valid reports whether e is a known endpoint type.
func (e EndpointType) Valid() bool {
	for _, v := range AllEndpointTypes {
		if v == e {
			return true
		}
	}
	return false
}

// Label splits the identifier into words: GetById -> "Get By Id".
func (e EndpointType) Label() string {
	return strings.Join(camelcase.Split(string(e)), " ")
}

// IsRead reports whether the endpoint only reads data.
func (e EndpointType) IsRead() bool {
	switch e {
	case EndpointGetByID, EndpointGetList, EndpointGetAll:
		return true
	default:
		return false
	}
}

// HTTPMethod is the verb the generated handler binds to.
func (e EndpointType) HTTPMethod() string {
	switch e {
	case EndpointCreate:
		return "POST"
	case EndpointUpdate:
		return "PUT"
	case EndpointDelete:
		return "DELETE"
	default:
		return "GET"
	}
}

// HasRequestShape reports whether the endpoint needs a dedicated request
// class. GetAll takes no input.
func (e EndpointType) HasRequestShape() bool {
	return e.Valid() && e != EndpointGetAll
}

// HasValidator reports whether the endpoint gets a paired validator file.
func (e EndpointType) HasValidator() bool {
	return e.HasRequestShape()
}

// EndpointSet is an order-insensitive selection of endpoint types.
type EndpointSet map[EndpointType]bool

// NewEndpointSet builds a set; duplicates collapse and unknown values are kept
// so validation can report them.
func NewEndpointSet(types ...EndpointType) EndpointSet {
	set := make(EndpointSet, len(types))
	for _, t := range types {
		set[t] = true
	}
	return set
}

// Has reports membership.
func (s EndpointSet) Has(e EndpointType) bool {
	return s[e]
}

// Ordered returns the known members in canonical order.
func (s EndpointSet) Ordered() []EndpointType {
	var out []EndpointType
	for _, e := range AllEndpointTypes {
		if s[e] {
			out = append(out, e)
		}
	}
	return out
}
